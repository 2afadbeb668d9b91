package main

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"picgrid/internal/config"
	"picgrid/internal/domain"
)

type commandContext struct {
	configFlag  *string
	themeFlag   *string
	columnsFlag *int
	noMouseFlag *bool

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error
}

func newCommandContext(configFlag, themeFlag *string, columnsFlag *int, noMouseFlag *bool) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		themeFlag:   themeFlag,
		columnsFlag: columnsFlag,
		noMouseFlag: noMouseFlag,
	}
}

// resolveConfigPath picks the config file: flag, then PICGRID_CONFIG, then the default location
func (c *commandContext) resolveConfigPath() (string, error) {
	if c.configFlag != nil {
		if path := strings.TrimSpace(*c.configFlag); path != "" {
			return path, nil
		}
	}
	overrides, err := config.LoadEnv()
	if err != nil {
		return "", err
	}
	if overrides.ConfigPath != "" {
		return overrides.ConfigPath, nil
	}
	return config.DefaultPath(), nil
}

// ensureConfig loads the file once and layers environment and flag overrides on top
func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		path, err := c.resolveConfigPath()
		if err != nil {
			c.configErr = err
			return
		}
		c.configPath = path

		cfg, err := config.NewConfigService(path).Load()
		if err != nil {
			c.configErr = err
			return
		}

		overrides, err := config.LoadEnv()
		if err != nil {
			c.configErr = err
			return
		}
		overrides.Apply(cfg)

		if c.themeFlag != nil && *c.themeFlag != "" {
			cfg.UISettings.Theme = domain.Theme(strings.ToLower(*c.themeFlag))
		}
		if c.columnsFlag != nil && *c.columnsFlag != 0 {
			cfg.UISettings.Columns = *c.columnsFlag
		}
		if c.noMouseFlag != nil && *c.noMouseFlag {
			cfg.UISettings.Mouse = false
		}
		if err := cfg.Validate(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for current := cmd; current != nil; current = current.Parent() {
		if current.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
