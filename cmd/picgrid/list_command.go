package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"picgrid/internal/gallery"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the gallery in its starting order",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(ctx, cmd.OutOrStdout())
		},
	}
}

func runList(ctx *commandContext, out io.Writer) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	g, err := gallery.New(cfg.SeedImages())
	if err != nil {
		return err
	}

	snap := g.Snapshot()
	rows := make([][]string, 0, len(snap.Images))
	for _, img := range snap.Images {
		featured := ""
		if img.Featured {
			featured = "★"
		}
		rows = append(rows, []string{
			strconv.Itoa(img.Position + 1),
			strconv.Itoa(int(img.ID)),
			img.URL,
			featured,
		})
	}

	fmt.Fprintln(out, renderTable(
		[]string{"Position", "ID", "URL", "Featured"},
		rows,
		[]columnAlignment{alignRight, alignRight, alignLeft, alignLeft},
	))
	return nil
}
