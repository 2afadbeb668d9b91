//go:build e2e && unix

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func startGallery(t *testing.T, args ...string) *TUITestFramework {
	t.Helper()
	tf := NewTUITest(t)
	t.Cleanup(tf.Cleanup)
	require.NoError(t, tf.StartApp(args...), "Failed to start app")
	require.True(t, tf.Ready(), "Should render the gallery")
	return tf
}

func TestStartupShowsSeededGallery(t *testing.T) {
	t.Parallel()
	tf := startGallery(t)

	require.True(t, tf.SeePlain("picgrid"), "Should show the title")
	require.True(t, tf.SeePlain("11 images"), "Should count the seed images")
	require.True(t, tf.SeePlain("featured #1"), "First image should be featured")
	require.True(t, tf.SeePlain("image-1.webp"), "Should render the first card")
}

func TestQuitExitsCleanly(t *testing.T) {
	t.Parallel()
	tf := startGallery(t)

	require.NoError(t, tf.Quit())
	require.NoError(t, tf.WaitExit(2*time.Second))
}

func TestCtrlCExits(t *testing.T) {
	t.Parallel()
	tf := startGallery(t)

	require.NoError(t, tf.SendCtrlC())
	require.NoError(t, tf.WaitExit(2*time.Second))
}

func TestSelectAndDeleteWithConfirmation(t *testing.T) {
	t.Parallel()
	tf := startGallery(t)

	tf.Press(KeySpace)
	require.True(t, tf.SeePlain("1 selected"), "Selection should be counted")

	tf.Press("d")
	require.True(t, tf.SeePlain("Delete 1 selected image? (y/n)"), "Should ask before deleting")

	tf.Press("y")
	require.True(t, tf.SeePlain("Deleted image #1"), "Should report the deletion")
	require.True(t, tf.SeePlain("10 images"), "Gallery should shrink")
	require.True(t, tf.SeePlain("featured #2"), "Next image becomes featured")
}

func TestKeyboardGrabReordersFeatured(t *testing.T) {
	t.Parallel()
	tf := startGallery(t)

	tf.Press(KeyRight, "m")
	require.True(t, tf.SeePlain("MOVING"), "Grab mode should be shown")

	tf.Press("h", KeyEnter)
	require.True(t, tf.SeePlain("Dropped image #2 at position 1"), "Drop should be reported")
	require.True(t, tf.SeePlain("featured #2"), "Moved image becomes featured")
}

func TestPreviewOpensAndCloses(t *testing.T) {
	t.Parallel()
	tf := startGallery(t)

	tf.Press(KeyEnter)
	require.True(t, tf.SeePlain("esc close"), "Preview should open")
	require.True(t, tf.SeePlain("1 of 11"), "Preview shows the position")

	tf.Press(KeyEsc)
	tf.Press(KeyQuit)
	require.NoError(t, tf.WaitExit(2*time.Second), "Quit after closing preview")
}

func TestOpenByIDReportsUnknownImage(t *testing.T) {
	t.Parallel()
	tf := startGallery(t)

	tf.Press("o")
	require.True(t, tf.SeePlain("Open image #"), "Should prompt for an id")

	tf.Press("4", "2", KeyEnter)
	require.True(t, tf.SeePlain("no such image"), "Unknown ids are reported")
}

func TestThemeTogglePersists(t *testing.T) {
	t.Parallel()
	tf := startGallery(t)

	tf.Press("t")
	require.True(t, tf.SeePlain("Theme: dark"), "Theme switch should be reported")
	require.True(t, tf.SeePlain("Settings saved to"), "Theme should be written to config")

	require.NoError(t, tf.Quit())
	require.NoError(t, tf.WaitExit(2*time.Second))

	data, err := os.ReadFile(tf.ConfigPath())
	require.NoError(t, err)
	require.Regexp(t, `theme = ['"]dark['"]`, string(data))
}

func TestConfiguredSeedAndLogFile(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	t.Cleanup(tf.Cleanup)
	require.NoError(t, tf.WriteConfig(`version = 1

[[images]]
id = 5
url = "shots/five.png"

[[images]]
id = 9
url = "shots/nine.png"

[ui]
log_file = "logs/session.log"
`))
	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready())
	require.True(t, tf.SeePlain("2 images"))
	require.True(t, tf.SeePlain("featured #5"))

	require.NoError(t, tf.Quit())
	require.NoError(t, tf.WaitExit(2*time.Second))

	_, err := os.Stat(filepath.Join(filepath.Dir(tf.ConfigPath()), "logs", "session.log"))
	require.NoError(t, err, "Log file should be created next to the config")
}
