package modes

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"picgrid/internal/ui/input/types"
)

// OpenByIDMode asks for an image id. "#7", " 7 " and "7" all submit "7".
type OpenByIDMode struct {
	TextInputMode
}

func NewOpenByIDMode(field *textinput.Model) *OpenByIDMode {
	return &OpenByIDMode{
		TextInputMode: NewTextInputMode(types.ModeOpenByID, "open", "Open image #", field, cleanImageID),
	}
}

func cleanImageID(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "#")
	return strings.TrimSpace(s)
}
