package report

import (
	"os"

	"github.com/huangsam/wily/internal/contract"
	"github.com/huangsam/wily/schema"
	"golang.org/x/term"
)

// messageWidth returns the display cap for the Message column. The fixed
// maximum applies unless --width or a narrow terminal shrinks it.
func messageWidth(cfg *contract.Config) int {
	termWidth := cfg.Width
	if termWidth == 0 {
		w, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || w <= 0 {
			return schema.MaxMessageWidth
		}
		termWidth = w
	}

	width := termWidth / 4
	if width > schema.MaxMessageWidth {
		width = schema.MaxMessageWidth
	}
	if width < 10 {
		width = 10
	}
	return width
}
