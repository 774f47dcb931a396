package game

import (
	"errors"

	"github.com/atotto/clipboard"
)

var errClipboardUnsupported = errors.New("no clipboard utility found")

// writeClipboard is swapped out by tests.
var writeClipboard = func(s string) error {
	if clipboard.Unsupported {
		return errClipboardUnsupported
	}
	return clipboard.WriteAll(s)
}

// copyDebrief puts the last mission's debrief on the system clipboard.
func (g *Game) copyDebrief() bool {
	d := g.session.Debrief()
	if d == nil {
		return false
	}
	if err := writeClipboard(d.String()); err != nil {
		g.logger.Printf("copy debrief: %v", err)
		g.showNotice("clipboard not available")
		return false
	}
	g.showNotice("debrief copied to clipboard")
	return true
}
