package command

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// ActionResult communicates the outcome of executing an action.
type ActionResult struct {
	Info string
	Err  error
}

var errNoItem = errors.New("no item in view")

var writeClipboard = clipboard.WriteAll

// CopyItem copies the item text to the system clipboard.
func CopyItem(ctx Context) tea.Cmd {
	return func() tea.Msg {
		if ctx.Position < 0 || ctx.Text == "" {
			return ActionResult{Err: errNoItem}
		}
		if err := writeClipboard(ctx.Text); err != nil {
			return ActionResult{Err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return ActionResult{Info: fmt.Sprintf("Copied %q", ctx.Text)}
	}
}

// CopySection copies the title of the section owning the item.
func CopySection(ctx Context) tea.Cmd {
	if ctx.Section == "" {
		return nil
	}
	return func() tea.Msg {
		if err := writeClipboard(ctx.Section); err != nil {
			return ActionResult{Err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return ActionResult{Info: fmt.Sprintf("Copied section %q", ctx.Section)}
	}
}
