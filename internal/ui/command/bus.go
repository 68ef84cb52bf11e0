package command

import (
	"fmt"

	"github.com/atomicstack/sectionlist/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// Context carries what an action needs to know about the list.
type Context struct {
	Position int
	Text     string
	Section  string
}

// Action turns a context into a command, or nil when there is nothing to do.
type Action func(Context) tea.Cmd

// Request encapsulates an action invocation.
type Request struct {
	ID      string
	Label   string
	Handler Action
	Context Context
}

// Bus coordinates the execution of list actions.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps an action into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Handler == nil {
			events.Command.NoOp(req.ID, req.Label)
			return nil
		}
		cmd := req.Handler(req.Context)
		if cmd == nil {
			events.Command.NoOp(req.ID, req.Label)
			return nil
		}
		msg := cmd()
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}
