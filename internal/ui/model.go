package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/sectionlist/internal/backend"
	"github.com/atomicstack/sectionlist/internal/data/dispatcher"
	"github.com/atomicstack/sectionlist/internal/fixture"
	"github.com/atomicstack/sectionlist/internal/layout"
	"github.com/atomicstack/sectionlist/internal/logging"
	"github.com/atomicstack/sectionlist/internal/logging/events"
	"github.com/atomicstack/sectionlist/internal/screen"
	"github.com/atomicstack/sectionlist/internal/state"
	"github.com/atomicstack/sectionlist/internal/theme"
	"github.com/atomicstack/sectionlist/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

type Mode int

const (
	ModeList Mode = iota
	ModeFilter
	ModeJump
)

// statusRows is the number of rows below the list.
const statusRows = 1

// maxLayoutPasses bounds the passes run for one update; a pass may request
// another, e.g. when a smooth scroll stops.
const maxLayoutPasses = 3

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Data       fixture.DataSet
	Width      int
	Height     int
	RTL        bool
	ScrollStep int
	SmoothStep int
	Watcher    *backend.Watcher
	Store      state.AnchorStore
	StoreKey   string
}

// Model implements the Bubble Tea model for the sectioned list.
type Model struct {
	engine     *layout.Engine
	screen     *screen.Screen
	dispatcher *dispatcher.Dispatcher
	bus        *command.Bus
	backend    *backend.Watcher
	store      state.AnchorStore
	storeKey   string
	keys       keyMap

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	scrollStep  int
	smoothStep  int

	mode       Mode
	prompt     *prompt
	smooth     *layout.SmoothScroller
	marked     int
	errMsg     string
	infoMsg    string
	infoExpire time.Time
	backendErr string

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the list, restoring the saved anchor and filter for
// the data set when the store holds one.
func NewModel(opts Options) *Model {
	m := &Model{
		bus:        command.New(),
		backend:    opts.Watcher,
		store:      opts.Store,
		storeKey:   opts.StoreKey,
		keys:       defaultKeyMap(),
		scrollStep: max(opts.ScrollStep, 1),
		smoothStep: max(opts.SmoothStep, 1),
		marked:     screen.NoMark,
		mode:       ModeList,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.screen = screen.New(opts.Data, layout.Viewport{
		Width:  m.width,
		Height: m.listHeight(),
		RTL:    opts.RTL,
	})
	m.engine = layout.New(m.screen, opts.Data.Registry())
	m.dispatcher = dispatcher.New(opts.Data, m.screen, m.engine)
	m.restore()
	m.registerHandlers()
	m.relayout()
	return m
}

func (m *Model) restore() {
	if m.store == nil {
		return
	}
	rec, ok := m.store.Get(m.storeKey)
	if !ok {
		return
	}
	events.App.Resume(m.storeKey, rec.Anchor.AnchorPosition, rec.Anchor.AnchorOffset, rec.Filter)
	if rec.Filter != "" {
		m.dispatcher.SetFilter(rec.Filter)
	}
	if rec.Anchor.AnchorPosition < m.screen.ItemCount() {
		m.engine.RestoreState(rec.Anchor)
	}
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if handled, cmd := m.handleActivePrompt(msg); handled {
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}

	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):           m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):         m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):    m.handleWindowSizeMsg,
		reflect.TypeOf(smoothTickMsg{}):        m.handleSmoothTickMsg,
		reflect.TypeOf(command.ActionResult{}): m.handleActionResultMsg,
		reflect.TypeOf(backendEventMsg{}):      m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):       m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	m.relayout()
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// relayout runs the passes the screen asked for.
func (m *Model) relayout() {
	for i := 0; i < maxLayoutPasses && m.screen.LayoutRequested(); i++ {
		if err := m.engine.Relayout(); err != nil {
			logging.Error(err)
			m.errMsg = err.Error()
			return
		}
	}
}

func (m *Model) listHeight() int {
	return max(m.height-statusRows, 0)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	events.UI.Resize(resize.Width, resize.Height)
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.resizeViewport()
	return nil
}

// resizeViewport pushes the model geometry to the screen and drops stale
// measurements of attached elements.
func (m *Model) resizeViewport() {
	vp := m.screen.Viewport()
	vp.Width, vp.Height = m.width, m.listHeight()
	m.setViewport(vp)
}

func (m *Model) setViewport(vp layout.Viewport) {
	before := m.screen.Viewport()
	m.screen.SetViewport(vp)
	if before.Width != vp.Width || before.RTL != vp.RTL {
		m.engine.OnItemsUpdated(0, m.screen.ItemCount())
	}
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}

// Engine exposes the layout engine.
func (m *Model) Engine() *layout.Engine { return m.engine }

// Screen exposes the engine host.
func (m *Model) Screen() *screen.Screen { return m.screen }

// Mode returns the input mode.
func (m *Model) Mode() Mode { return m.mode }
