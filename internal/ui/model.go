package ui

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"lazytail/internal/core"
	"lazytail/internal/filter"
	"lazytail/internal/state"
)

type tickMsg time.Time

// Model is the single Bubble Tea model. It owns the accumulated entry store
// and the filter engine; the ingestion pipeline only ever talks to it through
// the hand-off queue drained on each tick.
type Model struct {
	opts   Options
	store  *state.Store
	engine *filter.Engine

	visible    []int // filtered indices into the store, ascending
	selected   int   // position within visible, -1 when nothing is selected
	selectedID uuid.UUID

	input     textinput.Model
	vp        viewport.Model
	styles    styles
	filtering bool
	detail    core.DetailLevel
	follow    bool
	notice    string

	width  int
	height int
	ready  bool
}

func newModel(opts Options) Model {
	input := textinput.New()
	input.Prompt = "/"
	input.Placeholder = "filter"

	return Model{
		opts:     opts,
		store:    &state.Store{},
		engine:   filter.New(opts.Decoder),
		selected: -1,
		input:    input,
		styles:   themeStyles(opts.Theme),
		detail:   1,
		follow:   opts.Follow,
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.opts.RefreshEvery, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentHeight := msg.Height - chromeHeight
		if contentHeight < 1 {
			contentHeight = 1
		}
		if !m.ready {
			m.vp = viewport.New(msg.Width, contentHeight)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = contentHeight
		}
		m.renderEntries()
		return m, nil

	case tickMsg:
		m.consumeQueue()
		return m, m.tick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// consumeQueue drains whatever the pipeline produced since the last tick and
// extends the filtered view incrementally.
func (m *Model) consumeQueue() {
	fresh := m.opts.Queue.Drain()
	if len(fresh) == 0 {
		return
	}

	oldCount := m.store.Len()
	m.store.Append(fresh...)
	m.visible = m.engine.FilterNew(m.store.All(), oldCount, m.query(), m.detail)
	m.restoreSelection()
	m.renderEntries()
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	if m.filtering {
		switch msg.Type {
		case tea.KeyEnter:
			m.filtering = false
			m.input.Blur()
			return m, nil
		case tea.KeyEsc:
			m.filtering = false
			m.input.Blur()
			m.input.SetValue("")
			m.applyFilter()
			return m, nil
		case tea.KeyCtrlC:
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.applyFilter()
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "/":
		m.filtering = true
		m.input.Focus()
		return m, textinput.Blink
	case "+", "=":
		m.setDetail(core.IncrementDetail(m.detail, m.opts.Decoder.MaxDetailLevel()))
	case "-":
		m.setDetail(core.DecrementDetail(m.detail))
	case "f":
		m.follow = !m.follow
		if m.follow {
			m.vp.GotoBottom()
		}
	case "y":
		m.yankSelected()
	case "c":
		m.store.Clear()
		m.engine.Reset()
		m.visible = nil
		m.selected = -1
		m.selectedID = uuid.Nil
		m.renderEntries()
	case "up", "k":
		m.moveSelection(-1)
	case "down", "j":
		m.moveSelection(1)
	case "esc":
		m.selected = -1
		m.selectedID = uuid.Nil
		m.renderEntries()
	case "pgup":
		m.vp.HalfPageUp()
	case "pgdown":
		m.vp.HalfPageDown()
	case "g":
		m.vp.GotoTop()
	case "G":
		m.vp.GotoBottom()
	}
	return m, nil
}

func (m *Model) query() string {
	return m.input.Value()
}

// applyFilter re-runs the engine on every keystroke. Extending the query only
// re-searches the previous results; shrinking or replacing it searches cold.
func (m *Model) applyFilter() {
	m.visible = m.engine.Filter(m.store.All(), m.query(), m.detail)
	m.restoreSelection()
	m.renderEntries()
}

// setDetail changes the detail level. Searchable text depends on the level,
// so the incremental cache has to go.
func (m *Model) setDetail(level core.DetailLevel) {
	if level == m.detail {
		return
	}
	m.detail = level
	m.engine.Reset()
	m.applyFilter()
}

// restoreSelection re-finds the selected entry by ID after the visible set
// changed. Positions shift under filtering; IDs do not.
func (m *Model) restoreSelection() {
	if m.selectedID == uuid.Nil {
		m.selected = -1
		return
	}
	for pos, idx := range m.visible {
		if m.store.At(idx).ID == m.selectedID {
			m.selected = pos
			return
		}
	}
	m.selected = -1
	m.selectedID = uuid.Nil
}

func (m *Model) moveSelection(delta int) {
	if len(m.visible) == 0 {
		return
	}
	next := m.selected + delta
	if m.selected < 0 {
		// start from the edge the user is moving away from
		if delta > 0 {
			next = 0
		} else {
			next = len(m.visible) - 1
		}
	}
	if next < 0 {
		next = 0
	}
	if next >= len(m.visible) {
		next = len(m.visible) - 1
	}
	m.selected = next
	m.selectedID = m.store.At(m.visible[next]).ID
	m.follow = false
	m.renderEntries()
	m.scrollToSelection()
}

func (m *Model) scrollToSelection() {
	if m.selected < 0 {
		return
	}
	if m.selected < m.vp.YOffset {
		m.vp.SetYOffset(m.selected)
	} else if m.selected >= m.vp.YOffset+m.vp.Height {
		m.vp.SetYOffset(m.selected - m.vp.Height + 1)
	}
}

func (m *Model) yankSelected() {
	if m.selected < 0 || m.selected >= len(m.visible) {
		m.notice = "nothing selected"
		return
	}
	entry := m.store.At(m.visible[m.selected])
	if err := clipboard.WriteAll(m.opts.Decoder.YankText(entry)); err != nil {
		m.opts.Logger.Debug().Err(err).Msg("clipboard write failed")
		m.notice = "yank failed"
		return
	}
	m.notice = "yanked"
}
