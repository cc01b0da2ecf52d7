// Package tui is the interactive task board: a Bubble Tea model over the
// board state store, the remote task service and the theme switch.
package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"taskboard/internal/board"
	"taskboard/internal/logging"
	"taskboard/internal/prefs"
	"taskboard/internal/service"
	"taskboard/internal/theme"
)

const statusTTL = 3 * time.Second

type focus int

const (
	focusList focus = iota
	focusInput
)

// Options wires a Model to its collaborators.
type Options struct {
	Context  context.Context
	Service  service.Service
	Prefs    prefs.Store
	Logger   *log.Logger
	Renderer *lipgloss.Renderer
}

// Model is the Bubble Tea model for the task board.
type Model struct {
	ctx      context.Context
	svc      service.Service
	logger   *log.Logger
	renderer *lipgloss.Renderer
	theme    *theme.Switch
	styles   styles

	board *board.Board
	focus focus

	table   table.Model
	input   textinput.Model
	editor  textinput.Model
	keys    keyMap
	help    help.Model
	spinner spinner.Model

	// pending counts calls in flight; the initial fetch starts at 1.
	pending int

	statusMsg    string
	statusExpiry time.Time
	now          func() time.Time
	copyText     func(string) error

	width  int
	height int
}

// New builds the model and loads the persisted theme. The task list is
// fetched by Init.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	r := opts.Renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	sw, err := theme.Load(ctx, opts.Prefs, r)
	if err != nil {
		logger.Error("error reading theme", "err", err)
	}

	m := Model{
		ctx:      ctx,
		svc:      opts.Service,
		logger:   logger,
		renderer: r,
		theme:    sw,
		styles:   newStyles(r),
		board:    board.New(nil),
		keys:     defaultKeyMap(),
		pending:  1,
		now:      time.Now,
		copyText: clipboard.WriteAll,
	}

	m.input = textinput.New()
	m.input.Placeholder = "Add a new task..."
	m.input.Prompt = "+ "
	m.input.CharLimit = 500
	styleInput(&m.input, r)

	m.editor = textinput.New()
	m.editor.Prompt = "✎ "
	m.editor.CharLimit = 500
	styleInput(&m.editor, r)

	m.help = help.New()
	m.help.Styles = helpStyles(r)

	m.spinner = spinner.New(spinner.WithSpinner(spinner.Dot))
	m.spinner.Style = r.NewStyle().Foreground(colorAccent)

	m.table = table.New(
		table.WithColumns([]table.Column{
			{Title: "", Width: 3},
			{Title: "Task", Width: 40},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	m.table.SetStyles(tableStyles(r))
	m.refreshRows()
	return m
}

// Init starts the one-time fetch that hydrates the board.
func (m Model) Init() tea.Cmd {
	return tea.Batch(fetchTasks(m.ctx, m.svc), m.spinner.Tick, textinput.Blink)
}

// Update handles key presses and call results. Results apply to whatever
// the state is when they arrive.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tasksLoadedMsg:
		m.settle()
		m.board.Hydrate(msg.tasks)
		m.refreshRows()
		return m, nil

	case taskCreatedMsg:
		m.settle()
		m.board.Append(msg.task)
		m.board.ClearInput()
		m.input.Reset()
		m.refreshRows()
		return m, showStatus("Added: " + msg.task.Title)

	case taskDeletedMsg:
		m.settle()
		m.board.Remove(msg.id)
		m.refreshRows()
		return m, showStatus("Deleted task")

	case titleSavedMsg:
		m.settle()
		m.board.CommitEdit(msg.id, msg.title)
		m.editor.Blur()
		m.editor.Reset()
		m.refreshRows()
		return m, showStatus("Saved")

	case completionToggledMsg:
		m.settle()
		m.board.Flip(msg.id)
		m.refreshRows()
		return m, nil

	case remoteErrMsg:
		m.settle()
		if msg.id != "" {
			m.logger.Error(msg.op, "id", msg.id, "err", msg.err)
		} else {
			m.logger.Error(msg.op, "err", msg.err)
		}
		return m, nil

	case statusMsg:
		m.statusMsg = msg.message
		m.statusExpiry = m.now().Add(statusTTL)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.adjustLayout()
		return m, nil

	case tea.KeyMsg:
		if _, _, editing := m.board.Editing(); editing {
			return m.handleEditingKeys(msg)
		}
		if m.focus == focusInput {
			return m.handleInputKeys(msg)
		}
		return m.handleListKeys(msg)
	}

	// Cursor blinks and the like.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.editor, cmd = m.editor.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.table.MoveUp(1)
	case key.Matches(msg, m.keys.Down):
		m.table.MoveDown(1)
	case key.Matches(msg, m.keys.Add):
		m.focus = focusInput
		m.table.Blur()
		cmd := m.input.Focus()
		return m, cmd
	case key.Matches(msg, m.keys.Toggle):
		if t, ok := m.selected(); ok {
			cmd := m.toggleTask(t.ID)
			return m, cmd
		}
	case key.Matches(msg, m.keys.Edit):
		if t, ok := m.selected(); ok {
			cmd := m.beginEdit(t.ID)
			return m, cmd
		}
	case key.Matches(msg, m.keys.Delete):
		if t, ok := m.selected(); ok {
			cmd := m.removeTask(t.ID)
			return m, cmd
		}
	case key.Matches(msg, m.keys.Copy):
		if t, ok := m.selected(); ok {
			cmd := m.copyTitle(t)
			return m, cmd
		}
	case key.Matches(msg, m.keys.All):
		m.setFilter(board.FilterAll)
	case key.Matches(msg, m.keys.Done):
		m.setFilter(board.FilterCompleted)
	case key.Matches(msg, m.keys.Pending):
		m.setFilter(board.FilterPending)
	case key.Matches(msg, m.keys.Cycle):
		m.setFilter(m.board.Filter().Next())
	case key.Matches(msg, m.keys.Theme):
		cmd := m.toggleTheme()
		return m, cmd
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQ):
		return m, tea.Quit
	case msg.Type == tea.KeyEnter:
		cmd := m.addTask()
		return m, cmd
	case msg.Type == tea.KeyEsc:
		m.focus = focusList
		m.input.Blur()
		m.table.Focus()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.board.SetInput(m.input.Value())
	return m, cmd
}

func (m Model) handleEditingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQ):
		return m, tea.Quit
	case msg.Type == tea.KeyEnter:
		cmd := m.saveEdit()
		return m, cmd
	case msg.Type == tea.KeyEsc:
		m.cancelEdit()
		return m, nil
	case msg.Type == tea.KeyUp:
		m.table.MoveUp(1)
		return m, nil
	case msg.Type == tea.KeyDown:
		m.table.MoveDown(1)
		return m, nil
	case key.Matches(msg, m.keys.Retarget):
		if t, ok := m.selected(); ok {
			cmd := m.beginEdit(t.ID)
			return m, cmd
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	m.board.SetDraft(m.editor.Value())
	return m, cmd
}

// addTask creates a task from the input text. Blank input is a silent no-op.
func (m *Model) addTask() tea.Cmd {
	title := m.board.Input()
	if board.Blank(title) {
		return nil
	}
	return m.call(createTask(m.ctx, m.svc, title))
}

// removeTask deletes id remotely; the local record goes once that succeeds.
func (m *Model) removeTask(id service.ID) tea.Cmd {
	return m.call(deleteTask(m.ctx, m.svc, id))
}

// toggleTask sends the negation of the flag as it is now.
func (m *Model) toggleTask(id service.ID) tea.Cmd {
	t, ok := m.board.Find(id)
	if !ok {
		return nil
	}
	return m.call(setCompleted(m.ctx, m.svc, id, !t.Completed))
}

// beginEdit enters Editing for id, replacing any edit in progress.
func (m *Model) beginEdit(id service.ID) tea.Cmd {
	if !m.board.BeginEdit(id) {
		return nil
	}
	_, draft, _ := m.board.Editing()
	m.editor.SetValue(draft)
	m.editor.CursorEnd()
	m.refreshRows()
	return m.editor.Focus()
}

// cancelEdit drops the draft without calling the service.
func (m *Model) cancelEdit() {
	m.board.CancelEdit()
	m.editor.Blur()
	m.editor.Reset()
	m.refreshRows()
}

// saveEdit sends the draft title. A blank draft stays in Editing.
func (m *Model) saveEdit() tea.Cmd {
	id, draft, ok := m.board.Editing()
	if !ok || board.Blank(draft) {
		return nil
	}
	return m.call(saveTitle(m.ctx, m.svc, id, draft))
}

func (m *Model) toggleTheme() tea.Cmd {
	mode, err := m.theme.Toggle(m.ctx)
	if err != nil {
		m.logger.Error("error saving theme", "theme", mode, "err", err)
	}
	return showStatus("Theme: " + mode.String())
}

func (m *Model) copyTitle(t service.Task) tea.Cmd {
	if err := m.copyText(t.Title); err != nil {
		m.logger.Error("error copying title", "id", t.ID, "err", err)
		return nil
	}
	return showStatus("Copied: " + t.Title)
}

func (m *Model) setFilter(f board.Filter) {
	m.board.SetFilter(f)
	m.refreshRows()
}

// call tracks an outgoing request so the spinner knows something is pending.
func (m *Model) call(cmd tea.Cmd) tea.Cmd {
	m.pending++
	return cmd
}

func (m *Model) settle() {
	if m.pending > 0 {
		m.pending--
	}
}

// selected returns the visible task under the table cursor.
func (m Model) selected() (service.Task, bool) {
	visible := m.board.Visible()
	i := m.table.Cursor()
	if i < 0 || i >= len(visible) {
		return service.Task{}, false
	}
	return visible[i], true
}

// refreshRows re-derives the visible rows from the full list and filter.
func (m *Model) refreshRows() {
	visible := m.board.Visible()
	rows := make([]table.Row, 0, len(visible))
	for _, t := range visible {
		rows = append(rows, table.Row{m.marker(t), t.Title})
	}
	m.table.SetRows(rows)
	if len(rows) > 0 && m.table.Cursor() >= len(rows) {
		m.table.SetCursor(len(rows) - 1)
	}
}

func (m Model) marker(t service.Task) string {
	switch {
	case m.board.IsEditing(t.ID):
		return "✎"
	case t.Completed:
		return "[x]"
	default:
		return "[ ]"
	}
}

func (m *Model) adjustLayout() {
	if m.width == 0 || m.height == 0 {
		return
	}

	tableHeight := m.height - 12
	if tableHeight < 5 {
		tableHeight = 5
	}
	m.table.SetHeight(tableHeight)

	titleWidth := m.width - 12
	if titleWidth < 20 {
		titleWidth = 20
	}
	m.table.SetColumns([]table.Column{
		{Title: "", Width: 3},
		{Title: "Task", Width: titleWidth},
	})
	m.input.Width = titleWidth
	m.editor.Width = titleWidth
	m.help.Width = m.width
}
