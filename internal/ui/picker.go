package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/promptpack/promptpack/internal/core/tree"
	"github.com/promptpack/promptpack/internal/workspace"
)

// ErrPickerAborted indicates the user quit the picker without
// confirming a selection.
var ErrPickerAborted = errors.New("selection aborted")

// Picker styles.
var (
	pickerTitle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"})
	pickerCursor   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"}).Bold(true)
	pickerDir      = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"})
	pickerChecked  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	pickerPartial  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"})
	pickerHelpText = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"})
)

type pickerKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Toggle    key.Binding
	Collapse  key.Binding
	SelectAll key.Binding
	ClearAll  key.Binding
	Search    key.Binding
	Confirm   key.Binding
	Quit      key.Binding
}

func defaultPickerKeys() pickerKeyMap {
	return pickerKeyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		Collapse:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "fold dir")),
		SelectAll: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
		ClearAll:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "clear")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

type pickerRow struct {
	node  *tree.FileNode
	depth int
}

// PickerModel is the bubbletea model for the interactive tree picker.
// It drives the session's selection store directly; filtering and
// selection semantics live in the core packages, the model only reacts
// to keys and renders state.
type PickerModel struct {
	sess       *workspace.Session
	globalExcl []string
	localExcl  []string

	keys      pickerKeyMap
	rows      []pickerRow
	collapsed map[string]bool
	cursor    int
	offset    int
	height    int
	width     int

	searching bool
	search    textinput.Model

	confirmed bool
	aborted   bool
}

// NewPickerModel builds the picker over an already-fetched session.
// The exclusion layers are needed for bulk select-all, which skips
// exact matches from either layer.
func NewPickerModel(sess *workspace.Session, globalExcl, localExcl []string) *PickerModel {
	search := textinput.New()
	search.Placeholder = "search"
	search.Prompt = "/ "
	search.CharLimit = 128

	m := &PickerModel{
		sess:       sess,
		globalExcl: globalExcl,
		localExcl:  localExcl,
		keys:       defaultPickerKeys(),
		collapsed:  make(map[string]bool),
		height:     24,
		width:      80,
		search:     search,
	}
	m.rebuildRows()
	return m
}

// Init implements tea.Model.
func (m *PickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m *PickerModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		if msg.Type == tea.KeyEsc {
			m.search.SetValue("")
		}
		m.searching = false
		m.search.Blur()
		m.applySearch()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.applySearch()
	return m, cmd
}

func (m *PickerModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.aborted = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Confirm):
		m.confirmed = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Toggle):
		if row, ok := m.currentRow(); ok {
			m.sess.Selection().Toggle(row.node)
		}

	case key.Matches(msg, m.keys.Collapse):
		if row, ok := m.currentRow(); ok && row.node.IsDir() {
			m.collapsed[row.node.RelativePath] = !m.collapsed[row.node.RelativePath]
			m.rebuildRows()
		}

	case key.Matches(msg, m.keys.SelectAll):
		m.sess.Selection().SelectAll(m.sess.VisibleFilePaths(), m.globalExcl, m.localExcl)

	case key.Matches(msg, m.keys.ClearAll):
		m.sess.Selection().DeselectAll()

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink
	}
	m.clampScroll()
	return m, nil
}

// applySearch re-filters the view for the current search term.
func (m *PickerModel) applySearch() {
	f := m.sess.Filters()
	f.SearchTerm = m.search.Value()
	m.sess.SetFilters(f)
	m.rebuildRows()
}

// rebuildRows flattens the current view tree into visible rows,
// honoring collapsed directories.
func (m *PickerModel) rebuildRows() {
	m.rows = m.rows[:0]
	var walk func(nodes []*tree.FileNode, depth int)
	walk = func(nodes []*tree.FileNode, depth int) {
		for _, n := range nodes {
			m.rows = append(m.rows, pickerRow{node: n, depth: depth})
			if n.IsDir() && !m.collapsed[n.RelativePath] {
				walk(n.Children, depth+1)
			}
		}
	}
	walk(m.sess.View(), 0)
	if m.cursor >= len(m.rows) {
		m.cursor = max(0, len(m.rows)-1)
	}
	m.clampScroll()
}

func (m *PickerModel) currentRow() (pickerRow, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return pickerRow{}, false
	}
	return m.rows[m.cursor], true
}

// visibleLines is the number of rows left after header and footer.
func (m *PickerModel) visibleLines() int {
	return max(3, m.height-4)
}

func (m *PickerModel) clampScroll() {
	lines := m.visibleLines()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+lines {
		m.offset = m.cursor - lines + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// View implements tea.Model.
func (m *PickerModel) View() string {
	if m.confirmed || m.aborted {
		return ""
	}
	var b strings.Builder

	sel := m.sess.Selection()
	b.WriteString(pickerTitle.Render(m.sess.ProjectPath()))
	b.WriteString(pickerHelpText.Render(fmt.Sprintf("  %d files selected", sel.Len())))
	b.WriteString("\n")
	if m.searching || m.search.Value() != "" {
		b.WriteString(m.search.View() + "\n")
	} else {
		b.WriteString("\n")
	}

	lines := m.visibleLines()
	end := min(m.offset+lines, len(m.rows))
	for i := m.offset; i < end; i++ {
		b.WriteString(m.renderRow(i) + "\n")
	}
	if len(m.rows) == 0 {
		b.WriteString(pickerHelpText.Render("  (no matching files)") + "\n")
	}

	b.WriteString(pickerHelpText.Render(
		"space toggle · a select all · n clear · tab fold · / search · enter confirm · q quit"))
	return b.String()
}

func (m *PickerModel) renderRow(i int) string {
	row := m.rows[i]
	sel := m.sess.Selection()

	var box string
	switch {
	case !sel.IsSelectable(row.node):
		box = pickerHelpText.Render("[-]")
	case sel.IsFullySelected(row.node):
		box = pickerChecked.Render("[x]")
	case sel.IsPartiallySelected(row.node):
		box = pickerPartial.Render("[~]")
	default:
		box = "[ ]"
	}

	cursor := "  "
	if i == m.cursor {
		cursor = pickerCursor.Render("> ")
	}

	name := row.node.Name
	if row.node.IsDir() {
		name = pickerDir.Render(name + "/")
		if m.collapsed[row.node.RelativePath] {
			name += pickerHelpText.Render(" …")
		}
	}

	return cursor + strings.Repeat("  ", row.depth) + box + " " + name
}

// RunPicker opens the interactive picker over sess and returns the
// confirmed selection. It fails with ErrNoTTY without a terminal and
// ErrPickerAborted when the user quits without confirming.
func RunPicker(sess *workspace.Session, globalExcl, localExcl []string) ([]string, error) {
	if !IsInteractive() {
		return nil, ErrNoTTY
	}

	model := NewPickerModel(sess, globalExcl, localExcl)
	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return nil, fmt.Errorf("run picker: %w", err)
	}
	result, ok := final.(*PickerModel)
	if !ok || result.aborted || !result.confirmed {
		return nil, ErrPickerAborted
	}
	return sess.Selection().Selected(), nil
}
