package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ApprovePromptResult is the user's decision for an unauthorized task
// (spec §4.6/C7). Choice is the numbered option (0-4) so callers can
// persist it using the exact same numbering as --allow N.
type ApprovePromptResult struct {
	Choice    int
	Cancelled bool
}

// approveOption is one of the five fixed choices from spec §4.6.
type approveOption struct {
	label string
	hint  string
}

// ApprovePromptModel is a Bubble Tea model presenting the five-choice
// allowlist elicitation, modeled directly on the teacher's
// MakeTargetPromptModel (selectedIndex cursor, up/down/enter/esc) but
// generalized from three options to the spec's fixed five.
type ApprovePromptModel struct {
	taskName string
	file     string
	dir      string
	options  []approveOption

	selectedIndex int
	result        *ApprovePromptResult
	quitting      bool
}

var (
	approveTitleStyle    = WarningStyle.Bold(true)
	approveTextStyle     = SecondaryStyle
	approveCommandStyle  = AccentStyle
	approveSelectedStyle = SuccessStyle
	approveNormalStyle   = PrimaryStyle
	approveHintStyle     = HintStyle
)

// NewApprovePromptModel builds the prompt for taskName defined in file,
// within directory dir (both used to label options 2 and 3).
func NewApprovePromptModel(taskName, file, dir string) *ApprovePromptModel {
	return &ApprovePromptModel{
		taskName: taskName,
		file:     file,
		dir:      dir,
		options: []approveOption{
			{"Allow once", "this run only"},
			{"Allow this task", fmt.Sprintf("always allow %q", taskName)},
			{"Allow any command from " + file, "trust the whole file"},
			{"Allow any command from " + dir, "trust the whole directory"},
			{"Deny", "block this task"},
		},
	}
}

// GetResult returns the user's choice after the prompt completes.
func (m *ApprovePromptModel) GetResult() *ApprovePromptResult {
	return m.result
}

// Init implements tea.Model.
func (m *ApprovePromptModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *ApprovePromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeyPress(keyMsg)
	}
	return m, nil
}

func (m *ApprovePromptModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.result = &ApprovePromptResult{Cancelled: true}
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.selectedIndex > 0 {
			m.selectedIndex--
		}

	case "down", "j":
		if m.selectedIndex < len(m.options)-1 {
			m.selectedIndex++
		}

	case "enter":
		m.result = &ApprovePromptResult{Choice: m.selectedIndex}
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model.
func (m *ApprovePromptModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(approveTitleStyle.Render("Task requires approval"))
	b.WriteString("\n\n")

	b.WriteString(approveTextStyle.Render("dela wants to run: "))
	b.WriteString(approveCommandStyle.Render(m.taskName))
	b.WriteString("\n\n")

	for i, opt := range m.options {
		cursor := "  "
		style := approveNormalStyle
		if i == m.selectedIndex {
			cursor = "> "
			style = approveSelectedStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("%s%d) %s", cursor, i, opt.label)))
		b.WriteString(" ")
		b.WriteString(approveHintStyle.Render("(" + opt.hint + ")"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(approveHintStyle.Render("[up/down to select, enter to confirm, esc to cancel]"))

	return b.String()
}
