// Package tui provides terminal user interface components for vx
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Action represents the action to take after picker selection
type Action int

const (
	ActionNone Action = iota
	ActionRebuild
	ActionForget
	ActionQuit
)

// Package is one managed entry shown in the picker.
type Package struct {
	Name      string
	Installed string
	Candidate string
}

// PickerResult holds the result of the picker
type PickerResult struct {
	Action  Action
	Package *Package
}

// packageItem implements list.Item for managed-package display
type packageItem struct {
	pkg Package
}

func (i packageItem) Title() string {
	return i.pkg.Name
}

func (i packageItem) Description() string {
	installed := i.pkg.Installed
	icon := "✓"
	if installed == "" {
		installed = "not installed"
		icon = "○"
	}

	desc := fmt.Sprintf("%s %s", icon, installed)
	if i.pkg.Candidate != "" && i.pkg.Candidate != i.pkg.Installed {
		desc += fmt.Sprintf(" | template: %s", i.pkg.Candidate)
	}
	return desc
}

func (i packageItem) FilterValue() string {
	return i.pkg.Name
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginBottom(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)
)

// Model is the bubbletea model for the managed-package picker
type Model struct {
	list     list.Model
	result   PickerResult
	quitting bool
	width    int
	height   int
}

// NewPicker creates a new managed-package picker
func NewPicker(pkgs []Package) Model {
	items := make([]list.Item, len(pkgs))
	for i, pkg := range pkgs {
		items[i] = packageItem{pkg: pkg}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = selectedStyle
	delegate.Styles.SelectedDesc = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	l := list.New(items, delegate, 80, 20)
	l.Title = "vx - Managed Source Packages"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle

	return Model{list: l}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case tea.KeyMsg:
		// Don't handle keys if filtering
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(packageItem); ok {
				pkg := item.pkg
				m.result = PickerResult{Action: ActionRebuild, Package: &pkg}
				m.quitting = true
				return m, tea.Quit
			}

		case "d":
			if item, ok := m.list.SelectedItem().(packageItem); ok {
				pkg := item.pkg
				m.result = PickerResult{Action: ActionForget, Package: &pkg}
				m.quitting = true
				return m, tea.Quit
			}

		case "q", "esc":
			m.result = PickerResult{Action: ActionQuit}
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	help := helpStyle.Render("[enter] Rebuild  [d] Forget  [/] Filter  [q] Quit")

	return m.list.View() + "\n" + help
}

// Result returns the picker result
func (m Model) Result() PickerResult {
	return m.result
}

// RunPicker runs the interactive managed-package picker
func RunPicker(pkgs []Package) (PickerResult, error) {
	if len(pkgs) == 0 {
		return PickerResult{Action: ActionQuit}, nil
	}

	m := NewPicker(pkgs)
	p := tea.NewProgram(m, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return PickerResult{}, err
	}

	return finalModel.(Model).Result(), nil
}

// SimplePicker renders a non-interactive listing for piped output
func SimplePicker(pkgs []Package) string {
	var sb strings.Builder

	sb.WriteString("vx - Managed Source Packages\n")
	sb.WriteString(strings.Repeat("─", 60) + "\n\n")

	if len(pkgs) == 0 {
		sb.WriteString("No managed packages.\n")
		sb.WriteString("Add one with: vx src add <pkg>\n")
		return sb.String()
	}

	for i, pkg := range pkgs {
		installed := pkg.Installed
		icon := "✓"
		if installed == "" {
			installed = "not installed"
			icon = "○"
		}
		sb.WriteString(fmt.Sprintf("%d. %s %s (%s)\n", i+1, icon, pkg.Name, installed))
		if pkg.Candidate != "" && pkg.Candidate != pkg.Installed {
			sb.WriteString(fmt.Sprintf("   template: %s\n", pkg.Candidate))
		}
	}

	return sb.String()
}
