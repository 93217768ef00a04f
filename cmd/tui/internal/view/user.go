package view

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/jgkirkwood/claimtrack/internal/auth"
)

// logoutChoice is the sentinel select value for signing out.
const logoutChoice = ""

type UserModel struct {
	CommonModel
	session *auth.Session

	form *huh.Form
	pick *string

	status string
}

func NewUserModel(ctx context.Context) UserModel {
	pick := new(string)

	options := make([]huh.Option[string], 0, len(auth.MockUsers)+1)
	for _, u := range auth.MockUsers {
		options = append(options, huh.NewOption(fmt.Sprintf("%s (%s)", u.Name, u.Role), u.ID))
	}

	options = append(options, huh.NewOption("Log out", logoutChoice))

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Sign in as").
				Options(options...).
				Value(pick),
		),
	).WithWidth(40).WithShowHelp(false)

	return UserModel{
		session: auth.FromContext(ctx),
		form:    form,
		pick:    pick,
	}
}

func (m UserModel) Title() string     { return "Switch User" }
func (m UserModel) ShortHelp() string { return "Enter: select | Esc: back" }

func (m UserModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m UserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if err := m.applyChoice(*m.pick); err != nil {
		m.status = fmt.Sprintf("Error: %v", err)
		return m, nil
	}

	return m, Back
}

func (m UserModel) applyChoice(id string) error {
	if id == logoutChoice {
		return m.session.SetCurrentUser(nil)
	}

	for i := range auth.MockUsers {
		if auth.MockUsers[i].ID == id {
			return m.session.SetCurrentUser(&auth.MockUsers[i])
		}
	}

	return fmt.Errorf("unknown user %q", id)
}

func (m UserModel) View() string {
	content := m.form.View()
	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}
