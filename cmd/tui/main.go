package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/jgkirkwood/claimtrack/cmd/tui/internal/view"
	"github.com/jgkirkwood/claimtrack/internal/auth"
	"github.com/jgkirkwood/claimtrack/internal/config"
	"github.com/jgkirkwood/claimtrack/internal/gateway"
)

type model struct {
	ctx     context.Context
	client  *gateway.Client
	session *auth.Session

	currentView View

	claimsView   view.ClaimsModel
	projectsView view.ProjectsModel
	userView     view.UserModel
}

type View int

const (
	ViewMenu     View = 0
	ViewClaims   View = 1
	ViewProjects View = 2
	ViewUser     View = 3
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	stateDir := cfg.Client.StateDir
	if stateDir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			slog.Error("failed to resolve config dir", "error", err)
			os.Exit(1)
		}

		stateDir = filepath.Join(base, "claimtrack")
	}

	session, err := auth.NewSession(stateDir)
	if err != nil {
		slog.Error("failed to restore session", "error", err)
		os.Exit(1)
	}

	ctx := auth.WithSession(context.Background(), session)
	client := gateway.NewClient(cfg.Client.APIURL, session)

	return model{
		ctx:          ctx,
		client:       client,
		session:      session,
		currentView:  ViewMenu,
		claimsView:   view.NewClaimsModel(ctx, client),
		projectsView: view.NewProjectsModel(ctx, client),
		userView:     view.NewUserModel(ctx),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewClaims
				m.claimsView = view.NewClaimsModel(m.ctx, m.client)

				return m, m.claimsView.Init()
			case "2":
				m.currentView = ViewProjects
				m.projectsView = view.NewProjectsModel(m.ctx, m.client)

				return m, m.projectsView.Init()
			case "3":
				m.currentView = ViewUser
				m.userView = view.NewUserModel(m.ctx)

				return m, m.userView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewClaims:
		var newModel tea.Model
		newModel, cmd = m.claimsView.Update(msg)
		m.claimsView = newModel.(view.ClaimsModel)
	case ViewProjects:
		var newModel tea.Model
		newModel, cmd = m.projectsView.Update(msg)
		m.projectsView = newModel.(view.ProjectsModel)
	case ViewUser:
		var newModel tea.Model
		newModel, cmd = m.userView.Update(msg)
		m.userView = newModel.(view.UserModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		signedIn := "Not signed in"
		if u := m.session.CurrentUser(); u != nil {
			signedIn = fmt.Sprintf("Signed in: %s (%s)", u.Name, u.Role)
		}

		return lipgloss.NewStyle().Padding(2).Render(
			"ClaimTrack TUI\n\n" +
				lipgloss.NewStyle().Faint(true).Render(signedIn) + "\n\n" +
				"1. Claims\n" +
				"2. Projects\n" +
				"3. Switch User\n\n" +
				"q. Quit",
		)
	case ViewClaims:
		return m.claimsView.View()
	case ViewProjects:
		return m.projectsView.View()
	case ViewUser:
		return m.userView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
