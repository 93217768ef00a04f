package view

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/jgkirkwood/claimtrack/internal/gateway"
	"github.com/jgkirkwood/claimtrack/internal/money"
	"github.com/jgkirkwood/claimtrack/internal/project"
)

type projectsState int

const (
	projectsStateBrowse projectsState = iota
	projectsStateCreate
	projectsStateEdit
	projectsStateDetail
)

type projectFormInput struct {
	Name        string
	Description string
}

type ProjectsModel struct {
	CommonModel
	ctx    context.Context
	client *gateway.Client

	state    projectsState
	table    table.Model
	projects []*project.Project

	detail *gateway.ProjectWithClaims

	form      *huh.Form
	formInput *projectFormInput
	editingID uuid.UUID

	loading bool
	err     error
	status  string
}

func NewProjectsModel(ctx context.Context, client *gateway.Client) ProjectsModel {
	columns := []table.Column{
		{Title: "Name", Width: 30},
		{Title: "Description", Width: 44},
		{Title: "Created", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return ProjectsModel{
		ctx:    ctx,
		client: client,
		table:  t,
	}
}

func (m ProjectsModel) Title() string { return "Projects" }

func (m ProjectsModel) ShortHelp() string {
	switch m.state {
	case projectsStateBrowse:
		return "Esc: back | n: new | e: edit | Enter: detail | x: delete | r: refresh"
	case projectsStateCreate, projectsStateEdit:
		return "Navigate form | Esc: cancel"
	case projectsStateDetail:
		return "Esc: back"
	}

	return ""
}

func (m ProjectsModel) Init() tea.Cmd {
	return m.loadProjectsCmd()
}

func (m ProjectsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadProjectsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.projects = msg.projects
		m.refreshTable()

		return m, nil

	case projectSavedMsg:
		m.state = projectsStateBrowse
		m.form = nil
		m.table.Focus()

		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
			return m, nil
		}

		m.status = "Saved."
		m.loading = true

		return m, m.loadProjectsCmd()

	case projectDeletedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.status = "Project deleted."
		m.loading = true

		return m, m.loadProjectsCmd()

	case projectDetailMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.detail = msg.detail
		m.state = projectsStateDetail
		m.table.Blur()

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case projectsStateBrowse:
		return m.updateBrowse(msg)
	case projectsStateCreate, projectsStateEdit:
		return m.updateForm(msg)
	case projectsStateDetail:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
			m.state = projectsStateBrowse
			m.detail = nil
			m.table.Focus()
		}

		return m, nil
	}

	return m, nil
}

func (m ProjectsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadProjectsCmd()
		case "n":
			return m.startForm(nil)
		case "e":
			if p := m.selectedProject(); p != nil {
				return m.startForm(p)
			}

			return m, nil
		case "x":
			if p := m.selectedProject(); p != nil {
				return m, m.deleteProjectCmd(p.ID)
			}

			return m, nil
		case "enter":
			if p := m.selectedProject(); p != nil {
				return m, m.loadDetailCmd(p.ID)
			}

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m ProjectsModel) selectedProject() *project.Project {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.projects) {
		return nil
	}

	return m.projects[idx]
}

func (m ProjectsModel) startForm(existing *project.Project) (tea.Model, tea.Cmd) {
	input := &projectFormInput{}
	m.formInput = input

	title := "New Project"

	if existing != nil {
		input.Name = existing.Name
		input.Description = existing.Description
		m.editingID = existing.ID
		m.state = projectsStateEdit
		title = "Edit Project"
	} else {
		m.state = projectsStateCreate
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Name").
				Value(&input.Name).
				Validate(func(s string) error {
					return fieldError(project.Form{Name: s}.Validate(), "name")
				}),

			huh.NewInput().
				Key("description").
				Title("Description").
				Value(&input.Description).
				Validate(func(s string) error {
					return fieldError(project.Form{Description: s}.Validate(), "description")
				}),
		).Title(title),
	).WithWidth(55).WithShowHelp(false)

	m.status = ""
	m.table.Blur()

	return m, m.form.Init()
}

func (m ProjectsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = projectsStateBrowse
			m.form = nil
			m.table.Focus()

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if m.state == projectsStateEdit {
		return m, m.updateProjectCmd()
	}

	return m, m.createProjectCmd()
}

func (m ProjectsModel) View() string {
	switch m.state {
	case projectsStateBrowse:
		return m.browseView()
	case projectsStateCreate, projectsStateEdit:
		if m.form == nil {
			return ""
		}

		return lipgloss.NewStyle().Padding(1).Render(m.form.View())
	case projectsStateDetail:
		return m.detailView()
	}

	return ""
}

func (m ProjectsModel) browseView() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading projects...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := tableView
	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m ProjectsModel) detailView() string {
	if m.detail == nil {
		return ""
	}

	p := m.detail.Project

	claimLines := "none"
	if len(m.detail.Claims) > 0 {
		claimLines = ""
		for _, c := range m.detail.Claims {
			claimLines += fmt.Sprintf(
				"\n  %s  %s  [%s]",
				c.CompanyName, money.FormatPence(c.Amount), c.Status,
			)
		}
	}

	detail := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(1, 2).
		Render(fmt.Sprintf(
			"%s\n\n%s\n\nClaims: %s",
			p.Name, p.Description, claimLines,
		))

	return lipgloss.NewStyle().Padding(1).Render(detail + "\n\n(Esc to back)")
}

func (m *ProjectsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.projects))
	for _, p := range m.projects {
		rows = append(rows, table.Row{
			p.Name,
			p.Description,
			FormatDate(p.CreatedAt),
		})
	}

	m.table.SetRows(rows)
}

// Messages

type loadProjectsMsg struct {
	projects []*project.Project
	err      error
}

func (m ProjectsModel) loadProjectsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := ApiCtx(m.ctx)
		defer cancel()

		projects, err := m.client.ListProjects(ctx)

		return loadProjectsMsg{projects: projects, err: err}
	}
}

type projectSavedMsg struct {
	err error
}

func (m ProjectsModel) createProjectCmd() tea.Cmd {
	input := m.formInput

	return func() tea.Msg {
		form := project.Form{Name: input.Name, Description: input.Description}
		if errs := form.Validate(); !errs.OK() {
			return projectSavedMsg{err: fmt.Errorf("invalid project: %v", errs)}
		}

		ctx, cancel := ApiCtx(m.ctx)
		defer cancel()

		_, err := m.client.CreateProject(ctx, project.CreateParams{
			Name:        input.Name,
			Description: input.Description,
		})

		return projectSavedMsg{err: err}
	}
}

func (m ProjectsModel) updateProjectCmd() tea.Cmd {
	input := m.formInput
	id := m.editingID

	return func() tea.Msg {
		form := project.Form{Name: input.Name, Description: input.Description}
		if errs := form.Validate(); !errs.OK() {
			return projectSavedMsg{err: fmt.Errorf("invalid project: %v", errs)}
		}

		ctx, cancel := ApiCtx(m.ctx)
		defer cancel()

		_, err := m.client.UpdateProject(ctx, id, project.UpdateParams{
			Name:        &input.Name,
			Description: &input.Description,
		})

		return projectSavedMsg{err: err}
	}
}

type projectDeletedMsg struct {
	err error
}

func (m ProjectsModel) deleteProjectCmd(id uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := ApiCtx(m.ctx)
		defer cancel()

		err := m.client.DeleteProject(ctx, id)

		return projectDeletedMsg{err: err}
	}
}

type projectDetailMsg struct {
	detail *gateway.ProjectWithClaims
	err    error
}

func (m ProjectsModel) loadDetailCmd(id uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := ApiCtx(m.ctx)
		defer cancel()

		detail, err := m.client.GetProject(ctx, id)

		return projectDetailMsg{detail: detail, err: err}
	}
}
