package view

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/jgkirkwood/claimtrack/internal/auth"
	"github.com/jgkirkwood/claimtrack/internal/claim"
	"github.com/jgkirkwood/claimtrack/internal/gateway"
	"github.com/jgkirkwood/claimtrack/internal/money"
	"github.com/jgkirkwood/claimtrack/internal/project"
)

type claimsState int

const (
	claimsStateBrowse claimsState = iota
	claimsStateCreate
	claimsStateManage
	claimsStateLink
	claimsStateUnlink
)

// claimFormInput holds the raw create-form bindings. It lives behind a
// pointer so huh's field bindings survive model copies.
type claimFormInput struct {
	CompanyName string
	StartDate   string
	EndDate     string
	Amount      string
	ProjectIDs  []uuid.UUID
}

type ClaimsModel struct {
	CommonModel
	ctx     context.Context
	client  *gateway.Client
	session *auth.Session

	state  claimsState
	table  table.Model
	claims []gateway.ClaimWithProjects

	selected *gateway.ClaimWithProjects

	form        *huh.Form
	formInput   *claimFormInput
	allProjects []*project.Project
	linkPick    *[]uuid.UUID
	unlinkPick  *uuid.UUID

	statusFilterIdx int
	filter          *claim.Status

	loading bool
	err     error
	status  string
}

func NewClaimsModel(ctx context.Context, client *gateway.Client) ClaimsModel {
	columns := []table.Column{
		{Title: "Company", Width: 28},
		{Title: "Period", Width: 24},
		{Title: "Amount", Width: 12},
		{Title: "Status", Width: 10},
		{Title: "Projects", Width: 8},
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

	return ClaimsModel{
		ctx:     ctx,
		client:  client,
		session: auth.FromContext(ctx),
		table:   t,
	}
}

func (m ClaimsModel) Title() string { return "Claims" }

func (m ClaimsModel) ShortHelp() string {
	switch m.state {
	case claimsStateBrowse:
		return "Esc: back | n: new | Enter: manage | s: status filter | r: refresh"
	case claimsStateCreate:
		return "Navigate form | Esc: cancel"
	case claimsStateManage:
		return "Esc: back | s: submit | a: approve | d: to draft | l: link | u: unlink | x: delete"
	case claimsStateLink, claimsStateUnlink:
		return "Navigate form | Esc: cancel"
	}

	return ""
}

func (m ClaimsModel) Init() tea.Cmd {
	return m.loadClaimsCmd()
}

func (m ClaimsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadClaimsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.claims = msg.claims
		m.refreshTable()

		return m, nil

	case claimFormReadyMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.allProjects = msg.projects

		return m.startCreate()

	case claimCreatedMsg:
		m.state = claimsStateBrowse
		m.form = nil
		m.table.Focus()

		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
			return m, nil
		}

		m.status = fmt.Sprintf("Created claim for %s.", msg.created.CompanyName)
		m.loading = true

		return m, m.loadClaimsCmd()

	case claimActionMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)

			if m.state == claimsStateLink || m.state == claimsStateUnlink {
				m.state = claimsStateManage
				m.form = nil
			}

			return m, nil
		}

		if msg.backToBrowse {
			m.state = claimsStateBrowse
			m.selected = nil
			m.form = nil
			m.table.Focus()
			m.status = msg.note
			m.loading = true

			return m, m.loadClaimsCmd()
		}

		m.status = msg.note

		return m, m.reloadSelectedCmd()

	case linkFormReadyMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		return m.startLink(msg.projects)

	case claimReloadedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.selected = msg.claim
		m.state = claimsStateManage
		m.form = nil

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case claimsStateBrowse:
		return m.updateBrowse(msg)
	case claimsStateCreate:
		return m.updateCreate(msg)
	case claimsStateManage:
		return m.updateManage(msg)
	case claimsStateLink:
		return m.updateLink(msg)
	case claimsStateUnlink:
		return m.updateUnlink(msg)
	}

	return m, nil
}

func (m ClaimsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadClaimsCmd()
		case "n":
			return m, m.loadFormProjectsCmd()
		case "s":
			m.statusFilterIdx = (m.statusFilterIdx + 1) % 4
			m.applyFilter()
			m.loading = true

			return m, m.loadClaimsCmd()
		case "enter":
			idx := m.table.Cursor()
			if idx < 0 || idx >= len(m.claims) {
				return m, nil
			}

			m.selected = &m.claims[idx]
			m.state = claimsStateManage
			m.status = ""
			m.table.Blur()

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m ClaimsModel) startCreate() (tea.Model, tea.Cmd) {
	input := &claimFormInput{}
	m.formInput = input

	options := make([]huh.Option[uuid.UUID], len(m.allProjects))
	for i, p := range m.allProjects {
		options[i] = huh.NewOption(p.Name, p.ID)
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("companyName").
				Title("Company name").
				Value(&input.CompanyName).
				Validate(func(s string) error {
					return fieldError(claim.CreateForm{CompanyName: s}.Validate(), "companyName")
				}),

			huh.NewInput().
				Key("startDate").
				Title("Start date").
				Placeholder("YYYY-MM-DD").
				Value(&input.StartDate).
				Validate(func(s string) error {
					return fieldError(claim.CreateForm{StartDate: s}.Validate(), "startDate")
				}),

			huh.NewInput().
				Key("endDate").
				Title("End date").
				Placeholder("YYYY-MM-DD").
				Value(&input.EndDate).
				Validate(func(s string) error {
					f := claim.CreateForm{StartDate: input.StartDate, EndDate: s}
					return fieldError(f.Validate(), "endDate")
				}),

			huh.NewInput().
				Key("amount").
				Title("Amount (pence)").
				Placeholder("50000").
				Value(&input.Amount).
				Validate(func(s string) error {
					return fieldError(claim.CreateForm{Amount: s}.Validate(), "amount")
				}),

			huh.NewMultiSelect[uuid.UUID]().
				Key("projects").
				Title("Projects").
				Options(options...).
				Value(&input.ProjectIDs),
		),
	).WithWidth(60).WithShowHelp(false)

	m.state = claimsStateCreate
	m.status = ""
	m.table.Blur()

	return m, m.form.Init()
}

func (m ClaimsModel) updateCreate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = claimsStateBrowse
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

	return m, m.createClaimCmd()
}

func (m ClaimsModel) updateManage(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.selected == nil {
		return m, nil
	}

	user := m.session.CurrentUser()
	current := m.selected.Claim.Status

	switch keyMsg.String() {
	case "esc":
		m.state = claimsStateBrowse
		m.selected = nil
		m.table.Focus()

		return m, nil
	case "s":
		if !claim.TransitionAllowed(user, current, claim.StatusSubmitted) {
			m.status = "Only a submitter can submit a draft claim."
			return m, nil
		}

		return m, m.setStatusCmd(claim.StatusSubmitted, "Submitted.")
	case "a":
		if !claim.TransitionAllowed(user, current, claim.StatusApproved) {
			m.status = "Only a reviewer can approve a submitted claim."
			return m, nil
		}

		return m, m.setStatusCmd(claim.StatusApproved, "Approved.")
	case "d":
		if !claim.TransitionAllowed(user, current, claim.StatusDraft) {
			m.status = "Claim is already a draft."
			return m, nil
		}

		return m, m.setStatusCmd(claim.StatusDraft, "Returned to draft.")
	case "l":
		return m, m.loadLinkProjectsCmd()
	case "u":
		return m.startUnlink()
	case "x":
		return m, m.deleteClaimCmd()
	}

	return m, nil
}

func (m ClaimsModel) startLink(projects []*project.Project) (tea.Model, tea.Cmd) {
	linked := make(map[uuid.UUID]bool, len(m.selected.Projects))
	for _, p := range m.selected.Projects {
		linked[p.ID] = true
	}

	var options []huh.Option[uuid.UUID]

	for _, p := range projects {
		if linked[p.ID] {
			continue
		}

		options = append(options, huh.NewOption(p.Name, p.ID))
	}

	if len(options) == 0 {
		m.status = "All projects are already linked."
		return m, nil
	}

	pick := new([]uuid.UUID)
	m.linkPick = pick

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[uuid.UUID]().
				Title("Link projects").
				Options(options...).
				Value(pick),
		),
	).WithWidth(50).WithShowHelp(false)

	m.state = claimsStateLink

	return m, m.form.Init()
}

func (m ClaimsModel) updateLink(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = claimsStateManage
			m.form = nil

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

	return m, m.linkProjectsCmd(*m.linkPick)
}

func (m ClaimsModel) startUnlink() (tea.Model, tea.Cmd) {
	if len(m.selected.Projects) == 0 {
		m.status = "No projects linked to this claim."
		return m, nil
	}

	pick := new(uuid.UUID)
	m.unlinkPick = pick

	options := make([]huh.Option[uuid.UUID], len(m.selected.Projects))
	for i, p := range m.selected.Projects {
		options[i] = huh.NewOption(p.Name, p.ID)
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[uuid.UUID]().
				Title("Unlink project").
				Options(options...).
				Value(pick),
		),
	).WithWidth(50).WithShowHelp(false)

	m.state = claimsStateUnlink

	return m, m.form.Init()
}

func (m ClaimsModel) updateUnlink(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = claimsStateManage
			m.form = nil

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

	return m, m.unlinkProjectCmd(*m.unlinkPick)
}

func (m ClaimsModel) View() string {
	switch m.state {
	case claimsStateBrowse:
		return m.browseView()
	case claimsStateCreate:
		if m.form == nil {
			return ""
		}

		return lipgloss.NewStyle().Padding(1).Render(
			"New Claim\n\n" + m.form.View(),
		)
	case claimsStateManage:
		return m.manageView("")
	case claimsStateLink, claimsStateUnlink:
		if m.form == nil {
			return ""
		}

		return m.manageView(m.form.View())
	}

	return ""
}

func (m ClaimsModel) browseView() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading claims...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	statusLabels := []string{"All", "Draft", "Submitted", "Approved"}
	header := fmt.Sprintf("Filter: [s] Status: %s", activeStyle(statusLabels[m.statusFilterIdx]))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m ClaimsModel) manageView(formPanel string) string {
	if m.selected == nil {
		return ""
	}

	c := m.selected.Claim

	audit := ""
	if c.SubmittedBy != nil && c.SubmittedAt != nil {
		audit += fmt.Sprintf("\nSubmitted by %s on %s", *c.SubmittedBy, FormatDate(*c.SubmittedAt))
	}

	if c.ReviewedBy != nil && c.ReviewedAt != nil {
		audit += fmt.Sprintf("\nReviewed by %s on %s", *c.ReviewedBy, FormatDate(*c.ReviewedAt))
	}

	projects := "none"
	if len(m.selected.Projects) > 0 {
		projects = ""
		for i, p := range m.selected.Projects {
			if i > 0 {
				projects += ", "
			}

			projects += p.Name
		}
	}

	detail := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(1, 2).
		Render(fmt.Sprintf(
			"%s\n\nPeriod: %s to %s\nAmount: %s\nStatus: %s%s\n\nProjects: %s",
			c.CompanyName,
			FormatDate(c.Period.Start), FormatDate(c.Period.End),
			money.FormatPence(c.Amount),
			c.Status,
			audit,
			projects,
		))

	content := detail
	if formPanel != "" {
		content = lipgloss.JoinHorizontal(lipgloss.Top, detail, "  ", formPanel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content + "\n\n" + m.ShortHelp())
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

func (m *ClaimsModel) applyFilter() {
	switch m.statusFilterIdx {
	case 1:
		m.filter = new(claim.StatusDraft)
	case 2:
		m.filter = new(claim.StatusSubmitted)
	case 3:
		m.filter = new(claim.StatusApproved)
	default:
		m.filter = nil
	}
}

func (m *ClaimsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.claims))
	for _, cwp := range m.claims {
		c := cwp.Claim
		rows = append(rows, table.Row{
			c.CompanyName,
			fmt.Sprintf("%s to %s", FormatDate(c.Period.Start), FormatDate(c.Period.End)),
			money.FormatPence(c.Amount),
			string(c.Status),
			fmt.Sprintf("%d", len(cwp.Projects)),
		})
	}

	m.table.SetRows(rows)
}

// Messages

type loadClaimsMsg struct {
	claims []gateway.ClaimWithProjects
	err    error
}

func (m ClaimsModel) loadClaimsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := ApiCtx(m.ctx)
		defer cancel()

		claims, err := m.client.ListClaims(ctx, m.filter)

		return loadClaimsMsg{claims: claims, err: err}
	}
}

type claimFormReadyMsg struct {
	projects []*project.Project
	err      error
}

func (m ClaimsModel) loadFormProjectsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := ApiCtx(m.ctx)
		defer cancel()

		projects, err := m.client.ListProjects(ctx)

		return claimFormReadyMsg{projects: projects, err: err}
	}
}

type claimCreatedMsg struct {
	created *claim.Claim
	err     error
}

func (m ClaimsModel) createClaimCmd() tea.Cmd {
	input := m.formInput

	return func() tea.Msg {
		form := claim.CreateForm{
			CompanyName: input.CompanyName,
			StartDate:   input.StartDate,
			EndDate:     input.EndDate,
			Amount:      input.Amount,
			ProjectIDs:  input.ProjectIDs,
		}

		if errs := form.Validate(); !errs.OK() {
			return claimCreatedMsg{err: fmt.Errorf("invalid claim: %v", errs)}
		}

		var userID *string
		if u := m.session.CurrentUser(); u != nil {
			userID = &u.ID
		}

		ctx, cancel := ApiCtx(m.ctx)
		defer cancel()

		created, err := m.client.CreateClaim(ctx, form.Params(userID))

		return claimCreatedMsg{created: created, err: err}
	}
}

type claimActionMsg struct {
	note         string
	backToBrowse bool
	err          error
}

func (m ClaimsModel) setStatusCmd(to claim.Status, note string) tea.Cmd {
	id := m.selected.Claim.ID

	return func() tea.Msg {
		ctx, cancel := ApiCtx(m.ctx)
		defer cancel()

		_, err := m.client.UpdateClaim(ctx, id, claim.UpdateParams{Status: &to})

		return claimActionMsg{note: note, err: err}
	}
}

func (m ClaimsModel) loadLinkProjectsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := ApiCtx(m.ctx)
		defer cancel()

		projects, err := m.client.ListProjects(ctx)

		return linkFormReadyMsg{projects: projects, err: err}
	}
}

type linkFormReadyMsg struct {
	projects []*project.Project
	err      error
}

func (m ClaimsModel) linkProjectsCmd(ids []uuid.UUID) tea.Cmd {
	claimID := m.selected.Claim.ID

	return func() tea.Msg {
		if len(ids) == 0 {
			return claimActionMsg{note: ""}
		}

		ctx, cancel := ApiCtx(m.ctx)
		defer cancel()

		err := m.client.LinkProjects(ctx, claimID, ids)

		return claimActionMsg{note: "Projects linked.", err: err}
	}
}

func (m ClaimsModel) unlinkProjectCmd(projectID uuid.UUID) tea.Cmd {
	claimID := m.selected.Claim.ID

	return func() tea.Msg {
		ctx, cancel := ApiCtx(m.ctx)
		defer cancel()

		err := m.client.UnlinkProject(ctx, claimID, projectID)

		return claimActionMsg{note: "Project unlinked.", err: err}
	}
}

func (m ClaimsModel) deleteClaimCmd() tea.Cmd {
	id := m.selected.Claim.ID

	return func() tea.Msg {
		ctx, cancel := ApiCtx(m.ctx)
		defer cancel()

		err := m.client.DeleteClaim(ctx, id)

		return claimActionMsg{note: "Claim deleted.", backToBrowse: true, err: err}
	}
}

type claimReloadedMsg struct {
	claim *gateway.ClaimWithProjects
	err   error
}

func (m ClaimsModel) reloadSelectedCmd() tea.Cmd {
	id := m.selected.Claim.ID

	return func() tea.Msg {
		ctx, cancel := ApiCtx(m.ctx)
		defer cancel()

		reloaded, err := m.client.GetClaim(ctx, id)

		return claimReloadedMsg{claim: reloaded, err: err}
	}
}
