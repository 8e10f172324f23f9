// Package ui renders the reservation console with Bubble Tea.
package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lfreitas/reserva/internal/auth"
	"github.com/lfreitas/reserva/internal/config"
	"github.com/lfreitas/reserva/internal/session"
	"github.com/lfreitas/reserva/internal/view"
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Controller *session.Controller
	Session    *auth.Session
	Config     *config.Config
}

// Mode is the active screen.
type Mode int

const (
	ModeLogin Mode = iota
	ModeList
	ModeForm
)

// Reservation form input indices.
const (
	fieldTitle = iota
	fieldDate
	fieldStart
	fieldEnd
	fieldCount
)

// Model is the root Bubble Tea state.
type Model struct {
	ctx        context.Context
	controller *session.Controller
	sess       *auth.Session
	cfg        *config.Config

	mode   Mode
	width  int
	height int

	// Read model
	snapshot session.Snapshot

	// List state
	params      view.Params
	page        view.Page
	selectedRow int
	debounce    *view.Debounce
	searchInput textinput.Model
	dateInput   textinput.Model
	searching   bool
	dateEditing bool
	paginator   paginator.Model
	notice      string

	// Form state
	formInputs [fieldCount]textinput.Model
	formFocus  int
	formErr    string
	editingID  string // empty while creating

	// Login state
	loginInputs [2]textinput.Model
	loginFocus  int
	loginErr    string
}

// New builds the root model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	search := textinput.New()
	search.Placeholder = "search title, user, status"
	search.Prompt = "/ "
	search.CharLimit = 64

	date := textinput.New()
	date.Placeholder = "YYYY-MM-DD"
	date.Prompt = "date: "
	date.CharLimit = 10

	var form [fieldCount]textinput.Model
	placeholders := [fieldCount]string{"title", "YYYY-MM-DD", "HH:MM", "HH:MM"}
	for i := range form {
		form[i] = textinput.New()
		form[i].Placeholder = placeholders[i]
		form[i].CharLimit = 64
	}

	username := textinput.New()
	username.Placeholder = "username"
	username.Focus()
	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword

	pag := paginator.New()
	pag.Type = paginator.Dots

	pageSize := 10
	quiet := view.DefaultQuiet
	if opts.Config != nil {
		if opts.Config.PageSize > 0 {
			pageSize = opts.Config.PageSize
		}
		quiet = opts.Config.Debounce()
	}

	mode := ModeLogin
	if opts.Session != nil {
		if _, ok := opts.Session.User(); ok {
			mode = ModeList
		}
	}

	m := Model{
		ctx:         ctx,
		controller:  opts.Controller,
		sess:        opts.Session,
		cfg:         opts.Config,
		mode:        mode,
		params:      view.Params{Status: view.StatusAll, Sort: view.OrderDateAsc, Page: 1, PageSize: pageSize},
		debounce:    view.NewDebounce(quiet),
		searchInput: search,
		dateInput:   date,
		paginator:   pag,
		formInputs:  form,
		loginInputs: [2]textinput.Model{username, password},
	}
	m.refresh()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tick()
}

// tickMsg drives snapshot refresh and debounce settling.
type tickMsg time.Time

const tickEvery = 100 * time.Millisecond

func tick() tea.Cmd {
	return tea.Tick(tickEvery, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// commandDoneMsg reports a finished controller command.
type commandDoneMsg struct {
	err error
}

// refresh recomputes the rendered page from the latest snapshot and params.
func (m *Model) refresh() {
	if m.controller != nil {
		m.snapshot = m.controller.Snapshot()
	}
	m.page = view.Apply(m.snapshot.Reservations, m.params)
	m.params.Page = m.page.Page
	m.paginator.PerPage = m.params.PageSize
	m.paginator.SetTotalPages(m.page.Total)
	m.paginator.Page = m.page.Page - 1
	if m.selectedRow >= len(m.page.Items) {
		m.selectedRow = len(m.page.Items) - 1
	}
	if m.selectedRow < 0 {
		m.selectedRow = 0
	}
}

// resetPage returns to the first page after a filter or sort change.
func (m *Model) resetPage() {
	m.params.Page = 1
	m.selectedRow = 0
}

// Run boots the console program.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	program := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}
