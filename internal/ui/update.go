package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lfreitas/reserva/internal/reservation"
	"github.com/lfreitas/reserva/internal/view"
)

// Update is the Bubble Tea message loop.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if m.debounce.Tick(time.Time(msg)) {
			m.params.Query = m.debounce.Value()
			m.resetPage()
		}
		m.refresh()
		return m, tick()

	case commandDoneMsg:
		// The controller already carries the user-facing message; refresh
		// picks it up with the updated collection. A clean finish also
		// retires any notice left from a previous attempt.
		if msg.err == nil {
			m.notice = ""
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case ModeLogin:
			return m.updateLogin(msg)
		case ModeForm:
			return m.updateForm(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "tab", "shift+tab", "up", "down":
		m.loginFocus = (m.loginFocus + 1) % len(m.loginInputs)
		for i := range m.loginInputs {
			if i == m.loginFocus {
				m.loginInputs[i].Focus()
			} else {
				m.loginInputs[i].Blur()
			}
		}
		return m, nil
	case "enter":
		err := m.sess.Login(m.loginInputs[0].Value(), m.loginInputs[1].Value())
		if err != nil {
			m.loginErr = err.Error()
			return m, nil
		}
		m.loginErr = ""
		m.mode = ModeList
		return m, m.reloadCmd()
	}

	var cmd tea.Cmd
	m.loginInputs[m.loginFocus], cmd = m.loginInputs[m.loginFocus].Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While a filter input owns the keyboard, only esc/enter leave it.
	if m.searching {
		switch msg.String() {
		case "esc":
			m.searching = false
			m.searchInput.Blur()
			return m, nil
		case "enter":
			m.searching = false
			m.searchInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		m.debounce.Input(m.searchInput.Value(), time.Now())
		return m, cmd
	}
	if m.dateEditing {
		switch msg.String() {
		case "esc":
			m.dateEditing = false
			m.dateInput.Blur()
			return m, nil
		case "enter":
			m.dateEditing = false
			m.dateInput.Blur()
			m.params.Date = strings.TrimSpace(m.dateInput.Value())
			m.resetPage()
			m.refresh()
			return m, nil
		}
		var cmd tea.Cmd
		m.dateInput, cmd = m.dateInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.selectedRow > 0 {
			m.selectedRow--
		}
		return m, nil
	case "down", "j":
		if m.selectedRow < len(m.page.Items)-1 {
			m.selectedRow++
		}
		return m, nil

	case "left", "h":
		if m.params.Page > 1 {
			m.params.Page--
			m.selectedRow = 0
			m.refresh()
		}
		return m, nil
	case "right", "l":
		if m.params.Page < m.page.PageCount {
			m.params.Page++
			m.selectedRow = 0
			m.refresh()
		}
		return m, nil

	case "/":
		m.searching = true
		m.searchInput.Focus()
		return m, nil
	case "t":
		m.dateEditing = true
		m.dateInput.SetValue(m.params.Date)
		m.dateInput.Focus()
		return m, nil
	case "s":
		m.params.Status = nextStatusFilter(m.params.Status)
		m.resetPage()
		m.refresh()
		return m, nil
	case "o":
		m.params.Sort = (m.params.Sort + 1) % 4
		m.resetPage()
		m.refresh()
		return m, nil

	case "r":
		return m, m.reloadCmd()

	case "n":
		m.openForm(reservation.Reservation{})
		return m, nil
	case "e", "enter":
		if r, ok := m.selected(); ok {
			m.openForm(r)
		}
		return m, nil

	case "c":
		return m.transitionSelected(reservation.StatusConfirmed)
	case "m":
		return m.transitionSelected(reservation.StatusCompleted)
	case "x":
		return m.transitionSelected(reservation.StatusCanceled)

	case "d":
		r, ok := m.selected()
		if !ok {
			return m, nil
		}
		if !r.Status.Terminal() {
			m.notice = "only completed or canceled reservations can be deleted; cancel it first (x)"
			return m, nil
		}
		m.notice = ""
		id := r.ID
		return m, func() tea.Msg {
			return commandDoneMsg{err: m.controller.Delete(m.ctx, id)}
		}

	case "L":
		if err := m.sess.Logout(); err == nil {
			m.mode = ModeLogin
			m.loginInputs[0].SetValue("")
			m.loginInputs[1].SetValue("")
			m.loginFocus = 0
			m.loginInputs[0].Focus()
			m.loginInputs[1].Blur()
		}
		return m, nil
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.mode = ModeList
		m.formErr = ""
		return m, nil
	case "tab", "down":
		m.focusFormField((m.formFocus + 1) % fieldCount)
		return m, nil
	case "shift+tab", "up":
		m.focusFormField((m.formFocus + fieldCount - 1) % fieldCount)
		return m, nil
	case "enter":
		return m.submitForm()
	}

	var cmd tea.Cmd
	m.formInputs[m.formFocus], cmd = m.formInputs[m.formFocus].Update(msg)
	return m, cmd
}

func (m *Model) focusFormField(idx int) {
	m.formFocus = idx
	for i := range m.formInputs {
		if i == idx {
			m.formInputs[i].Focus()
		} else {
			m.formInputs[i].Blur()
		}
	}
}

func (m *Model) openForm(r reservation.Reservation) {
	m.editingID = r.ID
	m.formErr = ""
	m.formInputs[fieldTitle].SetValue(r.Title)
	m.formInputs[fieldDate].SetValue(r.Date)
	m.formInputs[fieldStart].SetValue(r.StartTime)
	m.formInputs[fieldEnd].SetValue(r.EndTime)
	m.focusFormField(fieldTitle)
	m.mode = ModeForm
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	title := strings.TrimSpace(m.formInputs[fieldTitle].Value())
	date := strings.TrimSpace(m.formInputs[fieldDate].Value())
	start := strings.TrimSpace(m.formInputs[fieldStart].Value())
	end := strings.TrimSpace(m.formInputs[fieldEnd].Value())

	if m.editingID == "" {
		user, _ := m.sess.User()
		input := reservation.Reservation{
			Title:     title,
			User:      user.Name,
			Date:      date,
			StartTime: start,
			EndTime:   end,
			Status:    reservation.StatusPending,
		}
		if err := input.Validate(); err != nil {
			m.formErr = err.Error()
			return m, nil
		}
		m.mode = ModeList
		return m, func() tea.Msg {
			_, err := m.controller.Create(m.ctx, input)
			return commandDoneMsg{err: err}
		}
	}

	id := m.editingID
	patch := reservation.Patch{
		Title:     &title,
		Date:      &date,
		StartTime: &start,
		EndTime:   &end,
	}
	m.mode = ModeList
	return m, func() tea.Msg {
		_, err := m.controller.Update(m.ctx, id, patch)
		return commandDoneMsg{err: err}
	}
}

func (m Model) transitionSelected(to reservation.Status) (tea.Model, tea.Cmd) {
	r, ok := m.selected()
	if !ok {
		return m, nil
	}
	if !reservation.CanTransition(r.Status, to) {
		m.notice = transitionNotice(r.Status, to)
		return m, nil
	}
	m.notice = ""
	id := r.ID
	return m, func() tea.Msg {
		_, err := m.controller.Transition(m.ctx, id, to)
		return commandDoneMsg{err: err}
	}
}

func (m Model) selected() (reservation.Reservation, bool) {
	if m.selectedRow < 0 || m.selectedRow >= len(m.page.Items) {
		return reservation.Reservation{}, false
	}
	return m.page.Items[m.selectedRow], true
}

func (m Model) reloadCmd() tea.Cmd {
	return func() tea.Msg {
		return commandDoneMsg{err: m.controller.Reload(m.ctx)}
	}
}

// transitionNotice explains a rejected move in terms of where the
// reservation can still go.
func transitionNotice(from, to reservation.Status) string {
	var targets []string
	for _, s := range reservation.AllowedTransitions(from) {
		if s == from {
			continue
		}
		targets = append(targets, string(s))
	}
	if len(targets) == 0 {
		return string(from) + " is final; cannot move it to " + string(to)
	}
	return "cannot move " + string(from) + " to " + string(to) +
		"; next: " + strings.Join(targets, " or ")
}

// nextStatusFilter cycles ALL and the four statuses.
func nextStatusFilter(current string) string {
	cycle := []string{
		view.StatusAll,
		string(reservation.StatusPending),
		string(reservation.StatusConfirmed),
		string(reservation.StatusCompleted),
		string(reservation.StatusCanceled),
	}
	for i, s := range cycle {
		if s == current {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return view.StatusAll
}
