package ui

import (
	"fmt"
	"strings"
)

// View renders the active screen.
func (m Model) View() string {
	switch m.mode {
	case ModeLogin:
		return m.viewLogin()
	case ModeForm:
		return m.viewForm()
	default:
		return m.viewList()
	}
}

func (m Model) viewLogin() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("reserva") + "\n\n")
	b.WriteString("sign in to manage reservations\n\n")
	b.WriteString(m.loginInputs[0].View() + "\n")
	b.WriteString(m.loginInputs[1].View() + "\n\n")
	if m.loginErr != "" {
		b.WriteString(errorStyle.Render(m.loginErr) + "\n\n")
	}
	b.WriteString(mutedStyle.Render("enter sign in · tab switch field · ctrl+c quit"))
	return b.String()
}

func (m Model) viewForm() string {
	var b strings.Builder
	heading := "new reservation"
	if m.editingID != "" {
		heading = "edit reservation"
	}
	b.WriteString(titleStyle.Render("reserva") + "  " + headerStyle.Render(heading) + "\n\n")

	labels := [fieldCount]string{"Title", "Date", "Start", "End"}
	for i, input := range m.formInputs {
		marker := "  "
		if i == m.formFocus {
			marker = "> "
		}
		b.WriteString(fmt.Sprintf("%s%-6s %s\n", marker, labels[i], input.View()))
	}
	b.WriteString("\n")
	if m.formErr != "" {
		b.WriteString(errorStyle.Render(m.formErr) + "\n\n")
	}
	b.WriteString(mutedStyle.Render("enter save · tab next field · esc back"))
	return b.String()
}

const (
	colTitle = 28
	colUser  = 14
	colDate  = 10
	colTime  = 13
)

func (m Model) viewList() string {
	var b strings.Builder

	user, _ := m.sess.User()
	header := titleStyle.Render("reserva") + "  " + mutedStyle.Render("signed in as "+user.Name)
	if m.snapshot.IsOffline() {
		header += "  " + offlineStyle.Render("OFFLINE")
	}
	if m.snapshot.Loading {
		header += "  " + mutedStyle.Render("loading…")
	}
	b.WriteString(header + "\n")
	b.WriteString(m.viewFilterBar() + "\n\n")

	b.WriteString(headerStyle.Render(fmt.Sprintf(
		"  %-*s %-*s %-*s %-*s %s",
		colTitle, "TITLE", colUser, "USER", colDate, "DATE", colTime, "TIME", "STATUS",
	)) + "\n")

	if len(m.page.Items) == 0 {
		b.WriteString(mutedStyle.Render("  no reservations match the current filters") + "\n")
	}
	for i, r := range m.page.Items {
		line := fmt.Sprintf(
			"  %-*s %-*s %-*s %-*s ",
			colTitle, truncate(r.Title, colTitle),
			colUser, truncate(r.User, colUser),
			colDate, r.Date,
			colTime, r.StartTime+" - "+r.EndTime,
		)
		if i == m.selectedRow {
			b.WriteString(selectedStyle.Render(line) + renderStatus(r.Status) + "\n")
		} else {
			b.WriteString(line + renderStatus(r.Status) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s  %s\n",
		m.paginator.View(),
		mutedStyle.Render(fmt.Sprintf("page %d/%d · %d reservations", m.page.Page, m.page.PageCount, m.page.Total)),
	))

	if m.snapshot.Err != "" {
		b.WriteString(errorStyle.Render(m.snapshot.Err) + "\n")
	} else if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice) + "\n")
	}

	b.WriteString(mutedStyle.Render(
		"n new · e edit · c confirm · m complete · x cancel · d delete · / search · t date · s status · o sort · ←/→ page · r reload · L logout · q quit",
	))
	return b.String()
}

func (m Model) viewFilterBar() string {
	parts := []string{
		"status: " + m.params.Status,
		"sort: " + m.params.Sort.String(),
	}
	if m.params.Date != "" {
		parts = append(parts, "date: "+m.params.Date)
	}
	if m.params.Query != "" {
		parts = append(parts, "query: "+m.params.Query)
	}
	bar := mutedStyle.Render(strings.Join(parts, " · "))

	if m.searching {
		bar += "  " + m.searchInput.View()
	} else if pending := m.searchInput.Value(); pending != "" && pending != m.params.Query {
		// Typed but not yet settled by the debounce.
		bar += "  " + mutedStyle.Render("/ "+pending+"…")
	}
	if m.dateEditing {
		bar += "  " + m.dateInput.View()
	}
	return bar
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}
