package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lfreitas/reserva/internal/reservation"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("245"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114"))

	offlineStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("130")).
			Padding(0, 1)

	statusStyles = map[reservation.Status]lipgloss.Style{
		reservation.StatusPending:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		reservation.StatusConfirmed: lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		reservation.StatusCompleted: lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		reservation.StatusCanceled:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
)

func renderStatus(s reservation.Status) string {
	style, ok := statusStyles[s]
	if !ok {
		return string(s)
	}
	return style.Render(string(s))
}
