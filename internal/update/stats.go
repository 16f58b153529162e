package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/studyd/internal/views"
)

func (m Model) handleStatsKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "up", "k":
		m.statsViewport.ScrollUp(1)
	case "down", "j":
		m.statsViewport.ScrollDown(1)
	case "r":
		m.refreshStatsViewport()
		m.Status = StatusBar{Text: "stats refreshed", IsError: false}
	}
	return m
}

func (m *Model) refreshStatsViewport() {
	report := m.svc.Stats.Gather(m.ctx, m.now())

	days := make([]views.StatLineData, 0, len(report.Last7))
	for _, day := range report.Last7 {
		days = append(days, views.StatLineData{
			Label:      day.Label,
			Completed:  day.Completed,
			Total:      day.Total,
			Percentage: day.Percentage,
			Bar:        m.dayProgress.ViewAs(float64(day.Percentage) / 100),
		})
	}
	weeks := make([]views.StatLineData, 0, len(report.Weekly))
	for _, week := range report.Weekly {
		weeks = append(weeks, views.StatLineData{
			Label:      week.Label,
			Completed:  week.Completed,
			Total:      week.Total,
			Percentage: week.Percentage,
			Bar:        m.dayProgress.ViewAs(float64(week.Percentage) / 100),
		})
	}

	m.statsViewport.SetContent(views.RenderStatsPanel(views.StatsPanelData{
		WindowDays:    report.Rolling.WindowDays,
		ActiveDays:    report.Rolling.ActiveDays,
		TasksDone:     report.Rolling.TasksDone,
		TotalPossible: report.Rolling.TotalPossible,
		AvgCompletion: report.Rolling.AvgCompletion,
		AvgBar:        m.dayProgress.ViewAs(float64(report.Rolling.AvgCompletion) / 100),
		Days:          days,
		Weeks:         weeks,
	}))
}

func (m Model) renderStatsView() string {
	return "stats:\nactions: [j/k]scroll [r]refresh\n" + m.statsViewport.View()
}
