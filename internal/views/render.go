package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// AppData is the full frame: title bar, the wide content pane on the left,
// the narrower context pane (day info, palette, help) on the right.
type AppData struct {
	Header        string
	LeftPane      string
	RightPane     string
	StatusLine    string
	StatusIsError bool
	Footer        string
}

const (
	contentPaneWidth = 62
	contextPaneWidth = 46
)

var (
	titleBarStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(lipgloss.Color("8"))
	contentPaneStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(contentPaneWidth)
	contextPaneStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).Width(contextPaneWidth)
	statusOKStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	statusErrStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	footerStyle      = lipgloss.NewStyle().Faint(true)
)

// RenderApp assembles the frame. The error flag picks the status style so
// callers never encode severity into the message text.
func RenderApp(data AppData) string {
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		contentPaneStyle.Render(data.LeftPane),
		contextPaneStyle.Render(data.RightPane),
	)

	status := statusOKStyle.Render(data.StatusLine)
	if data.StatusIsError {
		status = statusErrStyle.Render(data.StatusLine)
	}

	lines := []string{
		titleBarStyle.Render(data.Header),
		row,
		status,
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

// RenderMarkdown renders a note for the preview pane. A note that fails to
// render is shown raw rather than lost.
func RenderMarkdown(md string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
