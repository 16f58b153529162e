package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/studyd/internal/commands"
	"github.com/sandeepkv93/studyd/internal/model"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.Palette.Active = false
		m.Palette.Input = ""
		return m
	}

	dateKey := model.DateKey(m.ViewDate)
	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			task, err := m.svc.Ledger.AddCustomTask(m.ctx, dateKey, a.Description, a.Category)
			if err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("added custom task: %s", task.Description)}, nil
		},
		Del: func(d commands.DelArgs) (commands.Result, error) {
			removed, err := m.svc.Ledger.RemoveCustomTask(m.ctx, dateKey, d.TaskID)
			if err != nil {
				return commands.Result{}, err
			}
			if !removed {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no custom task with id %s", d.TaskID)}
			}
			return commands.Result{Message: "custom task removed"}, nil
		},
		Edit: func(e commands.EditArgs) (commands.Result, error) {
			task, ok := model.FindTask(m.svc.Schedule.Effective(m.ctx, m.DayType), e.TaskID)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no schedule task with id %s", e.TaskID)}
			}
			newTime, newDesc := task.Time, task.Description
			if e.Field == commands.EditFieldTime {
				newTime = e.Value
			} else {
				newDesc = e.Value
			}
			found, err := m.svc.Schedule.EditTask(m.ctx, m.DayType, e.TaskID, newTime, newDesc)
			if err != nil {
				return commands.Result{}, err
			}
			if !found {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("no schedule task with id %s", e.TaskID)}
			}
			return commands.Result{Message: fmt.Sprintf("updated %s", e.TaskID)}, nil
		},
		Day: func(d commands.DayArgs) (commands.Result, error) {
			if err := m.svc.Ledger.SetDayAssignment(m.ctx, dateKey, d.Day); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("day marked as %s", d.Day)}, nil
		},
		Note: func(n commands.NoteArgs) (commands.Result, error) {
			if err := m.svc.Ledger.SetNote(m.ctx, dateKey, n.Text); err != nil {
				return commands.Result{}, err
			}
			if n.Text == "" {
				return commands.Result{Message: "note cleared"}, nil
			}
			return commands.Result{Message: "note saved"}, nil
		},
		Goto: func(g commands.GotoArgs) (commands.Result, error) {
			if g.Today {
				m.ViewDate = midnight(m.now())
				return commands.Result{Message: "back to today"}, nil
			}
			date, err := model.ParseDateKey(g.DateKey)
			if err != nil {
				return commands.Result{}, err
			}
			m.ViewDate = date
			return commands.Result{Message: fmt.Sprintf("viewing %s", g.DateKey)}, nil
		},
		Reset: func() (commands.Result, error) {
			if err := m.svc.Schedule.ResetToDefault(m.ctx); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: "schedule restored to default"}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.LastError = err
	} else {
		m.Status = StatusBar{Text: res.Message, IsError: false}
		m.refreshDay()
	}

	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	return m
}

func (m Model) renderCommandPalette() string {
	if !m.Palette.Active {
		return ""
	}
	return fmt.Sprintf("\ncommand: /%s", m.Palette.Input)
}
