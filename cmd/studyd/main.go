package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/sandeepkv93/studyd/internal/config"
	"github.com/sandeepkv93/studyd/internal/ledger"
	"github.com/sandeepkv93/studyd/internal/model"
	"github.com/sandeepkv93/studyd/internal/schedule"
	"github.com/sandeepkv93/studyd/internal/scheduler"
	"github.com/sandeepkv93/studyd/internal/stats"
	"github.com/sandeepkv93/studyd/internal/storage"
	"github.com/sandeepkv93/studyd/internal/update"
)

type app struct {
	settings config.Settings
	store    storage.Store
	ledger   *ledger.Ledger
	schedule *schedule.Service
	stats    *stats.Aggregator
	logger   *log.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string
	var dbPath string
	var ephemeral bool

	root := &cobra.Command{
		Use:   "studyd",
		Short: "Daily study routine tracker",
		Long:  "studyd tracks a fixed daily study schedule, per-day custom tasks, notes and completion stats.",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(configPath, dbPath, ephemeral)
			if err != nil {
				return err
			}
			defer a.store.Close()
			return runTUI(a)
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config.toml (default: XDG config dir)")
	root.PersistentFlags().StringVar(&dbPath, "db", "", "path to the database (overrides config)")
	root.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "keep everything in memory, write nothing to disk")

	root.AddCommand(newStatsCmd(&configPath, &dbPath, &ephemeral))
	root.AddCommand(newDayCmd(&configPath, &dbPath, &ephemeral))
	root.AddCommand(newEditCmd(&configPath, &dbPath, &ephemeral))
	root.AddCommand(newResetCmd(&configPath, &dbPath, &ephemeral))
	return root
}

func newApp(configPath, dbPath string, ephemeral bool) (*app, error) {
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	}
	fileCfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	settings := config.Resolve(fileCfg)
	if dbPath != "" {
		settings.DBPath = dbPath
	}

	logger := newLogger()

	var store storage.Store
	if ephemeral {
		store = storage.NewMemoryStore()
	} else {
		sqlStore, err := storage.OpenSQLite(settings.DBPath)
		if err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}
		store = sqlStore
	}

	led := ledger.New(store, logger)
	svc := schedule.NewService(store, logger)
	agg := stats.New(led, svc).
		WithLegacyRollingTotal(settings.LegacyRollingTotal).
		WithWindow(settings.RollingDays)

	return &app{
		settings: settings,
		store:    store,
		ledger:   led,
		schedule: svc,
		stats:    agg,
		logger:   logger,
	}, nil
}

// newLogger writes diagnostics to the XDG state dir; the terminal belongs
// to the TUI.
func newLogger() *log.Logger {
	path := config.DefaultLogPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return log.New(os.Stderr)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return log.New(os.Stderr)
	}
	logger := log.New(file)
	logger.SetReportTimestamp(true)
	return logger
}

func runTUI(a *app) error {
	if !isInteractive() {
		return fmt.Errorf("stdin is not a terminal; use the stats, day, edit or reset subcommands")
	}

	engine := scheduler.NewClockEngine(a.settings.TickInterval, a.settings.RolloverInterval, 64)
	engine.Start()
	defer engine.Stop()

	m := update.NewModelWithClock(update.Services{
		Ledger:   a.ledger,
		Schedule: a.schedule,
		Stats:    a.stats,
	}, engine)

	program := tea.NewProgram(m)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("studyd failed: %w", err)
	}
	return nil
}

func newStatsCmd(configPath, dbPath *string, ephemeral *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print the completion report",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath, *dbPath, *ephemeral)
			if err != nil {
				return err
			}
			defer a.store.Close()
			report := a.stats.Gather(cmd.Context(), time.Now())
			return report.WriteText(cmd.OutOrStdout())
		},
	}
}

func newDayCmd(configPath, dbPath *string, ephemeral *bool) *cobra.Command {
	var asType string
	cmd := &cobra.Command{
		Use:   "day [date]",
		Short: "Assign a day type (weekday or weekend) to a date",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath, *dbPath, *ephemeral)
			if err != nil {
				return err
			}
			defer a.store.Close()

			date := time.Now()
			if len(args) == 1 {
				date, err = model.ParseDateKey(args[0])
				if err != nil {
					return err
				}
			}
			dateKey := model.DateKey(date)

			day, err := resolveDayType(asType, date)
			if err != nil {
				return err
			}
			if err := a.ledger.SetDayAssignment(cmd.Context(), dateKey, day); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s marked as %s\n", dateKey, day)
			return nil
		},
	}
	cmd.Flags().StringVar(&asType, "as", "", "weekday or weekend (omit for an interactive prompt)")
	return cmd
}

// resolveDayType takes the flag when given, otherwise prompts a terminal
// user, defaulting the selection to the calendar's answer for the date.
func resolveDayType(flagValue string, date time.Time) (model.DayType, error) {
	if flagValue != "" {
		return model.ParseDayType(flagValue)
	}
	if !isInteractive() {
		return "", fmt.Errorf("no terminal for the prompt; pass --as weekday|weekend")
	}

	selected := string(model.CalendarDayType(date))
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(fmt.Sprintf("What kind of day is %s?", model.DateKey(date))).
				Options(
					huh.NewOption("Weekday schedule", string(model.DayTypeWeekday)),
					huh.NewOption("Weekend schedule", string(model.DayTypeWeekend)),
				).
				Value(&selected),
		),
	)
	if err := form.Run(); err != nil {
		return "", err
	}
	return model.ParseDayType(selected)
}

func newEditCmd(configPath, dbPath *string, ephemeral *bool) *cobra.Command {
	var newTime string
	var newDesc string
	var dayFlag string
	cmd := &cobra.Command{
		Use:   "edit <task-id>",
		Short: "Edit a schedule task's time range or description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if newTime == "" && newDesc == "" {
				return fmt.Errorf("nothing to change; pass --time and/or --desc")
			}
			a, err := newApp(*configPath, *dbPath, *ephemeral)
			if err != nil {
				return err
			}
			defer a.store.Close()

			day, err := model.ParseDayType(dayFlag)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			task, ok := model.FindTask(a.schedule.Effective(ctx, day), args[0])
			if !ok {
				return fmt.Errorf("no task %q in the %s schedule", args[0], day)
			}
			if newTime == "" {
				newTime = task.Time
			}
			if newDesc == "" {
				newDesc = task.Description
			}
			found, err := a.schedule.EditTask(ctx, day, args[0], newTime, newDesc)
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("no task %q in the %s schedule", args[0], day)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&newTime, "time", "", `new time range, e.g. "9:00 - 1:00 PM"`)
	cmd.Flags().StringVar(&newDesc, "desc", "", "new description")
	cmd.Flags().StringVar(&dayFlag, "day", string(model.DayTypeWeekday), "weekday or weekend")
	return cmd
}

func newResetCmd(configPath, dbPath *string, ephemeral *bool) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Discard schedule customizations and restore the default",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath, *dbPath, *ephemeral)
			if err != nil {
				return err
			}
			defer a.store.Close()

			if !a.schedule.HasOverlay(cmd.Context()) {
				fmt.Fprintln(cmd.OutOrStdout(), "schedule is already the default")
				return nil
			}
			if !force {
				confirmed, err := confirmReset()
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), "aborted")
					return nil
				}
			}
			if err := a.schedule.ResetToDefault(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schedule restored to default")
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "skip the confirmation prompt")
	return cmd
}

func confirmReset() (bool, error) {
	if !isInteractive() {
		return false, fmt.Errorf("no terminal for the prompt; pass --force")
	}
	confirmed := false
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Discard all schedule customizations?").
				Description("Completion history and notes are kept.").
				Value(&confirmed),
		),
	)
	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}

func isInteractive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
