package main

import (
	"fmt"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/lifeos/internal/cli"
	"github.com/julianstephens/lifeos/internal/cli/backups"
	"github.com/julianstephens/lifeos/internal/cli/diary"
	"github.com/julianstephens/lifeos/internal/cli/focus"
	"github.com/julianstephens/lifeos/internal/cli/habits"
	"github.com/julianstephens/lifeos/internal/cli/meals"
	"github.com/julianstephens/lifeos/internal/cli/mistakes"
	"github.com/julianstephens/lifeos/internal/cli/settings"
	"github.com/julianstephens/lifeos/internal/cli/strategies"
	"github.com/julianstephens/lifeos/internal/cli/system"
	"github.com/julianstephens/lifeos/internal/cli/tasks"
	"github.com/julianstephens/lifeos/internal/cli/timetable"
	"github.com/julianstephens/lifeos/internal/cli/water"
	"github.com/julianstephens/lifeos/internal/config"
	"github.com/julianstephens/lifeos/internal/constants"
	lerrors "github.com/julianstephens/lifeos/internal/errors"
	"github.com/julianstephens/lifeos/internal/logger"
	"github.com/julianstephens/lifeos/internal/utils"
)

var CLI struct {
	Version  kong.VersionFlag
	Config   string `help:"SQLite path, *.json file, memory:, or a PostgreSQL/Redis connection string without a password. Passwords belong in ${env}, the .env file or the OS keyring." type:"string" default:"${default_config}"`
	Debug    bool   `help:"Write debug logs to stderr as well as the log file."`
	Timezone string `help:"IANA timezone used for 'today'." default:"Local"`

	Init      system.InitCmd      `cmd:"" help:"Initialize lifeos storage."`
	Doctor    system.DoctorCmd    `cmd:"" help:"Run health checks and diagnostics."`
	Tui       system.TuiCmd       `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Dashboard system.DashboardCmd `cmd:"" help:"Print today's summary."`
	Validate  system.ValidateCmd  `cmd:"" help:"Check the timetable, strategies and records for conflicts."`
	Reset     system.ResetCmd     `cmd:"" help:"Erase all lifeos data."`
	Backup    backups.BackupCmd   `cmd:"" help:"Manage database backups."`
	ConfigCmd system.ConfigCmd    `cmd:"" name:"config" help:"Manage the stored connection string."`

	Task      tasks.TaskCmd          `cmd:"" help:"Manage tasks."`
	Habit     habits.HabitCmd        `cmd:"" help:"Manage habits and streaks."`
	Water     water.WaterCmd         `cmd:"" help:"Track hydration."`
	Meal      meals.MealCmd          `cmd:"" help:"Log meals and macros."`
	Mistake   mistakes.MistakeCmd    `cmd:"" help:"Keep a graveyard of mistakes."`
	Timetable timetable.TimetableCmd `cmd:"" help:"Plan the day in blocks."`
	Strategy  strategies.StrategyCmd `cmd:"" help:"Run multi-day strategies."`
	Diary     diary.DiaryCmd         `cmd:"" help:"Write and read the PIN-protected diary."`
	Vault     diary.VaultCmd         `cmd:"" help:"Manage the diary PIN."`
	Profile   settings.ProfileCmd    `cmd:"" help:"Manage the profile."`
	Settings  settings.SettingsCmd   `cmd:"" help:"Theme and layout preferences."`
	Focus     focus.FocusCmd         `cmd:"" help:"Run a pomodoro focus session."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal dashboard for tasks, habits, hydration, meals, study and a private diary"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":        constants.Version,
			"default_config": constants.DefaultConfigPath,
			"env":            constants.ConnectionEnvVar,
			"default_tag":    constants.DefaultMistakeTag,
			"all_subjects":   constants.AllSubjects,
			"strategy_days":  strconv.Itoa(constants.DefaultStrategyDays),
			"work_minutes":   strconv.Itoa(constants.DefaultWorkMinutes),
			"break_minutes":  strconv.Itoa(constants.DefaultBreakMinutes),
		},
	)

	configDir := config.DefaultConfigDir()
	selected := ctx.Command()
	if err := logger.Init(logger.Config{
		Debug:       CLI.Debug,
		ConfigDir:   configDir,
		Interactive: selected == "tui",
	}); err != nil {
		fmt.Fprintf(ctx.Stderr, "Warning: logging disabled: %v\n", err)
	}

	if !utils.ValidateTimezone(CLI.Timezone) {
		lerrors.Fatal(fmt.Errorf("unknown timezone %q", CLI.Timezone))
	}
	loc, err := utils.LoadLocation(CLI.Timezone)
	if err != nil {
		lerrors.Fatal(err)
	}

	resolved := config.Resolver{ConfigDir: configDir}.Resolve(CLI.Config)
	logger.Debug("Storage resolved", "source", resolved.Source.String())
	store, err := config.OpenProvider(resolved)
	if err != nil {
		lerrors.Fatal(err)
	}
	defer store.Close()

	appCtx := cli.NewContext(store, resolved, loc)
	if selected != "init" {
		if err := store.Load(); err != nil {
			lerrors.Fatal(err)
		}
		appCtx.Attach()
	}

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		lerrors.Fatal(err)
	}
}
