package strategies

import (
	"fmt"
	"strings"

	"github.com/julianstephens/lifeos/internal/app"
	"github.com/julianstephens/lifeos/internal/cli"
	"github.com/julianstephens/lifeos/internal/constants"
	"github.com/julianstephens/lifeos/internal/derive"
	"github.com/julianstephens/lifeos/internal/models"
)

type StrategyCmd struct {
	Create StrategyCreateCmd `cmd:"" help:"Create a multi-day strategy."`
	List   StrategyListCmd   `cmd:"" help:"List strategies with completion." default:"1"`
	Show   StrategyShowCmd   `cmd:"" help:"Show every day of a strategy."`
	Day    StrategyDayCmd    `cmd:"" help:"Update one day of a strategy."`
	Delete StrategyDeleteCmd `cmd:"" help:"Delete a strategy."`
}

type StrategyCreateCmd struct {
	Name []string `arg:"" help:"Strategy name."`
	Days int      `short:"n" help:"Number of days." default:"${strategy_days}"`
}

func (c *StrategyCreateCmd) Run(ctx *cli.Context) error {
	days := c.Days
	if days == 0 {
		days = constants.DefaultStrategyDays
	}
	s, err := ctx.App.CreateStrategy(strings.Join(c.Name, " "), days)
	if err != nil {
		return err
	}
	fmt.Println(cli.OK(fmt.Sprintf("Created %s with %d days (%s)", s.Name, s.TotalDays, cli.ShortID(s.ID))))
	return nil
}

type StrategyListCmd struct{}

func (c *StrategyListCmd) Run(ctx *cli.Context) error {
	ss := ctx.App.Strategies()
	if len(ss) == 0 {
		fmt.Println("No strategies yet.")
		return nil
	}
	for _, s := range ss {
		pct := derive.StrategyCompletion(s)
		fmt.Printf("  %s  %-28s %s %3d%%\n", cli.Muted(cli.ShortID(s.ID)), s.Name, cli.Bar(pct, 16), pct)
	}
	return nil
}

type StrategyShowCmd struct {
	ID string `arg:"" help:"Strategy id or unique prefix."`
}

func (c *StrategyShowCmd) Run(ctx *cli.Context) error {
	s, pct, err := ctx.App.Strategy(c.ID)
	if err != nil {
		return err
	}
	fmt.Printf("%s %s %d%%\n\n", cli.Heading(s.Name), cli.Bar(pct, 20), pct)
	for _, d := range s.Days {
		fmt.Printf("  Day %-3d %-12s %s\n", d.DayNumber, statusLabel(d.Status), d.Purpose)
		if d.Chapters != "" {
			fmt.Printf("          %s %s\n", cli.Muted("chapters:"), d.Chapters)
		}
		if d.PriorityTasks != "" {
			fmt.Printf("          %s %s\n", cli.Muted("priority:"), d.PriorityTasks)
		}
	}
	return nil
}

func statusLabel(s models.DayStatus) string {
	switch s {
	case models.DayCompleted:
		return cli.Check(true) + " done"
	case models.DayInProgress:
		return "[~] active"
	default:
		return cli.Check(false) + " pending"
	}
}

type StrategyDayCmd struct {
	ID            string  `arg:"" help:"Strategy id or unique prefix."`
	Day           string  `arg:"" help:"Day number or day id."`
	Purpose       *string `help:"What the day is for."`
	Chapters      *string `help:"Chapters to cover."`
	PriorityTasks *string `name:"priority" help:"Priority tasks."`
	Status        *string `help:"pending, in-progress or completed."`
}

func (c *StrategyDayCmd) Run(ctx *cli.Context) error {
	patch := app.DayPatch{Purpose: c.Purpose, Chapters: c.Chapters, PriorityTasks: c.PriorityTasks}
	if c.Status != nil {
		st := models.DayStatus(*c.Status)
		patch.Status = &st
	}
	d, err := ctx.App.UpdateDay(c.ID, c.Day, patch)
	if err != nil {
		return err
	}
	fmt.Println(cli.OK(fmt.Sprintf("Day %d is %s", d.DayNumber, d.Status)))
	return nil
}

type StrategyDeleteCmd struct {
	ID  string `arg:"" help:"Strategy id or unique prefix."`
	Yes bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *StrategyDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Require(c.Yes, "Delete this strategy and all of its days?"); err != nil {
		return err
	}
	s, err := ctx.App.DeleteStrategy(c.ID)
	if err != nil {
		return err
	}
	fmt.Println(cli.OK("Deleted " + s.Name))
	return nil
}
