package habits

import (
	"fmt"
	"strings"

	"github.com/julianstephens/lifeos/internal/cli"
	"github.com/julianstephens/lifeos/internal/derive"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a habit."`
	List   HabitListCmd   `cmd:"" help:"List habits with streaks and tiers." default:"1"`
	Check  HabitCheckCmd  `cmd:"" help:"Check in a habit for a day."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit."`
}

type HabitAddCmd struct {
	Name []string `arg:"" help:"Habit name."`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	h, err := ctx.App.AddHabit(strings.Join(c.Name, " "))
	if err != nil {
		return err
	}
	fmt.Println(cli.OK(fmt.Sprintf("Added habit %s (%s)", h.Name, cli.ShortID(h.ID))))
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	habits := ctx.App.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits yet. Add one with 'habit add'.")
		return nil
	}
	today := ctx.App.Today()
	stats := derive.HabitStats(habits, today)

	fmt.Println(cli.Heading("Protocols"))
	for _, h := range habits {
		lvl := derive.HabitLevel(h.Streak)
		fmt.Printf("  %s %s  %-24s %3d day(s)  %-8s %s\n",
			cli.Check(h.CheckedInOn(today)), cli.Muted(cli.ShortID(h.ID)), h.Name, h.Streak, lvl.Tier,
			cli.Muted(fmt.Sprintf("%d/%d", h.Streak, lvl.Next)))
	}
	fmt.Printf("\nTotal streak %d, average %d", stats.TotalStreak, stats.AverageStreak)
	if stats.PerfectDay {
		fmt.Print(", perfect day")
	}
	fmt.Println()
	return nil
}

type HabitCheckCmd struct {
	ID   string `arg:"" help:"Habit id or unique prefix."`
	Date string `help:"Day to check in (YYYY-MM-DD). Defaults to today."`
}

func (c *HabitCheckCmd) Run(ctx *cli.Context) error {
	date, err := ctx.Date(c.Date)
	if err != nil {
		return err
	}
	h, changed, err := ctx.App.CheckInHabit(c.ID, date)
	if err != nil {
		return err
	}
	if !changed {
		fmt.Printf("%s is already checked in for %s.\n", h.Name, date)
		return nil
	}
	fmt.Println(cli.OK(fmt.Sprintf("%s streak: %d", h.Name, h.Streak)))
	return nil
}

type HabitDeleteCmd struct {
	ID  string `arg:"" help:"Habit id or unique prefix."`
	Yes bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *HabitDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Require(c.Yes, "Delete this habit and its streak?"); err != nil {
		return err
	}
	h, err := ctx.App.DeleteHabit(c.ID)
	if err != nil {
		return err
	}
	fmt.Println(cli.OK("Deleted habit " + h.Name))
	return nil
}
