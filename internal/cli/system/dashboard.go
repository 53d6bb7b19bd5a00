package system

import (
	"fmt"

	"github.com/julianstephens/lifeos/internal/cli"
)

type DashboardCmd struct {
	Date string `help:"Day to summarize (YYYY-MM-DD). Defaults to today."`
}

func (c *DashboardCmd) Run(ctx *cli.Context) error {
	date, err := ctx.Date(c.Date)
	if err != nil {
		return err
	}
	s := ctx.App.Dashboard(date, ctx.App.Now())
	name := ctx.App.Profile().Name
	if name == "" {
		name = "there"
	}

	fmt.Println(cli.Heading(fmt.Sprintf("Hello, %s. Here is %s.", name, s.Date)))
	fmt.Println()
	fmt.Printf("Tasks       %s %3d%%  (%d/%d done)\n", cli.Bar(s.TaskEfficiency, 20), s.TaskEfficiency, s.TasksDone, s.TasksTotal)
	fmt.Printf("Hydration   %s %3d%%  (%s of %s)\n", cli.Bar(s.Hydration.Progress, 20), s.Hydration.Progress, cli.Ml(s.Hydration.Total), cli.Ml(s.Hydration.Goal))
	fmt.Printf("Habits      %d active, %d total streak, avg %d", s.Habits.Active, s.Habits.TotalStreak, s.Habits.AverageStreak)
	if s.Habits.PerfectDay {
		fmt.Print("  (perfect day)")
	}
	fmt.Println()
	fmt.Printf("Nutrition   %.0f kcal  P %.0fg  C %.0fg  F %.0fg\n", s.Nutrition.Calories, s.Nutrition.Protein, s.Nutrition.Carbs, s.Nutrition.Fats)

	if s.UpcomingEvent != nil {
		fmt.Printf("Up next     %s %s\n", s.UpcomingEvent.StartTime, s.UpcomingEvent.Title)
	} else {
		fmt.Println("Up next     " + cli.Muted("nothing scheduled"))
	}
	if s.ActiveStrategy != nil {
		fmt.Printf("Strategy    %s %s %d%%\n", s.ActiveStrategy.Name, cli.Bar(s.StrategyProgress, 10), s.StrategyProgress)
	}
	fmt.Printf("Mistakes    %d buried\n", s.MistakeCount)
	fmt.Printf("Diary       %s\n", s.DiaryStatus)
	return nil
}
