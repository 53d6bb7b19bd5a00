package system

import (
	"fmt"

	"github.com/julianstephens/lifeos/internal/cli"
	"github.com/julianstephens/lifeos/internal/validation"
)

type ValidateCmd struct {
	Date string `help:"Only check timetable entries on this date (YYYY-MM-DD)."`
}

func (c *ValidateCmd) Run(ctx *cli.Context) error {
	res := report(ctx, c.Date)
	fmt.Print(res.FormatReport())
	if res.HasConflicts() {
		return fmt.Errorf("found %d conflict(s)", len(res.Conflicts))
	}
	return nil
}

func report(ctx *cli.Context, date string) validation.Result {
	repo := ctx.Repo
	res := validation.ValidateTimetable(repo.Timetable.Get(), date)
	res.Merge(validation.ValidateStrategies(repo.Strategies.Get()))
	res.Merge(validation.ValidateRecords(repo.WaterSchedule.Get(), repo.Meals.Get(), repo.Habits.Get()))
	return res
}
