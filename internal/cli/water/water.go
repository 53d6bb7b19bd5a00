package water

import (
	"fmt"

	"github.com/julianstephens/lifeos/internal/app"
	"github.com/julianstephens/lifeos/internal/cli"
	"github.com/julianstephens/lifeos/internal/constants"
	"github.com/julianstephens/lifeos/internal/derive"
)

type WaterCmd struct {
	Status    WaterStatusCmd `cmd:"" help:"Show today's intake, schedule and milestones." default:"1"`
	Drink     WaterDrinkCmd  `cmd:"" help:"Log a drink."`
	Goal      WaterGoalCmd   `cmd:"" help:"Show or set the daily goal in ml."`
	Reset     WaterResetCmd  `cmd:"" help:"Clear the intake log and today's slot completions."`
	Slot      SlotCmd        `cmd:"" help:"Manage the drinking schedule."`
	Milestone MilestoneCmd   `cmd:"" help:"Manage intake milestones."`
}

type WaterStatusCmd struct{}

func (c *WaterStatusCmd) Run(ctx *cli.Context) error {
	v := ctx.App.Water()
	s := v.Status
	fmt.Printf("%s %s %d%%\n", cli.Heading("Hydration"), cli.Bar(s.Progress, 24), s.Progress)
	fmt.Printf("  %s of %s, %s to go. Last sip: %s\n", cli.Ml(s.Total), cli.Ml(s.Goal), cli.Ml(s.Remaining), v.LastSip)

	if len(v.Schedule) > 0 {
		fmt.Println("\n" + cli.Heading("Schedule"))
		printSlots(v)
	}
	fmt.Println("\n" + cli.Heading("Milestones"))
	printMilestones(v.Milestones)
	return nil
}

func printSlots(v app.WaterView) {
	for _, slot := range v.Schedule {
		fmt.Printf("  %s %s  %s  %-20s %s\n", cli.Check(derive.SlotDone(slot, v.Today)), cli.Muted(cli.ShortID(slot.ID)), slot.Time, slot.Label, cli.Ml(slot.Amount.Float()))
	}
}

func printMilestones(ms []derive.MilestoneStatus) {
	for _, m := range ms {
		fmt.Printf("  %s %s  %-20s %s\n", cli.Check(m.Reached), cli.Muted(cli.ShortID(m.Milestone.ID)), m.Milestone.Label, cli.Ml(m.Milestone.Amount.Float()))
	}
}

type WaterDrinkCmd struct {
	Amount float64 `arg:"" optional:"" help:"Amount in ml. Defaults to a quick sip."`
	Slot   string  `help:"Schedule slot satisfied by this drink."`
}

func (c *WaterDrinkCmd) Run(ctx *cli.Context) error {
	amount := c.Amount
	if amount == 0 {
		amount = constants.QuickSipMl
	}
	if _, err := ctx.App.Drink(amount, c.Slot); err != nil {
		return err
	}
	s := ctx.App.Water().Status
	fmt.Println(cli.OK(fmt.Sprintf("Logged %s (%d%% of goal)", cli.Ml(amount), s.Progress)))
	return nil
}

type WaterGoalCmd struct {
	Ml *float64 `arg:"" optional:"" help:"New goal in ml."`
}

func (c *WaterGoalCmd) Run(ctx *cli.Context) error {
	if c.Ml == nil {
		fmt.Printf("Daily goal: %s\n", cli.Ml(ctx.App.Water().Status.Goal))
		return nil
	}
	goal, err := ctx.App.SetWaterGoal(*c.Ml)
	if err != nil {
		return err
	}
	fmt.Println(cli.OK("Daily goal set to " + cli.Ml(goal.Float())))
	return nil
}

type WaterResetCmd struct {
	Yes bool `short:"y" help:"Skip the confirmation prompt."`
}

func (c *WaterResetCmd) Run(ctx *cli.Context) error {
	if err := ctx.Require(c.Yes, "Clear today's water log?"); err != nil {
		return err
	}
	ctx.App.ResetToday()
	fmt.Println(cli.OK("Water log cleared."))
	return nil
}
