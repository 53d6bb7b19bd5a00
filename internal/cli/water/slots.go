package water

import (
	"fmt"
	"strings"

	"github.com/julianstephens/lifeos/internal/app"
	"github.com/julianstephens/lifeos/internal/cli"
)

type SlotCmd struct {
	Add    SlotAddCmd    `cmd:"" help:"Add a planned drink."`
	List   SlotListCmd   `cmd:"" help:"List the schedule." default:"1"`
	Done   SlotDoneCmd   `cmd:"" help:"Drink a slot's amount and mark it done today."`
	Delete SlotDeleteCmd `cmd:"" help:"Remove a planned drink."`
}

type SlotAddCmd struct {
	Time   string   `arg:"" help:"Time of day (HH:MM)."`
	Amount float64  `arg:"" help:"Amount in ml."`
	Label  []string `arg:"" optional:"" help:"Label."`
}

func (c *SlotAddCmd) Run(ctx *cli.Context) error {
	slot, err := ctx.App.AddSlot(app.SlotInput{Time: c.Time, Amount: c.Amount, Label: strings.Join(c.Label, " ")})
	if err != nil {
		return err
	}
	fmt.Println(cli.OK(fmt.Sprintf("Scheduled %s at %s (%s)", cli.Ml(slot.Amount.Float()), slot.Time, slot.Label)))
	return nil
}

type SlotListCmd struct{}

func (c *SlotListCmd) Run(ctx *cli.Context) error {
	v := ctx.App.Water()
	if len(v.Schedule) == 0 {
		fmt.Println("No drinks scheduled.")
		return nil
	}
	printSlots(v)
	return nil
}

type SlotDoneCmd struct {
	ID string `arg:"" help:"Slot id or unique prefix."`
}

func (c *SlotDoneCmd) Run(ctx *cli.Context) error {
	slot, err := ctx.App.CompleteSlot(c.ID)
	if err != nil {
		return err
	}
	fmt.Println(cli.OK(fmt.Sprintf("%s done, logged %s", slot.Label, cli.Ml(slot.Amount.Float()))))
	return nil
}

type SlotDeleteCmd struct {
	ID string `arg:"" help:"Slot id or unique prefix."`
}

func (c *SlotDeleteCmd) Run(ctx *cli.Context) error {
	slot, err := ctx.App.DeleteSlot(c.ID)
	if err != nil {
		return err
	}
	fmt.Println(cli.OK("Removed " + slot.Label + " at " + slot.Time))
	return nil
}

type MilestoneCmd struct {
	Add      MilestoneAddCmd      `cmd:"" help:"Add a milestone."`
	List     MilestoneListCmd     `cmd:"" help:"List milestones." default:"1"`
	Delete   MilestoneDeleteCmd   `cmd:"" help:"Remove a milestone."`
	Defaults MilestoneDefaultsCmd `cmd:"" help:"Restore the built-in milestones."`
}

type MilestoneAddCmd struct {
	Amount float64  `arg:"" help:"Target in ml."`
	Label  []string `arg:"" help:"Label."`
}

func (c *MilestoneAddCmd) Run(ctx *cli.Context) error {
	m, err := ctx.App.AddMilestone(app.MilestoneInput{Label: strings.Join(c.Label, " "), Amount: c.Amount})
	if err != nil {
		return err
	}
	fmt.Println(cli.OK(fmt.Sprintf("Added milestone %s at %s", m.Label, cli.Ml(m.Amount.Float()))))
	return nil
}

type MilestoneListCmd struct{}

func (c *MilestoneListCmd) Run(ctx *cli.Context) error {
	printMilestones(ctx.App.Water().Milestones)
	return nil
}

type MilestoneDeleteCmd struct {
	ID string `arg:"" help:"Milestone id or unique prefix."`
}

func (c *MilestoneDeleteCmd) Run(ctx *cli.Context) error {
	m, err := ctx.App.DeleteMilestone(c.ID)
	if err != nil {
		return err
	}
	fmt.Println(cli.OK("Removed milestone " + m.Label))
	return nil
}

type MilestoneDefaultsCmd struct{}

func (c *MilestoneDefaultsCmd) Run(ctx *cli.Context) error {
	ms := ctx.App.RestoreDefaultMilestones()
	fmt.Println(cli.OK(fmt.Sprintf("Restored %d default milestones", len(ms))))
	return nil
}
