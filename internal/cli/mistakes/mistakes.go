package mistakes

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/lifeos/internal/app"
	"github.com/julianstephens/lifeos/internal/cli"
	"github.com/julianstephens/lifeos/internal/constants"
	"github.com/julianstephens/lifeos/internal/models"
)

type MistakeCmd struct {
	Bury     MistakeBuryCmd     `cmd:"" help:"Record a mistake and its correction."`
	List     MistakeListCmd     `cmd:"" help:"List the graveyard." default:"1"`
	Exorcise MistakeExorciseCmd `cmd:"" help:"Mark a mistake reviewed, or unmark it."`
	Delete   MistakeDeleteCmd   `cmd:"" help:"Delete a mistake."`
	Haunt    MistakeHauntCmd    `cmd:"" help:"Resurface a random mistake."`
	Stats    MistakeStatsCmd    `cmd:"" help:"Show the deadliest subject and most common cause."`
}

type MistakeBuryCmd struct {
	Subject    string   `short:"s" required:"" help:"Subject, for example Physics."`
	Tag        string   `short:"t" help:"Cause of the mistake." default:"${default_tag}"`
	Chapter    string   `short:"c" help:"Chapter. Defaults to Misc."`
	Correction []string `arg:"" help:"What the right answer or approach is."`
}

func (c *MistakeBuryCmd) Run(ctx *cli.Context) error {
	m, err := ctx.App.BuryMistake(app.MistakeInput{
		Subject:    c.Subject,
		Chapter:    c.Chapter,
		Tag:        c.Tag,
		Correction: strings.Join(c.Correction, " "),
	})
	if err != nil {
		return err
	}
	fmt.Println(cli.OK(fmt.Sprintf("Buried a %s mistake in %s / %s", m.Tag, m.Subject, m.Chapter)))
	return nil
}

type MistakeListCmd struct {
	Query   string `short:"q" help:"Search subject, chapter, tag and correction."`
	Subject string `short:"s" help:"Only this subject." default:"${all_subjects}"`
}

func (c *MistakeListCmd) Run(ctx *cli.Context) error {
	ms := ctx.App.Mistakes(c.Query, c.Subject)
	if len(ms) == 0 {
		fmt.Println("The graveyard is empty.")
		return nil
	}
	for _, m := range ms {
		printMistake(m)
	}
	return nil
}

func printMistake(m models.MistakeEntry) {
	status := "  "
	if m.IsExorcised {
		status = cli.Check(true)
	}
	when := time.UnixMilli(m.CreatedAt).Format(constants.DateFormat)
	fmt.Printf("%s %s  %s / %s  [%s]  %s\n", status, cli.Muted(cli.ShortID(m.ID)), m.Subject, m.Chapter, m.Tag, cli.Muted(when))
	fmt.Printf("      %s\n", m.Correction)
}

type MistakeExorciseCmd struct {
	ID string `arg:"" help:"Mistake id or unique prefix."`
}

func (c *MistakeExorciseCmd) Run(ctx *cli.Context) error {
	m, err := ctx.App.ToggleExorcised(c.ID)
	if err != nil {
		return err
	}
	if m.IsExorcised {
		fmt.Println(cli.OK("Exorcised."))
	} else {
		fmt.Println(cli.OK("Back in the graveyard."))
	}
	return nil
}

type MistakeDeleteCmd struct {
	ID  string `arg:"" help:"Mistake id or unique prefix."`
	Yes bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *MistakeDeleteCmd) Run(ctx *cli.Context) error {
	if err := ctx.Require(c.Yes, "Delete this mistake permanently?"); err != nil {
		return err
	}
	m, err := ctx.App.DeleteMistake(c.ID)
	if err != nil {
		return err
	}
	fmt.Println(cli.OK(fmt.Sprintf("Deleted %s / %s mistake", m.Subject, m.Chapter)))
	return nil
}

type MistakeHauntCmd struct{}

func (c *MistakeHauntCmd) Run(ctx *cli.Context) error {
	m, ok := ctx.App.Haunt()
	if !ok {
		fmt.Println("Nothing to haunt you. Bury a mistake first.")
		return nil
	}
	fmt.Println(cli.Heading("A ghost returns..."))
	printMistake(m)
	return nil
}

type MistakeStatsCmd struct{}

func (c *MistakeStatsCmd) Run(ctx *cli.Context) error {
	s := ctx.App.MistakeStats()
	fmt.Printf("Buried:            %d (%d exorcised)\n", s.Total, s.Exorcised)
	fmt.Printf("Deadliest subject: %s (%d)\n", s.DeadliestSubject.Label, s.DeadliestSubject.Count)
	fmt.Printf("Common cause:      %s (%d)\n", s.CommonCause.Label, s.CommonCause.Count)
	return nil
}
