package timetable

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/lifeos/internal/app"
	"github.com/julianstephens/lifeos/internal/cli"
	"github.com/julianstephens/lifeos/internal/derive"
)

type TimetableCmd struct {
	Add    TimetableAddCmd    `cmd:"" help:"Add a block to a day."`
	List   TimetableListCmd   `cmd:"" help:"Show a day's blocks in order." default:"1"`
	Edit   TimetableEditCmd   `cmd:"" help:"Change a block."`
	Delete TimetableDeleteCmd `cmd:"" help:"Delete a block."`
	Copy   TimetableCopyCmd   `cmd:"" help:"Copy the previous day's blocks onto a day."`
}

type TimetableAddCmd struct {
	Start       string   `arg:"" help:"Start time (HH:MM)."`
	Title       []string `arg:"" help:"Title."`
	End         string   `short:"e" help:"End time (HH:MM)."`
	Description string   `help:"Notes."`
	Date        string   `short:"d" help:"Day (YYYY-MM-DD). Defaults to today."`
}

func (c *TimetableAddCmd) Run(ctx *cli.Context) error {
	date, err := ctx.Date(c.Date)
	if err != nil {
		return err
	}
	e, err := ctx.App.AddEntry(date, app.EntryInput{
		StartTime:   c.Start,
		EndTime:     c.End,
		Title:       strings.Join(c.Title, " "),
		Description: c.Description,
	})
	if err != nil {
		return err
	}
	fmt.Println(cli.OK(fmt.Sprintf("Added %s at %s on %s", e.Title, e.StartTime, e.Date)))
	return nil
}

type TimetableListCmd struct {
	Date string `short:"d" help:"Day (YYYY-MM-DD). Defaults to today."`
}

func (c *TimetableListCmd) Run(ctx *cli.Context) error {
	date, err := ctx.Date(c.Date)
	if err != nil {
		return err
	}
	entries := ctx.App.Timetable(date)
	fmt.Println(cli.Heading("Timetable " + date))
	if len(entries) == 0 {
		fmt.Println("  " + cli.Muted("nothing planned"))
		return nil
	}

	now := ctx.App.Now().Format("15:04")
	next, hasNext := derive.UpcomingEvent(entries, date, now)
	for _, e := range entries {
		span := e.StartTime
		if e.EndTime != "" {
			span += "-" + e.EndTime
		}
		marker := "  "
		if hasNext && e.ID == next.ID && date == ctx.App.Today() {
			marker = "→ "
		}
		fmt.Printf("%s%s  %-11s %s\n", marker, cli.Muted(cli.ShortID(e.ID)), span, e.Title)
		if e.Description != "" {
			fmt.Printf("              %s\n", cli.Muted(e.Description))
		}
	}
	return nil
}

type TimetableEditCmd struct {
	ID          string  `arg:"" help:"Entry id or unique prefix."`
	Start       *string `help:"Start time (HH:MM)."`
	End         *string `help:"End time (HH:MM); empty clears it."`
	Title       *string `help:"Title."`
	Description *string `help:"Notes."`
}

func (c *TimetableEditCmd) Run(ctx *cli.Context) error {
	cur, err := ctx.App.Entry(c.ID)
	if err != nil {
		return err
	}
	in := app.EntryInput{StartTime: cur.StartTime, EndTime: cur.EndTime, Title: cur.Title, Description: cur.Description}
	if c.Start != nil {
		in.StartTime = *c.Start
	}
	if c.End != nil {
		in.EndTime = *c.End
	}
	if c.Title != nil {
		in.Title = *c.Title
	}
	if c.Description != nil {
		in.Description = *c.Description
	}
	e, err := ctx.App.UpdateEntry(cur.ID, in)
	if err != nil {
		return err
	}
	fmt.Println(cli.OK("Updated " + e.Title))
	return nil
}

type TimetableDeleteCmd struct {
	ID string `arg:"" help:"Entry id or unique prefix."`
}

func (c *TimetableDeleteCmd) Run(ctx *cli.Context) error {
	e, err := ctx.App.DeleteEntry(c.ID)
	if err != nil {
		return err
	}
	fmt.Println(cli.OK("Deleted " + e.Title))
	return nil
}

type TimetableCopyCmd struct {
	Date string `short:"d" help:"Target day (YYYY-MM-DD). Defaults to today."`
}

func (c *TimetableCopyCmd) Run(ctx *cli.Context) error {
	date, err := ctx.Date(c.Date)
	if err != nil {
		return err
	}
	clones, err := ctx.App.CopyPreviousDay(date)
	if errors.Is(err, app.ErrNoEntriesToCopy) {
		return fmt.Errorf("nothing to copy: the day before %s is empty", date)
	}
	if err != nil {
		return err
	}
	fmt.Println(cli.OK(fmt.Sprintf("Copied %d block(s) onto %s", len(clones), date)))
	return nil
}
