package focus

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/julianstephens/lifeos/internal/cli"
	"github.com/julianstephens/lifeos/internal/constants"
	"github.com/julianstephens/lifeos/internal/focus"
	"github.com/julianstephens/lifeos/internal/validation"
)

// FocusCmd runs a pomodoro session in the terminal and notifies the tray
// when it ends.
type FocusCmd struct {
	Work  int    `help:"Work session length in minutes." default:"${work_minutes}"`
	Break int    `name:"break" help:"Break length in minutes." default:"${break_minutes}"`
	Mode  string `help:"Session to run: work or break." enum:"work,break" default:"work"`
}

func (c *FocusCmd) timer() (*focus.Timer, error) {
	if c.Work == 0 {
		c.Work = constants.DefaultWorkMinutes
	}
	if c.Break == 0 {
		c.Break = constants.DefaultBreakMinutes
	}
	if err := validation.Var("work", c.Work, "gt=0,lte=180"); err != nil {
		return nil, err
	}
	if err := validation.Var("break", c.Break, "gt=0,lte=60"); err != nil {
		return nil, err
	}
	mode, ok := focus.ParseMode(c.Mode)
	if !ok {
		mode = focus.ModeWork
	}

	t := focus.New()
	t.SetDurations(c.Work, c.Break)
	t.SwitchMode(mode)
	return t, nil
}

func (c *FocusCmd) Run(ctx *cli.Context) error {
	t, err := c.timer()
	if err != nil {
		return err
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("%s session started. Ctrl+C to stop.\n", t.Mode)
	err = focus.Run(runCtx, t,
		func(t *focus.Timer) {
			fmt.Printf("\r%s %s %s ", t.Mode, t.Format(), cli.Bar(int((1-t.Progress())*100), 30))
		},
		func(t *focus.Timer) {
			fmt.Println()
			fmt.Println(cli.OK(fmt.Sprintf("%s session complete.", t.Mode)))
			if ctx.Notifier != nil {
				ctx.Notifier.FocusFinished(context.Background(), string(t.Mode))
			}
		},
	)
	if errors.Is(err, context.Canceled) {
		fmt.Printf("\nStopped with %s left.\n", t.Format())
		return nil
	}
	return err
}
