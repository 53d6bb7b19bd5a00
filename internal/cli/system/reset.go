package system

import (
	"fmt"

	"github.com/julianstephens/lifeos/internal/cli"
)

// ResetCmd wipes every lifeos key. File-backed stores are backed up first.
type ResetCmd struct {
	Yes bool `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ResetCmd) Run(ctx *cli.Context) error {
	if err := ctx.Require(c.Yes, "Reset all data? This removes every task, habit, log and diary entry."); err != nil {
		return err
	}
	ctx.AutoBackup()
	if err := ctx.App.ResetAll(); err != nil {
		return err
	}
	fmt.Println(cli.OK("All data cleared."))
	return nil
}
