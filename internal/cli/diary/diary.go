package diary

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/julianstephens/lifeos/internal/cli"
	"github.com/julianstephens/lifeos/internal/derive"
	"github.com/julianstephens/lifeos/internal/validation"
	"github.com/julianstephens/lifeos/internal/vault"
)

// stdin is replaced in tests.
var stdin io.Reader = os.Stdin

type DiaryCmd struct {
	Write  DiaryWriteCmd  `cmd:"" help:"Write a day's entry. Reads stdin when no text is given."`
	Read   DiaryReadCmd   `cmd:"" help:"Print a day's entry." default:"1"`
	Status DiaryStatusCmd `cmd:"" help:"Show whether a day has an entry, without unlocking."`
}

type VaultCmd struct {
	Change VaultChangeCmd `cmd:"" help:"Change the diary PIN."`
}

// unlock opens the vault with pin, prompting when it is empty. With no PIN
// stored yet the entered PIN becomes the vault PIN; interactive setup asks
// for it twice.
func unlock(ctx *cli.Context, pin string) error {
	v := vault.New(ctx.Repo)
	defer v.Close()

	if v.Setup() {
		return setup(ctx, pin)
	}
	if pin == "" {
		var err error
		if pin, err = ctx.Secret("Diary PIN"); err != nil {
			return err
		}
	}
	return v.Unlock(pin)
}

func setup(ctx *cli.Context, pin string) error {
	if pin == "" {
		first, err := ctx.Secret("Create a 4-digit diary PIN")
		if err != nil {
			return err
		}
		second, err := ctx.Secret("Repeat the PIN")
		if err != nil {
			return err
		}
		if first != second {
			return errors.New("PINs do not match")
		}
		pin = first
	}
	if err := validation.Var("PIN", pin, "pin"); err != nil {
		return err
	}
	ctx.Repo.SetPin(pin)
	fmt.Println(cli.OK("Diary PIN created."))
	return nil
}

type DiaryWriteCmd struct {
	Text   []string `arg:"" optional:"" help:"Entry text."`
	Date   string   `short:"d" help:"Day (YYYY-MM-DD). Defaults to today."`
	Append bool     `short:"a" help:"Append to the existing entry instead of replacing it."`
	Pin    string   `help:"Diary PIN. Prompted for when omitted."`
}

func (c *DiaryWriteCmd) Run(ctx *cli.Context) error {
	date, err := ctx.Date(c.Date)
	if err != nil {
		return err
	}
	if err := unlock(ctx, c.Pin); err != nil {
		return err
	}

	text := strings.Join(c.Text, " ")
	if len(c.Text) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("failed to read entry: %w", err)
		}
		text = strings.TrimRight(string(data), "\n")
	}
	if c.Append {
		if prev := ctx.App.DiaryEntry(date); prev != "" {
			text = prev + "\n" + text
		}
	}

	if err := ctx.App.SaveDiary(date, text); err != nil {
		return err
	}
	fmt.Println(cli.OK(fmt.Sprintf("Saved %d word(s) for %s", derive.WordCount(text), date)))
	return nil
}

type DiaryReadCmd struct {
	Date string `short:"d" help:"Day (YYYY-MM-DD). Defaults to today."`
	Pin  string `help:"Diary PIN. Prompted for when omitted."`
}

func (c *DiaryReadCmd) Run(ctx *cli.Context) error {
	date, err := ctx.Date(c.Date)
	if err != nil {
		return err
	}
	if err := unlock(ctx, c.Pin); err != nil {
		return err
	}
	text := ctx.App.DiaryEntry(date)
	fmt.Println(cli.Heading("Diary " + date))
	if text == "" {
		fmt.Println(cli.Muted("No entry."))
		return nil
	}
	fmt.Println(text)
	return nil
}

type DiaryStatusCmd struct {
	Date string `short:"d" help:"Day (YYYY-MM-DD). Defaults to today."`
}

func (c *DiaryStatusCmd) Run(ctx *cli.Context) error {
	date, err := ctx.Date(c.Date)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %s\n", date, ctx.App.DiaryStatus(date))
	return nil
}

type VaultChangeCmd struct {
	Old string `help:"Current PIN. Prompted for when omitted."`
	New string `help:"New 4-digit PIN. Prompted for when omitted."`
}

func (c *VaultChangeCmd) Run(ctx *cli.Context) error {
	oldPin, newPin := c.Old, c.New
	var err error
	if oldPin == "" {
		if oldPin, err = ctx.Secret("Current PIN"); err != nil {
			return err
		}
	}
	if newPin == "" {
		if newPin, err = ctx.Secret("New PIN"); err != nil {
			return err
		}
	}
	if err := ctx.App.ChangePin(oldPin, newPin); err != nil {
		return err
	}
	fmt.Println(cli.OK("Diary PIN changed."))
	return nil
}
