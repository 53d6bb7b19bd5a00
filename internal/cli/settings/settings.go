package settings

import (
	"fmt"
	"strings"

	"github.com/julianstephens/lifeos/internal/cli"
)

type ProfileCmd struct {
	Show  ProfileShowCmd  `cmd:"" help:"Show the profile." default:"1"`
	Name  ProfileNameCmd  `cmd:"" help:"Set the display name."`
	Photo ProfilePhotoCmd `cmd:"" help:"Set the profile photo from an image file, or clear it."`
}

type ProfileShowCmd struct{}

func (c *ProfileShowCmd) Run(ctx *cli.Context) error {
	p := ctx.App.Profile()
	name := p.Name
	if name == "" {
		name = cli.Muted("(not set)")
	}
	photo := cli.Muted("(none)")
	if p.Photo != nil {
		photo = fmt.Sprintf("%d byte data URL", len(*p.Photo))
	}
	fmt.Printf("Name:  %s\nPhoto: %s\n", name, photo)
	return nil
}

type ProfileNameCmd struct {
	Name []string `arg:"" help:"Display name."`
}

func (c *ProfileNameCmd) Run(ctx *cli.Context) error {
	p := ctx.App.SetProfileName(strings.Join(c.Name, " "))
	fmt.Println(cli.OK("Name set to " + p.Name))
	return nil
}

type ProfilePhotoCmd struct {
	Path  string `arg:"" optional:"" type:"existingfile" help:"Image file, at most 2 MB."`
	Clear bool   `help:"Remove the current photo."`
}

func (c *ProfilePhotoCmd) Run(ctx *cli.Context) error {
	if c.Clear {
		ctx.App.ClearProfilePhoto()
		fmt.Println(cli.OK("Photo removed."))
		return nil
	}
	if c.Path == "" {
		return fmt.Errorf("give an image path or --clear")
	}
	if _, err := ctx.App.SetProfilePhoto(c.Path); err != nil {
		return err
	}
	fmt.Println(cli.OK("Photo updated."))
	return nil
}

type SettingsCmd struct {
	Theme   ThemeCmd   `cmd:"" help:"Show, set or toggle the theme."`
	Sidebar SidebarCmd `cmd:"" help:"Show or toggle the sidebar."`
}

type ThemeCmd struct {
	Value string `arg:"" optional:"" help:"light, dark or toggle."`
}

func (c *ThemeCmd) Run(ctx *cli.Context) error {
	switch c.Value {
	case "":
		fmt.Printf("Theme: %s\n", ctx.App.Theme())
		return nil
	case "toggle":
		fmt.Println(cli.OK(fmt.Sprintf("Theme: %s", ctx.App.ToggleTheme())))
		return nil
	}
	t, err := ctx.App.SetTheme(c.Value)
	if err != nil {
		return err
	}
	fmt.Println(cli.OK(fmt.Sprintf("Theme: %s", t)))
	return nil
}

type SidebarCmd struct {
	Toggle bool `help:"Show the sidebar if hidden, hide it otherwise."`
}

func (c *SidebarCmd) Run(ctx *cli.Context) error {
	hidden := ctx.App.SidebarHidden()
	if c.Toggle {
		hidden = ctx.App.ToggleSidebar()
	}
	state := "shown"
	if hidden {
		state = "hidden"
	}
	fmt.Printf("Sidebar: %s\n", state)
	return nil
}
