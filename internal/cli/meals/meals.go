package meals

import (
	"fmt"
	"strings"

	"github.com/julianstephens/lifeos/internal/app"
	"github.com/julianstephens/lifeos/internal/cli"
	"github.com/julianstephens/lifeos/internal/derive"
	"github.com/julianstephens/lifeos/internal/models"
)

type MealCmd struct {
	Add    MealAddCmd    `cmd:"" help:"Log a meal."`
	List   MealListCmd   `cmd:"" help:"Show a day's meals by type with totals." default:"1"`
	Delete MealDeleteCmd `cmd:"" help:"Delete a meal."`
}

type MealAddCmd struct {
	Food     []string `arg:"" help:"What you ate."`
	Type     string   `short:"t" help:"Breakfast, Lunch, Snack or Dinner." default:"Breakfast"`
	Date     string   `short:"d" help:"Day (YYYY-MM-DD). Defaults to today."`
	Time     string   `help:"Time (HH:MM). Defaults to 00:00."`
	Calories float64  `short:"k" help:"Calories (kcal)."`
	Protein  float64  `short:"p" help:"Protein (g)."`
	Carbs    float64  `short:"c" help:"Carbohydrates (g)."`
	Fats     float64  `short:"f" help:"Fats (g)."`
}

func (c *MealAddCmd) Run(ctx *cli.Context) error {
	m, err := ctx.App.AddMeal(app.MealInput{
		Date:     c.Date,
		Type:     models.MealType(c.Type),
		Time:     c.Time,
		Food:     strings.Join(c.Food, " "),
		Calories: models.Number(c.Calories),
		Protein:  models.Number(c.Protein),
		Carbs:    models.Number(c.Carbs),
		Fats:     models.Number(c.Fats),
	})
	if err != nil {
		return err
	}
	fmt.Println(cli.OK(fmt.Sprintf("Logged %s for %s on %s", m.Food, m.Type, m.Date)))
	return nil
}

type MealListCmd struct {
	Date string `short:"d" help:"Day (YYYY-MM-DD). Defaults to today."`
}

func (c *MealListCmd) Run(ctx *cli.Context) error {
	date, err := ctx.Date(c.Date)
	if err != nil {
		return err
	}
	day := ctx.App.Meals(date)
	fmt.Println(cli.Heading("Fuel log " + day.Date))
	for _, g := range day.Groups {
		fmt.Printf("\n%s  %s\n", g.Type, cli.Muted(macros(g.Totals)))
		if len(g.Entries) == 0 {
			fmt.Println("  " + cli.Muted("nothing logged"))
		}
		for _, m := range g.Entries {
			fmt.Printf("  %s  %s  %-24s %.0f kcal\n", cli.Muted(cli.ShortID(m.ID)), m.Time, m.Food, m.Calories.Float())
		}
	}
	fmt.Printf("\nTotal  %s\n", macros(day.Totals))
	return nil
}

func macros(n derive.Nutrients) string {
	return fmt.Sprintf("%.0f kcal  P %.0fg  C %.0fg  F %.0fg", n.Calories, n.Protein, n.Carbs, n.Fats)
}

type MealDeleteCmd struct {
	ID string `arg:"" help:"Meal id or unique prefix."`
}

func (c *MealDeleteCmd) Run(ctx *cli.Context) error {
	m, err := ctx.App.DeleteMeal(c.ID)
	if err != nil {
		return err
	}
	fmt.Println(cli.OK("Deleted " + m.Food))
	return nil
}
