package meals

import (
	"fmt"
	"testing"
	"time"

	"github.com/julianstephens/lifeos/internal/app"
	"github.com/julianstephens/lifeos/internal/cli"
	"github.com/julianstephens/lifeos/internal/config"
	"github.com/julianstephens/lifeos/internal/models"
	"github.com/julianstephens/lifeos/internal/storage"
)

func TestMealCommands(t *testing.T) {
	ctx := cli.NewContext(storage.NewMemoryStore(), config.Resolved{Value: config.MemoryConfig}, time.UTC)
	n := 0
	ctx.Attach(
		app.WithClock(func() time.Time { return time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC) }),
		app.WithIDGenerator(func() string { n++; return fmt.Sprintf("meal-%04d", n) }),
	)

	add := []MealAddCmd{
		{Food: []string{"Oats"}, Type: "breakfast", Calories: 350, Protein: 12},
		{Food: []string{"Rice", "bowl"}, Type: "Dinner", Time: "19:30", Calories: 600},
		{Food: []string{"Apple"}, Type: "Snack", Date: "2024-04-30", Calories: 90},
	}
	for i := range add {
		if err := add[i].Run(ctx); err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
	}
	if err := (&MealAddCmd{Food: []string{"Toast"}, Type: "Brunch"}).Run(ctx); err == nil {
		t.Error("unknown meal type should be rejected")
	}
	if err := (&MealAddCmd{Food: []string{"Toast"}, Type: "Lunch", Calories: -5}).Run(ctx); err == nil {
		t.Error("negative calories should be rejected")
	}

	day := ctx.App.Meals("")
	if day.Totals.Calories != 950 || day.Totals.Protein != 12 {
		t.Errorf("totals = %+v", day.Totals)
	}
	if day.Groups[0].Type != models.MealBreakfast || len(day.Groups[0].Entries) != 1 {
		t.Errorf("breakfast group = %+v", day.Groups[0])
	}
	if day.Groups[0].Entries[0].Time != "00:00" {
		t.Errorf("default time = %q", day.Groups[0].Entries[0].Time)
	}
	if err := (&MealListCmd{}).Run(ctx); err != nil {
		t.Errorf("list: %v", err)
	}

	if err := (&MealDeleteCmd{ID: "meal-0002"}).Run(ctx); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if got := ctx.App.Meals("").Totals.Calories; got != 350 {
		t.Errorf("calories after delete = %v", got)
	}
}
