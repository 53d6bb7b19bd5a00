package tasks

import (
	"fmt"
	"strings"

	"github.com/julianstephens/lifeos/internal/cli"
	"github.com/julianstephens/lifeos/internal/derive"
)

type TaskCmd struct {
	Add    TaskAddCmd    `cmd:"" help:"Add a task to the top of the list."`
	List   TaskListCmd   `cmd:"" help:"List tasks." default:"1"`
	Toggle TaskToggleCmd `cmd:"" help:"Mark a task done or not done."`
	Delete TaskDeleteCmd `cmd:"" help:"Delete a task."`
}

type TaskAddCmd struct {
	Text []string `arg:"" help:"Task text."`
}

func (c *TaskAddCmd) Run(ctx *cli.Context) error {
	task, err := ctx.App.AddTask(strings.Join(c.Text, " "))
	if err != nil {
		return err
	}
	fmt.Println(cli.OK(fmt.Sprintf("Added task %s (%s)", task.Text, cli.ShortID(task.ID))))
	return nil
}

type TaskListCmd struct {
	Pending bool `help:"Only show tasks that are not done."`
}

func (c *TaskListCmd) Run(ctx *cli.Context) error {
	tasks := ctx.App.Tasks()
	if len(tasks) == 0 {
		fmt.Println("No tasks. Add one with 'task add'.")
		return nil
	}

	active, done := derive.SplitTasks(tasks)
	eff := derive.TaskEfficiency(tasks)
	fmt.Printf("%s %s %d%%\n\n", cli.Heading("Tasks"), cli.Bar(eff, 20), eff)
	for _, t := range active {
		fmt.Printf("  %s %s  %s\n", cli.Check(false), cli.Muted(cli.ShortID(t.ID)), t.Text)
	}
	if c.Pending {
		return nil
	}
	for _, t := range done {
		fmt.Printf("  %s %s  %s\n", cli.Check(true), cli.Muted(cli.ShortID(t.ID)), cli.Muted(t.Text))
	}
	return nil
}

type TaskToggleCmd struct {
	ID string `arg:"" help:"Task id or unique prefix."`
}

func (c *TaskToggleCmd) Run(ctx *cli.Context) error {
	task, err := ctx.App.ToggleTask(c.ID)
	if err != nil {
		return err
	}
	state := "not done"
	if task.Completed {
		state = "done"
	}
	fmt.Println(cli.OK(fmt.Sprintf("%s marked %s", task.Text, state)))
	return nil
}

type TaskDeleteCmd struct {
	ID string `arg:"" help:"Task id or unique prefix."`
}

func (c *TaskDeleteCmd) Run(ctx *cli.Context) error {
	task, err := ctx.App.DeleteTask(c.ID)
	if err != nil {
		return err
	}
	fmt.Println(cli.OK("Deleted task " + task.Text))
	return nil
}
