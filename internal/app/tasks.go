package app

import (
	"strings"

	"github.com/julianstephens/lifeos/internal/models"
	"github.com/julianstephens/lifeos/internal/validation"
)

func taskID(t models.Task) string { return t.ID }

func (a *App) Tasks() []models.Task { return a.repo.Tasks.Get() }

// AddTask puts a new task at the top of the list.
func (a *App) AddTask(text string) (models.Task, error) {
	text = strings.TrimSpace(text)
	if err := validation.Var("text", text, "required"); err != nil {
		return models.Task{}, err
	}
	task := models.Task{ID: a.newID(), Text: text, CreatedAt: a.millis()}
	a.repo.Tasks.Update(func(ts []models.Task) []models.Task {
		return append([]models.Task{task}, ts...)
	})
	return task, nil
}

func (a *App) ToggleTask(id string) (models.Task, error) {
	return change(a.repo.Tasks, id, taskID, "task", func(t models.Task) (models.Task, error) {
		t.Completed = !t.Completed
		return t, nil
	})
}

func (a *App) DeleteTask(id string) (models.Task, error) {
	return remove(a.repo.Tasks, id, taskID, "task")
}
