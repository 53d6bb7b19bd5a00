package derive

import (
	"math"

	"github.com/julianstephens/lifeos/internal/models"
)

// Efficiency is round(100 * completed / total), or 0 for an empty list.
func Efficiency(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

func CompletedCount(tasks []models.Task) int {
	n := 0
	for _, t := range tasks {
		if t.Completed {
			n++
		}
	}
	return n
}

func TaskEfficiency(tasks []models.Task) int {
	return Efficiency(CompletedCount(tasks), len(tasks))
}

// SplitTasks separates active from completed tasks, keeping stored order.
func SplitTasks(tasks []models.Task) (active, completed []models.Task) {
	active = []models.Task{}
	completed = []models.Task{}
	for _, t := range tasks {
		if t.Completed {
			completed = append(completed, t)
		} else {
			active = append(active, t)
		}
	}
	return active, completed
}
