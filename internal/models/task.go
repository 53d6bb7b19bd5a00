package models

// Task is a single to-do item. CreatedAt is a Unix timestamp in milliseconds.
type Task struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	CreatedAt int64  `json:"createdAt"`
}
