package models

// MistakeEntry is a buried mistake in the graveyard. IsExorcised marks it as
// reviewed; it has no other effect.
type MistakeEntry struct {
	ID          string `json:"id"`
	Subject     string `json:"subject"`
	Chapter     string `json:"chapter"`
	Tag         string `json:"tag"`
	Correction  string `json:"correction"`
	IsExorcised bool   `json:"isExorcised"`
	CreatedAt   int64  `json:"createdAt"`
}
