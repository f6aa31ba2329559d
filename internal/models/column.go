package models

// Column is a board lane. Display order is the order of the column
// collection itself.
type Column struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
