package models

// TaskCategory classifies a task by the discipline it belongs to.
type TaskCategory string

const (
	CategoryDeveloper      TaskCategory = "Developer"
	CategoryDesigner       TaskCategory = "Designer"
	CategoryMotionDesigner TaskCategory = "Motion Designer"
	CategoryWriter         TaskCategory = "Writer"
	CategoryProducer       TaskCategory = "Producer"
	CategoryQA             TaskCategory = "QA Tester"
	CategoryArt            TaskCategory = "Art"
	CategorySound          TaskCategory = "Sound"
)

// AllCategories lists every task category in display order.
var AllCategories = []TaskCategory{
	CategoryDeveloper,
	CategoryDesigner,
	CategoryMotionDesigner,
	CategoryWriter,
	CategoryProducer,
	CategoryQA,
	CategoryArt,
	CategorySound,
}

// IsValid reports whether c is one of the known categories.
func (c TaskCategory) IsValid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Task is a card on the board. Column must always reference an existing
// column id. AssigneeID is a weak reference: nil means unassigned, and a
// value that no longer resolves to a team member is treated as unassigned
// by readers.
type Task struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	AssigneeID  *string      `json:"assigneeId"`
	Column      string       `json:"column"`
	Category    TaskCategory `json:"category"`
}
