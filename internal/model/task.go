package model

// Task is a single to-do item.
type Task struct {
	// ID is assigned once by the list that created the task and never
	// reused. It is the only stable handle on a task; positions shift as
	// tasks move between the active list and the bin.
	ID int `json:"id"`

	// Text is the trimmed content entered by the user.
	Text string `json:"text"`

	// Completed is toggled while the task is active and carried unchanged
	// through the bin.
	Completed bool `json:"completed"`
}
