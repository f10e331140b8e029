// Package tasks keeps the optional to-do list shown next to the timer.
package tasks

// Task is one to-do entry.
type Task struct {
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// List holds tasks in insertion order. It is not safe for concurrent
// use; both shells drive it from their single event loop.
type List struct {
	items []Task
}

// NewList creates a list from existing tasks.
func NewList(items []Task) *List {
	l := &List{items: make([]Task, len(items))}
	copy(l.items, items)
	return l
}

// Add appends a task. Empty text is ignored.
func (l *List) Add(text string) {
	if text == "" {
		return
	}
	l.items = append(l.items, Task{Text: text})
}

// Toggle flips the done flag of the task at index i. Out-of-range
// indices are ignored.
func (l *List) Toggle(i int) {
	if i < 0 || i >= len(l.items) {
		return
	}
	l.items[i].Done = !l.items[i].Done
}

// CheckFirstPending marks the first undone task as done and reports
// whether one was found. Called when a focus interval completes.
func (l *List) CheckFirstPending() bool {
	for i := range l.items {
		if !l.items[i].Done {
			l.items[i].Done = true
			return true
		}
	}
	return false
}

// Len returns the number of tasks.
func (l *List) Len() int {
	return len(l.items)
}

// Items returns a copy of the tasks in order.
func (l *List) Items() []Task {
	out := make([]Task, len(l.items))
	copy(out, l.items)
	return out
}

// Remaining counts undone tasks.
func (l *List) Remaining() int {
	var n int
	for _, t := range l.items {
		if !t.Done {
			n++
		}
	}
	return n
}
