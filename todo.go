package luminary

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// TodoCategory is the fixed set of todo categories.
type TodoCategory string

const (
	TodoWork     TodoCategory = "work"
	TodoPersonal TodoCategory = "personal"
	TodoHealth   TodoCategory = "health"
)

// ParseTodoCategory parses a string into a TodoCategory.
func ParseTodoCategory(s string) (TodoCategory, error) {
	switch TodoCategory(strings.ToLower(s)) {
	case TodoWork:
		return TodoWork, nil
	case TodoPersonal:
		return TodoPersonal, nil
	case TodoHealth:
		return TodoHealth, nil
	default:
		return "", fmt.Errorf("unknown todo category %q (want work, personal or health)", s)
	}
}

// TodoItem is one entry of the global todo list. Todos are not date-scoped.
type TodoItem struct {
	ID        string       `json:"id"`
	Text      string       `json:"text"`
	Completed bool         `json:"completed"`
	Category  TodoCategory `json:"category"`
}

// TodoList is the global ordered list of todos.
type TodoList struct {
	items []TodoItem
}

// NewTodoList creates an empty todo list.
func NewTodoList() *TodoList { return &TodoList{} }

// Items returns the todos in creation order.
func (l *TodoList) Items() []TodoItem { return l.items }

// Add appends a todo. Blank text is a no-op reported by ok=false.
func (l *TodoList) Add(text string, category TodoCategory) (TodoItem, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return TodoItem{}, false
	}
	item := TodoItem{ID: uuid.NewString(), Text: text, Category: category}
	l.items = append(l.items, item)
	return item, true
}

// Toggle flips the completed flag of the matching todo.
func (l *TodoList) Toggle(id string) bool {
	for i := range l.items {
		if l.items[i].ID == id {
			l.items[i].Completed = !l.items[i].Completed
			return true
		}
	}
	return false
}

// Delete removes the matching todo.
func (l *TodoList) Delete(id string) bool {
	for i := range l.items {
		if l.items[i].ID == id {
			l.items = append(l.items[:i:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}

func (l *TodoList) MarshalJSON() ([]byte, error) { return json.Marshal(l.items) }

func (l *TodoList) UnmarshalJSON(b []byte) error { return json.Unmarshal(b, &l.items) }
