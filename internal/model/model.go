package model

// Todo is a single task. CreatedAt is a Unix timestamp in milliseconds.
type Todo struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Notes       string `json:"notes,omitempty"`
	Completed   bool   `json:"completed"`
	ListName    string `json:"listName"`
	CreatedAt   int64  `json:"createdAt"`
	IsCommitted bool   `json:"isCommitted"`
}

// List is a named grouping of todos. Name is the natural key; todos refer to a
// list by name only.
type List struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

const (
	DefaultListName  = "Tasks"
	DefaultListIcon  = "📝"
	DefaultListColor = "#F97275"

	// NewListIcon is the icon preselected in the new-list form.
	NewListIcon = "📑"

	// CompletedListName labels the derived pseudo-list of completed todos.
	// It is never stored as a List.
	CompletedListName = "Completed"
)

func DefaultList() List {
	return List{Name: DefaultListName, Icon: DefaultListIcon, Color: DefaultListColor}
}

// ListColors is the list badge palette, in picker order (two rows of six).
var ListColors = []string{
	"#F97275", "#FB923D", "#FECB14", "#4FDC83", "#39BCF9", "#C383FB",
	"#5B6770", "#D9A69F", "#EA426A", "#008080", "#6A0DAD", "#808000",
}

// ListIcons is the glyph palette offered by the icon picker.
var ListIcons = []string{
	"📑", "📝", "✅", "⭐️", "❤️", "🎯", "🎨", "📚",
	"🏠", "🌟", "💡", "🎵", "🎮", "🍔", "🛒", "💪",
	"🎉", "✨", "🌈", "🎸", "📷", "🎬", "🎤", "🏃",
	"🚴", "🎾", "⚽️", "🏀", "🎲", "🎭", "🎪", "🌺",
	"🌸", "🍀", "🌿", "🌴", "🌙", "🌞", "🐶", "🐱",
	"🦁", "🐯", "🐮", "🐷", "🐸", "🐢", "🏈", "🏉",
	"🎳",
}

// IndexOf returns the index of v in xs, or -1.
func IndexOf(xs []string, v string) int {
	for i, x := range xs {
		if x == v {
			return i
		}
	}
	return -1
}
