package state

// Item is one selectable row in a tab's root list.
type Item struct {
	ID     string
	Label  string
	Detail string
	Status string
}

// CloneItems produces a shallow copy of the provided items.
func CloneItems(items []Item) []Item {
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
