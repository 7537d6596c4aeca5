package state

// Field is one labelled value shown on a detail screen.
type Field struct {
	Label string
	Value string
}

// Entry is a catalog row: a chat, device, action or integration.
type Entry struct {
	ID       string
	Title    string
	Subtitle string
	Status   string
	Fields   []Field
}

type CatalogStore interface {
	Entries() []Entry
	SetEntries([]Entry)
	Find(id string) (Entry, bool)
	Len() int
}

type catalogStore struct {
	entries []Entry
}

func NewCatalogStore() CatalogStore {
	return &catalogStore{}
}

func (s *catalogStore) Entries() []Entry {
	return cloneEntries(s.entries)
}

func (s *catalogStore) SetEntries(entries []Entry) {
	s.entries = cloneEntries(entries)
}

// Find looks an entry up by id. Ids are opaque, so a miss is not an error.
func (s *catalogStore) Find(id string) (Entry, bool) {
	for _, e := range s.entries {
		if e.ID == id {
			return cloneEntry(e), true
		}
	}
	return Entry{}, false
}

func (s *catalogStore) Len() int {
	return len(s.entries)
}

func cloneEntries(entries []Entry) []Entry {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]Entry, len(entries))
	for i, e := range entries {
		dup[i] = cloneEntry(e)
	}
	return dup
}

func cloneEntry(e Entry) Entry {
	if len(e.Fields) > 0 {
		fields := make([]Field, len(e.Fields))
		copy(fields, e.Fields)
		e.Fields = fields
	}
	return e
}

// Catalog groups the stores backing the four list tabs.
type Catalog struct {
	Chats        CatalogStore
	Devices      CatalogStore
	Actions      CatalogStore
	Integrations CatalogStore
}

// NewCatalog returns a catalog with empty stores.
func NewCatalog() *Catalog {
	return &Catalog{
		Chats:        NewCatalogStore(),
		Devices:      NewCatalogStore(),
		Actions:      NewCatalogStore(),
		Integrations: NewCatalogStore(),
	}
}
