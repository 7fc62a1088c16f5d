package makerspace

import (
	"fmt"
	"strings"
)

// Registry is the read-only equipment catalog. Records are copied in and
// out, so nothing a caller does to a returned value reaches the registry.
type Registry struct {
	items []Equipment
	byID  map[string]int
}

// NewRegistry validates every record and rejects duplicate ids.
func NewRegistry(items []Equipment) (*Registry, error) {
	r := &Registry{
		items: make([]Equipment, 0, len(items)),
		byID:  make(map[string]int, len(items)),
	}
	for _, e := range items {
		if err := e.Validate(); err != nil {
			return nil, err
		}
		if _, dup := r.byID[e.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate equipment id %q", ErrInvalidConfiguration, e.ID)
		}
		r.byID[e.ID] = len(r.items)
		r.items = append(r.items, e.clone())
	}
	return r, nil
}

func (r *Registry) Get(id string) (Equipment, error) {
	i, ok := r.byID[id]
	if !ok {
		return Equipment{}, fmt.Errorf("equipment %q: %w", id, ErrNotFound)
	}
	return r.items[i].clone(), nil
}

// All returns every record in insertion order.
func (r *Registry) All() []Equipment {
	out := make([]Equipment, 0, len(r.items))
	for _, e := range r.items {
		out = append(out, e.clone())
	}
	return out
}

func (r *Registry) Len() int { return len(r.items) }

// Filter holds optional constraints; zero values match everything.
type Filter struct {
	CategoryID Category
	Location   Location
	Status     EquipmentStatus
	SearchText string
}

// Filter returns the records matching every set constraint, in insertion order.
func (r *Registry) Filter(f Filter) []Equipment {
	needle := strings.ToLower(f.SearchText)

	out := []Equipment{}
	for _, e := range r.items {
		if f.CategoryID != "" && e.CategoryID != f.CategoryID {
			continue
		}
		if f.Location != "" && e.Location != f.Location {
			continue
		}
		if f.Status != "" && e.Status != f.Status {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(e.Name), needle) &&
			!strings.Contains(strings.ToLower(e.Description), needle) {
			continue
		}
		out = append(out, e.clone())
	}
	return out
}
