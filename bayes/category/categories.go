package category

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCategories is returned when a category set is created without names.
	ErrNoCategories = errors.New("no categories declared")
	// ErrInvalidName is returned for empty or duplicate category names.
	ErrInvalidName = errors.New("invalid category name")
)

// Categories represents a fixed, ordered set of categories and enables us to interact with them.
type Categories struct {
	names      []string
	categories map[string]*Category // Map of category names to categories
}

// NewCategories returns a pointer to a instance of type Categories holding
// one empty category per name, in declaration order.
func NewCategories(names []string) (*Categories, error) {
	if len(names) == 0 {
		return nil, ErrNoCategories
	}

	cats := &Categories{
		names:      make([]string, 0, len(names)),
		categories: make(map[string]*Category, len(names)),
	}
	for _, name := range names {
		if name == "" {
			return nil, fmt.Errorf("%w: empty name", ErrInvalidName)
		}
		if _, ok := cats.categories[name]; ok {
			return nil, fmt.Errorf("%w: duplicate %q", ErrInvalidName, name)
		}
		cats.names = append(cats.names, name)
		cats.categories[name] = NewCategory(name)
	}

	return cats, nil
}

// LookupCategory returns a category without creating it.
func (cats *Categories) LookupCategory(name string) (*Category, bool) {
	cat, ok := cats.categories[name]
	return cat, ok
}

// Names returns category names in declaration order.
func (cats *Categories) Names() []string {
	return append([]string(nil), cats.names...)
}

// Len returns the number of categories.
func (cats *Categories) Len() int {
	return len(cats.names)
}
