package catalog

import (
	"errors"
	"sort"
	"strings"
	"sync"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// Catalog is the in-memory product store backing the storefront. Records
// are loaded once at startup and never mutated, so reads only need the
// lock to guard against a concurrent Load.
type Catalog struct {
	mu    sync.RWMutex
	byID  map[string]int
	items []Product
}

func New(products []Product) *Catalog {
	c := &Catalog{}
	c.Load(products)
	return c
}

// Load replaces the full product set. Later duplicates of an ID win,
// matching how the seed data is assembled.
func (c *Catalog) Load(products []Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make([]Product, 0, len(products))
	c.byID = make(map[string]int, len(products))
	for _, p := range products {
		if i, ok := c.byID[p.ID]; ok {
			c.items[i] = p
			continue
		}
		c.byID[p.ID] = len(c.items)
		c.items = append(c.items, p)
	}
}

func (c *Catalog) Get(id string) (Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.byID[id]
	if !ok {
		return Product{}, ErrProductNotFound
	}
	return c.items[i], nil
}

// List returns all products sorted by name for stable rendering.
func (c *Catalog) List() []Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Product, len(c.items))
	copy(out, c.items)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Search does a case-insensitive substring match over name, brand and
// category, which is all the storefront's search-as-you-type needs.
func (c *Catalog) Search(query string) []Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []Product
	for _, p := range c.items {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Brand), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			out = append(out, p)
		}
	}
	return out
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
