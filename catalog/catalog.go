// Package catalog serves the static product table and binds it into pages.
package catalog

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"FlowerShop/models"
)

//go:embed products.yaml
var defaultTable []byte

type Category struct {
	Slug     string `yaml:"slug" json:"slug"`
	Title    string `yaml:"title" json:"title"`
	Products []int  `yaml:"products" json:"products"`
}

type Catalog struct {
	categories []Category
	products   map[int]models.Product
	ids        []int
}

type table struct {
	Categories []Category       `yaml:"categories"`
	Products   []models.Product `yaml:"products"`
}

// Default returns the embedded product table.
func Default() (*Catalog, error) {
	return Parse(defaultTable)
}

// Parse reads a product table in the products.yaml layout.
func Parse(data []byte) (*Catalog, error) {
	var t table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse product table: %w", err)
	}

	c := &Catalog{
		categories: t.Categories,
		products:   make(map[int]models.Product, len(t.Products)),
	}
	for _, p := range t.Products {
		if _, dup := c.products[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %d", p.ID)
		}
		c.products[p.ID] = p
		c.ids = append(c.ids, p.ID)
	}
	sort.Ints(c.ids)
	return c, nil
}

func (c *Catalog) Get(id int) (models.Product, bool) {
	p, ok := c.products[id]
	return p, ok
}

// List pages through products ordered by id.
func (c *Catalog) List(offset, limit int) []models.Product {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(c.ids) || limit <= 0 {
		return []models.Product{}
	}
	end := min(offset+limit, len(c.ids))

	out := make([]models.Product, 0, end-offset)
	for _, id := range c.ids[offset:end] {
		out = append(out, c.products[id])
	}
	return out
}

func (c *Catalog) Len() int {
	return len(c.ids)
}

func (c *Catalog) Categories() []Category {
	return c.categories
}

// Category returns the products of a category in display order. Ids
// missing from the table are skipped.
func (c *Catalog) Category(slug string) ([]models.Product, bool) {
	for _, cat := range c.categories {
		if cat.Slug != slug {
			continue
		}
		out := make([]models.Product, 0, len(cat.Products))
		for _, id := range cat.Products {
			if p, ok := c.products[id]; ok {
				out = append(out, p)
			}
		}
		return out, true
	}
	return nil, false
}
