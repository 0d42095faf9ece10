// Package cart owns the shopping cart state of one browser session.
//
// Every mutation persists the full item list and then notifies the
// registered listeners in registration order. Nothing here returns an
// error to the caller: unknown ids are no-ops and storage failures are
// logged and swallowed.
package cart

import (
	"context"

	"go.uber.org/zap"

	"FlowerShop/models"
)

// Persister is the storage side of a cart, satisfied by *store.Adapter.
type Persister interface {
	Get(ctx context.Context) []models.LineItem
	Set(ctx context.Context, items []models.LineItem) error
}

// Listener is notified after every persisted mutation.
type Listener func(ctx context.Context, c *Cart)

type Cart struct {
	items     []models.LineItem
	store     Persister
	listeners []Listener
	logger    *zap.Logger
}

// New hydrates a cart from its persisted record.
func New(ctx context.Context, store Persister, logger *zap.Logger) *Cart {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Cart{store: store, logger: logger}
	c.items = store.Get(ctx)
	return c
}

// OnChange registers l to run after each mutation.
func (c *Cart) OnChange(l Listener) {
	c.listeners = append(c.listeners, l)
}

// AddItem increments the quantity of an existing line or appends a new one
// with quantity 1. An existing line keeps its first-seen name, price and image.
func (c *Cart) AddItem(ctx context.Context, p models.Product) {
	if i := c.index(p.ID); i >= 0 {
		c.items[i].Quantity++
	} else {
		c.items = append(c.items, models.LineItem{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			Image:    p.Image,
			Quantity: 1,
		})
	}
	c.changed(ctx)
}

func (c *Cart) RemoveItem(ctx context.Context, id int) {
	if i := c.index(id); i >= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
	}
	c.changed(ctx)
}

// UpdateQuantity sets the quantity of a present line to max(1, quantity).
// It never removes a line.
func (c *Cart) UpdateQuantity(ctx context.Context, id, quantity int) {
	i := c.index(id)
	if i < 0 {
		return
	}
	if quantity < 1 {
		quantity = 1
	}
	c.items[i].Quantity = quantity
	c.changed(ctx)
}

func (c *Cart) Clear(ctx context.Context) {
	c.items = []models.LineItem{}
	c.changed(ctx)
}

// Checkout confirms a non-empty cart by emptying it. No order is recorded.
func (c *Cart) Checkout(ctx context.Context) bool {
	if len(c.items) == 0 {
		return false
	}
	c.logger.Info("checkout",
		zap.Int("lines", len(c.items)),
		zap.Int("items", c.TotalItems()),
		zap.Int("total", c.Total()),
	)
	c.Clear(ctx)
	return true
}

// Total is the sum of price times quantity, saturating on overflow.
func (c *Cart) Total() int {
	total := 0
	for _, item := range c.items {
		total = models.AddSat(total, item.Subtotal())
	}
	return total
}

func (c *Cart) TotalItems() int {
	n := 0
	for _, item := range c.items {
		n = models.AddSat(n, item.Quantity)
	}
	return n
}

// Item looks up the line for id.
func (c *Cart) Item(id int) (models.LineItem, bool) {
	if i := c.index(id); i >= 0 {
		return c.items[i], true
	}
	return models.LineItem{}, false
}

// Quantity is the quantity held for id, 0 when absent.
func (c *Cart) Quantity(id int) int {
	item, _ := c.Item(id)
	return item.Quantity
}

// Items returns a copy of the lines in first-add order.
func (c *Cart) Items() []models.LineItem {
	out := make([]models.LineItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) index(id int) int {
	for i := range c.items {
		if c.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (c *Cart) changed(ctx context.Context) {
	if err := c.store.Set(ctx, c.items); err != nil {
		c.logger.Warn("persist cart failed", zap.Error(err))
	}
	for _, l := range c.listeners {
		l(ctx, c)
	}
}
