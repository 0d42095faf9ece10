package render

import (
	"context"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"FlowerShop/cart"
	"FlowerShop/dom"
)

const (
	actionDecrement = "decrement"
	actionIncrement = "increment"
	actionRemove    = "remove"
	actionClear     = "clear"
)

// Dispatch runs the cart panel control n against c. It reports whether
// n was a cart panel control.
func (r *Renderer) Dispatch(ctx context.Context, c *cart.Cart, n *html.Node) bool {
	parts := dom.SplitControl(dom.Control(n))
	if len(parts) < 2 || parts[0] != "cart" {
		return false
	}

	if len(parts) == 2 {
		if parts[1] != actionClear {
			return false
		}
		if c.Len() > 0 {
			c.Clear(ctx)
		}
		return true
	}

	id, err := strconv.Atoi(parts[1])
	if err != nil {
		r.logger.Debug("ignoring malformed cart control", zap.String("control", dom.Control(n)))
		return false
	}
	item, ok := c.Item(id)

	switch parts[2] {
	case actionDecrement:
		if ok {
			c.UpdateQuantity(ctx, id, item.Quantity-1)
		}
	case actionIncrement:
		if ok {
			c.UpdateQuantity(ctx, id, item.Quantity+1)
		}
	case actionRemove:
		c.RemoveItem(ctx, id)
	default:
		return false
	}
	return true
}
