package buttons

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"FlowerShop/cart"
	"FlowerShop/dom"
)

// Dispatcher is the delegated add-to-cart listener. It must be consulted
// before any other handler for a click.
type Dispatcher struct {
	cart   *cart.Cart
	logger *zap.Logger
}

func NewDispatcher(c *cart.Cart, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{cart: c, logger: logger}
}

// Dispatch adds the product of the buy control enclosing target. Stepper
// parts and hidden (already active) controls are left to other handlers.
// It reports whether the click was consumed.
func (d *Dispatcher) Dispatch(ctx context.Context, target *html.Node) bool {
	button := dom.Closest(target, isBuyControl)
	if button == nil {
		return false
	}
	if dom.HasClass(button, controlBtnClass) || dom.HasClass(button, quantityBtnClass) {
		return false
	}
	if dom.IsHidden(button) {
		return false
	}

	originalLabel(button)

	product, ok := ProductFromControl(button)
	if !ok {
		logProduct(d.logger, "buy control has malformed attributes", product)
	}
	d.cart.AddItem(ctx, product)
	return true
}
