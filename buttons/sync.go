// Package buttons keeps the buy controls of a page in step with a cart.
//
// A buy control is Idle while its product is not in the cart and Active
// (hidden behind a decrement / quantity / increment stepper) while it is.
// The stepper is built once per control and then only its quantity text
// changes, so Sync can run after every mutation.
package buttons

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"FlowerShop/cart"
	"FlowerShop/dom"
	"FlowerShop/models"
)

const (
	stepDecrement = "decrement"
	stepQuantity  = "quantity"
	stepIncrement = "increment"
)

type control struct {
	button    *html.Node
	id        string
	productID int
	valid     bool
	label     string
	state     State

	stepper  *html.Node
	quantity *html.Node
}

type Synchronizer struct {
	doc      *html.Node
	controls map[*html.Node]*control
	steppers map[*html.Node]*control
	logger   *zap.Logger
}

func NewSynchronizer(doc *html.Node, logger *zap.Logger) *Synchronizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Synchronizer{
		doc:      doc,
		controls: make(map[*html.Node]*control),
		steppers: make(map[*html.Node]*control),
		logger:   logger,
	}
}

// Sync reconciles every buy control in the document with c.
func (s *Synchronizer) Sync(ctx context.Context, c *cart.Cart) {
	seen := make(map[int]int)
	for _, button := range dom.QueryAll(s.doc, isBuyControl) {
		ctl := s.track(button, seen)
		quantity := 0
		if ctl.valid {
			quantity = c.Quantity(ctl.productID)
		}

		prev := ctl.state
		if quantity > 0 {
			s.activate(ctl, quantity)
		} else {
			s.restore(ctl)
		}
		if ctl.state != prev {
			s.logger.Debug("buy control changed state",
				zap.String("control", ctl.id),
				zap.Stringer("from", prev),
				zap.Stringer("to", ctl.state),
			)
		}
	}
}

// track returns the record of button, creating it on first sight.
func (s *Synchronizer) track(button *html.Node, seen map[int]int) *control {
	raw := dom.Attr(button, ProductIDAttr)
	productID, valid := models.ParseInt(raw)
	occurrence := seen[productID]
	seen[productID]++

	if ctl, ok := s.controls[button]; ok {
		return ctl
	}

	ctl := &control{
		button:    button,
		productID: productID,
		valid:     valid,
		label:     originalLabel(button),
	}
	ctl.id = dom.Control(button)
	if ctl.id == "" {
		ctl.id = dom.ControlID("buy", strconv.Itoa(productID), strconv.Itoa(occurrence))
		dom.SetAttr(button, dom.ControlAttr, ctl.id)
	}
	s.controls[button] = ctl
	return ctl
}

func (s *Synchronizer) activate(ctl *control, quantity int) {
	text := fmt.Sprintf("×%d", quantity)
	if ctl.stepper != nil {
		dom.SetText(ctl.quantity, text)
		ctl.state = Active
		return
	}

	minus := dom.Append(dom.Element("button",
		"type", "button",
		"class", controlBtnClass,
		dom.ControlAttr, dom.ControlID(ctl.id, stepDecrement),
	), dom.Text("−"))
	ctl.quantity = dom.Append(dom.Element("button",
		"type", "button",
		"class", quantityBtnClass+" "+addedClass,
		"style", "pointer-events: none",
		dom.ControlAttr, dom.ControlID(ctl.id, stepQuantity),
	), dom.Text(text))
	plus := dom.Append(dom.Element("button",
		"type", "button",
		"class", controlBtnClass,
		dom.ControlAttr, dom.ControlID(ctl.id, stepIncrement),
	), dom.Text("+"))

	ctl.stepper = dom.Append(dom.Element("div", "class", stepperClass), minus, ctl.quantity, plus)

	dom.Hide(ctl.button)
	dom.InsertAfter(ctl.button, ctl.stepper)
	s.steppers[ctl.stepper] = ctl
	ctl.state = Active
}

func (s *Synchronizer) restore(ctl *control) {
	if ctl.stepper != nil {
		delete(s.steppers, ctl.stepper)
		dom.Remove(ctl.stepper)
		ctl.stepper = nil
		ctl.quantity = nil
	}

	dom.SetText(ctl.button, ctl.label)
	dom.RemoveClass(ctl.button, addedClass)
	dom.Show(ctl.button)
	ctl.state = Idle
}

// Step runs a click on a stepper part. It reports whether n belongs to a
// stepper built by this synchronizer.
func (s *Synchronizer) Step(ctx context.Context, c *cart.Cart, n *html.Node) bool {
	container := dom.Closest(n, dom.WithClass(stepperClass))
	ctl, ok := s.steppers[container]
	if !ok {
		return false
	}
	part := dom.Closest(n, dom.WithAttr(dom.ControlAttr))
	if part == nil || part == container {
		return true
	}

	parts := dom.SplitControl(dom.Control(part))
	item, inCart := c.Item(ctl.productID)

	switch parts[len(parts)-1] {
	case stepDecrement:
		if inCart && item.Quantity > 1 {
			c.UpdateQuantity(ctx, ctl.productID, item.Quantity-1)
		} else if inCart {
			c.RemoveItem(ctx, ctl.productID)
		}
	case stepIncrement:
		if inCart {
			c.UpdateQuantity(ctx, ctl.productID, item.Quantity+1)
			break
		}
		product, ok := ProductFromControl(ctl.button)
		if !ok {
			logProduct(s.logger, "stepper synthesized product from malformed attributes", product)
		}
		c.AddItem(ctx, product)
	}
	return true
}
