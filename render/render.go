// Package render projects a cart onto the cart panel of a page document.
package render

import (
	"context"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"FlowerShop/cart"
	"FlowerShop/currency"
	"FlowerShop/dom"
	"FlowerShop/models"
)

// Surface ids looked up in the page document.
const (
	BadgeID       = "cartBadge"
	HeaderBadgeID = "cartBadgeHeader"
	TotalID       = "cartTotal"
	ClearID       = "cartClear"
	ItemsID       = "cartItems"
	NoticeID      = "cartNotice"
)

const EmptyMessage = "Корзина пуста"

type Renderer struct {
	doc    *html.Node
	logger *zap.Logger
}

func New(doc *html.Node, logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{doc: doc, logger: logger}
}

// Render rewrites every surface from c. Missing surfaces are skipped.
func (r *Renderer) Render(ctx context.Context, c *cart.Cart) {
	totalItems := c.TotalItems()
	badge := ""
	if totalItems != 0 {
		badge = strconv.Itoa(totalItems)
	}

	for _, id := range []string{BadgeID, HeaderBadgeID} {
		if n := dom.ByID(r.doc, id); n != nil {
			dom.SetText(n, badge)
		}
	}

	if n := dom.ByID(r.doc, TotalID); n != nil {
		dom.SetText(n, currency.Label(c.Total()))
	}

	if n := dom.ByID(r.doc, ClearID); n != nil {
		dom.SetAttr(n, dom.ControlAttr, dom.ControlID("cart", "clear"))
		if c.Len() > 0 {
			dom.SetAttr(n, "style", "display: block")
		} else {
			dom.Hide(n)
		}
	}

	list := dom.ByID(r.doc, ItemsID)
	if list == nil {
		return
	}
	dom.Clear(list)
	if c.Len() == 0 {
		dom.Append(list, dom.Append(dom.Element("p", "class", "cart__empty"), dom.Text(EmptyMessage)))
		return
	}
	for _, item := range c.Items() {
		dom.Append(list, lineNode(item))
	}
}

// Notify shows msg in the notice surface, if the page has one.
func (r *Renderer) Notify(msg string) {
	if n := dom.ByID(r.doc, NoticeID); n != nil {
		dom.SetText(n, msg)
		dom.Show(n)
	}
}

func lineNode(item models.LineItem) *html.Node {
	id := strconv.Itoa(item.ID)
	quantity := strconv.Itoa(item.Quantity)

	price := currency.Label(int(item.Price)) + " x " + quantity

	controls := dom.Append(dom.Element("div", "class", "cart__item-controls"),
		dom.Append(dom.Element("button",
			"type", "button",
			"class", "cart__item-btn",
			dom.ControlAttr, dom.ControlID("cart", id, actionDecrement),
		), dom.Text("-")),
		dom.Append(dom.Element("span", "class", "cart__item-quantity"), dom.Text(quantity)),
		dom.Append(dom.Element("button",
			"type", "button",
			"class", "cart__item-btn",
			dom.ControlAttr, dom.ControlID("cart", id, actionIncrement),
		), dom.Text("+")),
	)

	info := dom.Append(dom.Element("div", "class", "cart__item-info"),
		dom.Append(dom.Element("div", "class", "cart__item-name"), dom.Text(item.Name)),
		dom.Append(dom.Element("div", "class", "cart__item-price"), dom.Text(price)),
		controls,
	)

	return dom.Append(dom.Element("div", "class", "cart__item", "data-product-line", id),
		dom.Element("img", "src", item.Image, "alt", item.Name, "class", "cart__item-image"),
		info,
		dom.Append(dom.Element("button",
			"type", "button",
			"class", "cart__item-remove",
			dom.ControlAttr, dom.ControlID("cart", id, actionRemove),
		), dom.Text("×")),
	)
}
