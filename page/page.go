// Package page assembles one rendered storefront page around a cart: the
// document is parsed, the catalog fills it, the cart is hydrated, and the
// renderer and button synchronizer are subscribed to cart changes.
package page

import (
	"context"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"FlowerShop/buttons"
	"FlowerShop/cart"
	"FlowerShop/catalog"
	"FlowerShop/dom"
	"FlowerShop/render"
	"FlowerShop/web"
)

// OrderedNotice is shown after a successful checkout.
const OrderedNotice = "Заказ оформлен! Спасибо за покупку!"

const (
	eventFormID  = "pageEvents"
	eventPageID  = "eventPage"
	eventProduct = "eventProduct"
	checkoutID   = "cart:checkout"
)

type Options struct {
	Name      string
	ProductID int
	Catalog   *catalog.Catalog
	Store     cart.Persister
	Logger    *zap.Logger
}

type Page struct {
	Name      string
	ProductID int
	Found     bool

	doc        *html.Node
	cart       *cart.Cart
	renderer   *render.Renderer
	sync       *buttons.Synchronizer
	dispatcher *buttons.Dispatcher
	logger     *zap.Logger
}

// Load builds the page and brings it to its settled initial state.
func Load(ctx context.Context, opts Options) (*Page, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	doc, err := web.Document(opts.Name)
	if err != nil {
		return nil, err
	}

	p := &Page{
		Name:      opts.Name,
		ProductID: opts.ProductID,
		Found:     true,
		doc:       doc,
		logger:    logger,
	}

	if opts.Catalog != nil {
		if opts.Name == "product" {
			p.Found = opts.Catalog.PopulateProduct(doc, opts.ProductID)
		} else {
			opts.Catalog.Populate(doc)
		}
	}

	p.cart = cart.New(ctx, opts.Store, logger)
	p.renderer = render.New(doc, logger)
	p.sync = buttons.NewSynchronizer(doc, logger)
	p.dispatcher = buttons.NewDispatcher(p.cart, logger)

	p.cart.OnChange(p.renderer.Render)
	p.cart.OnChange(p.sync.Sync)
	p.cart.OnChange(func(context.Context, *cart.Cart) { p.bindControls() })

	p.renderer.Render(ctx, p.cart)
	p.sync.Sync(ctx, p.cart)
	p.bindEventForm()
	p.bindControls()
	return p, nil
}

// Click delivers a click on the control with the given identifier. The
// add-to-cart dispatcher sees it first, then steppers, then the cart
// panel. It reports whether any handler consumed the click.
func (p *Page) Click(ctx context.Context, controlID string) bool {
	target := dom.ByControl(p.doc, controlID)
	if target == nil {
		p.logger.Debug("click on unknown control", zap.String("page", p.Name), zap.String("control", controlID))
		return false
	}

	switch {
	case p.dispatcher.Dispatch(ctx, target):
		return true
	case p.sync.Step(ctx, p.cart, target):
		return true
	case dom.Control(target) == checkoutID:
		if p.cart.Checkout(ctx) {
			p.Notify(OrderedNotice)
		}
		return true
	default:
		return p.renderer.Dispatch(ctx, p.cart, target)
	}
}

func (p *Page) Notify(msg string) {
	p.renderer.Notify(msg)
}

func (p *Page) Cart() *cart.Cart {
	return p.cart
}

func (p *Page) Document() *html.Node {
	return p.doc
}

func (p *Page) HTML() string {
	return dom.Render(p.doc)
}

// Path is the address the page is served from.
func (p *Page) Path() string {
	switch p.Name {
	case "index":
		return "/"
	case "product":
		return "/product?id=" + strconv.Itoa(p.ProductID)
	default:
		return "/" + p.Name
	}
}

func (p *Page) bindEventForm() {
	if n := dom.ByID(p.doc, eventPageID); n != nil {
		dom.SetAttr(n, "value", p.Name)
	}
	if n := dom.ByID(p.doc, eventProduct); n != nil && p.ProductID != 0 {
		dom.SetAttr(n, "value", strconv.Itoa(p.ProductID))
	}
}

// bindControls turns every identified control into a submit button of
// the page's event form.
func (p *Page) bindControls() {
	for _, n := range dom.QueryAll(p.doc, dom.WithAttr(dom.ControlAttr)) {
		dom.SetAttr(n, "form", eventFormID)
		dom.SetAttr(n, "name", "control")
		dom.SetAttr(n, "value", dom.Control(n))
		if n.Data == "button" {
			dom.SetAttr(n, "type", "submit")
		}
	}
}
