package catalog

import (
	"strconv"

	"golang.org/x/net/html"

	"FlowerShop/buttons"
	"FlowerShop/currency"
	"FlowerShop/dom"
	"FlowerShop/models"
)

const (
	listClass = "catalog__list"
	itemClass = "catalog__list-item"
	menuClass = "catalog-menu__item"
)

// Populate fills every category section present in doc with product cards.
// Menu items already in a list are kept.
func (c *Catalog) Populate(doc *html.Node) {
	for _, cat := range c.categories {
		section := dom.ByID(doc, cat.Slug)
		if section == nil {
			continue
		}
		list := dom.Query(section, dom.WithClass(listClass))
		if list == nil {
			continue
		}

		for _, card := range dom.QueryAll(list, dom.WithClass(itemClass)) {
			if !dom.HasClass(card, menuClass) {
				dom.Remove(card)
			}
		}

		products, _ := c.Category(cat.Slug)
		for _, p := range products {
			dom.Append(list, Card(p))
		}
	}
}

// Card builds the catalog card of p with its buy control.
func Card(p models.Product) *html.Node {
	id := strconv.Itoa(p.ID)

	content := dom.Append(dom.Element("div", "class", "product-info__content"),
		dom.Append(dom.Element("p", "class", "product-info__name"), dom.Text(p.Name)),
		dom.Append(dom.Element("p", "class", "product-info__price"), dom.Text(currency.Label(int(p.Price)))),
	)

	info := dom.Append(dom.Element("div", "class", "product-info"),
		content,
		dom.Append(BuyButton(p, "product-info__btn btn"), dom.Text(buttons.DefaultLabel)),
	)

	return dom.Append(dom.Element("a", "href", "/product?id="+id, "class", itemClass),
		dom.Element("img", "src", p.Image, "width", "350", "alt", p.Name),
		info,
	)
}

// BuyButton builds an empty buy control carrying the data-product-* attributes.
func BuyButton(p models.Product, class string) *html.Node {
	n := dom.Element("button", "type", "button", "class", class)
	bindProduct(n, p)
	return n
}

func bindProduct(n *html.Node, p models.Product) {
	dom.SetAttr(n, buttons.ProductIDAttr, strconv.Itoa(p.ID))
	dom.SetAttr(n, buttons.ProductNameAttr, p.Name)
	dom.SetAttr(n, buttons.ProductPriceAttr, strconv.Itoa(int(p.Price)))
	dom.SetAttr(n, buttons.ProductImageAttr, p.Image)
}
