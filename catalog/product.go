package catalog

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"

	"FlowerShop/buttons"
	"FlowerShop/currency"
	"FlowerShop/dom"
)

const (
	NotFoundTitle = "Товар не найден"
	backLabel     = "Вернуться к каталогу"
)

var descriptionPolicy = bluemonday.StrictPolicy()

// PopulateProduct binds product id into a product detail page. It reports
// false and renders the not-found block when id is unknown.
func (c *Catalog) PopulateProduct(doc *html.Node, id int) bool {
	p, ok := c.Get(id)
	if !ok {
		renderNotFound(doc)
		return false
	}

	if n := dom.ByID(doc, "productName"); n != nil {
		dom.SetText(n, p.Name)
	}
	if n := dom.ByID(doc, "productPrice"); n != nil {
		dom.SetText(n, currency.Label(int(p.Price)))
	}
	if n := dom.ByID(doc, "productImage"); n != nil {
		dom.SetAttr(n, "src", p.Image)
		dom.SetAttr(n, "alt", p.Name)
	}
	if n := dom.ByID(doc, "productDescription"); n != nil {
		dom.SetText(n, Description(p.Description))
	}

	if btn := dom.ByID(doc, "addToCartBtn"); btn != nil {
		if !dom.HasAttr(btn, buttons.OriginalTextAttr) {
			dom.SetAttr(btn, buttons.OriginalTextAttr, strings.TrimSpace(dom.TextContent(btn)))
		}
		dom.AddClass(btn, buttons.BuyClass)
		bindProduct(btn, p)
	}
	return true
}

// Description strips markup from a product description.
func Description(raw string) string {
	return strings.TrimSpace(html.UnescapeString(descriptionPolicy.Sanitize(raw)))
}

func renderNotFound(doc *html.Node) {
	if detail := dom.Query(doc, dom.WithClass("product-detail")); detail != nil {
		dom.AddClass(detail, "product-not-found")
	}
	content := dom.Query(doc, dom.WithClass("product-detail__content"))
	if content == nil {
		return
	}
	dom.Clear(content)
	dom.Append(content, dom.Append(dom.Element("div", "class", "product-not-found__content"),
		dom.Append(dom.Element("h2", "class", "product-not-found__title"), dom.Text(NotFoundTitle)),
		dom.Append(dom.Element("a", "href", "/", "class", "product-not-found__btn"), dom.Text(backLabel)),
	))
}
