package buttons

import (
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"FlowerShop/dom"
	"FlowerShop/models"
)

// Attributes and classes every purchasable control exposes.
const (
	BuyClass         = "product-info__btn"
	ProductIDAttr    = "data-product-id"
	ProductNameAttr  = "data-product-name"
	ProductPriceAttr = "data-product-price"
	ProductImageAttr = "data-product-image"
	OriginalTextAttr = "data-original-text"

	DefaultLabel = "Купить"
)

const (
	stepperClass     = "product-info__controls"
	controlBtnClass  = "product-info__control-btn"
	quantityBtnClass = "product-info__quantity-btn"
	addedClass       = "product-info__btn--added"
)

// State is the display state of one buy control.
type State int

const (
	Idle State = iota
	Active
)

func (s State) String() string {
	if s == Active {
		return "active"
	}
	return "idle"
}

// isBuyControl selects elements carrying a product id and the buy marker class.
var isBuyControl = dom.All(dom.WithAttr(ProductIDAttr), dom.WithClass(BuyClass))

// ProductFromControl reads the descriptive data-product-* attributes of n.
// ok is false when the id or price is not an integer; the product is
// still returned with those fields coerced to 0.
func ProductFromControl(n *html.Node) (p models.Product, ok bool) {
	id, idOK := models.ParseInt(dom.Attr(n, ProductIDAttr))
	price, priceOK := models.ParseInt(dom.Attr(n, ProductPriceAttr))
	return models.Product{
		ID:    id,
		Name:  dom.Attr(n, ProductNameAttr),
		Price: models.Number(price),
		Image: dom.Attr(n, ProductImageAttr),
	}, idOK && priceOK
}

// originalLabel returns the remembered label of a buy control, recording
// the current text the first time it is seen.
func originalLabel(n *html.Node) string {
	if label, ok := dom.LookupAttr(n, OriginalTextAttr); ok && label != "" {
		return label
	}
	label := strings.TrimSpace(dom.TextContent(n))
	if label == "" {
		label = DefaultLabel
	}
	dom.SetAttr(n, OriginalTextAttr, label)
	return label
}

func logProduct(logger *zap.Logger, msg string, p models.Product) {
	logger.Warn(msg,
		zap.Int("product_id", p.ID),
		zap.String("name", p.Name),
		zap.Int("price", int(p.Price)),
	)
}
