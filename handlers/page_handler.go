package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"FlowerShop/catalog"
	"FlowerShop/middleware"
	"FlowerShop/page"
	"FlowerShop/store"
)

const noticeOrdered = "ordered"

func loadPage(c *gin.Context, name string, productID int, st store.Store, cat *catalog.Catalog, logger *zap.Logger) (*page.Page, error) {
	return page.Load(c, page.Options{
		Name:      name,
		ProductID: productID,
		Catalog:   cat,
		Store:     store.NewAdapter(st, middleware.CartKey(c), logger),
		Logger:    logger,
	})
}

func writePage(c *gin.Context, p *page.Page) {
	status := http.StatusOK
	if !p.Found {
		status = http.StatusNotFound
	}
	if c.Query("notice") == noticeOrdered {
		p.Notify(page.OrderedNotice)
	}
	c.Data(status, "text/html; charset=utf-8", []byte(p.HTML()))
}

// PageHandler serves a catalog page with the cart panel and buy controls
// in their current state.
func PageHandler(c *gin.Context, name string, st store.Store, cat *catalog.Catalog, logger *zap.Logger) {
	p, err := loadPage(c, name, 0, st, cat, logger)
	if err != nil {
		logger.Error("load page", zap.String("page", name), zap.Error(err))
		c.String(http.StatusInternalServerError, "page unavailable")
		return
	}
	writePage(c, p)
}

func ProductPageHandler(c *gin.Context, st store.Store, cat *catalog.Catalog, logger *zap.Logger) {
	productID, _ := strconv.Atoi(c.Query("id"))
	p, err := loadPage(c, "product", productID, st, cat, logger)
	if err != nil {
		logger.Error("load product page", zap.Int("product_id", productID), zap.Error(err))
		c.String(http.StatusInternalServerError, "page unavailable")
		return
	}
	writePage(c, p)
}

// EventHandler replays a click posted by the page's event form against a
// freshly loaded copy of that page and redirects back to it.
func EventHandler(c *gin.Context, st store.Store, cat *catalog.Catalog, logger *zap.Logger) {
	var form struct {
		Page    string `form:"page"`
		ID      int    `form:"id"`
		Control string `form:"control"`
	}
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, "invalid event")
		return
	}

	name := form.Page
	if !knownPage(name) {
		name = "index"
	}

	p, err := loadPage(c, name, form.ID, st, cat, logger)
	if err != nil {
		logger.Error("load page for event", zap.String("page", name), zap.Error(err))
		c.String(http.StatusInternalServerError, "page unavailable")
		return
	}

	hadItems := p.Cart().Len() > 0
	handled := p.Click(c, form.Control)
	logger.Debug("page event",
		zap.String("page", name),
		zap.String("control", form.Control),
		zap.Bool("handled", handled),
	)

	target := p.Path()
	if form.Control == "cart:checkout" && hadItems && p.Cart().Len() == 0 {
		target = withQuery(target, "notice", noticeOrdered)
	}
	c.Redirect(http.StatusSeeOther, target)
}

func knownPage(name string) bool {
	switch name {
	case "index", "catalog", "product":
		return true
	}
	return false
}

func withQuery(path, key, value string) string {
	u, err := url.Parse(path)
	if err != nil {
		return path
	}
	q := u.Query()
	q.Set(key, value)
	u.RawQuery = q.Encode()
	return u.String()
}
