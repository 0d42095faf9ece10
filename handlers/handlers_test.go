package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"FlowerShop/catalog"
	"FlowerShop/middleware"
	"FlowerShop/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type cartBody struct {
	Message string `json:"message"`
	Items   []struct {
		ID       int    `json:"id"`
		Name     string `json:"name"`
		Price    int    `json:"price"`
		Quantity int    `json:"quantity"`
	} `json:"items"`
	Total      int    `json:"total"`
	TotalLabel string `json:"totalLabel"`
	TotalItems int    `json:"totalItems"`
}

// newRouter wires the handlers with a fixed cart key in place of the
// session middleware.
func newRouter(t *testing.T) (*gin.Engine, *store.MemoryStore) {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	st := store.NewMemoryStore()
	logger := zap.NewNop()

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.CartKeyKey, store.Namespace("fixed"))
		c.Next()
	})
	router.GET("/", func(c *gin.Context) { PageHandler(c, "index", st, cat, logger) })
	router.GET("/product", func(c *gin.Context) { ProductPageHandler(c, st, cat, logger) })
	router.POST("/events", func(c *gin.Context) { EventHandler(c, st, cat, logger) })
	router.GET("/api/v1/carts", func(c *gin.Context) { GetCartHandler(c, st, logger) })
	router.POST("/api/v1/carts/add", func(c *gin.Context) { AddToCartHandler(c, st, cat, logger) })
	router.POST("/api/v1/carts/update", func(c *gin.Context) { UpdateCartItemQuantityHandler(c, st, logger) })
	router.DELETE("/api/v1/carts/:productID", func(c *gin.Context) { DeleteCartItemHandler(c, st, logger) })
	router.DELETE("/api/v1/carts", func(c *gin.Context) { ClearCartHandler(c, st, logger) })
	router.POST("/api/v1/carts/checkout", func(c *gin.Context) { CheckoutHandler(c, st, logger) })
	router.GET("/api/v1/products", func(c *gin.Context) { GetProductListHandler(c, cat) })
	router.GET("/api/v1/products/categories/:slug", func(c *gin.Context) { GetProductsFromCategoryHandler(c, cat) })
	router.GET("/api/v1/products/:productID", func(c *gin.Context) { GetProductDataHandler(c, cat) })
	return router, st
}

func do(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeCart(t *testing.T, w *httptest.ResponseRecorder) cartBody {
	t.Helper()
	var body cartBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestCartAPI(t *testing.T) {
	router, _ := newRouter(t)

	w := do(router, http.MethodGet, "/api/v1/carts", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeCart(t, w).Items)
	assert.Equal(t, "0 ₽", decodeCart(t, w).TotalLabel)

	do(router, http.MethodPost, "/api/v1/carts/add", `{"productID":1}`)
	do(router, http.MethodPost, "/api/v1/carts/add", `{"productID":1}`)
	w = do(router, http.MethodPost, "/api/v1/carts/add", `{"productID":201}`)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeCart(t, w)
	require.Len(t, body.Items, 2)
	assert.Equal(t, 2, body.Items[0].Quantity)
	assert.Equal(t, 5950, body.Total)
	assert.Equal(t, "5 950 ₽", body.TotalLabel)
	assert.Equal(t, 3, body.TotalItems)

	w = do(router, http.MethodPost, "/api/v1/carts/update", `{"productID":1,"quantity":0}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, decodeCart(t, w).Items[0].Quantity)

	w = do(router, http.MethodDelete, "/api/v1/carts/201", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeCart(t, w).Items, 1)

	w = do(router, http.MethodDelete, "/api/v1/carts", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeCart(t, w).Items)
}

func TestCartAPI_Errors(t *testing.T) {
	router, _ := newRouter(t)

	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodPost, "/api/v1/carts/add", `{}`).Code)
	assert.Equal(t, http.StatusNotFound, do(router, http.MethodPost, "/api/v1/carts/add", `{"productID":4242}`).Code)
	assert.Equal(t, http.StatusNotFound, do(router, http.MethodPost, "/api/v1/carts/update", `{"productID":1,"quantity":3}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodDelete, "/api/v1/carts/abc", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodPost, "/api/v1/carts/checkout", "").Code)
}

func TestCheckout(t *testing.T) {
	router, st := newRouter(t)
	do(router, http.MethodPost, "/api/v1/carts/add", `{"productID":3}`)

	w := do(router, http.MethodPost, "/api/v1/carts/checkout", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Заказ оформлен")

	raw, err := st.Load(context.Background(), "cart:fixed")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestProductAPI(t *testing.T) {
	router, _ := newRouter(t)

	w := do(router, http.MethodGet, "/api/v1/products?limit=5&offset=2", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Products []struct {
			ID int `json:"id"`
		} `json:"products"`
		TotalCount int `json:"totalCount"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Products, 5)
	assert.Equal(t, 3, list.Products[0].ID)
	assert.Equal(t, 29, list.TotalCount)

	w = do(router, http.MethodGet, "/api/v1/products?limit=500", "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list.Products, 29)

	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodGet, "/api/v1/products?limit=x", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodGet, "/api/v1/products?offset=-1", "").Code)

	w = do(router, http.MethodGet, "/api/v1/products/categories/baskets", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list.Products, 9)
	assert.Equal(t, 101, list.Products[0].ID)
	assert.Equal(t, http.StatusNotFound, do(router, http.MethodGet, "/api/v1/products/categories/nope", "").Code)

	w = do(router, http.MethodGet, "/api/v1/products/201", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Роза красная")
	assert.Equal(t, http.StatusNotFound, do(router, http.MethodGet, "/api/v1/products/4242", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodGet, "/api/v1/products/abc", "").Code)
}

func TestPages(t *testing.T) {
	router, _ := newRouter(t)

	w := do(router, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), `data-control="buy:1:0"`)
	assert.Contains(t, w.Body.String(), "Корзина пуста")

	assert.Equal(t, http.StatusOK, do(router, http.MethodGet, "/product?id=201", "").Code)
	assert.Equal(t, http.StatusNotFound, do(router, http.MethodGet, "/product?id=4242", "").Code)
	assert.Equal(t, http.StatusNotFound, do(router, http.MethodGet, "/product", "").Code)
}

func postEvent(router *gin.Engine, form string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestEvents(t *testing.T) {
	router, _ := newRouter(t)

	w := postEvent(router, "page=index&control=buy:1:0")
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	postEvent(router, "page=index&control=buy:1:0:increment")

	w = do(router, http.MethodGet, "/api/v1/carts", "")
	body := decodeCart(t, w)
	require.Len(t, body.Items, 1)
	assert.Equal(t, 2, body.Items[0].Quantity)

	w = do(router, http.MethodGet, "/", "")
	assert.Contains(t, w.Body.String(), "×2")

	w = postEvent(router, "page=product&id=201&control=buy:201:0")
	assert.Equal(t, "/product?id=201", w.Header().Get("Location"))

	w = postEvent(router, "page=index&control=cart:checkout")
	assert.Equal(t, "/?notice=ordered", w.Header().Get("Location"))

	w = do(router, http.MethodGet, "/?notice=ordered", "")
	assert.Contains(t, w.Body.String(), "Заказ оформлен! Спасибо за покупку!")

	// unknown pages and controls fall back to the index without changes
	w = postEvent(router, "page=../admin&control=nope")
	assert.Equal(t, "/", w.Header().Get("Location"))
}
