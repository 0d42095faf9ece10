package routers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FlowerShop/catalog"
	"FlowerShop/store"
)

func newServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cat, err := catalog.Default()
	require.NoError(t, err)
	return SetupRouters(Options{
		Store:         store.NewMemoryStore(),
		Catalog:       cat,
		CookieName:    "anonymous_cart_id",
		SessionSecret: []byte("test-secret"),
		SessionMaxAge: time.Hour,
	})
}

type browser struct {
	router  *gin.Engine
	cookies []*http.Cookie
}

func (b *browser) do(req *http.Request) *httptest.ResponseRecorder {
	for _, c := range b.cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	b.router.ServeHTTP(w, req)
	if set := w.Result().Cookies(); len(set) > 0 {
		b.cookies = set
	}
	return w
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	return b.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (b *browser) click(page, control string) *httptest.ResponseRecorder {
	form := url.Values{"page": {page}, "control": {control}}
	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return b.do(req)
}

func TestHealth(t *testing.T) {
	w := httptest.NewRecorder()
	newServer(t).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSessionsKeepSeparateCarts(t *testing.T) {
	router := newServer(t)
	alice := &browser{router: router}
	bob := &browser{router: router}

	alice.get("/")
	require.Len(t, alice.cookies, 1)
	assert.Equal(t, "anonymous_cart_id", alice.cookies[0].Name)

	w := alice.click("index", "buy:1:0")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	alice.click("index", "buy:1:0:increment")

	w = alice.get("/api/v1/carts")
	assert.Contains(t, w.Body.String(), `"totalItems":2`)

	w = bob.get("/api/v1/carts")
	assert.Contains(t, w.Body.String(), `"totalItems":0`)

	// the cart follows the cookie across pages
	w = alice.get("/catalog")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `data-control="buy:1:0:quantity"`)
	assert.Contains(t, w.Body.String(), "5 800 ₽")
}

func TestProductCatalogNeedsNoSession(t *testing.T) {
	w := httptest.NewRecorder()
	newServer(t).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/products", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Result().Cookies())
}
