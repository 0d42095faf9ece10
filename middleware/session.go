package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"FlowerShop/jwt"
	"FlowerShop/store"
)

const (
	CartIDKey  = "CartID"
	CartKeyKey = "CartKey"
)

type SessionOptions struct {
	CookieName string
	Secret     []byte
	MaxAge     time.Duration
	Logger     *zap.Logger
}

// SessionMiddleware identifies the browser by a signed cookie, issuing a
// new anonymous cart id when the cookie is missing or invalid.
func SessionMiddleware(opts SessionOptions) gin.HandlerFunc {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		cartID := ""
		if cookie, err := c.Request.Cookie(opts.CookieName); err == nil {
			id, err := jwt.VerifyToken(opts.Secret, cookie.Value)
			if err != nil {
				logger.Debug("rejecting session cookie", zap.Error(err))
			} else {
				cartID = id
			}
		}

		if cartID == "" {
			cartID = uuid.New().String()
			token, err := jwt.GenerateToken(opts.Secret, cartID, time.Now().Add(opts.MaxAge))
			if err != nil {
				logger.Error("sign session cookie", zap.Error(err))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"message": "cannot start session",
				})
				return
			}
			http.SetCookie(c.Writer, &http.Cookie{
				Name:     opts.CookieName,
				Value:    token,
				Path:     "/",
				MaxAge:   int(opts.MaxAge.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		c.Set(CartIDKey, cartID)
		c.Set(CartKeyKey, store.Namespace(cartID))
		c.Next()
	}
}

// CartKey returns the storage key set by SessionMiddleware.
func CartKey(c *gin.Context) string {
	return c.GetString(CartKeyKey)
}
