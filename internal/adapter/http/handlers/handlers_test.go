package handlers

import (
	"net/http"
	"testing"

	"wedding_admin/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const testOwner = "owner-1"

// newTestRouter returns an engine that authenticates every request as testOwner.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.OwnerIDKey, testOwner)
		c.Next()
	})
	return r
}

func TestPing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/v1/ping", Ping)

	w := performRequest(r, http.MethodGet, "/v1/ping", "")
	if w.Code != http.StatusOK || w.Body.String() != `{"message":"pong"}` {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}
