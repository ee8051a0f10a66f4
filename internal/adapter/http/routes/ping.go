package routes

import (
	"wedding_admin/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathPing = "/ping"

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}
