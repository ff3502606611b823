package routes

import (
	"sysinfo-api/internal/controllers"
	"sysinfo-api/internal/middleware"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the engine serving the sysinfo API.
// Only exact method and path matches are routed; everything else is a 404.
func NewRouter(collector controllers.Collector) *gin.Engine {
	r := gin.New()
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.HandleMethodNotAllowed = false

	r.Use(gin.Logger())
	r.Use(middleware.RecoveryMiddleware())
	r.Use(middleware.SecurityHeadersMiddleware())

	RegisterSysinfoRoutes(r, collector)
	r.NoRoute(controllers.NotFound)

	return r
}

func RegisterSysinfoRoutes(r *gin.Engine, collector controllers.Collector) {
	v1 := r.Group("/api/v1")
	{
		v1.GET("/sysinfo", controllers.GetSysInfo(collector))
	}
}
