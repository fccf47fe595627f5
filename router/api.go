package router

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/nanoedit/nanoedit/controller"
	"github.com/nanoedit/nanoedit/middleware"
)

func SetApiRouter(server *gin.Engine) {
	apiRouter := server.Group("/")
	apiRouter.Use(middleware.GlobalAPIRateLimit())
	{
		apiRouter.GET("/healthz", controller.HealthCheck)
		apiRouter.POST("/edit", middleware.EditRateLimit(), controller.RelayEdit)
		apiRouter.POST("/text", middleware.TextRateLimit(), gzip.Gzip(gzip.DefaultCompression), controller.RelayText)
	}
}
