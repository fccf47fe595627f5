package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/nanoedit/nanoedit/middleware"
)

func SetRouter(server *gin.Engine) {
	server.Use(middleware.RequestId())
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"*"}
	server.Use(cors.New(corsConfig))
	SetApiRouter(server)
}
