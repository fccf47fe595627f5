package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nanoedit/nanoedit/common"
	"github.com/nanoedit/nanoedit/common/config"
	"github.com/nanoedit/nanoedit/common/logger"
	"github.com/nanoedit/nanoedit/middleware"
	"github.com/nanoedit/nanoedit/router"
)

func main() {
	if config.GeminiAPIKey == "" {
		logger.FatalLog("GEMINI_API_KEY is not set")
	}
	if err := common.InitRedisClient(); err != nil {
		logger.FatalLog("failed to initialize Redis: " + err.Error())
	}
	if config.DebugEnabled {
		logger.SysLog("running in debug mode")
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	server := gin.New()
	server.Use(gin.Recovery())
	middleware.SetUpLogger(server)
	router.SetRouter(server)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", config.Port),
		Handler: server,
	}
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.SysLogf("server started on http://localhost:%d", config.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.FatalLog("failed to start HTTP server: " + err.Error())
		}
	}()

	<-ctx.Done()
	logger.SysLog("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.SysError("server shutdown: " + err.Error())
	}
}
