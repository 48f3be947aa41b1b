package api

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stockdash/internal/domain"
	"stockdash/internal/logger"
	"stockdash/internal/runcache"
	"stockdash/pkg/simbackend"
)

type ApiHandler struct {
	SimClient simbackend.Client
	RunCache  *runcache.Cache
	JwtSecret string
}

func (m ApiHandler) StartApi(port int) error {
	return m.buildRouter().Run(fmt.Sprintf(":%d", port))
}

func (m ApiHandler) buildRouter() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(func(ctx *gin.Context) {
		ctx.Set(logger.ContextKey, zap.S())
		ctx.Next()
	})
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to stockdash"})
	})
	router.POST("/segments", m.segments)
	router.POST("/calendarReturns", m.calendarReturns)
	router.POST("/periodStatistics", m.periodStatistics)
	router.POST("/runSimulation", m.runSimulation)
	router.GET("/runs/:runId", m.getRun)
	router.POST("/chart", m.chart)

	return router
}

// returnErrorJson maps the error taxonomy onto status codes: a rejected
// input is the caller's fault, an empty aggregation is "nothing to show",
// everything else is on us.
func returnErrorJson(err error, c *gin.Context) {
	code := 500
	if errors.Is(err, domain.ErrInvalidInput) {
		code = 400
	} else if errors.Is(err, domain.ErrEmptyInput) {
		code = 422
	}
	returnErrorJsonCode(err, c, code)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	zap.S().Error(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	start := time.Now().UTC()
	ctx.Next()
	zap.S().Infow("handled request",
		"method", ctx.Request.Method,
		"route", ctx.Request.URL.Path,
		"status", ctx.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
		"clientIp", ctx.ClientIP(),
	)
}
