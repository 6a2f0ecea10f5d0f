package router

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Benjakusa/salonpro-manager/internal/handler"
	"github.com/Benjakusa/salonpro-manager/internal/middleware"
	"github.com/Benjakusa/salonpro-manager/pkg/metrics"
)

// Handler is anything that can register its routes on a group.
type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

type Router struct {
	engine   *gin.Engine
	h        *handler.Handler
	handlers []Handler
	metrics  *metrics.Metrics
	cors     middleware.CORSConfig
}

func NewRouter(h *handler.Handler, m *metrics.Metrics, cors middleware.CORSConfig, handlers ...Handler) *Router {
	gin.SetMode(gin.ReleaseMode)

	return &Router{
		engine:   gin.New(),
		h:        h,
		handlers: handlers,
		metrics:  m,
		cors:     cors,
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Setup wires middleware, the health and metrics endpoints, and every
// registered handler under /api/v1.
func (r *Router) Setup() {
	r.engine.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.CORS(r.cors),
	)
	if r.metrics != nil {
		r.engine.Use(r.instrument())
	}

	r.engine.GET("/health", r.h.HealthCheck)
	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.engine.Group("/api/v1")
	for _, h := range r.handlers {
		h.RegisterRoutes(api)
	}
}

func (r *Router) instrument() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		r.metrics.HTTPRequestTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		r.metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path, status).
			Observe(time.Since(start).Seconds())
		if c.Writer.Status() >= 400 {
			r.metrics.HTTPErrorTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		}
	}
}
