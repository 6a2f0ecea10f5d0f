package report

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Benjakusa/salonpro-manager/internal/handler"
	reportService "github.com/Benjakusa/salonpro-manager/internal/service/report"
)

type Handler struct {
	service *reportService.Service
}

func NewHandler(service *reportService.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("/revenue/daily", h.DailyRevenue)
		reports.GET("/revenue", h.RevenueRange)
		reports.GET("/services", h.ServicePopularity)
		reports.GET("/stylists", h.StylistPerformance)
	}
}

func (h *Handler) DailyRevenue(c *gin.Context) {
	date := time.Now()
	if v := c.Query("date"); v != "" {
		parsed, err := handler.ParseDate(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid date, want YYYY-MM-DD"))
			return
		}
		date = parsed
	}

	revenue, err := h.service.DailyRevenue(c.Request.Context(), date)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(revenue))
}

// rangeWindow reads ?from= and ?to=, defaulting to the last 30 days. The
// returned window is half-open: the to day itself is excluded.
func rangeWindow(c *gin.Context) (time.Time, time.Time, bool) {
	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now

	if v := c.Query("from"); v != "" {
		parsed, err := handler.ParseDate(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid from date, want YYYY-MM-DD"))
			return from, to, false
		}
		from = parsed
	}
	if v := c.Query("to"); v != "" {
		parsed, err := handler.ParseDate(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid to date, want YYYY-MM-DD"))
			return from, to, false
		}
		to = parsed
	}
	return from, to, true
}

func (h *Handler) RevenueRange(c *gin.Context) {
	from, to, ok := rangeWindow(c)
	if !ok {
		return
	}

	report, err := h.service.RevenueRange(c.Request.Context(), from, to)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(report))
}

func (h *Handler) ServicePopularity(c *gin.Context) {
	from, to, ok := rangeWindow(c)
	if !ok {
		return
	}

	report, err := h.service.ServicePopularity(c.Request.Context(), from, to)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(report))
}

func (h *Handler) StylistPerformance(c *gin.Context) {
	from, to, ok := rangeWindow(c)
	if !ok {
		return
	}

	report, err := h.service.StylistPerformance(c.Request.Context(), from, to)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(report))
}
