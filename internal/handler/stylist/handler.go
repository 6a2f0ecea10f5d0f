package stylist

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Benjakusa/salonpro-manager/internal/handler"
	"github.com/Benjakusa/salonpro-manager/internal/model"
	stylistService "github.com/Benjakusa/salonpro-manager/internal/service/stylist"
)

type Handler struct {
	service *stylistService.Service
}

func NewHandler(service *stylistService.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	stylists := rg.Group("/stylists")
	{
		stylists.POST("", h.CreateStylist)
		stylists.GET("", h.ListStylists)
		stylists.GET("/:id", h.GetStylist)
		stylists.PUT("/:id", h.UpdateStylist)
		stylists.POST("/:id/deactivate", h.DeactivateStylist)
		stylists.POST("/:id/activate", h.ActivateStylist)
	}
}

func (h *Handler) CreateStylist(c *gin.Context) {
	var req model.CreateStylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	stylist, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(stylist))
}

func (h *Handler) GetStylist(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid stylist ID"))
		return
	}

	stylist, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(stylist))
}

// ListStylists lists stylists, optionally only active ones (?active=true)
// or by specialty (?specialty=).
func (h *Handler) ListStylists(c *gin.Context) {
	ctx := c.Request.Context()

	if specialty := c.Query("specialty"); specialty != "" {
		stylists, err := h.service.ListBySpecialty(ctx, specialty)
		if err != nil {
			handler.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, handler.NewSuccessResponse(stylists))
		return
	}

	stylists, err := h.service.List(ctx, c.Query("active") == "true")
	if err != nil {
		handler.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(stylists))
}

func (h *Handler) UpdateStylist(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid stylist ID"))
		return
	}

	var req model.UpdateStylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	stylist, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(stylist))
}

func (h *Handler) DeactivateStylist(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid stylist ID"))
		return
	}

	stylist, err := h.service.Deactivate(c.Request.Context(), id)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(stylist))
}

func (h *Handler) ActivateStylist(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid stylist ID"))
		return
	}

	stylist, err := h.service.Activate(c.Request.Context(), id)
	if err != nil {
		handler.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(stylist))
}
