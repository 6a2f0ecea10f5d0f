package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Benjakusa/salonpro-manager/pkg/errors"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Error writes err as a JSON error response with the HTTP status implied by
// its error code. Every error in the taxonomy is recoverable: the caller
// gets a message and may retry with corrected input.
func Error(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch apperrors.CodeOf(err) {
	case apperrors.ErrNotFound:
		status = http.StatusNotFound
	case apperrors.ErrDuplicate, apperrors.ErrConflict, apperrors.ErrReferentialIntegrity:
		status = http.StatusConflict
	case apperrors.ErrInvalidStatus, apperrors.ErrBadRequest:
		status = http.StatusBadRequest
	}
	c.JSON(status, NewErrorResponse(err.Error()))
}

// ParseDate parses a YYYY-MM-DD query value.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", value, time.Local)
}
