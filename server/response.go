package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/kbukum/recordkit/errors"
)

// DataResponse is the standard success envelope.
type DataResponse struct {
	Data  any `json:"data"`
	Count int `json:"count,omitempty"`
}

// RespondOK sends a 200 response wrapping data.
func RespondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, DataResponse{Data: data})
}

// RespondOKWithCount sends a 200 response with data and a record count.
func RespondOKWithCount(c *gin.Context, data any, count int) {
	c.JSON(http.StatusOK, DataResponse{Data: data, Count: count})
}

// RespondWithError inspects err: if it is an *apperrors.AppError the status
// and structured body are derived automatically; otherwise a generic 500 is sent.
func RespondWithError(c *gin.Context, err error) {
	if appErr, ok := apperrors.AsAppError(err); ok {
		c.JSON(appErr.HTTPStatus, appErr.ToResponse())
		return
	}
	c.JSON(http.StatusInternalServerError, apperrors.Internal(err).ToResponse())
}
