package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/pop_field_ops/internal/service"
)

const internalErrorMessage = "internal server error"

// respondError переводит ошибку сервиса в HTTP-статус; необработанные ошибки логируются и скрываются
func respondError(c *gin.Context, log *logrus.Entry, err error) {
	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		switch svcErr.Code {
		case service.ErrorCodeNotFound:
			log.WithError(err).Warn("Resource not found")
			c.JSON(http.StatusNotFound, ErrorResponse{Error: svcErr.Message})
			return
		case service.ErrorCodeConflict:
			log.WithError(err).Warn("Uniqueness constraint violated")
			c.JSON(http.StatusConflict, ErrorResponse{Error: svcErr.Message})
			return
		case service.ErrorCodeInvalidBody:
			log.WithError(err).Warn("Invalid request")
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: svcErr.Message})
			return
		}
	}

	log.WithError(err).Error("Unhandled error")
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: internalErrorMessage})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}
