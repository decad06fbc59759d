package handler

import (
	"NatureNet/pkg/response"
	"NatureNet/service"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// bizError 把 service 的错误类型映射为 HTTP 状态码
func bizError(err error) error {
	msg := service.Message(err)
	switch {
	case errors.Is(err, service.ErrNotFound):
		return response.Wrap(http.StatusNotFound, msg, err)
	case errors.Is(err, service.ErrMissingParameters),
		errors.Is(err, service.ErrDuplicateUsername),
		errors.Is(err, service.ErrUnsupportedFileType),
		errors.Is(err, service.ErrNoFile),
		errors.Is(err, service.ErrFileTooLarge):
		return response.Wrap(http.StatusBadRequest, msg, err)
	default:
		return response.Wrap(http.StatusInternalServerError, msg, err)
	}
}

func paramID(c *gin.Context, name string) (uint64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, response.NewError(http.StatusBadRequest, "invalid "+name+": "+raw)
	}
	return id, nil
}
