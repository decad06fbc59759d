package context

import (
	"NatureNet/pkg/log"
	"NatureNet/pkg/response"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HandlerFunc func(*gin.Context) error

// Wrap 把返回 error 的处理函数转换成 gin.HandlerFunc,
// BizError 按其 Code 作为 HTTP 状态码返回, 其他错误一律 500 且不回显错误内容
func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			// 业务错误
			var be *response.BizError
			if errors.As(err, &be) {
				if be.Code >= http.StatusInternalServerError {
					log.L.Error("request failed",
						zap.String("path", c.FullPath()),
						zap.Error(err),
						zap.NamedError("cause", be.Err),
					)
				}
				response.Fail(c, be.Code, be.Msg)
				return
			}
			log.L.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
			response.Fail(c, http.StatusInternalServerError, "internal server error")
		}
	}
}
