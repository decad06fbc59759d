package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const StatusTxtOK = "OK"

// Response 统一返回结构 {status_code, status_txt, data}
type Response struct {
	Code int    `json:"status_code"`
	Msg  string `json:"status_txt"`
	Data any    `json:"data,omitempty"`
}

// Success 200 + data; data 为 nil 时也保留 data 字段
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{
		"status_code": http.StatusOK,
		"status_txt":  StatusTxtOK,
		"data":        data,
	})
}

// Fail 错误返回, HTTP 状态码与 status_code 一致
func Fail(c *gin.Context, code int, msg string) {
	c.JSON(code, Response{
		Code: code,
		Msg:  msg,
	})
}
