package handler

import (
	"NatureNet/config"
	"NatureNet/pkg/context"
	"NatureNet/pkg/log"
	"NatureNet/pkg/response"
	"NatureNet/service"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Upload struct {
	Config        *config.Config
	UploadService service.IUploadService
}

func (u *Upload) RegisterRouter(r gin.IRouter) {
	r.POST("/upload", context.Wrap(u.UploadFile))
}

// UploadFile 单文件上传, 字段名由 upload.field 配置
func (u *Upload) UploadFile(c *gin.Context) error {
	var header *multipart.FileHeader
	if h, err := c.FormFile(u.Config.Upload.Field); err == nil {
		header = h
	}

	resp, err := u.UploadService.Upload(c.Request.Context(), header)
	if u.Config.Upload.AlwaysSucceed {
		// 旧客户端只认 {"success": true}
		if err != nil {
			log.L.Warn("upload dropped", zap.Error(err))
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
		return nil
	}
	if err != nil {
		return bizError(err)
	}
	response.Success(c, resp)
	return nil
}
