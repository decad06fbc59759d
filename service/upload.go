package service

import (
	"NatureNet/config"
	"NatureNet/pkg/log"
	"NatureNet/pkg/upload"
	"NatureNet/types"
	"context"
	"io"
	"mime/multipart"

	"go.uber.org/zap"
)

var _ IUploadService = (*UploadService)(nil)

type IUploadService interface {
	Upload(ctx context.Context, header *multipart.FileHeader) (*types.UploadResponse, error)
}

type UploadService struct {
	Conf    *config.Upload
	Storage Storage
}

// Upload 校验扩展名并保存; 不检查文件内容是否与扩展名一致
func (s *UploadService) Upload(ctx context.Context, header *multipart.FileHeader) (*types.UploadResponse, error) {
	if header == nil || header.Filename == "" {
		return nil, newError(ErrNoFile, "no file under field %q", s.Conf.Field)
	}
	if !upload.Allowed(header.Filename, s.Conf.AllowedExtensions) {
		return nil, newError(ErrUnsupportedFileType, "file type of %s is not allowed", header.Filename)
	}
	name := upload.SecureFilename(header.Filename)
	if name == "" || !upload.Allowed(name, s.Conf.AllowedExtensions) {
		return nil, newError(ErrUnsupportedFileType, "file name %s is not allowed", header.Filename)
	}
	if s.Conf.MaxSize > 0 && header.Size > s.Conf.MaxSize {
		return nil, newError(ErrFileTooLarge, "file exceeds %d bytes", s.Conf.MaxSize)
	}

	f, err := header.Open()
	if err != nil {
		return nil, newError(ErrNoFile, "open upload: %v", err)
	}
	defer f.Close()

	var body io.Reader = f
	if s.Conf.MaxSize > 0 {
		body = io.LimitReader(f, s.Conf.MaxSize)
	}
	path, url, err := s.Storage.Save(ctx, name, body)
	if err != nil {
		return nil, storeFailure(err)
	}

	log.L.Info("file uploaded", zap.String("filename", name), zap.String("path", path), zap.Int64("size", header.Size))
	return &types.UploadResponse{
		Filename: name,
		Path:     path,
		Url:      url,
		Size:     header.Size,
	}, nil
}
