package service

import (
	"NatureNet/config"
	"NatureNet/pkg/log"
	ossclient "NatureNet/pkg/oss"
	"NatureNet/pkg/snowflake"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"go.uber.org/zap"
)

// Storage 上传文件的落地位置
type Storage interface {
	// Save 写入 name, 返回保存路径和对外访问地址(可能为空)
	Save(ctx context.Context, name string, r io.Reader) (path string, url string, err error)
}

// NewStorage 按 upload.storage 选择本地目录或 OSS
func NewStorage(cfg *config.Config) (Storage, error) {
	switch cfg.Upload.Storage {
	case config.StorageLocal:
		return &LocalStorage{Dir: cfg.Upload.Dir}, nil
	case config.StorageOss:
		return NewOssStorage(cfg.Oss), nil
	default:
		return nil, fmt.Errorf("unsupported upload storage %q", cfg.Upload.Storage)
	}
}

// LocalStorage 写到固定目录, 同名文件后写覆盖先写; 写入失败不留半截文件
type LocalStorage struct {
	Dir string
}

func (s *LocalStorage) Save(_ context.Context, name string, r io.Reader) (string, string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", "", err
	}
	dst := filepath.Join(s.Dir, name)
	f, err := os.Create(dst)
	if err != nil {
		return "", "", err
	}

	_, err = io.Copy(f, r)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(dst)
		log.L.Warn("local storage write failed", zap.String("path", dst), zap.Error(err))
		return "", "", err
	}
	return dst, "", nil
}

type OssStorage struct {
	Client     *oss.Client
	BucketName string
	PublicHost string
}

func NewOssStorage(cfg *config.OssConfig) *OssStorage {
	host := cfg.PublicHost
	if host == "" {
		host = fmt.Sprintf("%s.%s", cfg.Bucket, cfg.Endpoint)
	}
	return &OssStorage{
		Client:     ossclient.NewClient(cfg),
		BucketName: cfg.Bucket,
		PublicHost: host,
	}
}

// Save key 形如 uploads/2006/01/02/<id>_<name>
func (s *OssStorage) Save(ctx context.Context, name string, r io.Reader) (string, string, error) {
	objectKey := ObjectKey(time.Now(), snowflake.GenID(), name)
	if _, err := s.Client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket: oss.Ptr(s.BucketName),
		Key:    oss.Ptr(objectKey),
		Body:   r,
	}); err != nil {
		log.L.Error("oss put object", zap.String("key", objectKey), zap.Error(err))
		return "", "", err
	}
	return objectKey, fmt.Sprintf("https://%s/%s", s.PublicHost, objectKey), nil
}

func ObjectKey(now time.Time, id int64, name string) string {
	return fmt.Sprintf("uploads/%s/%d_%s", now.Format("2006/01/02"), id, name)
}
