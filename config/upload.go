package config

const (
	StorageLocal = "local"
	StorageOss   = "oss"
)

// Upload 文件上传配置
type Upload struct {
	Dir               string   `json:"dir" yaml:"dir"`
	Field             string   `json:"field" yaml:"field"`
	AllowedExtensions []string `json:"allowed_extensions" yaml:"allowed_extensions"`
	MaxSize           int64    `json:"max_size" yaml:"max_size"`
	Storage           string   `json:"storage" yaml:"storage"`
	// AlwaysSucceed 兼容旧客户端: 无论是否保存成功都返回 {"success": true}
	AlwaysSucceed bool `json:"always_succeed" yaml:"always_succeed"`
}

func (u *Upload) fillDefaults() {
	if u.Dir == "" {
		u.Dir = "uploads"
	}
	if u.Field == "" {
		u.Field = "photo"
	}
	if len(u.AllowedExtensions) == 0 {
		u.AllowedExtensions = []string{"txt", "pdf", "png", "jpg", "jpeg", "gif"}
	}
	if u.MaxSize == 0 {
		u.MaxSize = 10 << 20
	}
	if u.Storage == "" {
		u.Storage = StorageLocal
	}
}

func ProvideUploadConfig(cfg *Config) *Upload {
	return cfg.Upload
}
