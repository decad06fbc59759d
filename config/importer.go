package config

type Importer struct {
	File string `json:"file" yaml:"file"`
	// Deployment 只导入站点和场景, 账号只建一个 default
	Deployment bool `json:"deployment" yaml:"deployment"`
	// Reset 导入前删表重建
	Reset bool `json:"reset" yaml:"reset"`
}
