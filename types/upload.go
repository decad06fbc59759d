package types

type UploadResponse struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
	Url      string `json:"url,omitempty"`
	Size     int64  `json:"size"`
}
