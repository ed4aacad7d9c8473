package util

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

const (
	MimeVideo       = "video/"
	MimeOctetStream = "application/octet-stream"
)

var (
	AllowedVideoExtensions = []string{".mp4", ".mov", ".avi", ".mkv", ".wmv", ".flv", ".webm"}
)
