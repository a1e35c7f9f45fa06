package validator

// MaxFileSize caps a single upload at 50MB.
const MaxFileSize = 50 * 1024 * 1024

// AllowedMimeTypes is the upload allow-list: regulatory documents and the
// image formats labels come in.
var AllowedMimeTypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"application/vnd.ms-excel",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"image/jpeg",
	"image/jpg",
	"image/png",
	"image/gif",
	"image/webp",
}

// IsAllowedFileType reports whether the MIME type is on the allow-list.
func IsAllowedFileType(mimeType string) bool {
	for _, t := range AllowedMimeTypes {
		if t == mimeType {
			return true
		}
	}
	return false
}

// IsValidFileSize reports whether size fits the limit. Exactly MaxFileSize
// passes; MaxFileSize+1 fails.
func IsValidFileSize(size int64) bool {
	return size > 0 && size <= MaxFileSize
}
