package storage

// FileStore abstracts the image hosting used for capsule images, letter
// attachments and album photos.
type FileStore interface {
	UploadFile(file []byte, filename string, folder string) (string, error)
	DeleteFile(publicID string, folder string) error
}
