package storage

type ThumbnailRepository interface {
	SaveThumbnail(canvasID string, png []byte) error
	LoadThumbnail(canvasID string) ([]byte, error)
}
