package media

import (
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/gabriel-vasile/mimetype"
)

// MaxImageBytes caps uploaded images at 30 MB.
const MaxImageBytes = 30 * 1024 * 1024

var (
	ErrTooLarge      = errors.New("image file size must be under 30 MB")
	ErrInvalidFormat = errors.New("image must be PNG or JPG format only")
)

var allowedImageTypes = []string{"image/jpeg", "image/png"}

// ValidateImage checks raw image bytes: size cap plus content sniffing. The
// declared Content-Type header is ignored; only the bytes count.
func ValidateImage(data []byte) error {
	if int64(len(data)) > MaxImageBytes {
		return ErrTooLarge
	}
	mtype := mimetype.Detect(data)
	for _, allowed := range allowedImageTypes {
		if mtype.Is(allowed) {
			return nil
		}
	}
	return fmt.Errorf("%w (got %s)", ErrInvalidFormat, mtype.String())
}

// ValidateImageUpload validates a multipart upload without reading more than
// the sniffing window into memory for the format check.
func ValidateImageUpload(fh *multipart.FileHeader) error {
	if fh.Size > MaxImageBytes {
		return ErrTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return fmt.Errorf("failed to sniff upload: %w", err)
	}
	for _, allowed := range allowedImageTypes {
		if mtype.Is(allowed) {
			return nil
		}
	}
	return fmt.Errorf("%w (got %s)", ErrInvalidFormat, mtype.String())
}
