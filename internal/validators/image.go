package validators

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"slices"
	"strings"

	"github.com/finbank/finbank-api/internal/config"
	"github.com/gabriel-vasile/mimetype"
)

const (
	bytesInMB = 1024 * 1024

	genericContentType = "application/octet-stream"
)

// ImageInfo describes an image that passed the synchronous checks.
type ImageInfo struct {
	Format string
	Width  int
	Height int
}

// ImageValidator enforces the upload limits from [config.Upload].
type ImageValidator struct {
	cfg config.Upload
}

func NewImageValidator(cfg config.Upload) *ImageValidator {
	return &ImageValidator{cfg: cfg}
}

// CheckImage runs, in order: emptiness, size, decodability of the header,
// format, dimensions, pixel budget and a full decode. The first failing
// check determines the error.
func (v *ImageValidator) CheckImage(data []byte) (ImageInfo, error) {
	if len(data) == 0 {
		return ImageInfo{}, imageError("Image file is empty or corrupted.")
	}

	if err := v.CheckSize(len(data)); err != nil {
		return ImageInfo{}, err
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return ImageInfo{}, imageError("File is not a valid image.")
	}

	if !v.formatAllowed(format) {
		return ImageInfo{}, imageError(fmt.Sprintf("Unsupported image format: %s. Allowed formats are %s.",
			strings.ToUpper(format), v.allowedFormatsList()))
	}

	if cfg.Width > v.cfg.MaxDimension || cfg.Height > v.cfg.MaxDimension {
		return ImageInfo{}, imageError(fmt.Sprintf("Image dimensions %dx%d exceed the maximum allowed dimension of %dpx",
			cfg.Width, cfg.Height, v.cfg.MaxDimension))
	}

	if v.cfg.MaxImagePixels > 0 && cfg.Width*cfg.Height > v.cfg.MaxImagePixels {
		return ImageInfo{}, imageError("Image is too large to process")
	}

	if _, _, err = image.Decode(bytes.NewReader(data)); err != nil {
		return ImageInfo{}, imageError(fmt.Sprintf("Image file is corrupted or unreadable: %v", err))
	}

	return ImageInfo{Format: format, Width: cfg.Width, Height: cfg.Height}, nil
}

// CheckSize rejects payloads above MaxFileSize.
func (v *ImageValidator) CheckSize(size int) error {
	if int64(size) <= v.cfg.MaxFileSize {
		return nil
	}
	return imageError(fmt.Sprintf("File size %.2f MB exceeds the maximum allowed size of %.2f MB",
		float64(size)/bytesInMB, float64(v.cfg.MaxFileSize)/bytesInMB))
}

// CheckContentType rejects content types outside AllowedMIMETypes.
func (v *ImageValidator) CheckContentType(contentType string) error {
	if slices.Contains(v.cfg.AllowedMIMETypes, contentType) {
		return nil
	}
	return imageError(fmt.Sprintf("File type %s is not allowed. Allowed types: %s",
		contentType, strings.Join(v.cfg.AllowedMIMETypes, ", ")))
}

func (v *ImageValidator) ResolveContentType(declared string, data []byte) string {
	declared = strings.TrimSpace(declared)
	if declared != "" && declared != genericContentType {
		return declared
	}

	detected, _, _ := strings.Cut(mimetype.Detect(data).String(), ";")
	return detected
}

func (v *ImageValidator) formatAllowed(format string) bool {
	for _, f := range v.cfg.AllowedFormats {
		if strings.EqualFold(f, format) {
			return true
		}
	}
	return false
}

func (v *ImageValidator) allowedFormatsList() string {
	upper := make([]string, 0, len(v.cfg.AllowedFormats))
	for _, f := range v.cfg.AllowedFormats {
		upper = append(upper, strings.ToUpper(f))
	}
	return strings.Join(upper, ", ")
}
