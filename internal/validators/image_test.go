package validators

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/finbank/finbank-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testUploadConfig() config.Upload {
	return config.Upload{
		AllowedMIMETypes: []string{"image/jpeg", "image/png", "image/jpg"},
		AllowedFormats:   []string{"jpeg", "jpg", "png"},
		MaxFileSize:      1024 * 1024,
		MaxDimension:     64,
		MaxImagePixels:   50_000_000,
	}
}

func solid(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	return img
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, solid(w, h)))
	return buf.Bytes()
}

func jpegBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, solid(w, h), nil))
	return buf.Bytes()
}

func gifBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, gif.Encode(&buf, solid(w, h), nil))
	return buf.Bytes()
}

func imageMessage(t *testing.T, err error) string {
	t.Helper()
	var ive *ImageValidationError
	require.ErrorAs(t, err, &ive)
	return ive.Message
}

// ── CheckImage ──

func TestCheckImage_ValidImages(t *testing.T) {
	v := NewImageValidator(testUploadConfig())

	info, err := v.CheckImage(pngBytes(t, 32, 16))
	require.NoError(t, err)
	assert.Equal(t, ImageInfo{Format: "png", Width: 32, Height: 16}, info)

	info, err = v.CheckImage(jpegBytes(t, 64, 64))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", info.Format)
}

func TestCheckImage_Rejections(t *testing.T) {
	cfg := testUploadConfig()

	tests := []struct {
		name    string
		cfg     func(c *config.Upload)
		data    func(t *testing.T) []byte
		message string
	}{
		{
			name:    "empty",
			data:    func(t *testing.T) []byte { return nil },
			message: "Image file is empty or corrupted.",
		},
		{
			name:    "too big",
			data:    func(t *testing.T) []byte { return make([]byte, 3*512*1024) },
			message: "File size 1.50 MB exceeds the maximum allowed size of 1.00 MB",
		},
		{
			name:    "not an image",
			data:    func(t *testing.T) []byte { return []byte("definitely not an image") },
			message: "File is not a valid image.",
		},
		{
			name:    "unsupported format",
			data:    func(t *testing.T) []byte { return gifBytes(t, 8, 8) },
			message: "Unsupported image format: GIF. Allowed formats are JPEG, JPG, PNG.",
		},
		{
			name:    "dimensions over limit",
			data:    func(t *testing.T) []byte { return pngBytes(t, 65, 10) },
			message: "Image dimensions 65x10 exceed the maximum allowed dimension of 64px",
		},
		{
			name:    "pixel budget",
			cfg:     func(c *config.Upload) { c.MaxImagePixels = 100 },
			data:    func(t *testing.T) []byte { return pngBytes(t, 20, 20) },
			message: "Image is too large to process",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cfg
			if tt.cfg != nil {
				tt.cfg(&c)
			}

			_, err := NewImageValidator(c).CheckImage(tt.data(t))
			assert.Equal(t, tt.message, imageMessage(t, err))
		})
	}
}

func TestCheckImage_TruncatedImage(t *testing.T) {
	v := NewImageValidator(testUploadConfig())

	full := pngBytes(t, 32, 32)
	// signature and IHDR survive so the header decodes, pixel data does not
	truncated := full[:40]

	_, err := v.CheckImage(truncated)
	assert.Contains(t, imageMessage(t, err), "Image file is corrupted or unreadable: ")
}

// ── CheckSize / CheckContentType ──

func TestCheckSize(t *testing.T) {
	v := NewImageValidator(testUploadConfig())

	assert.NoError(t, v.CheckSize(1024*1024))
	assert.Equal(t, "File size 2.00 MB exceeds the maximum allowed size of 1.00 MB", imageMessage(t, v.CheckSize(2*1024*1024)))
}

func TestCheckContentType(t *testing.T) {
	v := NewImageValidator(testUploadConfig())

	assert.NoError(t, v.CheckContentType("image/png"))
	assert.Equal(t,
		"File type image/gif is not allowed. Allowed types: image/jpeg, image/png, image/jpg",
		imageMessage(t, v.CheckContentType("image/gif")))
}

// ── ResolveContentType ──

func TestResolveContentType(t *testing.T) {
	v := NewImageValidator(testUploadConfig())

	assert.Equal(t, "image/png", v.ResolveContentType("image/png", nil))
	assert.Equal(t, "image/png", v.ResolveContentType("", pngBytes(t, 4, 4)))
	assert.Equal(t, "image/jpeg", v.ResolveContentType("application/octet-stream", jpegBytes(t, 4, 4)))
}
