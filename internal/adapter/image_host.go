package adapter

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/finbank/finbank-api/internal/config"
	"github.com/finbank/finbank-api/internal/logger"
	"github.com/finbank/finbank-api/internal/utils"
)

type cloudinaryImageHost struct {
	client *utils.HTTPClient

	cloudName string
	apiKey    string
	apiSecret string

	now    func() time.Time
	logger *logger.Logger
}

// NewCloudinaryImageHost builds an [ImageHost] that performs signed uploads
// against the Cloudinary upload API at cfg.BaseURL.
func NewCloudinaryImageHost(cfg config.ImageHost, log *logger.Logger) (ImageHost, error) {
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, ErrImageHostConfig
	}

	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base url: %w", ErrImageHostConfig, err)
	}

	return &cloudinaryImageHost{
		client:    utils.NewHTTPClient(baseURL, cfg.Timeout),
		cloudName: cfg.CloudName,
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
		now:       time.Now,
		logger:    log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Upload implements [ImageHost] with a multipart POST to
// /v1_1/<cloud>/image/upload.
func (h *cloudinaryImageHost) Upload(ctx context.Context, img ImageUpload) (UploadedImage, error) {
	log := logger.FromContext(ctx)

	params := h.uploadParams(img)
	params["signature"] = signParams(params, h.apiSecret)
	params["api_key"] = h.apiKey

	filename := img.Filename
	if filename == "" {
		filename = img.PublicID
	}

	var uploaded UploadedImage
	resp, err := h.client.R().
		SetContext(ctx).
		SetMultipartFormData(params).
		SetMultipartField("file", filename, img.ContentType, bytes.NewReader(img.Data)).
		SetResult(&uploaded).
		Post("/v1_1/" + url.PathEscape(h.cloudName) + "/image/upload")
	if err != nil {
		log.Err(err).Str("func", "*cloudinaryImageHost.Upload").Str("public_id", img.PublicID).Msg("upload request failed")
		return UploadedImage{}, fmt.Errorf("%w: %w", ErrImageHostRequest, err)
	}

	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "*cloudinaryImageHost.Upload").Int("status", resp.StatusCode()).Msg("upload rejected")
		return UploadedImage{}, err
	}

	if uploaded.PublicID == "" && uploaded.SecureURL == "" {
		return UploadedImage{}, fmt.Errorf("%w: empty upload result", ErrImageHostResponse)
	}

	log.Debug().
		Str("func", "*cloudinaryImageHost.Upload").
		Str("public_id", uploaded.PublicID).
		Int("eager", len(uploaded.Eager)).
		Msg("image uploaded")

	return uploaded, nil
}

// uploadParams returns the signed parameters. file, api_key and the
// signature itself are never signed.
func (h *cloudinaryImageHost) uploadParams(img ImageUpload) map[string]string {
	params := map[string]string{
		"timestamp": strconv.FormatInt(h.now().Unix(), 10),
		"public_id": img.PublicID,
	}
	if img.Folder != "" {
		params["folder"] = img.Folder
	}
	if img.Overwrite {
		params["overwrite"] = "true"
	}
	if len(img.Eager) > 0 {
		params["eager"] = strings.Join(img.Eager, "|")
	}
	if len(img.Tags) > 0 {
		params["tags"] = strings.Join(img.Tags, ",")
	}
	if len(img.AllowedFormats) > 0 {
		params["allowed_formats"] = strings.Join(img.AllowedFormats, ",")
	}
	return params
}

// signParams computes the upload signature: the parameters sorted by name,
// joined as k=v with '&', followed by the API secret, hashed with SHA-1.
func signParams(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + secret))
	return hex.EncodeToString(sum[:])
}
