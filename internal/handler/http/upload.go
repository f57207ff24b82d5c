package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/finbank/finbank-api/internal/app"
	"github.com/finbank/finbank-api/internal/logger"
	"github.com/finbank/finbank-api/internal/service"
	"github.com/finbank/finbank-api/models"
	"github.com/go-chi/chi/v5"
)

const uploadFormField = "file"

// uploadImage checks the image in the "file" multipart field and schedules
// its upload. The image is rejected with 400 before anything is queued.
func (h *Handler) uploadImage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	fallback := apiError{http.StatusInternalServerError, app.MsgFailedToProcessImageUpload, ""}

	user, err := currentUser(r)
	if err != nil {
		h.writeError(w, r, err, fallback)
		return
	}

	imageType := chi.URLParam(r, "image_type")
	if !models.ImageType(imageType).IsValid() {
		h.writeError(w, r, service.ErrInvalidImageType, fallback)
		return
	}

	file, err := h.readImageFile(w, r)
	if err != nil {
		h.writeError(w, r, err, fallback)
		return
	}

	job, err := h.services.UploadService.ScheduleImageUpload(r.Context(), user.ID, imageType, file)
	if err != nil {
		h.writeError(w, r, err, fallback)
		return
	}

	log.Info().Str("task_id", job.ID).Str("image_type", imageType).Msg("image upload accepted")

	writeJSON(w, r, models.UploadScheduledResponse{
		Message: app.MsgImageUploadScheduled,
		TaskID:  job.ID,
		Status:  models.UploadStatePending,
	}, http.StatusAccepted)
}

// readImageFile reads the "file" part of a multipart body. Bodies over the
// handler limit are reported through the size check, using the declared
// content length.
func (h *Handler) readImageFile(w http.ResponseWriter, r *http.Request) (models.ImageFile, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBody)

	if err := r.ParseMultipartForm(h.maxUploadBody); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			size := r.ContentLength
			if size < 0 {
				size = tooLarge.Limit + 1
			}
			if sizeErr := h.images.CheckSize(int(size)); sizeErr != nil {
				return models.ImageFile{}, sizeErr
			}
		}
		return models.ImageFile{}, errors.Join(ErrMissingImageFile, err)
	}
	defer r.MultipartForm.RemoveAll()

	part, header, err := r.FormFile(uploadFormField)
	if err != nil {
		return models.ImageFile{}, errors.Join(ErrMissingImageFile, err)
	}
	defer part.Close()

	data, err := io.ReadAll(part)
	if err != nil {
		return models.ImageFile{}, err
	}

	return models.ImageFile{
		Data:        data,
		ContentType: header.Header.Get("Content-Type"),
		Filename:    header.Filename,
	}, nil
}

func (h *Handler) uploadStatus(w http.ResponseWriter, r *http.Request) {
	fallback := apiError{http.StatusInternalServerError, app.MsgFailedToGetUploadStatus, ""}

	user, err := currentUser(r)
	if err != nil {
		h.writeError(w, r, err, fallback)
		return
	}

	status, err := h.services.UploadService.GetUploadStatus(r.Context(), user.ID, chi.URLParam(r, "task_id"))
	if err != nil {
		h.writeError(w, r, err, fallback)
		return
	}

	writeJSON(w, r, status, http.StatusOK)
}
