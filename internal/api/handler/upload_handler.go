package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/aulahub/course-platform/internal/api/metrics"
	"github.com/aulahub/course-platform/internal/core/ports"
)

// UploadHandler issues presigned upload URLs for new lesson videos.
type UploadHandler struct {
	signer ports.StorageSigner
	urlTTL time.Duration
}

func NewUploadHandler(signer ports.StorageSigner, urlTTL time.Duration) *UploadHandler {
	if urlTTL <= 0 {
		urlTTL = time.Hour
	}
	return &UploadHandler{signer: signer, urlTTL: urlTTL}
}

type uploadRequest struct {
	FileName    string `json:"fileName"    validate:"required"`
	ContentType string `json:"contentType" validate:"required"`
}

type uploadResponse struct {
	UploadURL string `json:"uploadUrl"`
	// Key is what the client stores on the lesson; download URLs are
	// signed from it later.
	Key string `json:"key"`
}

// Create handles POST /upload. Role gating (instrutor only) runs in the
// route middleware.
//
// @Summary      Request a video upload URL
// @Tags         upload
// @Accept       json
// @Produce      json
// @Param        body  body      uploadRequest  true  "File details"
// @Success      200   {object}  uploadResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /upload [post]
func (h *UploadHandler) Create(c echo.Context) error {
	var req uploadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Payload inválido")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	key := fmt.Sprintf("aulas/%d-%s", time.Now().UnixMilli(), req.FileName)

	uploadURL, err := h.signer.SignUpload(c.Request().Context(), key, req.ContentType, h.urlTTL)
	if err != nil {
		return err
	}

	metrics.UploadURLsIssuedTotal.Inc()
	return c.JSON(http.StatusOK, uploadResponse{UploadURL: uploadURL, Key: key})
}
