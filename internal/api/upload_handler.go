package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitforge/fitness-app/internal/domain"
	"fitforge/fitness-app/internal/service"
)

// UploadHandler holds the upload service dependency.
type UploadHandler struct {
	uploadService service.UploadService
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(uploadService service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// PresignUploadRequest defines the expected JSON for requesting an upload URL.
type PresignUploadRequest struct {
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
	Size        int64  `json:"size" binding:"required,min=1"`
}

// PresignUpload godoc
// @Summary Request a presigned URL for a direct-to-S3 upload
// @Tags Uploads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param upload body PresignUploadRequest true "File metadata"
// @Success 201 {object} service.PresignedUpload
// @Failure 400 {object} gin.H "Invalid input"
// @Router /uploads/presign [post]
func (h *UploadHandler) PresignUpload(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	var req PresignUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	result, err := h.uploadService.RequestUpload(c.Request.Context(), userID, req.FileName, req.ContentType, req.Size)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to prepare upload.")
		return
	}
	c.JSON(http.StatusCreated, result)
}

// ListUploads godoc
// @Summary List the caller's uploads with fresh download URLs
// @Tags Uploads
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Upload
// @Router /uploads [get]
func (h *UploadHandler) ListUploads(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	uploads, err := h.uploadService.GetUploadsByUser(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve uploads.")
		return
	}
	if uploads == nil {
		uploads = []domain.Upload{}
	}
	c.JSON(http.StatusOK, uploads)
}
