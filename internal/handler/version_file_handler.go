package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/leocth/labrinth/internal/service"
)

// VersionFileHandler handles version file upload, validation and management endpoints.
type VersionFileHandler struct {
	fileService service.VersionFileService
}

// NewVersionFileHandler creates a new VersionFileHandler.
func NewVersionFileHandler(fileService service.VersionFileService) *VersionFileHandler {
	return &VersionFileHandler{fileService: fileService}
}

// Upload handles POST /api/v1/version/:id/files
// @Summary Upload files to a version
// @Description Upload one or more project files (jar, zip, litemod, mrpack). Each archive is classified against the version's loaders and game versions before it is stored. Files are processed in order and processing stops at the first failure; the error response then carries the files already stored in data.
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Version ID"
// @Param file formData file true "Project file; repeat the field for several files"
// @Success 201 {object} Response{data=[]service.UploadResult} "Files uploaded"
// @Failure 400 {object} ErrorResponseBody "Missing file, unsupported type or archive rejected"
// @Failure 404 {object} ErrorResponseBody "Version not found"
// @Failure 409 {object} ErrorResponseBody "Duplicate file"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Failure 503 {object} ErrorResponseBody "Validation pool unavailable"
// @Router /version/{id}/files [post]
func (h *VersionFileHandler) Upload(c *gin.Context) {
	versionID, ok := parseID(c, "id", "version")
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil || len(form.File["file"]) == 0 {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}

	results := make([]*service.UploadResult, 0, len(form.File["file"]))
	for _, header := range form.File["file"] {
		file, err := header.Open()
		if err != nil {
			RespondError(c, http.StatusBadRequest, "MISSING_FILE", "unable to read uploaded file")
			return
		}

		res, err := h.fileService.Upload(c.Request.Context(), service.VersionFileUploadInput{
			VersionID: versionID,
			File:      file,
			Header:    header,
		})
		_ = file.Close()
		if err != nil {
			if len(results) == 0 {
				HandleError(c, err)
				return
			}
			HandleErrorWithData(c, err, results)
			return
		}
		results = append(results, res)
	}

	RespondCreated(c, results)
}

// Validate handles POST /api/v1/validate
// @Summary Classify an archive without storing it
// @Description Runs the loader validators against an archive and the declared project metadata.
// @Tags files
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Project file"
// @Param project_type formData string true "Project type" example(mod)
// @Param loaders formData string true "Comma-separated loaders" example(fabric,quilt)
// @Param game_versions formData string true "Comma-separated game versions" example(1.19.2)
// @Success 200 {object} Response{data=validator.Result} "Classification"
// @Failure 400 {object} ErrorResponseBody "Archive rejected"
// @Failure 503 {object} ErrorResponseBody "Validation pool unavailable"
// @Router /validate [post]
func (h *VersionFileHandler) Validate(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	projectType := strings.TrimSpace(c.PostForm("project_type"))
	if projectType == "" {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "project_type is required")
		return
	}

	res, err := h.fileService.Validate(c.Request.Context(), service.ArchiveCheckInput{
		File:         file,
		Header:       header,
		ProjectType:  projectType,
		Loaders:      splitList(c.PostForm("loaders")),
		GameVersions: splitList(c.PostForm("game_versions")),
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, res)
}

// ListByVersion handles GET /api/v1/version/:id/files
// @Summary List version files
// @Tags files
// @Produce json
// @Param id path string true "Version ID"
// @Success 200 {object} Response{data=[]domain.VersionFile}
// @Failure 404 {object} ErrorResponseBody "Version not found"
// @Router /version/{id}/files [get]
func (h *VersionFileHandler) ListByVersion(c *gin.Context) {
	versionID, ok := parseID(c, "id", "version")
	if !ok {
		return
	}

	files, err := h.fileService.ListByVersion(c.Request.Context(), versionID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, files)
}

// GetByID handles GET /api/v1/file/:id
// @Summary Get a version file
// @Tags files
// @Produce json
// @Param id path string true "File ID"
// @Success 200 {object} Response{data=domain.VersionFile}
// @Failure 404 {object} ErrorResponseBody "File not found"
// @Router /file/{id} [get]
func (h *VersionFileHandler) GetByID(c *gin.Context) {
	fileID, ok := parseID(c, "id", "file")
	if !ok {
		return
	}

	file, err := h.fileService.GetByID(c.Request.Context(), fileID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, file)
}

// Download handles GET /api/v1/file/:id/download
// @Summary Get a temporary download URL for a version file
// @Tags files
// @Produce json
// @Param id path string true "File ID"
// @Success 200 {object} Response{data=DownloadURLResponse}
// @Failure 404 {object} ErrorResponseBody "File not found"
// @Router /file/{id}/download [get]
func (h *VersionFileHandler) Download(c *gin.Context) {
	fileID, ok := parseID(c, "id", "file")
	if !ok {
		return
	}

	url, err := h.fileService.GetDownloadURL(c.Request.Context(), fileID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, DownloadURLResponse{URL: url})
}

// Delete handles DELETE /api/v1/file/:id
// @Summary Delete a version file
// @Tags files
// @Produce json
// @Param id path string true "File ID"
// @Success 200 {object} Response{data=MessageResponse}
// @Failure 404 {object} ErrorResponseBody "File not found"
// @Router /file/{id} [delete]
func (h *VersionFileHandler) Delete(c *gin.Context) {
	fileID, ok := parseID(c, "id", "file")
	if !ok {
		return
	}

	if err := h.fileService.Delete(c.Request.Context(), fileID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, MessageResponse{Message: "file deleted"})
}

// parseID reads a UUID path parameter, writing a 400 response when it is malformed.
func parseID(c *gin.Context, param, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid "+what+" ID")
		return uuid.Nil, false
	}
	return id, true
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
