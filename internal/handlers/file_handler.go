package handlers

import (
	"fmt"
	"net/http"

	"navigator_backend/internal/middleware"
	"navigator_backend/internal/services"
	"navigator_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type FileHandler struct {
	*BaseHandler
	fileService services.FileService
	authMW      *middleware.AuthMiddleware
}

func NewFileHandler(
	base *BaseHandler,
	fileService services.FileService,
	authMW *middleware.AuthMiddleware,
) *FileHandler {
	return &FileHandler{
		BaseHandler: base,
		fileService: fileService,
		authMW:      authMW,
	}
}

// RegisterRoutes wires upload (authenticated) and the public serve/info
// routes.
func (h *FileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/upload", h.authMW.RequireAuth(), h.Upload)

	files := rg.Group("/files")
	{
		files.GET("/:id", h.Serve)
		files.GET("/:id/info", h.Info)
	}
}

func (h *FileHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		h.HandleServiceError(c, apperrors.ErrNoFileProvided)
		return
	}

	meta, err := h.fileService.Upload(header, middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, meta)
}

// Serve streams the stored bytes with caching headers and the original
// filename in an inline disposition.
func (h *FileHandler) Serve(c *gin.Context) {
	file, err := h.fileService.Serve(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition",
		fmt.Sprintf("inline; filename=%q", file.OriginalName))
	c.Header("Cache-Control", "public, max-age=31536000")
	c.Data(http.StatusOK, file.MimeType, file.Data)
}

func (h *FileHandler) Info(c *gin.Context) {
	meta, err := h.fileService.Info(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, meta)
}
