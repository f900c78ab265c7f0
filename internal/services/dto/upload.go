package dto

import (
	"fmt"
	"time"

	"navigator_backend/internal/models"
)

// FileMetaResponse is the byte-free file shape returned by upload and info.
type FileMetaResponse struct {
	ID           uint      `json:"id"`
	Filename     string    `json:"filename"`
	OriginalName string    `json:"originalName"`
	MimeType     string    `json:"mimeType"`
	Size         int64     `json:"size"`
	URL          string    `json:"url"`
	UploadedBy   *uint     `json:"uploadedBy"`
	CreatedAt    time.Time `json:"createdAt"`
}

func NewFileMetaResponse(file *models.File) *FileMetaResponse {
	return &FileMetaResponse{
		ID:           file.ID,
		Filename:     file.Filename,
		OriginalName: file.OriginalName,
		MimeType:     file.MimeType,
		Size:         file.Size,
		URL:          FileURL(file.ID),
		UploadedBy:   file.UploadedBy,
		CreatedAt:    file.CreatedAt,
	}
}

// FileURL is the serve path for a stored file.
func FileURL(id uint) string {
	return fmt.Sprintf("/api/files/%d", id)
}
