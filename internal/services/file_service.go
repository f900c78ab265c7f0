package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"

	"navigator_backend/internal/imageprocessor"
	"navigator_backend/internal/logger"
	"navigator_backend/internal/models"
	"navigator_backend/internal/repositories"
	"navigator_backend/internal/services/dto"
	"navigator_backend/pkg/apperrors"

	"github.com/google/uuid"
)

type FileService interface {
	Upload(header *multipart.FileHeader, uploadedBy uint) (*dto.FileMetaResponse, error)
	Serve(idParam string) (*models.File, error)
	Info(idParam string) (*dto.FileMetaResponse, error)
}

type FileServiceImpl struct {
	fileRepo  repositories.FileRepository
	processor *imageprocessor.Processor
	maxSize   int64
}

func NewFileService(
	fileRepo repositories.FileRepository,
	processor *imageprocessor.Processor,
	maxSize int64,
) FileService {
	return &FileServiceImpl{
		fileRepo:  fileRepo,
		processor: processor,
		maxSize:   maxSize,
	}
}

// Upload reads the multipart file, transcodes images to bounded JPEG, and
// persists bytes plus metadata under a generated collision-resistant name.
func (s *FileServiceImpl) Upload(header *multipart.FileHeader, uploadedBy uint) (*dto.FileMetaResponse, error) {
	if header == nil {
		return nil, apperrors.ErrNoFileProvided
	}
	if s.maxSize > 0 && header.Size > s.maxSize {
		return nil, apperrors.NewBadRequestError(
			fmt.Sprintf("File exceeds the %d byte limit", s.maxSize))
	}

	src, err := header.Open()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	mimeType := header.Header.Get("Content-Type")
	ext := filepath.Ext(header.Filename)

	if strings.HasPrefix(mimeType, "image/") {
		processed, err := s.processor.FitJPEG(data)
		if err != nil {
			// Mislabeled or corrupt image: keep the original bytes.
			logger.Warn("image processing failed, storing original",
				"filename", header.Filename, "error", err)
		} else {
			data = processed
			mimeType = "image/jpeg"
			ext = ".jpg"
		}
	}

	file := &models.File{
		Filename:     uuid.NewString() + ext,
		OriginalName: header.Filename,
		MimeType:     mimeType,
		Size:         int64(len(data)),
		Data:         data,
		UploadedBy:   &uploadedBy,
	}

	if err := s.fileRepo.Create(file); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewFileMetaResponse(file), nil
}

// Serve loads the stored bytes for a numeric id.
func (s *FileServiceImpl) Serve(idParam string) (*models.File, error) {
	id, err := parseFileID(idParam)
	if err != nil {
		return nil, err
	}

	file, err := s.fileRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrFileNotFound) {
			return nil, apperrors.NewNotFoundError("file", "File not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return file, nil
}

// Info returns metadata only, leaving the bytes in the database.
func (s *FileServiceImpl) Info(idParam string) (*dto.FileMetaResponse, error) {
	id, err := parseFileID(idParam)
	if err != nil {
		return nil, err
	}

	file, err := s.fileRepo.FindMetaByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrFileNotFound) {
			return nil, apperrors.NewNotFoundError("file", "File not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewFileMetaResponse(file), nil
}

func parseFileID(idParam string) (uint, error) {
	id, err := strconv.ParseUint(idParam, 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.NewBadRequestError("Invalid file ID")
	}
	return uint(id), nil
}
