package repositories

import (
	"errors"

	"navigator_backend/internal/models"

	"gorm.io/gorm"
)

var ErrFileNotFound = errors.New("file not found")

type FileRepository interface {
	Create(file *models.File) error
	FindByID(id uint) (*models.File, error)
	FindMetaByID(id uint) (*models.File, error)
}

type FileRepositoryImpl struct {
	db *gorm.DB
}

func NewFileRepository(db *gorm.DB) FileRepository {
	return &FileRepositoryImpl{db: db}
}

func (r *FileRepositoryImpl) Create(file *models.File) error {
	return r.db.Create(file).Error
}

func (r *FileRepositoryImpl) FindByID(id uint) (*models.File, error) {
	var file models.File
	err := r.db.First(&file, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}
	return &file, nil
}

// FindMetaByID loads descriptive fields only, leaving the bytes in the
// database.
func (r *FileRepositoryImpl) FindMetaByID(id uint) (*models.File, error) {
	var file models.File
	err := r.db.Select("id", "filename", "original_name", "mime_type", "size",
		"uploaded_by", "created_at", "updated_at").
		First(&file, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}
	return &file, nil
}
