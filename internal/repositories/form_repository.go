package repositories

import (
	"errors"

	"navigator_backend/internal/models"

	"gorm.io/gorm"
)

var ErrFormNotFound = errors.New("form not found")

type FormRepository interface {
	FindByModule(moduleID uint) ([]models.Form, error)
	FindByID(id uint) (*models.Form, error)
	FindByIDs(ids []uint) ([]models.Form, error)
	Create(form *models.Form) error
	Update(form *models.Form) error
	Delete(id uint) error
	NextPosition(moduleID uint) (int, error)
	UpdatePositions(updates []PositionUpdate) ([]models.Form, error)
}

type FormRepositoryImpl struct {
	db *gorm.DB
}

func NewFormRepository(db *gorm.DB) FormRepository {
	return &FormRepositoryImpl{db: db}
}

func (r *FormRepositoryImpl) FindByModule(moduleID uint) ([]models.Form, error) {
	var forms []models.Form
	err := r.db.Where("module_id = ?", moduleID).
		Order("position asc").Find(&forms).Error
	return forms, err
}

func (r *FormRepositoryImpl) FindByID(id uint) (*models.Form, error) {
	var form models.Form
	err := r.db.First(&form, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}
	return &form, nil
}

func (r *FormRepositoryImpl) FindByIDs(ids []uint) ([]models.Form, error) {
	var forms []models.Form
	err := r.db.Where("id IN ?", ids).Find(&forms).Error
	return forms, err
}

func (r *FormRepositoryImpl) Create(form *models.Form) error {
	return r.db.Create(form).Error
}

func (r *FormRepositoryImpl) Update(form *models.Form) error {
	return r.db.Save(form).Error
}

func (r *FormRepositoryImpl) Delete(id uint) error {
	result := r.db.Delete(&models.Form{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFormNotFound
	}
	return nil
}

func (r *FormRepositoryImpl) NextPosition(moduleID uint) (int, error) {
	var max int
	err := r.db.Model(&models.Form{}).Where("module_id = ?", moduleID).
		Select("COALESCE(MAX(position), 0)").Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

// UpdatePositions runs the whole batch in one transaction, same as articles.
func (r *FormRepositoryImpl) UpdatePositions(updates []PositionUpdate) ([]models.Form, error) {
	ids := make([]uint, 0, len(updates))

	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, u := range updates {
			result := tx.Model(&models.Form{}).Where("id = ?", u.ID).
				Update("position", u.Position)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrFormNotFound
			}
			ids = append(ids, u.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var forms []models.Form
	if err := r.db.Where("id IN ?", ids).Order("position asc").Find(&forms).Error; err != nil {
		return nil, err
	}
	return forms, nil
}
