package repositories

import (
	"errors"

	"navigator_backend/internal/models"

	"gorm.io/gorm"
)

var ErrModuleNotFound = errors.New("module not found")

type ModuleRepository interface {
	FindAll() ([]models.Module, error)
	FindByID(id uint) (*models.Module, error)
	Create(module *models.Module) error
	Update(module *models.Module) error
	Delete(id uint) error
}

type ModuleRepositoryImpl struct {
	db *gorm.DB
}

func NewModuleRepository(db *gorm.DB) ModuleRepository {
	return &ModuleRepositoryImpl{db: db}
}

func (r *ModuleRepositoryImpl) FindAll() ([]models.Module, error) {
	var modules []models.Module
	err := r.db.Order("module_number asc, created_at asc").Find(&modules).Error
	return modules, err
}

func (r *ModuleRepositoryImpl) FindByID(id uint) (*models.Module, error) {
	var module models.Module
	err := r.db.First(&module, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrModuleNotFound
		}
		return nil, err
	}
	return &module, nil
}

func (r *ModuleRepositoryImpl) Create(module *models.Module) error {
	return r.db.Create(module).Error
}

func (r *ModuleRepositoryImpl) Update(module *models.Module) error {
	return r.db.Save(module).Error
}

// Delete removes a module and cascades to its articles and forms in one
// transaction.
func (r *ModuleRepositoryImpl) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var module models.Module
		if err := tx.First(&module, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrModuleNotFound
			}
			return err
		}

		if err := tx.Where("module_id = ?", id).Delete(&models.Article{}).Error; err != nil {
			return err
		}
		if err := tx.Where("module_id = ?", id).Delete(&models.Form{}).Error; err != nil {
			return err
		}
		return tx.Delete(&module).Error
	})
}
