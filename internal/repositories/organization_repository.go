package repositories

import (
	"errors"

	"navigator_backend/internal/models"

	"gorm.io/gorm"
)

var ErrOrganizationNotFound = errors.New("organization not found")

type OrganizationRepository interface {
	FindByID(id uint) (*models.Organization, error)
	FindByName(name string) (*models.Organization, error)
	Create(org *models.Organization) error
	FindOrCreateByName(name string) (*models.Organization, error)
}

type OrganizationRepositoryImpl struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) OrganizationRepository {
	return &OrganizationRepositoryImpl{db: db}
}

func (r *OrganizationRepositoryImpl) FindByID(id uint) (*models.Organization, error) {
	var org models.Organization
	err := r.db.First(&org, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, err
	}
	return &org, nil
}

func (r *OrganizationRepositoryImpl) FindByName(name string) (*models.Organization, error) {
	var org models.Organization
	err := r.db.First(&org, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, err
	}
	return &org, nil
}

func (r *OrganizationRepositoryImpl) Create(org *models.Organization) error {
	return r.db.Create(org).Error
}

// FindOrCreateByName resolves an organization by name, creating it with the
// default subscription when no row exists. Registration uses this for its
// lazy organization creation.
func (r *OrganizationRepositoryImpl) FindOrCreateByName(name string) (*models.Organization, error) {
	org, err := r.FindByName(name)
	if err == nil {
		return org, nil
	}
	if !errors.Is(err, ErrOrganizationNotFound) {
		return nil, err
	}

	org = &models.Organization{Name: name}
	if err := r.db.Create(org).Error; err != nil {
		// Lost a race against a concurrent registration for the same name.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return r.FindByName(name)
		}
		return nil, err
	}
	return org, nil
}
