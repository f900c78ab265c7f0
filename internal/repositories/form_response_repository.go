package repositories

import (
	"errors"

	"navigator_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrFormResponseNotFound = errors.New("form response not found")

type FormResponseRepository interface {
	FindByFormAndOrganization(formID, organizationID uint) (*models.FormResponse, error)
	Upsert(response *models.FormResponse) (*models.FormResponse, error)
}

type FormResponseRepositoryImpl struct {
	db *gorm.DB
}

func NewFormResponseRepository(db *gorm.DB) FormResponseRepository {
	return &FormResponseRepositoryImpl{db: db}
}

func (r *FormResponseRepositoryImpl) FindByFormAndOrganization(formID, organizationID uint) (*models.FormResponse, error) {
	var response models.FormResponse
	err := r.db.First(&response,
		"form_id = ? AND organization_id = ?", formID, organizationID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFormResponseNotFound
		}
		return nil, err
	}
	return &response, nil
}

// Upsert writes the response as a single INSERT ... ON CONFLICT statement
// keyed on the (form_id, organization_id) unique index. Concurrent saves by
// two members of the same organization cannot race into duplicate rows; the
// last writer wins and its user_id is recorded.
func (r *FormResponseRepositoryImpl) Upsert(response *models.FormResponse) (*models.FormResponse, error) {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "form_id"}, {Name: "organization_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"answers", "user_id", "updated_at",
		}),
	}).Create(response).Error
	if err != nil {
		return nil, err
	}

	// Re-read so the caller sees the stored row, including the original
	// created_at when the conflict path ran.
	return r.FindByFormAndOrganization(response.FormID, response.OrganizationID)
}
