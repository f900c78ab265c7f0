package services

import (
	"navigator_backend/internal/models"
	"navigator_backend/internal/repositories"
	"navigator_backend/internal/services/dto"
	"navigator_backend/pkg/apperrors"
)

type FormResponseService interface {
	GetResponse(formID, callerID uint) (*models.FormResponse, error)
	SaveResponse(formID, callerID uint, req *dto.SaveFormResponseRequest) (*models.FormResponse, error)
	ListOrganizationUsers(formID, callerID uint) ([]dto.UserResponse, error)
}

type FormResponseServiceImpl struct {
	responseRepo repositories.FormResponseRepository
	formRepo     repositories.FormRepository
	userRepo     repositories.UserRepository
}

func NewFormResponseService(
	responseRepo repositories.FormResponseRepository,
	formRepo repositories.FormRepository,
	userRepo repositories.UserRepository,
) FormResponseService {
	return &FormResponseServiceImpl{
		responseRepo: responseRepo,
		formRepo:     formRepo,
		userRepo:     userRepo,
	}
}

// resolveOrganization returns the caller's organization id or Forbidden when
// they belong to none. Responses are always keyed by the organization, never
// by the individual user.
func (s *FormResponseServiceImpl) resolveOrganization(callerID uint) (uint, error) {
	user, err := s.userRepo.FindByID(callerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return 0, apperrors.NewNotFoundError("user", "User not found")
		}
		return 0, apperrors.InternalError(err)
	}
	if user.OrganizationID == nil {
		return 0, apperrors.ErrNoOrganization
	}
	return *user.OrganizationID, nil
}

// GetResponse returns the shared organization response for the form, or nil
// when nobody in the organization has answered yet.
func (s *FormResponseServiceImpl) GetResponse(formID, callerID uint) (*models.FormResponse, error) {
	orgID, err := s.resolveOrganization(callerID)
	if err != nil {
		return nil, err
	}

	if _, err := s.formRepo.FindByID(formID); err != nil {
		if apperrors.Is(err, repositories.ErrFormNotFound) {
			return nil, apperrors.NewNotFoundError("form", "Form not found")
		}
		return nil, apperrors.InternalError(err)
	}

	response, err := s.responseRepo.FindByFormAndOrganization(formID, orgID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrFormResponseNotFound) {
			return nil, nil
		}
		return nil, apperrors.InternalError(err)
	}
	return response, nil
}

// SaveResponse upserts the organization's single response row. The latest
// save from any member overwrites the previous one and records that member
// as the last editor.
func (s *FormResponseServiceImpl) SaveResponse(formID, callerID uint, req *dto.SaveFormResponseRequest) (*models.FormResponse, error) {
	orgID, err := s.resolveOrganization(callerID)
	if err != nil {
		return nil, err
	}

	if _, err := s.formRepo.FindByID(formID); err != nil {
		if apperrors.Is(err, repositories.ErrFormNotFound) {
			return nil, apperrors.NewNotFoundError("form", "Form not found")
		}
		return nil, apperrors.InternalError(err)
	}

	response := &models.FormResponse{
		FormID:         formID,
		OrganizationID: orgID,
		UserID:         callerID,
		Answers:        req.Answers,
	}

	saved, err := s.responseRepo.Upsert(response)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return saved, nil
}

// ListOrganizationUsers returns the members who share the caller's
// organization, for displaying who can edit the shared response.
func (s *FormResponseServiceImpl) ListOrganizationUsers(formID, callerID uint) ([]dto.UserResponse, error) {
	orgID, err := s.resolveOrganization(callerID)
	if err != nil {
		return nil, err
	}

	if _, err := s.formRepo.FindByID(formID); err != nil {
		if apperrors.Is(err, repositories.ErrFormNotFound) {
			return nil, apperrors.NewNotFoundError("form", "Form not found")
		}
		return nil, apperrors.InternalError(err)
	}

	users, err := s.userRepo.FindByOrganization(orgID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.UserResponse, len(users))
	for i := range users {
		responses[i] = *dto.NewUserResponse(&users[i])
	}
	return responses, nil
}
