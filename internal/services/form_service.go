package services

import (
	"fmt"

	"navigator_backend/internal/models"
	"navigator_backend/internal/repositories"
	"navigator_backend/internal/services/dto"
	"navigator_backend/pkg/apperrors"
)

type FormService interface {
	ListByModule(moduleID uint) ([]models.Form, error)
	Get(id uint) (*models.Form, error)
	Create(req *dto.CreateFormRequest) (*models.Form, error)
	Update(id uint, req *dto.UpdateFormRequest) (*models.Form, error)
	Delete(id uint) error
	Reorder(req *dto.ReorderRequest) (*dto.ReorderResult, error)
}

type FormServiceImpl struct {
	formRepo   repositories.FormRepository
	moduleRepo repositories.ModuleRepository
}

func NewFormService(
	formRepo repositories.FormRepository,
	moduleRepo repositories.ModuleRepository,
) FormService {
	return &FormServiceImpl{
		formRepo:   formRepo,
		moduleRepo: moduleRepo,
	}
}

func (s *FormServiceImpl) ListByModule(moduleID uint) ([]models.Form, error) {
	if _, err := s.moduleRepo.FindByID(moduleID); err != nil {
		if apperrors.Is(err, repositories.ErrModuleNotFound) {
			return nil, apperrors.NewNotFoundError("module", "Module not found")
		}
		return nil, apperrors.InternalError(err)
	}

	forms, err := s.formRepo.FindByModule(moduleID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return forms, nil
}

func (s *FormServiceImpl) Get(id uint) (*models.Form, error) {
	form, err := s.formRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrFormNotFound) {
			return nil, apperrors.NewNotFoundError("form", "Form not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return form, nil
}

func (s *FormServiceImpl) Create(req *dto.CreateFormRequest) (*models.Form, error) {
	if _, err := s.moduleRepo.FindByID(req.ModuleID); err != nil {
		if apperrors.Is(err, repositories.ErrModuleNotFound) {
			return nil, apperrors.NewNotFoundError("module", "Module not found")
		}
		return nil, apperrors.InternalError(err)
	}

	var position int
	if req.Position != nil {
		position = *req.Position
	} else {
		next, err := s.formRepo.NextPosition(req.ModuleID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		position = next
	}

	form := &models.Form{
		ModuleID:  req.ModuleID,
		FormName:  req.FormName,
		Questions: req.Questions,
		Position:  position,
	}
	if err := s.formRepo.Create(form); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return form, nil
}

func (s *FormServiceImpl) Update(id uint, req *dto.UpdateFormRequest) (*models.Form, error) {
	form, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.FormName != nil {
		form.FormName = *req.FormName
	}
	if req.Questions != nil {
		form.Questions = req.Questions
	}
	if req.Position != nil {
		form.Position = *req.Position
	}

	if err := s.formRepo.Update(form); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return form, nil
}

func (s *FormServiceImpl) Delete(id uint) error {
	if err := s.formRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrFormNotFound) {
			return apperrors.NewNotFoundError("form", "Form not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// Reorder applies the same validated, transactional batch primitive as
// article reordering.
func (s *FormServiceImpl) Reorder(req *dto.ReorderRequest) (*dto.ReorderResult, error) {
	updates, byID, err := validateReorderItems(req.Items, "form")
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}

	found, err := s.formRepo.FindByIDs(ids)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if len(found) != len(ids) {
		foundSet := make(map[uint]bool, len(found))
		for _, f := range found {
			foundSet[f.ID] = true
		}
		var missing []uint
		for _, id := range ids {
			if !foundSet[id] {
				missing = append(missing, id)
			}
		}
		return nil, apperrors.NewNotFoundError("form",
			fmt.Sprintf("Forms not found: %v", missing)).
			WithDetails(missing)
	}

	modules := make(map[uint]bool)
	for _, f := range found {
		modules[f.ModuleID] = true
	}
	for moduleID := range modules {
		siblings, err := s.formRepo.FindByModule(moduleID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		siblingIDs := make([]uint, len(siblings))
		for i, f := range siblings {
			siblingIDs[i] = f.ID
		}
		if err := checkDensePositions(siblingIDs, byID, "form"); err != nil {
			return nil, err
		}
	}

	forms, err := s.formRepo.UpdatePositions(updates)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.ReorderResult{
		UpdatedCount: len(forms),
		Items:        forms,
	}, nil
}
