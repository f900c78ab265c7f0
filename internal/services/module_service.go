package services

import (
	"navigator_backend/internal/models"
	"navigator_backend/internal/repositories"
	"navigator_backend/internal/services/dto"
	"navigator_backend/pkg/apperrors"
)

type ModuleService interface {
	List() ([]models.Module, error)
	Get(id uint) (*models.Module, error)
	Create(req *dto.CreateModuleRequest) (*models.Module, error)
	Update(id uint, req *dto.UpdateModuleRequest) (*models.Module, error)
	Delete(id uint) error
}

type ModuleServiceImpl struct {
	moduleRepo repositories.ModuleRepository
}

func NewModuleService(moduleRepo repositories.ModuleRepository) ModuleService {
	return &ModuleServiceImpl{moduleRepo: moduleRepo}
}

func (s *ModuleServiceImpl) List() ([]models.Module, error) {
	modules, err := s.moduleRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return modules, nil
}

func (s *ModuleServiceImpl) Get(id uint) (*models.Module, error) {
	module, err := s.moduleRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrModuleNotFound) {
			return nil, apperrors.NewNotFoundError("module", "Module not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return module, nil
}

func (s *ModuleServiceImpl) Create(req *dto.CreateModuleRequest) (*models.Module, error) {
	module := &models.Module{
		ModuleNumber: req.ModuleNumber,
		ModuleName:   req.ModuleName,
	}
	if err := s.moduleRepo.Create(module); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return module, nil
}

func (s *ModuleServiceImpl) Update(id uint, req *dto.UpdateModuleRequest) (*models.Module, error) {
	module, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.ModuleNumber != nil {
		module.ModuleNumber = *req.ModuleNumber
	}
	if req.ModuleName != nil {
		module.ModuleName = *req.ModuleName
	}

	if err := s.moduleRepo.Update(module); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return module, nil
}

// Delete removes the module and everything under it.
func (s *ModuleServiceImpl) Delete(id uint) error {
	if err := s.moduleRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrModuleNotFound) {
			return apperrors.NewNotFoundError("module", "Module not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}
