package services

import (
	"fmt"

	"navigator_backend/internal/models"
	"navigator_backend/internal/repositories"
	"navigator_backend/internal/services/dto"
	"navigator_backend/pkg/apperrors"
)

type ArticleService interface {
	ListByModule(moduleID uint) ([]models.Article, error)
	Get(id uint) (*models.Article, error)
	Create(req *dto.CreateArticleRequest) (*models.Article, error)
	Update(id uint, req *dto.UpdateArticleRequest) (*models.Article, error)
	Delete(id uint) error
	Reorder(req *dto.ReorderRequest) (*dto.ReorderResult, error)
}

type ArticleServiceImpl struct {
	articleRepo repositories.ArticleRepository
	moduleRepo  repositories.ModuleRepository
}

func NewArticleService(
	articleRepo repositories.ArticleRepository,
	moduleRepo repositories.ModuleRepository,
) ArticleService {
	return &ArticleServiceImpl{
		articleRepo: articleRepo,
		moduleRepo:  moduleRepo,
	}
}

func (s *ArticleServiceImpl) ListByModule(moduleID uint) ([]models.Article, error) {
	if _, err := s.moduleRepo.FindByID(moduleID); err != nil {
		if apperrors.Is(err, repositories.ErrModuleNotFound) {
			return nil, apperrors.NewNotFoundError("module", "Module not found")
		}
		return nil, apperrors.InternalError(err)
	}

	articles, err := s.articleRepo.FindByModule(moduleID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return articles, nil
}

func (s *ArticleServiceImpl) Get(id uint) (*models.Article, error) {
	article, err := s.articleRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrArticleNotFound) {
			return nil, apperrors.NewNotFoundError("article", "Article not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return article, nil
}

func (s *ArticleServiceImpl) Create(req *dto.CreateArticleRequest) (*models.Article, error) {
	if _, err := s.moduleRepo.FindByID(req.ModuleID); err != nil {
		if apperrors.Is(err, repositories.ErrModuleNotFound) {
			return nil, apperrors.NewNotFoundError("module", "Module not found")
		}
		return nil, apperrors.InternalError(err)
	}

	position := 0
	if req.Position != nil {
		position = *req.Position
	} else {
		next, err := s.articleRepo.NextPosition(req.ModuleID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		position = next
	}

	article := &models.Article{
		ModuleID:    req.ModuleID,
		ArticleName: req.ArticleName,
		Content:     req.Content,
		Position:    position,
	}
	if err := s.articleRepo.Create(article); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return article, nil
}

func (s *ArticleServiceImpl) Update(id uint, req *dto.UpdateArticleRequest) (*models.Article, error) {
	article, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.ArticleName != nil {
		article.ArticleName = *req.ArticleName
	}
	if req.Content != nil {
		article.Content = *req.Content
	}
	if req.Position != nil {
		article.Position = *req.Position
	}

	if err := s.articleRepo.Update(article); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return article, nil
}

func (s *ArticleServiceImpl) Delete(id uint) error {
	if err := s.articleRepo.Delete(id); err != nil {
		if apperrors.Is(err, repositories.ErrArticleNotFound) {
			return apperrors.NewNotFoundError("article", "Article not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// Reorder validates the batch (field checks, existence, per-module
// completeness) and applies it in one transaction: all assignments land or
// none do.
func (s *ArticleServiceImpl) Reorder(req *dto.ReorderRequest) (*dto.ReorderResult, error) {
	updates, byID, err := validateReorderItems(req.Items, "article")
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}

	found, err := s.articleRepo.FindByIDs(ids)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if len(found) != len(ids) {
		foundSet := make(map[uint]bool, len(found))
		for _, a := range found {
			foundSet[a.ID] = true
		}
		var missing []uint
		for _, id := range ids {
			if !foundSet[id] {
				missing = append(missing, id)
			}
		}
		return nil, apperrors.NewNotFoundError("article",
			fmt.Sprintf("Articles not found: %v", missing)).
			WithDetails(missing)
	}

	// Every touched module must be renumbered completely and densely.
	modules := make(map[uint]bool)
	for _, a := range found {
		modules[a.ModuleID] = true
	}
	for moduleID := range modules {
		siblings, err := s.articleRepo.FindByModule(moduleID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		siblingIDs := make([]uint, len(siblings))
		for i, a := range siblings {
			siblingIDs[i] = a.ID
		}
		if err := checkDensePositions(siblingIDs, byID, "article"); err != nil {
			return nil, err
		}
	}

	articles, err := s.articleRepo.UpdatePositions(updates)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.ReorderResult{
		UpdatedCount: len(articles),
		Items:        articles,
	}, nil
}
