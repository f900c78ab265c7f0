package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"navigator_backend/internal/models"
	"navigator_backend/internal/services"
	"navigator_backend/internal/services/dto"
	"navigator_backend/pkg/apperrors"
)

func intPtr(v int) *int { return &v }

// seedModuleWithArticles creates one module with n articles at positions 1..n
// and returns the fixture pieces.
func seedModuleWithArticles(t *testing.T, n int) (services.ArticleService, *fakeArticleRepo, *fakeModuleRepo, uint, []uint) {
	t.Helper()

	articleRepo := newFakeArticleRepo()
	moduleRepo := newFakeModuleRepo()
	svc := services.NewArticleService(articleRepo, moduleRepo)

	module := &models.Module{ModuleNumber: 1, ModuleName: "Hiring Basics"}
	require.NoError(t, moduleRepo.Create(module))

	ids := make([]uint, 0, n)
	for i := 1; i <= n; i++ {
		article := &models.Article{
			ModuleID:    module.ID,
			ArticleName: "Article",
			Position:    i,
		}
		require.NoError(t, articleRepo.Create(article))
		ids = append(ids, article.ID)
	}
	return svc, articleRepo, moduleRepo, module.ID, ids
}

func httpCode(t *testing.T, err error) int {
	t.Helper()
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr), "expected AppError, got %v", err)
	return appErr.HTTPCode
}

func TestCreateArticleAppendsPosition(t *testing.T) {
	svc, _, _, moduleID, _ := seedModuleWithArticles(t, 2)

	article, err := svc.Create(&dto.CreateArticleRequest{
		ModuleID:    moduleID,
		ArticleName: "Third",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, article.Position)
}

func TestCreateArticleUnknownModule(t *testing.T) {
	svc, _, _, _, _ := seedModuleWithArticles(t, 1)

	_, err := svc.Create(&dto.CreateArticleRequest{
		ModuleID:    999,
		ArticleName: "Orphan",
	})
	require.Error(t, err)
	assert.Equal(t, 404, httpCode(t, err))
}

func TestReorderSwapsPositions(t *testing.T) {
	svc, articleRepo, _, moduleID, ids := seedModuleWithArticles(t, 3)

	result, err := svc.Reorder(&dto.ReorderRequest{Items: []dto.ReorderItem{
		{ID: intPtr(int(ids[0])), Position: intPtr(3)},
		{ID: intPtr(int(ids[1])), Position: intPtr(2)},
		{ID: intPtr(int(ids[2])), Position: intPtr(1)},
	}})
	require.NoError(t, err)
	assert.Equal(t, 3, result.UpdatedCount)

	articles, err := articleRepo.FindByModule(moduleID)
	require.NoError(t, err)
	require.Len(t, articles, 3)
	assert.Equal(t, ids[2], articles[0].ID)
	assert.Equal(t, ids[1], articles[1].ID)
	assert.Equal(t, ids[0], articles[2].ID)
}

func TestReorderEmptyBatch(t *testing.T) {
	svc, _, _, _, _ := seedModuleWithArticles(t, 2)

	_, err := svc.Reorder(&dto.ReorderRequest{Items: nil})
	require.Error(t, err)
	assert.Equal(t, 400, httpCode(t, err))
	assert.Contains(t, err.Error(), "non-empty")
}

func TestReorderValidationOrder(t *testing.T) {
	svc, _, _, _, ids := seedModuleWithArticles(t, 2)

	// A bad id is reported before a bad position, even when the bad
	// position comes first in the batch.
	_, err := svc.Reorder(&dto.ReorderRequest{Items: []dto.ReorderItem{
		{ID: intPtr(int(ids[0])), Position: intPtr(0)},
		{ID: nil, Position: intPtr(1)},
	}})
	require.Error(t, err)
	assert.Equal(t, 400, httpCode(t, err))
	assert.Contains(t, err.Error(), "Invalid article ID")

	_, err = svc.Reorder(&dto.ReorderRequest{Items: []dto.ReorderItem{
		{ID: intPtr(int(ids[0])), Position: intPtr(2)},
		{ID: intPtr(int(ids[1])), Position: nil},
	}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid article position")
}

func TestReorderMissingIDsChangeNothing(t *testing.T) {
	svc, articleRepo, _, moduleID, ids := seedModuleWithArticles(t, 2)

	_, err := svc.Reorder(&dto.ReorderRequest{Items: []dto.ReorderItem{
		{ID: intPtr(int(ids[0])), Position: intPtr(2)},
		{ID: intPtr(777), Position: intPtr(1)},
	}})
	require.Error(t, err)
	assert.Equal(t, 404, httpCode(t, err))

	articles, err := articleRepo.FindByModule(moduleID)
	require.NoError(t, err)
	assert.Equal(t, 1, articles[0].Position)
	assert.Equal(t, 2, articles[1].Position)
}

func TestReorderMustCoverModule(t *testing.T) {
	svc, _, _, _, ids := seedModuleWithArticles(t, 3)

	_, err := svc.Reorder(&dto.ReorderRequest{Items: []dto.ReorderItem{
		{ID: intPtr(int(ids[0])), Position: intPtr(2)},
		{ID: intPtr(int(ids[1])), Position: intPtr(1)},
	}})
	require.Error(t, err)
	assert.Equal(t, 400, httpCode(t, err))
	assert.Contains(t, err.Error(), "every article")
}

func TestReorderRejectsDuplicatePositions(t *testing.T) {
	svc, _, _, _, ids := seedModuleWithArticles(t, 3)

	_, err := svc.Reorder(&dto.ReorderRequest{Items: []dto.ReorderItem{
		{ID: intPtr(int(ids[0])), Position: intPtr(1)},
		{ID: intPtr(int(ids[1])), Position: intPtr(1)},
		{ID: intPtr(int(ids[2])), Position: intPtr(3)},
	}})
	require.Error(t, err)
	assert.Equal(t, 400, httpCode(t, err))
	assert.Contains(t, err.Error(), "permutation")
}

func TestReorderRejectsPositionsBeyondModuleSize(t *testing.T) {
	svc, _, _, _, ids := seedModuleWithArticles(t, 2)

	_, err := svc.Reorder(&dto.ReorderRequest{Items: []dto.ReorderItem{
		{ID: intPtr(int(ids[0])), Position: intPtr(1)},
		{ID: intPtr(int(ids[1])), Position: intPtr(5)},
	}})
	require.Error(t, err)
	assert.Equal(t, 400, httpCode(t, err))
	assert.Contains(t, err.Error(), "permutation")
}

func TestUpdateArticlePartialFields(t *testing.T) {
	svc, _, _, _, ids := seedModuleWithArticles(t, 1)

	name := "Renamed"
	updated, err := svc.Update(ids[0], &dto.UpdateArticleRequest{ArticleName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.ArticleName)
	assert.Equal(t, 1, updated.Position)
}

func TestDeleteArticle(t *testing.T) {
	svc, _, _, _, ids := seedModuleWithArticles(t, 1)

	require.NoError(t, svc.Delete(ids[0]))

	err := svc.Delete(ids[0])
	require.Error(t, err)
	assert.Equal(t, 404, httpCode(t, err))
}
