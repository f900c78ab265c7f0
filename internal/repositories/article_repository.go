package repositories

import (
	"errors"

	"navigator_backend/internal/models"

	"gorm.io/gorm"
)

var ErrArticleNotFound = errors.New("article not found")

type ArticleRepository interface {
	FindByModule(moduleID uint) ([]models.Article, error)
	FindByID(id uint) (*models.Article, error)
	FindByIDs(ids []uint) ([]models.Article, error)
	Create(article *models.Article) error
	Update(article *models.Article) error
	Delete(id uint) error
	NextPosition(moduleID uint) (int, error)
	UpdatePositions(updates []PositionUpdate) ([]models.Article, error)
}

type ArticleRepositoryImpl struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &ArticleRepositoryImpl{db: db}
}

func (r *ArticleRepositoryImpl) FindByModule(moduleID uint) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Where("module_id = ?", moduleID).
		Order("position asc").Find(&articles).Error
	return articles, err
}

func (r *ArticleRepositoryImpl) FindByID(id uint) (*models.Article, error) {
	var article models.Article
	err := r.db.First(&article, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return &article, nil
}

func (r *ArticleRepositoryImpl) FindByIDs(ids []uint) ([]models.Article, error) {
	var articles []models.Article
	err := r.db.Where("id IN ?", ids).Find(&articles).Error
	return articles, err
}

func (r *ArticleRepositoryImpl) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *ArticleRepositoryImpl) Update(article *models.Article) error {
	return r.db.Save(article).Error
}

func (r *ArticleRepositoryImpl) Delete(id uint) error {
	result := r.db.Delete(&models.Article{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrArticleNotFound
	}
	return nil
}

// NextPosition returns max(position)+1 for the module, so new articles land
// at the end of the list.
func (r *ArticleRepositoryImpl) NextPosition(moduleID uint) (int, error) {
	var max int
	err := r.db.Model(&models.Article{}).Where("module_id = ?", moduleID).
		Select("COALESCE(MAX(position), 0)").Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

// UpdatePositions applies the whole batch inside one transaction: either
// every assignment lands or none do. Returns the updated rows in position
// order.
func (r *ArticleRepositoryImpl) UpdatePositions(updates []PositionUpdate) ([]models.Article, error) {
	ids := make([]uint, 0, len(updates))

	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, u := range updates {
			result := tx.Model(&models.Article{}).Where("id = ?", u.ID).
				Update("position", u.Position)
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrArticleNotFound
			}
			ids = append(ids, u.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var articles []models.Article
	if err := r.db.Where("id IN ?", ids).Order("position asc").Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}
