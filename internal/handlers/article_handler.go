package handlers

import (
	"net/http"

	"navigator_backend/internal/middleware"
	"navigator_backend/internal/services"
	"navigator_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	*BaseHandler
	articleService services.ArticleService
	authMW         *middleware.AuthMiddleware
}

func NewArticleHandler(
	base *BaseHandler,
	articleService services.ArticleService,
	authMW *middleware.AuthMiddleware,
) *ArticleHandler {
	return &ArticleHandler{
		BaseHandler:    base,
		articleService: articleService,
		authMW:         authMW,
	}
}

// RegisterRoutes wires the admin article surface. Reorder is registered
// before the :id routes so "reorder" never parses as an id.
func (h *ArticleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	articles := rg.Group("/articles")
	articles.Use(h.authMW.RequireAuth(), h.authMW.RequireAdmin())
	{
		articles.PUT("/reorder", h.Reorder)
		articles.POST("", h.Create)
		articles.GET("/:id", h.Get)
		articles.PUT("/:id", h.Update)
		articles.DELETE("/:id", h.Delete)
	}
}

func (h *ArticleHandler) Get(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	article, err := h.articleService.Get(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) Create(c *gin.Context) {
	var req dto.CreateArticleRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	article, err := h.articleService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, article)
}

func (h *ArticleHandler) Update(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateArticleRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	article, err := h.articleService.Update(id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, article)
}

func (h *ArticleHandler) Delete(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.articleService.Delete(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Article deleted"})
}

func (h *ArticleHandler) Reorder(c *gin.Context) {
	var req dto.ReorderRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	result, err := h.articleService.Reorder(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
