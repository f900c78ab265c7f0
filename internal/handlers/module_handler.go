package handlers

import (
	"net/http"

	"navigator_backend/internal/middleware"
	"navigator_backend/internal/services"
	"navigator_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ModuleHandler struct {
	*BaseHandler
	moduleService  services.ModuleService
	articleService services.ArticleService
	formService    services.FormService
	authMW         *middleware.AuthMiddleware
}

func NewModuleHandler(
	base *BaseHandler,
	moduleService services.ModuleService,
	articleService services.ArticleService,
	formService services.FormService,
	authMW *middleware.AuthMiddleware,
) *ModuleHandler {
	return &ModuleHandler{
		BaseHandler:    base,
		moduleService:  moduleService,
		articleService: articleService,
		formService:    formService,
		authMW:         authMW,
	}
}

// RegisterRoutes wires module listing (public and authenticated variants,
// same payload) plus the admin CRUD surface.
func (h *ModuleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	modules := rg.Group("/modules")
	{
		modules.GET("", h.List)
		modules.GET("/authenticated", h.authMW.RequireAuth(), h.List)
		modules.GET("/:id/articles", h.ListArticles)
		modules.GET("/:id/articles/authenticated", h.authMW.RequireAuth(), h.ListArticles)
		modules.GET("/:id/forms", h.ListForms)
		modules.GET("/:id/forms/authenticated", h.authMW.RequireAuth(), h.ListForms)

		admin := modules.Group("")
		admin.Use(h.authMW.RequireAuth(), h.authMW.RequireAdmin())
		{
			admin.POST("", h.Create)
			admin.PUT("/:id", h.Update)
			admin.DELETE("/:id", h.Delete)
		}
	}
}

func (h *ModuleHandler) List(c *gin.Context) {
	modules, err := h.moduleService.List()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, modules)
}

func (h *ModuleHandler) ListArticles(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	articles, err := h.articleService.ListByModule(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

func (h *ModuleHandler) ListForms(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	forms, err := h.formService.ListByModule(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, forms)
}

func (h *ModuleHandler) Create(c *gin.Context) {
	var req dto.CreateModuleRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	module, err := h.moduleService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, module)
}

func (h *ModuleHandler) Update(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateModuleRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	module, err := h.moduleService.Update(id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, module)
}

func (h *ModuleHandler) Delete(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.moduleService.Delete(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Module deleted"})
}
