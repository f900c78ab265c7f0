package handlers

import (
	"net/http"

	"navigator_backend/internal/middleware"
	"navigator_backend/internal/services"
	"navigator_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type FormHandler struct {
	*BaseHandler
	formService     services.FormService
	responseService services.FormResponseService
	authMW          *middleware.AuthMiddleware
}

func NewFormHandler(
	base *BaseHandler,
	formService services.FormService,
	responseService services.FormResponseService,
	authMW *middleware.AuthMiddleware,
) *FormHandler {
	return &FormHandler{
		BaseHandler:     base,
		formService:     formService,
		responseService: responseService,
		authMW:          authMW,
	}
}

// RegisterRoutes wires the admin form surface and the organization-scoped
// response routes.
func (h *FormHandler) RegisterRoutes(rg *gin.RouterGroup) {
	forms := rg.Group("/forms")

	admin := forms.Group("")
	admin.Use(h.authMW.RequireAuth(), h.authMW.RequireAdmin())
	{
		admin.PUT("/reorder", h.Reorder)
		admin.POST("", h.Create)
		admin.PUT("/:formId", h.Update)
		admin.DELETE("/:formId", h.Delete)
	}

	scoped := forms.Group("")
	scoped.Use(h.authMW.RequireAuth())
	{
		scoped.GET("/:formId/response", h.GetResponse)
		scoped.POST("/:formId/response", h.SaveResponse)
		scoped.GET("/:formId/organization/users", h.OrganizationUsers)
	}
}

func (h *FormHandler) Create(c *gin.Context) {
	var req dto.CreateFormRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	form, err := h.formService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, form)
}

func (h *FormHandler) Update(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "formId")
	if !ok {
		return
	}

	var req dto.UpdateFormRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	form, err := h.formService.Update(id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, form)
}

func (h *FormHandler) Delete(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "formId")
	if !ok {
		return
	}

	if err := h.formService.Delete(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Form deleted"})
}

func (h *FormHandler) Reorder(c *gin.Context) {
	var req dto.ReorderRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	result, err := h.formService.Reorder(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetResponse returns the caller's organization response for the form, or
// null when no member has saved one yet.
func (h *FormHandler) GetResponse(c *gin.Context) {
	formID, ok := h.ParseIDParam(c, "formId")
	if !ok {
		return
	}

	response, err := h.responseService.GetResponse(formID, middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if response == nil {
		c.JSON(http.StatusOK, gin.H{"response": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"response": response})
}

func (h *FormHandler) SaveResponse(c *gin.Context) {
	formID, ok := h.ParseIDParam(c, "formId")
	if !ok {
		return
	}

	var req dto.SaveFormResponseRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.responseService.SaveResponse(formID, middleware.GetUserID(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"response": response})
}

func (h *FormHandler) OrganizationUsers(c *gin.Context) {
	formID, ok := h.ParseIDParam(c, "formId")
	if !ok {
		return
	}

	users, err := h.responseService.ListOrganizationUsers(formID, middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}
