package handlers

import (
	"net/http"

	"navigator_backend/internal/middleware"
	"navigator_backend/internal/services"
	"navigator_backend/internal/services/dto"
	"navigator_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
	authMW      *middleware.AuthMiddleware
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, authMW *middleware.AuthMiddleware) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
		authMW:      authMW,
	}
}

// RegisterRoutes wires the authentication and user-administration routes.
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)
	rg.GET("/verify", h.authMW.RequireAuth(), h.Verify)

	users := rg.Group("/users")
	users.Use(h.authMW.RequireAuth(), h.authMW.RequireAdmin())
	{
		users.PUT("/:id/role", h.UpdateRole)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.authService.Register(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.authService.Login(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Verify answers with the fresh user behind a valid token.
func (h *AuthHandler) Verify(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		h.HandleServiceError(c, apperrors.ErrMissingToken)
		return
	}

	user, err := h.authService.GetCurrentUser(claims.UserID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *AuthHandler) UpdateRole(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateRoleRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.authService.UpdateRole(id, req.Role)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
