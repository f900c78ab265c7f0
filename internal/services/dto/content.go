package dto

import "gorm.io/datatypes"

type CreateModuleRequest struct {
	ModuleNumber int    `json:"moduleNumber" binding:"required" validate:"required,min=1"`
	ModuleName   string `json:"moduleName" binding:"required" validate:"required,min=1"`
}

type UpdateModuleRequest struct {
	ModuleNumber *int    `json:"moduleNumber" validate:"omitempty,min=1"`
	ModuleName   *string `json:"moduleName" validate:"omitempty,min=1"`
}

type CreateArticleRequest struct {
	ModuleID    uint   `json:"moduleId" binding:"required" validate:"required,min=1"`
	ArticleName string `json:"articleName" binding:"required" validate:"required,min=1"`
	Content     string `json:"content"`
	Position    *int   `json:"position" validate:"omitempty,min=1"`
}

type UpdateArticleRequest struct {
	ArticleName *string `json:"articleName" validate:"omitempty,min=1"`
	Content     *string `json:"content"`
	Position    *int    `json:"position" validate:"omitempty,min=1"`
}

type CreateFormRequest struct {
	ModuleID  uint           `json:"moduleId" binding:"required" validate:"required,min=1"`
	FormName  string         `json:"formName" binding:"required" validate:"required,min=1"`
	Questions datatypes.JSON `json:"questions"`
	Position  *int           `json:"position" validate:"omitempty,min=1"`
}

type UpdateFormRequest struct {
	FormName  *string        `json:"formName" validate:"omitempty,min=1"`
	Questions datatypes.JSON `json:"questions"`
	Position  *int           `json:"position" validate:"omitempty,min=1"`
}

// ReorderItem is one entry of a reorder batch. Pointers distinguish absent
// fields from zero values so each gets its own validation error.
type ReorderItem struct {
	ID       *int `json:"id"`
	Position *int `json:"position"`
}

type ReorderRequest struct {
	Items []ReorderItem `json:"items"`
}

// ReorderResult reports the rows touched by a successful reorder.
type ReorderResult struct {
	UpdatedCount int         `json:"updatedCount"`
	Items        interface{} `json:"items"`
}

type SaveFormResponseRequest struct {
	Answers datatypes.JSON `json:"answers" binding:"required" validate:"required"`
}
