package models

import "gorm.io/datatypes"

// Form questions are stored as an ordered JSON list of
// {id, text, type, options?, required} objects.
type Form struct {
	BaseModel
	ModuleID  uint           `gorm:"not null;index" json:"moduleId"`
	FormName  string         `gorm:"not null" json:"formName"`
	Questions datatypes.JSON `json:"questions"`
	Position  int            `gorm:"not null;default:1" json:"position"`
}
