package models

import "gorm.io/datatypes"

// FormResponse is one row per (form, organization): the answer set is shared
// by the whole organization and the latest save wins. UserID records the last
// member who wrote it.
type FormResponse struct {
	BaseModel
	FormID         uint           `gorm:"not null;uniqueIndex:idx_form_org" json:"formId"`
	OrganizationID uint           `gorm:"not null;uniqueIndex:idx_form_org" json:"organizationId"`
	UserID         uint           `gorm:"not null" json:"userId"`
	Answers        datatypes.JSON `json:"answers"`
}
