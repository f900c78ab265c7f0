package models

import "gorm.io/datatypes"

type Organization struct {
	BaseModel
	Name             string         `gorm:"uniqueIndex;not null" json:"name"`
	SubscriptionType string         `gorm:"type:varchar(50);default:'basic'" json:"subscriptionType"`
	Settings         datatypes.JSON `json:"settings,omitempty"`

	Users []User `gorm:"foreignKey:OrganizationID" json:"users,omitempty"`
}
