package models

type Module struct {
	BaseModel
	ModuleNumber int    `gorm:"not null;index" json:"moduleNumber"`
	ModuleName   string `gorm:"not null" json:"moduleName"`

	// Deleting a module removes its articles and forms.
	Articles []Article `gorm:"foreignKey:ModuleID;constraint:OnDelete:CASCADE" json:"articles,omitempty"`
	Forms    []Form    `gorm:"foreignKey:ModuleID;constraint:OnDelete:CASCADE" json:"forms,omitempty"`
}
