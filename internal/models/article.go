package models

// Article positions are 1-based and dense within a module: after a successful
// reorder the positions of a module's N articles are a permutation of 1..N.
type Article struct {
	BaseModel
	ModuleID    uint   `gorm:"not null;index" json:"moduleId"`
	ArticleName string `gorm:"not null" json:"articleName"`
	Content     string `gorm:"type:text" json:"content"`
	Position    int    `gorm:"not null;default:1" json:"position"`
}
