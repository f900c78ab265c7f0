package models

// File stores uploaded bytes in the database next to their metadata.
// Filename is the generated collision-resistant name; OriginalName is what
// the uploader called it.
type File struct {
	BaseModel
	Filename     string `gorm:"uniqueIndex;not null" json:"filename"`
	OriginalName string `gorm:"not null" json:"originalName"`
	MimeType     string `gorm:"not null" json:"mimeType"`
	Size         int64  `gorm:"not null" json:"size"`
	Data         []byte `gorm:"type:bytea;not null" json:"-"`
	UploadedBy   *uint  `json:"uploadedBy"`
}
