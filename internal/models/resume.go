package models

import (
	"time"
)

// Resume is the metadata of one stored résumé upload. The JSON names match
// the document-store shape the web client reads (`_id`, `filePath`, ...).
type Resume struct {
	ID         string    `gorm:"type:varchar(24);primaryKey" json:"_id"`
	Filename   string    `gorm:"type:text;not null" json:"filename"`
	FilePath   string    `gorm:"type:text;not null" json:"filePath"`
	UploadedAt time.Time `gorm:"not null;index" json:"uploadedAt"`
}

func (Resume) TableName() string {
	return "resumes"
}
