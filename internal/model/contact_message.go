package model

import "gorm.io/gorm"

// ContactMessage is a submission of the public contact form. It belongs to
// no business.
type ContactMessage struct {
	gorm.Model
	Name    string `json:"name" gorm:"not null"`
	Email   string `json:"email" gorm:"not null;index"`
	Message string `json:"message" gorm:"type:text;not null"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}
