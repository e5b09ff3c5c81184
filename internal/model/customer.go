package model

import (
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Customer struct {
	gorm.Model
	BusinessID  uint            `json:"business_id" gorm:"index;not null"`
	FirstName   string          `json:"first_name" gorm:"not null"`
	LastName    string          `json:"last_name"`
	Email       string          `json:"email" gorm:"not null"`
	Phone       string          `json:"phone"`
	DateOfBirth *datatypes.Date `json:"date_of_birth"`

	Business Business `json:"-" gorm:"foreignKey:BusinessID"`
}

func (c *Customer) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}
