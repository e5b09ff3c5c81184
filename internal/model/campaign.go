package model

import "gorm.io/gorm"

type CampaignType string

const (
	CampaignBirthday CampaignType = "birthday"
	CampaignLoyalty  CampaignType = "loyalty"
	CampaignWeekend  CampaignType = "weekend"
)

// ParseCampaignType maps unknown and empty values to the weekend campaign.
func ParseCampaignType(s string) CampaignType {
	switch CampaignType(s) {
	case CampaignBirthday:
		return CampaignBirthday
	case CampaignLoyalty:
		return CampaignLoyalty
	default:
		return CampaignWeekend
	}
}

type Campaign struct {
	gorm.Model
	BusinessID    uint         `json:"business_id" gorm:"index;not null"`
	CustomerID    uint         `json:"customer_id" gorm:"index"`
	CustomerName  string       `json:"customer_name" gorm:"not null"`
	CustomerEmail string       `json:"customer_email" gorm:"not null"`
	CampaignType  CampaignType `json:"campaign_type" gorm:"type:varchar(20);default:'weekend';not null"`
	Message       string       `json:"message" gorm:"type:text;not null"`

	Business Business `json:"-" gorm:"foreignKey:BusinessID"`
	Customer Customer `json:"-" gorm:"foreignKey:CustomerID"`
}
