package model

import (
	"github.com/VinodVen/growthai/pkg/subscription"
	"gorm.io/gorm"
)

type Role string

const (
	RoleOwner Role = "owner"
	RoleAdmin Role = "admin"
)

type Business struct {
	gorm.Model
	BusinessName       string                `json:"business_name" gorm:"not null"`
	OwnerName          string                `json:"owner_name" gorm:"not null"`
	Email              string                `json:"email" gorm:"uniqueIndex;not null"`
	Password           string                `json:"-" gorm:"not null"`
	Slug               string                `json:"slug" gorm:"uniqueIndex;not null"`
	Plan               subscription.PlanType `json:"plan" gorm:"type:varchar(20);default:'free';not null"`
	Role               Role                  `json:"role" gorm:"type:varchar(20);default:'owner';not null"`
	BillingCustomerRef string                `json:"billing_customer_ref"`

	Customers []Customer `json:"-"`
	Campaigns []Campaign `json:"-"`
}

func (b *Business) IsAdmin() bool {
	return b.Role == RoleAdmin
}

func (b *Business) IsPro() bool {
	return b.Plan == subscription.ProPlan
}

func (b *Business) PlanDetails() subscription.PlanDetails {
	return subscription.GetPlan(b.Plan)
}
