package schemas

import (
	"time"
)

type PromoCreate struct {
	Code         string     `json:"code" binding:"required"`
	Description  string     `json:"description"`
	DiscountType string     `json:"discount_type" binding:"required"`
	Value        float64    `json:"value" binding:"required"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	IsActive     *int       `json:"is_active"`
}

type PromoUpdate struct {
	Code         *string    `json:"code"`
	Description  *string    `json:"description"`
	DiscountType *string    `json:"discount_type"`
	Value        *float64   `json:"value"`
	StartDate    *time.Time `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	IsActive     *int       `json:"is_active"`
}

func (p *PromoUpdate) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if p.Code != nil {
		updates["code"] = *p.Code
	}
	if p.Description != nil {
		updates["description"] = *p.Description
	}
	if p.DiscountType != nil {
		updates["discount_type"] = *p.DiscountType
	}
	if p.Value != nil {
		updates["value"] = *p.Value
	}
	if p.StartDate != nil {
		updates["start_date"] = *p.StartDate
	}
	if p.EndDate != nil {
		updates["end_date"] = *p.EndDate
	}
	if p.IsActive != nil {
		updates["is_active"] = *p.IsActive
	}
	return updates
}
