package schemas

type OrderDetailCreate struct {
	SandwichID uint `json:"sandwich_id" binding:"required"`
	Amount     int  `json:"amount" binding:"required,gt=0"`
}

type OrderCreate struct {
	UserID       uint                `json:"user_id" binding:"required"`
	CustomerName string              `json:"customer_name" binding:"required"`
	Description  string              `json:"description"`
	OrderDetails []OrderDetailCreate `json:"order_details" binding:"required,min=1,dive"`
}

// OrderUpdate covers the mutable business columns. user_id is fixed once
// an order is placed.
type OrderUpdate struct {
	CustomerName   *string `json:"customer_name"`
	Description    *string `json:"description"`
	Status         *string `json:"status"`
	TrackingNumber *string `json:"tracking_number"`
}

func (o *OrderUpdate) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if o.CustomerName != nil {
		updates["customer_name"] = *o.CustomerName
	}
	if o.Description != nil {
		updates["description"] = *o.Description
	}
	if o.Status != nil {
		updates["status"] = *o.Status
	}
	if o.TrackingNumber != nil {
		updates["tracking_number"] = *o.TrackingNumber
	}
	return updates
}
