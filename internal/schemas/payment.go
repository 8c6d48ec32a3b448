package schemas

type PaymentCreate struct {
	OrderID           uint    `json:"order_id" binding:"required"`
	Amount            float64 `json:"amount" binding:"required,gt=0"`
	PaymentMethod     string  `json:"payment_method"`
	TransactionStatus string  `json:"transaction_status"`
}

type PaymentUpdate struct {
	Amount            *float64 `json:"amount" binding:"omitempty,gt=0"`
	PaymentMethod     *string  `json:"payment_method"`
	TransactionStatus *string  `json:"transaction_status"`
}

func (p *PaymentUpdate) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if p.Amount != nil {
		updates["amount"] = *p.Amount
	}
	if p.PaymentMethod != nil {
		updates["payment_method"] = *p.PaymentMethod
	}
	if p.TransactionStatus != nil {
		updates["transaction_status"] = *p.TransactionStatus
	}
	return updates
}
