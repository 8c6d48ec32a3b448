package schemas

type ReviewCreate struct {
	UserID  uint   `json:"user_id" binding:"required"`
	OrderID *uint  `json:"order_id"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

type ReviewUpdate struct {
	Rating  *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comment *string `json:"comment"`
}

func (r *ReviewUpdate) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Rating != nil {
		updates["rating"] = *r.Rating
	}
	if r.Comment != nil {
		updates["comment"] = *r.Comment
	}
	return updates
}
