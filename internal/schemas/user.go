// Package schemas declares the request and response contracts of the API.
// Create contracts carry binding rules, update contracts use pointer fields
// so that absent fields are left untouched.
package schemas

type UserCreate struct {
	Name        string `json:"name" binding:"required"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	Role        string `json:"role"`
}

// UserUpdate never exposes password or id; those columns are not updatable
// through the API.
type UserUpdate struct {
	Name        *string `json:"name"`
	PhoneNumber *string `json:"phone_number"`
	Address     *string `json:"address"`
	Email       *string `json:"email" binding:"omitempty,email"`
	Role        *string `json:"role"`
}

// Updates returns the allow-listed column set for a partial update.
func (u *UserUpdate) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if u.Name != nil {
		updates["name"] = *u.Name
	}
	if u.PhoneNumber != nil {
		updates["phone_number"] = *u.PhoneNumber
	}
	if u.Address != nil {
		updates["address"] = *u.Address
	}
	if u.Email != nil {
		updates["email"] = *u.Email
	}
	if u.Role != nil {
		updates["role"] = *u.Role
	}
	return updates
}

type UserLogin struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the wire shape of a user. The stored password never
// leaves the service; the token is a non-cryptographic placeholder.
type UserResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Token       string `json:"token"`
}
