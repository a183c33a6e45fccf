package domain

// Customer is a renter or an admin operator.
type Customer struct {
	ID        int32  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	IsAdmin   bool   `json:"is_admin"`
	CreatedOn string `json:"created_on"`
}
