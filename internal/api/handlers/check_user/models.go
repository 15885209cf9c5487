package check_user

// CheckUserRequest HTTP request model
type CheckUserRequest struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// CheckUserResponse HTTP response model
type CheckUserResponse struct {
	Exists bool `json:"exists"`
}
