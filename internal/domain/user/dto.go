package user

type UserResponse struct {
	UserID       string  `json:"user_id"`
	Email        string  `json:"email"`
	EmployeeID   *string `json:"employee_id"`
	Role         Role    `json:"role"`
	IsFirstLogin bool    `json:"is_first_login"`
}

func NewUserResponse(u User) UserResponse {
	return UserResponse{
		UserID:       u.ID,
		Email:        u.Email,
		EmployeeID:   u.EmployeeID,
		Role:         u.Role,
		IsFirstLogin: u.IsFirstLogin,
	}
}
