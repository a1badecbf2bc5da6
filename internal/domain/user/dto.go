package user

type SignupInput struct {
	Role       Role    `json:"role" form:"role" binding:"required,oneof=student supervisor" example:"student"`
	Email      string  `json:"email" form:"email" binding:"required,email" example:"jane@uni.edu"`
	Name       string  `json:"name" form:"name" binding:"required,max=255" example:"Jane Doe"`
	Password   string  `json:"password" form:"password" binding:"required,min=6" example:"password123"`
	Department *string `json:"department,omitempty" form:"department" example:"Computer Science"`
	StaffID    *string `json:"staff_id,omitempty" form:"staff_id" example:"S-1042"`
}

type LoginInput struct {
	Email    string `json:"email" form:"email" binding:"required,email" example:"jane@uni.edu"`
	Password string `json:"password" form:"password" binding:"required" example:"password123"`
}

type UpdateStatusInput struct {
	Active *bool `json:"active" binding:"required" example:"false"`
}

type ListFilter struct {
	Role   *Role
	Search string
}

type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type Stats struct {
	Total    int64          `json:"total"`
	Inactive int64          `json:"inactive"`
	ByRole   map[Role]int64 `json:"by_role"`
}
