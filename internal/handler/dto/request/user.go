package request

type UpdateProfileRequest struct {
	Name         string  `json:"name" binding:"required"`
	Phone        *string `json:"phone,omitempty"`
	ProfileImage *string `json:"profile_image,omitempty"`
}

type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=USER MANAGER ADMIN"`
}
