package request

type ListUsersRequest struct {
	PaginatedRequest
	Role   string `json:"role" validate:"omitempty,oneof=user hotelier admin"`
	Status string `json:"status" validate:"omitempty,oneof=pending approved suspended rejected"`
}

type UpdateUserStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved suspended rejected"`
}
