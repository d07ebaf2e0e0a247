package request

type CreateHotelRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=150"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	Address     string  `json:"address" validate:"required,max=255"`
	City        string  `json:"city" validate:"required,max=100"`
}

type UpdateHotelRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=150"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	Address     string  `json:"address" validate:"required,max=255"`
	City        string  `json:"city" validate:"required,max=100"`
}

type ListHotelsRequest struct {
	PaginatedRequest
	City string `json:"city" validate:"omitempty,max=100"`
}

type UpdateHotelStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive suspended"`
}
