package dto

// ToggleCategoryRequest - path parameters of the chip toggle endpoint
type ToggleCategoryRequest struct {
	CategoryID int64 `params:"id" validate:"required,min=1"`
}

// PointRequest - path parameters of the point detail endpoints
type PointRequest struct {
	PointID int64 `params:"id" validate:"required,min=1"`
}
