package catdto

// ReportCategoryCreateInput dùng cho tạo danh mục báo cáo (tầng transport)
type ReportCategoryCreateInput struct {
	Name        string `json:"name" validate:"required,no_xss"`
	Description string `json:"description,omitempty" validate:"omitempty,no_xss"`
}
