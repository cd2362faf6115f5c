// Package reportdto chứa DTO cho domain Report.
package reportdto

// ReportCreateInput dùng cho tạo báo cáo (tầng transport).
// Category nhận theo tên, service sẽ resolve sang ObjectID qua danh mục báo cáo.
type ReportCreateInput struct {
	Reporter    string `json:"reporter" validate:"required,no_xss"`
	Topic       string `json:"topic" validate:"required,no_xss"`
	Location    string `json:"location,omitempty" validate:"omitempty,no_xss"`
	Description string `json:"description" validate:"required,no_xss"`
	Category    string `json:"category" validate:"required"`
	Urgent      bool   `json:"urgent"`
	MoreDetails string `json:"moreDetails,omitempty" validate:"omitempty,no_xss"`
	Attachments string `json:"attachments,omitempty"`

	// Thời điểm xảy ra (UnixMilli). 0 nghĩa là dùng thời điểm gửi.
	Timestamp int64 `json:"timestamp,omitempty"`
}

// ReportQueryInput query cho GET /reports/query.
// start/end theo RFC3339, category theo tên, search là chuỗi full-text.
type ReportQueryInput struct {
	StartDate string `query:"start_date"` // RFC3339 (vd: 2026-01-02T15:04:05Z)
	EndDate   string `query:"end_date"`   // RFC3339
	Category  string `query:"category"`   // Tên danh mục
	Search    string `query:"search"`     // Chuỗi tìm kiếm full-text
}
