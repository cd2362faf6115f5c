// Package aggdto chứa DTO cho domain Aggregate.
package aggdto

// GenerateInput query cho GET generate (daily và monthly).
// Year/Month chỉ bắt buộc với monthly.
type GenerateInput struct {
	Year     int    `query:"year"`     // Năm (monthly)
	Month    int    `query:"month"`    // Tháng 1-12 (monthly)
	Lang     string `query:"lang"`     // Mã ngôn ngữ tóm tắt (fi, en), mặc định fi
	Category string `query:"category"` // Tên danh mục, rỗng nghĩa là tất cả
}

// AggregateQueryInput query cho GET liệt kê báo cáo tổng hợp.
// start/end theo RFC3339, lọc trên thời điểm generate.
type AggregateQueryInput struct {
	StartDate string `query:"start_date"` // RFC3339
	EndDate   string `query:"end_date"`   // RFC3339
	Category  string `query:"category"`   // Tên danh mục
}
