// Package models - AggregateReport thuộc domain Aggregate.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AggregateReport - Bản tóm tắt được sinh tự động từ các báo cáo trong một khoảng thời gian.
// Dùng chung cho cả daily và monthly, mỗi loại nằm trong collection riêng.
// Ghi đúng một lần cho mỗi lần generate, không bao giờ update hay delete.
type AggregateReport struct {
	ID          primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	Summary     string              `json:"summary" bson:"summary" validate:"required"`
	ReportCount int64               `json:"reportCount" bson:"reportCount"`

	// Khoảng thời gian nguồn (UnixMilli), StartDate <= EndDate.
	StartDate int64 `json:"startDate" bson:"startDate"`
	EndDate   int64 `json:"endDate" bson:"endDate"`

	// Danh mục được lọc khi generate. Nil nghĩa là tổng hợp trên tất cả danh mục.
	CategoryID *primitive.ObjectID `json:"categoryId,omitempty" bson:"categoryId,omitempty" index:"single:1"`

	// Thời điểm generate (UnixMilli). Các query lọc theo trường này, không theo window.
	Timestamp int64 `json:"timestamp" bson:"timestamp" index:"single:-1"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
