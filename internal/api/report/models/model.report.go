// Package models - Report thuộc domain Report.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Report - Một báo cáo do người dùng gửi lên. Bất biến sau khi tạo.
// Topic, Description và MoreDetails tham gia weighted text index (group report_text)
// để tìm kiếm full-text có xếp hạng: topic quan trọng nhất, rồi đến description, rồi moreDetails.
type Report struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Reporter    string             `json:"reporter" bson:"reporter" validate:"required"`
	Topic       string             `json:"topic" bson:"topic" index:"text:report_text,weight:10" validate:"required"`
	Location    string             `json:"location,omitempty" bson:"location,omitempty"`
	Description string             `json:"description" bson:"description" index:"text:report_text,weight:5" validate:"required"`
	CategoryID  primitive.ObjectID `json:"categoryId" bson:"categoryId" index:"single:1"`
	Urgent      bool               `json:"urgent" bson:"urgent"`
	MoreDetails string             `json:"moreDetails,omitempty" bson:"moreDetails,omitempty" index:"text:report_text,weight:2"`
	Attachments string             `json:"attachments,omitempty" bson:"attachments,omitempty"`

	// Thời điểm xảy ra báo cáo (UnixMilli). Mặc định là thời điểm gửi nếu client không chỉ định.
	Timestamp int64 `json:"timestamp" bson:"timestamp" index:"single:-1"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
