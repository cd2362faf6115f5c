// Package models - ReportCategory thuộc domain Category.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReportCategory - Danh mục báo cáo. Mỗi report phải thuộc về đúng một danh mục.
type ReportCategory struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name" index:"unique" validate:"required"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
