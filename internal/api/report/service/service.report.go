package reportsvc

import (
	"context"
	"fmt"
	"time"

	basesvc "report_hub/internal/api/base/service"
	catsvc "report_hub/internal/api/category/service"
	reportdto "report_hub/internal/api/report/dto"
	reportmodels "report_hub/internal/api/report/models"
	"report_hub/internal/common"
	"report_hub/internal/global"
	"report_hub/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultQueryLimit là số báo cáo trả về khi query không có điều kiện lọc nào.
// Khi có bất kỳ điều kiện nào, trả về toàn bộ kết quả khớp (không giới hạn).
const DefaultQueryLimit = 10

// ReportFilter mô tả các điều kiện lọc báo cáo.
type ReportFilter struct {
	StartDate    *time.Time // Chặn dưới (inclusive) trên timestamp
	EndDate      *time.Time // Chặn trên (inclusive) trên timestamp
	CategoryName string     // Tên danh mục, exact match
	SearchText   string     // Chuỗi tìm kiếm full-text trên weighted text index
}

// IsEmpty trả về true khi không có điều kiện lọc nào được set
func (f ReportFilter) IsEmpty() bool {
	return f.StartDate == nil && f.EndDate == nil && f.CategoryName == "" && f.SearchText == ""
}

// BuildQuery dựng bson filter và find options từ ReportFilter.
// categoryID là danh mục đã được resolve từ CategoryName (nil nếu không lọc theo danh mục).
// Kết quả luôn sắp theo timestamp giảm dần, _id giảm dần làm tie-break ổn định.
func BuildQuery(f ReportFilter, categoryID *primitive.ObjectID) (bson.M, *options.FindOptions) {
	filter := bson.M{}

	ts := bson.M{}
	if f.StartDate != nil {
		ts["$gte"] = f.StartDate.UnixMilli()
	}
	if f.EndDate != nil {
		ts["$lte"] = f.EndDate.UnixMilli()
	}
	if len(ts) > 0 {
		filter["timestamp"] = ts
	}

	if categoryID != nil {
		filter["categoryId"] = *categoryID
	}

	if f.SearchText != "" {
		filter["$text"] = bson.M{"$search": f.SearchText}
	}

	opts := options.Find()
	if f.SearchText != "" {
		// Có full-text search → sắp theo độ liên quan trước, thời gian sau
		opts.SetSort(bson.D{
			{Key: "score", Value: bson.M{"$meta": "textScore"}},
			{Key: "timestamp", Value: -1},
			{Key: "_id", Value: -1},
		})
	} else {
		opts.SetSort(bson.D{{Key: "timestamp", Value: -1}, {Key: "_id", Value: -1}})
	}
	// Không có filter nào → chỉ trả về 10 báo cáo mới nhất (chế độ overview).
	// Có filter → trả về toàn bộ kết quả khớp.
	if f.IsEmpty() {
		opts.SetLimit(DefaultQueryLimit)
	}

	return filter, opts
}

// ReportService là cấu trúc chứa các phương thức liên quan đến báo cáo
type ReportService struct {
	*basesvc.BaseServiceMongoImpl[reportmodels.Report]
	categories *catsvc.ReportCategoryService
}

// NewReportService tạo mới ReportService
func NewReportService() (*ReportService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Reports)
	if !exist {
		return nil, fmt.Errorf("failed to get reports collection: %v", common.ErrNotFound)
	}

	categories, err := catsvc.NewReportCategoryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create report category service: %w", err)
	}

	return &ReportService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[reportmodels.Report](collection),
		categories:           categories,
	}, nil
}

// Create tạo mới một báo cáo từ dữ liệu đã validate.
// Tên danh mục được resolve trước khi ghi: danh mục không tồn tại → ErrCategoryNotFound,
// không có báo cáo nào được tạo.
func (s *ReportService) Create(ctx context.Context, input reportdto.ReportCreateInput) (reportmodels.Report, error) {
	category, err := s.categories.Resolve(ctx, input.Category)
	if err != nil {
		return reportmodels.Report{}, err
	}

	report := reportmodels.Report{
		Reporter:    input.Reporter,
		Topic:       input.Topic,
		Location:    input.Location,
		Description: input.Description,
		CategoryID:  category.ID,
		Urgent:      input.Urgent,
		MoreDetails: input.MoreDetails,
		Attachments: input.Attachments,
		Timestamp:   input.Timestamp,
	}
	if report.Timestamp == 0 {
		report.Timestamp = utility.CurrentTimeInMilli()
	}

	return s.InsertOne(ctx, report)
}

// Query tìm báo cáo theo ReportFilter, sắp theo timestamp giảm dần.
// CategoryName không tồn tại → ErrCategoryNotFound (lọc strict, không bỏ qua im lặng).
func (s *ReportService) Query(ctx context.Context, f ReportFilter) ([]reportmodels.Report, error) {
	var categoryID *primitive.ObjectID
	if f.CategoryName != "" {
		category, err := s.categories.Resolve(ctx, f.CategoryName)
		if err != nil {
			return nil, err
		}
		categoryID = &category.ID
	}

	filter, opts := BuildQuery(f, categoryID)
	return s.Find(ctx, filter, opts)
}
