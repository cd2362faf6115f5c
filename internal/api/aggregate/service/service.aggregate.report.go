package aggsvc

import (
	"context"
	"fmt"
	"time"

	aggmodels "report_hub/internal/api/aggregate/models"
	basesvc "report_hub/internal/api/base/service"
	catmodels "report_hub/internal/api/category/models"
	catsvc "report_hub/internal/api/category/service"
	reportmodels "report_hub/internal/api/report/models"
	reportsvc "report_hub/internal/api/report/service"
	"report_hub/internal/common"
	"report_hub/internal/global"
	"report_hub/internal/llm"
	"report_hub/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Các interface nhỏ để service generate không phụ thuộc cứng vào Mongo và OpenAI.

// reportQuerier truy vấn báo cáo nguồn trong một khoảng thời gian
type reportQuerier interface {
	Query(ctx context.Context, f reportsvc.ReportFilter) ([]reportmodels.Report, error)
}

// categoryResolver resolve tên danh mục sang bản ghi danh mục
type categoryResolver interface {
	Resolve(ctx context.Context, name string) (catmodels.ReportCategory, error)
}

// aggregateStore ghi bản tổng hợp đã sinh
type aggregateStore interface {
	InsertOne(ctx context.Context, data aggmodels.AggregateReport) (aggmodels.AggregateReport, error)
}

// GenerateParams là tham số cho một lần generate.
// Year và Month chỉ có nghĩa với monthly; Language rỗng rơi về DefaultLanguage.
type GenerateParams struct {
	Year         int
	Month        int
	CategoryName string
	Language     string
}

// AggregateFilter mô tả điều kiện lọc khi liệt kê báo cáo tổng hợp.
// StartDate/EndDate chặn trên timestamp (thời điểm generate), không phải window nguồn.
type AggregateFilter struct {
	StartDate    *time.Time
	EndDate      *time.Time
	CategoryName string
}

// BuildAggregateQuery dựng bson filter + options từ AggregateFilter.
// categoryID là danh mục đã resolve (nil nếu không lọc). Sắp theo timestamp giảm dần.
func BuildAggregateQuery(f AggregateFilter, categoryID *primitive.ObjectID) (bson.M, *options.FindOptions) {
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

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}, {Key: "_id", Value: -1}})
	return filter, opts
}

// AggregateReportService sinh và truy vấn báo cáo tổng hợp cho một loại (daily hoặc monthly)
type AggregateReportService struct {
	*basesvc.BaseServiceMongoImpl[aggmodels.AggregateReport]
	kind       Kind
	store      aggregateStore
	reports    reportQuerier
	categories categoryResolver
	completer  llm.Completer
	now        func() time.Time
}

// NewDailyReportService tạo service cho báo cáo tổng hợp theo ngày
func NewDailyReportService() (*AggregateReportService, error) {
	return newAggregateReportService(global.MongoDB_ColNames.DailyReports, KindDaily)
}

// NewMonthlyReportService tạo service cho báo cáo tổng hợp theo tháng
func NewMonthlyReportService() (*AggregateReportService, error) {
	return newAggregateReportService(global.MongoDB_ColNames.MonthlyReports, KindMonthly)
}

func newAggregateReportService(colName string, kind Kind) (*AggregateReportService, error) {
	collection, exist := global.RegistryCollections.Get(colName)
	if !exist {
		return nil, fmt.Errorf("failed to get %s collection: %v", colName, common.ErrNotFound)
	}

	reports, err := reportsvc.NewReportService()
	if err != nil {
		return nil, fmt.Errorf("failed to create report service: %w", err)
	}
	categories, err := catsvc.NewReportCategoryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create report category service: %w", err)
	}
	if global.Summarizer == nil {
		return nil, fmt.Errorf("summarizer chưa được khởi tạo")
	}

	base := basesvc.NewBaseServiceMongo[aggmodels.AggregateReport](collection)
	return &AggregateReportService{
		BaseServiceMongoImpl: base,
		kind:                 kind,
		store:                base,
		reports:              reports,
		categories:           categories,
		completer:            global.Summarizer,
		now:                  time.Now,
	}, nil
}

// Generate sinh một báo cáo tổng hợp mới: resolve window và danh mục, truy vấn báo cáo nguồn,
// format, gọi summarizer rồi ghi bản ghi. All-or-nothing: summarizer lỗi → không ghi gì.
// Không idempotent: gọi lặp lại tạo bản ghi mới, đây là hành vi chủ đích.
func (s *AggregateReportService) Generate(ctx context.Context, p GenerateParams) (aggmodels.AggregateReport, error) {
	var zero aggmodels.AggregateReport

	// Resolve window trước mọi side effect
	var start, end time.Time
	if s.kind == KindDaily {
		start, end = DailyWindow(s.now())
	} else {
		var err error
		start, end, err = MonthlyWindow(p.Year, p.Month)
		if err != nil {
			return zero, err
		}
	}

	// Validate danh mục trước khi truy vấn hay gọi external
	var categoryID *primitive.ObjectID
	if p.CategoryName != "" {
		category, err := s.categories.Resolve(ctx, p.CategoryName)
		if err != nil {
			return zero, err
		}
		categoryID = &category.ID
	}

	reports, err := s.reports.Query(ctx, reportsvc.ReportFilter{
		StartDate:    &start,
		EndDate:      &end,
		CategoryName: p.CategoryName,
	})
	if err != nil {
		return zero, err
	}

	formatted := FormatReports(reports)
	prompt := BuildPrompt(s.kind, formatted, p.Language)

	resp, err := s.completer.Complete(ctx, &llm.CompletionRequest{UserPrompt: prompt})
	if err != nil {
		logger.WithModule("aggregate").WithFields(map[string]interface{}{
			"kind":  string(s.kind),
			"error": err.Error(),
		}).Error("Gọi summarizer thất bại, không ghi báo cáo tổng hợp")
		return zero, err
	}
	if resp.Content == "" {
		// Không bao giờ ghi bản ghi với summary rỗng
		return zero, common.ErrSummarizerResponse
	}

	aggregate := aggmodels.AggregateReport{
		Summary:     resp.Content,
		ReportCount: int64(len(reports)),
		StartDate:   start.UnixMilli(),
		EndDate:     end.UnixMilli(),
		CategoryID:  categoryID,
		Timestamp:   s.now().UnixMilli(),
	}

	return s.store.InsertOne(ctx, aggregate)
}

// Query liệt kê báo cáo tổng hợp theo AggregateFilter, sắp theo timestamp giảm dần.
// CategoryName không tồn tại → ErrCategoryNotFound.
func (s *AggregateReportService) Query(ctx context.Context, f AggregateFilter) ([]aggmodels.AggregateReport, error) {
	var categoryID *primitive.ObjectID
	if f.CategoryName != "" {
		category, err := s.categories.Resolve(ctx, f.CategoryName)
		if err != nil {
			return nil, err
		}
		categoryID = &category.ID
	}

	filter, opts := BuildAggregateQuery(f, categoryID)
	return s.Find(ctx, filter, opts)
}
