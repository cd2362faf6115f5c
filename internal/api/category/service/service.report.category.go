package catsvc

import (
	"context"
	"errors"
	"fmt"

	basesvc "report_hub/internal/api/base/service"
	catmodels "report_hub/internal/api/category/models"
	"report_hub/internal/common"
	"report_hub/internal/global"
	"report_hub/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReportCategoryService là cấu trúc chứa các phương thức liên quan đến danh mục báo cáo
type ReportCategoryService struct {
	*basesvc.BaseServiceMongoImpl[catmodels.ReportCategory]
}

// NewReportCategoryService tạo mới ReportCategoryService
func NewReportCategoryService() (*ReportCategoryService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ReportCategories)
	if !exist {
		return nil, fmt.Errorf("failed to get report_categories collection: %v", common.ErrNotFound)
	}

	return &ReportCategoryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catmodels.ReportCategory](collection),
	}, nil
}

// Resolve tìm danh mục theo tên.
// Trả về ErrCategoryNotFound khi tên không tồn tại, để caller phân biệt với lỗi hệ thống.
func (s *ReportCategoryService) Resolve(ctx context.Context, name string) (catmodels.ReportCategory, error) {
	category, err := s.FindOne(ctx, bson.M{"name": name}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return category, common.ErrCategoryNotFound
		}
		return category, err
	}
	return category, nil
}

// ListAll trả về tất cả danh mục, sắp xếp theo tên tăng dần
func (s *ReportCategoryService) ListAll(ctx context.Context) ([]catmodels.ReportCategory, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	return s.Find(ctx, bson.D{}, opts)
}

// DeleteById xóa danh mục theo id, nhưng chỉ khi không còn báo cáo nào tham chiếu tới nó.
// Còn tham chiếu → lỗi 409, danh mục giữ nguyên.
func (s *ReportCategoryService) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	checks := []basesvc.RelationshipCheck{
		{
			CollectionName: global.MongoDB_ColNames.Reports,
			FieldName:      "categoryId",
			ErrorMessage:   "Không thể xóa danh mục vì có %d báo cáo đang thuộc danh mục này",
		},
		{
			CollectionName: global.MongoDB_ColNames.DailyReports,
			FieldName:      "categoryId",
			ErrorMessage:   "Không thể xóa danh mục vì có %d báo cáo tổng hợp ngày đang tham chiếu danh mục này",
		},
		{
			CollectionName: global.MongoDB_ColNames.MonthlyReports,
			FieldName:      "categoryId",
			ErrorMessage:   "Không thể xóa danh mục vì có %d báo cáo tổng hợp tháng đang tham chiếu danh mục này",
		},
	}
	if err := basesvc.CheckRelationshipExists(ctx, id, checks); err != nil {
		return err
	}
	return s.BaseServiceMongoImpl.DeleteById(ctx, id)
}

// EnsureSeeded đảm bảo các danh mục mặc định tồn tại trong DB.
// Upsert theo tên nên chạy lại nhiều lần không tạo bản ghi trùng.
func (s *ReportCategoryService) EnsureSeeded(ctx context.Context, names []string) error {
	log := logger.GetAppLogger().WithField("module", "category")
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, err := s.Upsert(ctx, bson.M{"name": name}, catmodels.ReportCategory{Name: name}); err != nil {
			return fmt.Errorf("seed category %q: %w", name, err)
		}
		log.WithField("name", name).Debug("Đã đảm bảo danh mục tồn tại")
	}
	return nil
}
