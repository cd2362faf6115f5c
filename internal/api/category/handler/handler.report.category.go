package cathdl

import (
	"fmt"

	basehdl "report_hub/internal/api/base/handler"
	catdto "report_hub/internal/api/category/dto"
	catmodels "report_hub/internal/api/category/models"
	catsvc "report_hub/internal/api/category/service"

	"github.com/gofiber/fiber/v3"
)

// ReportCategoryHandler xử lý các request liên quan đến danh mục báo cáo
type ReportCategoryHandler struct {
	*basehdl.BaseHandler[catmodels.ReportCategory, catdto.ReportCategoryCreateInput]
	categoryService *catsvc.ReportCategoryService
}

// NewReportCategoryHandler tạo mới ReportCategoryHandler
func NewReportCategoryHandler() (*ReportCategoryHandler, error) {
	categoryService, err := catsvc.NewReportCategoryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create report category service: %v", err)
	}

	hdl := &ReportCategoryHandler{
		BaseHandler:     basehdl.NewBaseHandler[catmodels.ReportCategory, catdto.ReportCategoryCreateInput](categoryService),
		categoryService: categoryService,
	}
	return hdl, nil
}

// HandleList trả về toàn bộ danh mục, sắp xếp theo tên
func (h *ReportCategoryHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		data, err := h.categoryService.ListAll(c.Context())
		h.HandleResponse(c, data, err)
		return nil
	})
}
