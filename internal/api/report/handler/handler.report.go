package reporthdl

import (
	"fmt"
	"time"

	basehdl "report_hub/internal/api/base/handler"
	reportdto "report_hub/internal/api/report/dto"
	reportmodels "report_hub/internal/api/report/models"
	reportsvc "report_hub/internal/api/report/service"
	"report_hub/internal/common"
	"report_hub/internal/logger"
	"report_hub/internal/utility"

	"github.com/gofiber/fiber/v3"
)

// ReportHandler xử lý các request liên quan đến báo cáo
type ReportHandler struct {
	*basehdl.BaseHandler[reportmodels.Report, reportdto.ReportCreateInput]
	reportService *reportsvc.ReportService
}

// NewReportHandler tạo mới ReportHandler
func NewReportHandler() (*ReportHandler, error) {
	reportService, err := reportsvc.NewReportService()
	if err != nil {
		return nil, fmt.Errorf("failed to create report service: %v", err)
	}

	hdl := &ReportHandler{
		BaseHandler:   basehdl.NewBaseHandler[reportmodels.Report, reportdto.ReportCreateInput](reportService),
		reportService: reportService,
	}
	return hdl, nil
}

// HandleCreate tạo mới một báo cáo.
// Khác InsertOne generic ở chỗ category được resolve theo tên và validate trước khi ghi.
func (h *ReportHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input reportdto.ReportCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.reportService.Create(c.Context(), input)
		if err == nil {
			logger.LogCRUD("create", "report", utility.ObjectID2String(data.ID), c, map[string]interface{}{
				"category": input.Category,
				"urgent":   input.Urgent,
			})
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleQuery tìm báo cáo theo khoảng thời gian, danh mục và chuỗi tìm kiếm full-text.
// Không có tham số nào → trả về 10 báo cáo mới nhất; có tham số → trả về toàn bộ kết quả khớp.
func (h *ReportHandler) HandleQuery(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := parseReportFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.reportService.Query(c.Context(), filter)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if data == nil {
			data = []reportmodels.Report{}
		}
		h.HandleResponse(c, data, nil)
		return nil
	})
}

// HandleQueryByCategory trả về toàn bộ báo cáo thuộc một danh mục (tên lấy từ path).
// Danh mục không tồn tại → ErrCategoryNotFound, không trả về danh sách rỗng.
func (h *ReportHandler) HandleQueryByCategory(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter := reportsvc.ReportFilter{CategoryName: c.Params("category")}

		data, err := h.reportService.Query(c.Context(), filter)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if data == nil {
			data = []reportmodels.Report{}
		}
		h.HandleResponse(c, data, nil)
		return nil
	})
}

// parseReportFilter đọc các query param lọc báo cáo. Ngày theo RFC3339.
func parseReportFilter(c fiber.Ctx) (reportsvc.ReportFilter, error) {
	var input reportdto.ReportQueryInput
	if err := c.Bind().Query(&input); err != nil {
		return reportsvc.ReportFilter{}, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Tham số không hợp lệ: %v", err),
			common.StatusBadRequest,
			err,
		)
	}

	filter := reportsvc.ReportFilter{
		CategoryName: input.Category,
		SearchText:   input.Search,
	}

	if input.StartDate != "" {
		t, err := time.Parse(time.RFC3339, input.StartDate)
		if err != nil {
			return filter, common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("start_date không đúng định dạng RFC3339: %s", input.StartDate),
				common.StatusBadRequest,
				err,
			)
		}
		filter.StartDate = &t
	}

	if input.EndDate != "" {
		t, err := time.Parse(time.RFC3339, input.EndDate)
		if err != nil {
			return filter, common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("end_date không đúng định dạng RFC3339: %s", input.EndDate),
				common.StatusBadRequest,
				err,
			)
		}
		filter.EndDate = &t
	}

	return filter, nil
}
