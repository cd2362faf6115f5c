package agghdl

import (
	"fmt"
	"time"

	aggdto "report_hub/internal/api/aggregate/dto"
	aggmodels "report_hub/internal/api/aggregate/models"
	aggsvc "report_hub/internal/api/aggregate/service"
	basehdl "report_hub/internal/api/base/handler"
	"report_hub/internal/common"
	"report_hub/internal/global"
	"report_hub/internal/logger"
	"report_hub/internal/utility"

	"github.com/gofiber/fiber/v3"
)

// AggregateReportHandler xử lý các request liên quan đến báo cáo tổng hợp (daily hoặc monthly)
type AggregateReportHandler struct {
	*basehdl.BaseHandler[aggmodels.AggregateReport, aggmodels.AggregateReport]
	aggregateService *aggsvc.AggregateReportService
	kind             aggsvc.Kind
}

// NewDailyReportHandler tạo handler cho báo cáo tổng hợp theo ngày
func NewDailyReportHandler() (*AggregateReportHandler, error) {
	svc, err := aggsvc.NewDailyReportService()
	if err != nil {
		return nil, fmt.Errorf("failed to create daily report service: %v", err)
	}
	return newAggregateReportHandler(svc, aggsvc.KindDaily), nil
}

// NewMonthlyReportHandler tạo handler cho báo cáo tổng hợp theo tháng
func NewMonthlyReportHandler() (*AggregateReportHandler, error) {
	svc, err := aggsvc.NewMonthlyReportService()
	if err != nil {
		return nil, fmt.Errorf("failed to create monthly report service: %v", err)
	}
	return newAggregateReportHandler(svc, aggsvc.KindMonthly), nil
}

func newAggregateReportHandler(svc *aggsvc.AggregateReportService, kind aggsvc.Kind) *AggregateReportHandler {
	return &AggregateReportHandler{
		BaseHandler:      basehdl.NewBaseHandler[aggmodels.AggregateReport, aggmodels.AggregateReport](svc),
		aggregateService: svc,
		kind:             kind,
	}
}

// HandleGenerate sinh một báo cáo tổng hợp mới.
// Với monthly, year và month là bắt buộc; month ngoài 1-12 bị từ chối trước khi truy vấn.
func (h *AggregateReportHandler) HandleGenerate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input aggdto.GenerateInput
		if err := c.Bind().Query(&input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("Tham số không hợp lệ: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		params := aggsvc.GenerateParams{
			Year:         input.Year,
			Month:        input.Month,
			CategoryName: input.Category,
			Language:     input.Lang,
		}
		if params.Language == "" {
			// Ưu tiên ngôn ngữ mặc định từ config, rơi về hằng số khi config trống
			params.Language = global.MongoDB_ServerConfig.DefaultLanguage
		}
		if params.Language == "" {
			params.Language = aggsvc.DefaultLanguage
		}

		data, err := h.aggregateService.Generate(c.Context(), params)
		if err == nil {
			logger.LogGenerate(string(h.kind), c, map[string]interface{}{
				"id":          utility.ObjectID2String(data.ID),
				"reportCount": data.ReportCount,
				"category":    input.Category,
				"lang":        params.Language,
			})
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleQuery liệt kê báo cáo tổng hợp theo khoảng thời gian generate và danh mục
func (h *AggregateReportHandler) HandleQuery(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := parseAggregateFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.aggregateService.Query(c.Context(), filter)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if data == nil {
			data = []aggmodels.AggregateReport{}
		}
		h.HandleResponse(c, data, nil)
		return nil
	})
}

// parseAggregateFilter đọc các query param lọc báo cáo tổng hợp. Ngày theo RFC3339.
func parseAggregateFilter(c fiber.Ctx) (aggsvc.AggregateFilter, error) {
	var input aggdto.AggregateQueryInput
	if err := c.Bind().Query(&input); err != nil {
		return aggsvc.AggregateFilter{}, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Tham số không hợp lệ: %v", err),
			common.StatusBadRequest,
			err,
		)
	}

	filter := aggsvc.AggregateFilter{
		CategoryName: input.Category,
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
