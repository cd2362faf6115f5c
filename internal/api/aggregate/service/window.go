package aggsvc

import (
	"fmt"
	"time"

	"report_hub/internal/common"
)

// DailyWindow trả về cửa sổ 24 giờ trượt kết thúc tại now.
// Không phải ranh giới ngày lịch: end = now, start = now - 24h.
func DailyWindow(now time.Time) (start, end time.Time) {
	return now.Add(-24 * time.Hour), now
}

// MonthlyWindow trả về cửa sổ của một tháng lịch: từ 00:00 ngày đầu tháng
// đến 00:00 ngày cuối tháng (đầu tháng sau trừ một ngày).
// Xử lý đúng độ dài tháng thay đổi và năm nhuận qua số học lịch của time.AddDate.
func MonthlyWindow(year, month int) (start, end time.Time, err error) {
	if month < 1 || month > 12 {
		return start, end, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Tháng phải nằm trong khoảng 1-12, nhận được: %d", month),
			common.StatusBadRequest,
			nil,
		)
	}
	if year <= 0 {
		return start, end, common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Năm không hợp lệ: %d", year),
			common.StatusBadRequest,
			nil,
		)
	}

	start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, 0).AddDate(0, 0, -1)
	return start, end, nil
}
