// Package aggsvc - Test tính toán cửa sổ thời gian cho báo cáo tổng hợp.
package aggsvc

import (
	"errors"
	"testing"
	"time"

	"report_hub/internal/common"
)

func TestDailyWindow_TruotDung24Gio(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	start, end := DailyWindow(now)

	if !end.Equal(now) {
		t.Errorf("end phải bằng now, nhận được: %v", end)
	}
	if !start.Equal(now.Add(-24 * time.Hour)) {
		t.Errorf("start phải là now - 24h, nhận được: %v", start)
	}
	if end.Sub(start) != 24*time.Hour {
		t.Errorf("cửa sổ phải đúng 24 giờ, nhận được: %v", end.Sub(start))
	}
}

func TestMonthlyWindow_ThangThuong(t *testing.T) {
	start, end, err := MonthlyWindow(2024, 1)
	if err != nil {
		t.Fatalf("tháng hợp lệ không được trả lỗi: %v", err)
	}
	if !start.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start sai: %v", start)
	}
	if !end.Equal(time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("end phải là ngày cuối tháng, nhận được: %v", end)
	}
}

func TestMonthlyWindow_NamNhuan(t *testing.T) {
	_, end, err := MonthlyWindow(2024, 2)
	if err != nil {
		t.Fatalf("tháng hợp lệ không được trả lỗi: %v", err)
	}
	if end.Day() != 29 {
		t.Errorf("tháng 2 năm nhuận phải kết thúc ngày 29, nhận được: %d", end.Day())
	}

	_, end, err = MonthlyWindow(2023, 2)
	if err != nil {
		t.Fatalf("tháng hợp lệ không được trả lỗi: %v", err)
	}
	if end.Day() != 28 {
		t.Errorf("tháng 2 năm thường phải kết thúc ngày 28, nhận được: %d", end.Day())
	}
}

func TestMonthlyWindow_ThangKhongHopLe(t *testing.T) {
	for _, month := range []int{0, 13, -1} {
		_, _, err := MonthlyWindow(2024, month)
		if err == nil {
			t.Errorf("tháng %d phải bị từ chối", month)
			continue
		}
		var customErr *common.Error
		if !errors.As(err, &customErr) {
			t.Errorf("lỗi phải là *common.Error, nhận được: %T", err)
			continue
		}
		if customErr.Code != common.ErrCodeValidationInput {
			t.Errorf("mã lỗi phải là ErrCodeValidationInput, nhận được: %v", customErr.Code)
		}
		if customErr.StatusCode != common.StatusBadRequest {
			t.Errorf("status code phải là 400, nhận được: %d", customErr.StatusCode)
		}
	}
}

func TestMonthlyWindow_NamKhongHopLe(t *testing.T) {
	_, _, err := MonthlyWindow(0, 6)
	if err == nil {
		t.Fatal("năm 0 phải bị từ chối")
	}
	_, _, err = MonthlyWindow(-2024, 6)
	if err == nil {
		t.Fatal("năm âm phải bị từ chối")
	}
}
