// Package aggsvc - Test format danh sách báo cáo thành khối văn bản cho prompt.
package aggsvc

import (
	"strings"
	"testing"
	"time"

	reportmodels "report_hub/internal/api/report/models"
)

func TestFormatReports_DanhSachRong(t *testing.T) {
	if got := FormatReports(nil); got != "" {
		t.Errorf("danh sách rỗng phải trả về chuỗi rỗng, nhận được: %q", got)
	}
	if got := FormatReports([]reportmodels.Report{}); got != "" {
		t.Errorf("danh sách rỗng phải trả về chuỗi rỗng, nhận được: %q", got)
	}
}

func TestFormatReports_DayDuField(t *testing.T) {
	ts := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	reports := []reportmodels.Report{
		{
			Reporter:    "Matti",
			Topic:       "Water leak",
			Location:    "Basement",
			Description: "Pipe burst near the boiler",
			Urgent:      true,
			MoreDetails: "Shut off main valve",
			Attachments: "photo1.jpg",
			Timestamp:   ts.UnixMilli(),
		},
	}

	got := FormatReports(reports)
	want := "Report 1: reporter: Matti, topic: Water leak, location: Basement, " +
		"description: Pipe burst near the boiler, urgent: true, moreDetails: Shut off main valve, " +
		"attachments: photo1.jpg, timestamp: 2024-03-15T10:00:00Z"
	if got != want {
		t.Errorf("format sai:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestFormatReports_BoQuaFieldRong(t *testing.T) {
	reports := []reportmodels.Report{
		{
			Reporter:    "Anna",
			Topic:       "Noise",
			Description: "Loud music at night",
		},
	}

	got := FormatReports(reports)
	if strings.Contains(got, "location:") {
		t.Errorf("location rỗng không được xuất hiện: %q", got)
	}
	if strings.Contains(got, "moreDetails:") {
		t.Errorf("moreDetails rỗng không được xuất hiện: %q", got)
	}
	if strings.Contains(got, "attachments:") {
		t.Errorf("attachments rỗng không được xuất hiện: %q", got)
	}
	// urgent là bool nên luôn xuất hiện, kể cả false
	if !strings.Contains(got, "urgent: false") {
		t.Errorf("urgent phải luôn xuất hiện: %q", got)
	}
}

func TestFormatReports_DanhSoVaXuongDong(t *testing.T) {
	reports := []reportmodels.Report{
		{Reporter: "A", Topic: "T1", Description: "D1"},
		{Reporter: "B", Topic: "T2", Description: "D2"},
		{Reporter: "C", Topic: "T3", Description: "D3"},
	}

	got := FormatReports(reports)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("phải có 3 dòng, nhận được %d: %q", len(lines), got)
	}
	for i, line := range lines {
		prefix := "Report " + string(rune('1'+i)) + ": "
		if !strings.HasPrefix(line, prefix) {
			t.Errorf("dòng %d phải bắt đầu bằng %q, nhận được: %q", i, prefix, line)
		}
		if strings.HasSuffix(line, ", ") {
			t.Errorf("dòng %d không được kết thúc bằng dấu phẩy thừa: %q", i, line)
		}
	}
}

func TestFormatReports_KhongChuaIdVaCategory(t *testing.T) {
	got := FormatReports([]reportmodels.Report{
		{Reporter: "A", Topic: "T", Description: "D"},
	})
	if strings.Contains(got, "id:") || strings.Contains(got, "_id") {
		t.Errorf("output không được chứa id: %q", got)
	}
	if strings.Contains(got, "category") {
		t.Errorf("output không được chứa category reference: %q", got)
	}
}
