package database

import (
	"testing"
)

// Tag timestamp của Report và AggregateReport dùng dạng "single:-1",
// thứ tự giảm dần phải được đọc từ giá trị cấu hình chứ không phải từ "order:-1".
func TestParseSingleOrder(t *testing.T) {
	tests := []struct {
		value string
		want  int
	}{
		{"-1", -1},
		{"1", 1},
		{"", 1},
	}

	for _, tt := range tests {
		if got := parseSingleOrder(tt.value); got != tt.want {
			t.Errorf("parseSingleOrder(%q) = %d, mong muốn %d", tt.value, got, tt.want)
		}
	}
}

func TestParseIndexTag_SingleGiamDan(t *testing.T) {
	configs := parseIndexTag("single:-1")
	if len(configs) != 1 {
		t.Fatalf("Số cấu hình = %d, mong muốn 1", len(configs))
	}
	value, ok := configs[0]["single"]
	if !ok {
		t.Fatal("Mong muốn cấu hình chứa khóa single")
	}
	if value != "-1" {
		t.Errorf("Giá trị single = %q, mong muốn -1", value)
	}
	if got := parseSingleOrder(value); got != -1 {
		t.Errorf("Thứ tự index = %d, mong muốn -1", got)
	}
}

func TestParseIndexTag_NhieuCauHinh(t *testing.T) {
	configs := parseIndexTag("text:report_text,weight:10")
	if len(configs) != 1 {
		t.Fatalf("Số cấu hình = %d, mong muốn 1", len(configs))
	}
	if got := configs[0]["text"]; got != "report_text" {
		t.Errorf("Giá trị text = %q, mong muốn report_text", got)
	}
	if got := configs[0]["weight"]; got != "10" {
		t.Errorf("Giá trị weight = %q, mong muốn 10", got)
	}
}
