// Package aggsvc - Test dựng prompt cho dịch vụ tóm tắt.
package aggsvc

import (
	"strings"
	"testing"
)

func TestLanguageName_MaHopLe(t *testing.T) {
	if got := LanguageName("fi"); got != "Finnish" {
		t.Errorf("fi phải map sang Finnish, nhận được: %q", got)
	}
	if got := LanguageName("en"); got != "English" {
		t.Errorf("en phải map sang English, nhận được: %q", got)
	}
}

func TestLanguageName_MaKhongHoTro_RoiVeMacDinh(t *testing.T) {
	for _, code := range []string{"", "sv", "xx"} {
		if got := LanguageName(code); got != "Finnish" {
			t.Errorf("mã %q phải rơi về Finnish, nhận được: %q", code, got)
		}
	}
}

func TestBuildPrompt_Daily(t *testing.T) {
	got := BuildPrompt(KindDaily, "Report 1: reporter: A", "en")
	want := "Generate daily report (in language English) from these activities and include also brief summary about day: " +
		"Report 1: reporter: A If there is no reports, return just something like no reports for that day."
	if got != want {
		t.Errorf("prompt daily sai:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestBuildPrompt_Monthly(t *testing.T) {
	got := BuildPrompt(KindMonthly, "Report 1: reporter: A", "fi")
	if !strings.Contains(got, "Generate monthly report (in language Finnish)") {
		t.Errorf("prompt monthly phải chứa loại và ngôn ngữ: %q", got)
	}
	if !strings.Contains(got, "summary about month") {
		t.Errorf("prompt monthly phải nói về month: %q", got)
	}
	if !strings.Contains(got, "no reports for that month.") {
		t.Errorf("prompt monthly phải kết thúc với month: %q", got)
	}
}

func TestBuildPrompt_NhungNguyenVanKhoiVanBan(t *testing.T) {
	formatted := "Report 1: reporter: Matti, topic: Water leak\nReport 2: reporter: Anna, topic: Noise"
	got := BuildPrompt(KindDaily, formatted, "fi")
	if !strings.Contains(got, formatted) {
		t.Errorf("khối văn bản phải được nhúng nguyên văn: %q", got)
	}
}

func TestBuildPrompt_KhongCoBaoCao(t *testing.T) {
	got := BuildPrompt(KindDaily, "", "fi")
	if !strings.Contains(got, "If there is no reports") {
		t.Errorf("prompt vẫn phải có chỉ dẫn no reports: %q", got)
	}
}
