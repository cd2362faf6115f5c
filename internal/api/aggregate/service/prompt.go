package aggsvc

import (
	"fmt"
)

// Kind phân biệt loại báo cáo tổng hợp
type Kind string

const (
	KindDaily   Kind = "daily"
	KindMonthly Kind = "monthly"
)

// DefaultLanguage là ngôn ngữ tóm tắt mặc định khi client không chỉ định
const DefaultLanguage = "fi"

// languageNames map mã ngôn ngữ sang tên ngôn ngữ đầy đủ dùng trong prompt
var languageNames = map[string]string{
	"fi": "Finnish",
	"en": "English",
}

// LanguageName trả về tên ngôn ngữ đầy đủ cho mã ngôn ngữ.
// Mã không được hỗ trợ rơi về ngôn ngữ mặc định.
func LanguageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	return languageNames[DefaultLanguage]
}

// BuildPrompt dựng câu lệnh cho model từ loại báo cáo, khối văn bản đã format và mã ngôn ngữ.
// formatted được nhúng nguyên văn; khi rỗng, prompt vẫn yêu cầu model trả lời "no reports" rõ ràng.
func BuildPrompt(kind Kind, formatted string, langCode string) string {
	period := "day"
	if kind == KindMonthly {
		period = "month"
	}
	return fmt.Sprintf(
		"Generate %s report (in language %s) from these activities and include also brief summary about %s: %s If there is no reports, return just something like no reports for that %s.",
		string(kind), LanguageName(langCode), period, formatted, period,
	)
}
