package aggsvc

import (
	"fmt"
	"strings"
	"time"

	reportmodels "report_hub/internal/api/report/models"
)

// FormatReports dựng khối văn bản đưa vào prompt từ danh sách báo cáo (đã lọc và sắp xếp).
// Mỗi báo cáo một dòng, đánh số từ 1, các cặp key: value nối bằng ", ".
// Thứ tự field cố định để prompt tái lập được; bỏ qua id và category reference,
// các field optional rỗng không xuất hiện. Danh sách rỗng → chuỗi rỗng.
func FormatReports(reports []reportmodels.Report) string {
	lines := make([]string, 0, len(reports))
	for i, r := range reports {
		var b strings.Builder
		fmt.Fprintf(&b, "Report %d: ", i+1)
		fmt.Fprintf(&b, "reporter: %s, ", r.Reporter)
		fmt.Fprintf(&b, "topic: %s, ", r.Topic)
		if r.Location != "" {
			fmt.Fprintf(&b, "location: %s, ", r.Location)
		}
		fmt.Fprintf(&b, "description: %s, ", r.Description)
		fmt.Fprintf(&b, "urgent: %t, ", r.Urgent)
		if r.MoreDetails != "" {
			fmt.Fprintf(&b, "moreDetails: %s, ", r.MoreDetails)
		}
		if r.Attachments != "" {
			fmt.Fprintf(&b, "attachments: %s, ", r.Attachments)
		}
		fmt.Fprintf(&b, "timestamp: %s, ", time.UnixMilli(r.Timestamp).UTC().Format(time.RFC3339))

		lines = append(lines, strings.TrimSuffix(b.String(), ", "))
	}
	return strings.Join(lines, "\n")
}
