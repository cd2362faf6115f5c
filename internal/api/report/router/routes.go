// Package router đăng ký các route thuộc domain Report.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	reporthdl "report_hub/internal/api/report/handler"
	apirouter "report_hub/internal/api/router"
)

// Register đăng ký tất cả route báo cáo lên v1.
// Báo cáo bất biến sau khi tạo nên chỉ có create + các route đọc, không có update/delete.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	reportHandler, err := reporthdl.NewReportHandler()
	if err != nil {
		return fmt.Errorf("create report handler: %w", err)
	}

	r.RegisterCRUDRoutes(v1, "/reports", reportHandler, apirouter.ReadOnlyConfig)
	v1.Post("/reports/insert-one", reportHandler.HandleCreate)
	v1.Get("/reports/query", reportHandler.HandleQuery)
	v1.Get("/reports/by-category/:category", reportHandler.HandleQueryByCategory)
	return nil
}
