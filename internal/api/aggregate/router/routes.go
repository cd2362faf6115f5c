// Package router đăng ký các route thuộc domain Aggregate: daily reports và monthly reports.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	agghdl "report_hub/internal/api/aggregate/handler"
	apirouter "report_hub/internal/api/router"
)

// Register đăng ký tất cả route báo cáo tổng hợp lên v1.
// Bản tổng hợp chỉ được tạo qua generate, không có insert/update/delete trực tiếp.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	dailyHandler, err := agghdl.NewDailyReportHandler()
	if err != nil {
		return fmt.Errorf("create daily report handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/daily-reports", dailyHandler, apirouter.ReadOnlyConfig)
	v1.Get("/daily-reports/generate", dailyHandler.HandleGenerate)
	v1.Get("/daily-reports/query", dailyHandler.HandleQuery)

	monthlyHandler, err := agghdl.NewMonthlyReportHandler()
	if err != nil {
		return fmt.Errorf("create monthly report handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/monthly-reports", monthlyHandler, apirouter.ReadOnlyConfig)
	v1.Get("/monthly-reports/generate", monthlyHandler.HandleGenerate)
	v1.Get("/monthly-reports/query", monthlyHandler.HandleQuery)
	return nil
}
