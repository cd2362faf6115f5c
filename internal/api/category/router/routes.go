// Package router đăng ký các route thuộc domain Category.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	cathdl "report_hub/internal/api/category/handler"
	apirouter "report_hub/internal/api/router"
)

// Register đăng ký tất cả route danh mục báo cáo lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	categoryHandler, err := cathdl.NewReportCategoryHandler()
	if err != nil {
		return fmt.Errorf("create report category handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/report-categories", categoryHandler, apirouter.ReadWriteConfig)
	v1.Get("/report-categories/list", categoryHandler.HandleList)
	return nil
}
