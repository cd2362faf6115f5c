package main

import (
	"context"
	"strings"
	"time"

	catsvc "report_hub/internal/api/category/service"
	"report_hub/internal/global"
	"report_hub/internal/logger"
)

// InitDefaultData seed các dữ liệu mặc định cần thiết để hệ thống hoạt động.
// Hiện tại chỉ gồm các danh mục báo cáo mặc định (idempotent, chạy lại không tạo trùng).
func InitDefaultData() {
	log := logger.GetAppLogger()
	log.Info("Starting InitDefaultData...")

	categoryService, err := catsvc.NewReportCategoryService()
	if err != nil {
		log.Fatalf("Failed to initialize category service: %v", err)
	}

	// Danh sách danh mục lấy từ config, phân cách bởi dấu phẩy
	var names []string
	for _, name := range strings.Split(global.MongoDB_ServerConfig.DefaultCategories, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			names = append(names, name)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := categoryService.EnsureSeeded(ctx, names); err != nil {
		log.Fatalf("Failed to seed default categories: %v", err)
	}

	log.Infof("InitDefaultData completed (%d categories ensured)", len(names))
}
