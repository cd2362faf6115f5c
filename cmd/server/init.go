package main

import (
	"context"
	"report_hub/config"
	aggmodels "report_hub/internal/api/aggregate/models"
	catmodels "report_hub/internal/api/category/models"
	"report_hub/internal/api/events"
	reportmodels "report_hub/internal/api/report/models"
	"report_hub/internal/database"
	"report_hub/internal/global"
	"report_hub/internal/llm"
	"report_hub/internal/logger"
	"time"

	"github.com/sirupsen/logrus"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
	initSummarizer()       // Khởi tạo client tóm tắt
	initDataChangeAudit()  // Đăng ký audit log cho các thay đổi dữ liệu
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.MongoDB_ColNames.ReportCategories = "report_categories"
	global.MongoDB_ColNames.Reports = "reports"
	global.MongoDB_ColNames.DailyReports = "daily_reports"
	global.MongoDB_ColNames.MonthlyReports = "monthly_reports"

	logrus.Info("Initialized collection names") // Ghi log thông báo đã khởi tạo tên các collection
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, ...)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo các db và collections nếu chưa có
	database.EnsureDatabaseAndCollections(global.MongoDB_Session)
	logrus.Info("Ensured database and collections") // Ghi log thông báo đã đảm bảo database và các collection

	// Khởi tạo các index cho các collection
	dbName := global.MongoDB_ServerConfig.MongoDB_DBName_Report
	database.CreateIndexes(context.TODO(), global.MongoDB_Session.Database(dbName).Collection(global.MongoDB_ColNames.ReportCategories), catmodels.ReportCategory{})
	database.CreateIndexes(context.TODO(), global.MongoDB_Session.Database(dbName).Collection(global.MongoDB_ColNames.Reports), reportmodels.Report{})
	database.CreateIndexes(context.TODO(), global.MongoDB_Session.Database(dbName).Collection(global.MongoDB_ColNames.DailyReports), aggmodels.AggregateReport{})
	database.CreateIndexes(context.TODO(), global.MongoDB_Session.Database(dbName).Collection(global.MongoDB_ColNames.MonthlyReports), aggmodels.AggregateReport{})
}

// initDataChangeAudit đăng ký handler ghi audit log cho mọi thay đổi dữ liệu qua CRUD
func initDataChangeAudit() {
	events.OnDataChanged(func(ctx context.Context, e events.DataChangeEvent) {
		logger.GetAuditLogger().WithFields(logrus.Fields{
			"collection": e.CollectionName,
			"operation":  e.Operation,
		}).Info("Data changed")
	})
	logrus.Info("Registered data change audit handler")
}

// initSummarizer khởi tạo client gọi dịch vụ tóm tắt (OpenAI-compatible)
func initSummarizer() {
	cfg := global.MongoDB_ServerConfig
	if cfg.OpenAI_APIKey == "" {
		logrus.Fatalf("Failed to initialize summarizer: OPENAI_API_KEY is empty")
	}

	timeout := time.Duration(cfg.OpenAI_Timeout) * time.Second
	global.Summarizer = llm.NewOpenAIClient(cfg.OpenAI_APIKey, cfg.OpenAI_Model, cfg.OpenAI_BaseURL, timeout)
	logrus.Infof("Initialized summarizer client (model: %s)", cfg.OpenAI_Model)
}
