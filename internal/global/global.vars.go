package global

import (
	"report_hub/config"
	"report_hub/internal/llm"
	"report_hub/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_Report_CollectionName chứa tên các collection trong MongoDB
type MongoDB_Report_CollectionName struct {
	ReportCategories string // Tên collection cho danh mục báo cáo
	Reports          string // Tên collection cho báo cáo
	DailyReports     string // Tên collection cho báo cáo tổng hợp theo ngày
	MonthlyReports   string // Tên collection cho báo cáo tổng hợp theo tháng
}

// Các biến toàn cục
var Validate *validator.Validate                                                         // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                                        // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration                                           // Cấu hình của server
var MongoDB_ColNames MongoDB_Report_CollectionName = *new(MongoDB_Report_CollectionName) // Tên các collection
var Summarizer llm.Completer                                                             // Client gọi dịch vụ tóm tắt, khởi tạo lúc boot

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
