package main

import (
	"report_hub/config"
	"report_hub/internal/global"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

func InitRegistry() {

	logrus.Info("Initialized registry") // Ghi log thông báo đã khởi tạo registry

	// Khởi tạo registry và đăng ký các collections
	err := InitCollections(global.MongoDB_Session, global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to initialize collections: %v", err)
	}
	logrus.Info("Initialized collection registry")
}

// InitCollections khởi tạo và đăng ký các collections MongoDB
func InitCollections(client *mongo.Client, cfg *config.Configuration) error {
	db := client.Database(cfg.MongoDB_DBName_Report)
	if _, err := global.RegistryDatabase.Register(cfg.MongoDB_DBName_Report, db); err != nil {
		logrus.Errorf("Failed to register database %s: %v", cfg.MongoDB_DBName_Report, err)
		return err
	}

	colNames := []string{
		global.MongoDB_ColNames.ReportCategories,
		global.MongoDB_ColNames.Reports,
		global.MongoDB_ColNames.DailyReports,
		global.MongoDB_ColNames.MonthlyReports,
	}

	for _, name := range colNames {
		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			logrus.Errorf("Failed to register collection %s: %v", name, err)
			return err
		}

		if registered {
			logrus.Infof("Collection %s registered successfully", name)
		} else {
			logrus.Errorf("Collection %s already registered", name)
		}

	}

	return nil
}
