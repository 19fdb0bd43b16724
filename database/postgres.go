package database

import (
	"github.com/nurlanmnn/roomate-sub001/config"
	"github.com/nurlanmnn/roomate-sub001/models"
	"github.com/sirupsen/logrus"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Connect() {
	var err error
	DB, err = gorm.Open(postgres.Open(config.AppConfig.DatabaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		logrus.Fatal("Failed to connect to database: ", err)
	}

	logrus.Info("✅ Database connected successfully")

	// Auto-migrate all models
	err = DB.AutoMigrate(
		&models.User{},
		&models.Household{},
		&models.HouseholdMember{},
		&models.Expense{},
		&models.ExpenseSplit{},
		&models.Settlement{},
		&models.Activity{},
		&models.Invitation{},
		&models.ShoppingItem{},
		&models.Event{},
		&models.Goal{},
		&models.GoalContribution{},
	)
	if err != nil {
		logrus.Fatal("Failed to migrate database: ", err)
	}

	logrus.Info("✅ Database migrated successfully")
}
