package database

import (
	"fmt"

	"truth_buddy_backend/internal/config"
	"truth_buddy_backend/internal/model"
	"truth_buddy_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// InitDB opens the database and migrates the schema. Callers treat a nil
// return as "run on the fallback store" rather than a fatal condition.
func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}

	logger.Log.Info("database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Question{},
		&model.UserAnswer{},
		&model.VerificationRequest{},
	)
	if err != nil {
		return nil, err
	}

	logger.Log.Info("database migration completed", zap.String("dbname", cfg.DBName))

	return db, nil
}
