package recordstore

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// record is the single table backing the SQL driver.
type record struct {
	Key       string    `gorm:"column:record_key;primaryKey;size:191"`
	Value     string    `gorm:"column:record_value;type:text;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (record) TableName() string { return "records" }

// SQL stores records in a key/value table through GORM.
type SQL struct {
	db *gorm.DB
}

// NewSQL opens the database, configures the pool and migrates the records
// table.
func NewSQL(driver, dsn string) (*SQL, error) {
	dialector, err := buildDialector(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("recordstore/sql: build dialector: %w", err)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("recordstore/sql: open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("recordstore/sql: get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("recordstore/sql: ping: %w", err)
	}
	if err := db.AutoMigrate(&record{}); err != nil {
		return nil, fmt.Errorf("recordstore/sql: migrate: %w", err)
	}
	return &SQL{db: db}, nil
}

func buildDialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "sqlite":
		return sqlite.Open(dsn), nil
	case "postgres":
		return postgres.Open(dsn), nil
	case "mysql":
		return mysql.Open(dsn), nil
	case "sqlserver":
		return sqlserver.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (supported: sqlite, postgres, mysql, sqlserver)", driver)
	}
}

func (s *SQL) Get(key string) (string, bool, error) {
	if err := checkKey(key); err != nil {
		return "", false, err
	}
	var rec record
	err := s.db.Where("record_key = ?", key).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("recordstore/sql: get %s: %w", key, err)
	}
	return rec.Value, true, nil
}

func (s *SQL) Put(key, value string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	rec := record{Key: key, Value: value, UpdatedAt: time.Now()}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "record_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"record_value", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("recordstore/sql: put %s: %w", key, err)
	}
	return nil
}

func (s *SQL) Delete(key string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if err := s.db.Where("record_key = ?", key).Delete(&record{}).Error; err != nil {
		return fmt.Errorf("recordstore/sql: delete %s: %w", key, err)
	}
	return nil
}

func (s *SQL) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
