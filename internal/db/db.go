package db

import (
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/odutech/internal/config"
	"github.com/BruksfildServices01/odutech/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	var dialector gorm.Dialector
	if cfg.UsesSQLite() {
		dialector = sqlite.Open(sqliteDSN(cfg.DBUrl))
	} else {
		dialector = postgres.Open(cfg.DBUrl)
	}

	db, err := Open(dialector, cfg.DBDebug)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	if cfg.UsesSQLite() {
		// um único escritor evita "database is locked"
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
		sqlDB.SetConnMaxIdleTime(10 * time.Minute)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// Open abre a conexão com as opções comuns a produção e testes.
func Open(dialector gorm.Dialector, debug bool) (*gorm.DB, error) {
	level := logger.Warn
	if debug {
		level = logger.Info
	}

	return gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(level),

		// timestamps gravados em UTC, como as datas dos atendimentos
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
}

// OpenSQLite abre e migra um banco sqlite; usado pelos testes com DSNs
// em memória.
func OpenSQLite(dsn string) (*gorm.DB, error) {
	db, err := Open(sqlite.Open(dsn), false)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Product{},
		&models.Appointment{},
		&models.ClientDocument{},
		&models.AuditLog{},
	)
}

// "sqlite:///comunidade.db" e "comunidade.db" viram DSNs aceitos pelo driver.
func sqliteDSN(url string) string {
	return strings.TrimPrefix(url, "sqlite:///")
}
