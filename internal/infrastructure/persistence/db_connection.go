package persistence

import (
	"fmt"
	"log"
	"time"

	mysqldriver "github.com/go-sql-driver/mysql"

	"github.com/MGTheTrain/article-service/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/article-service/internal/pkg/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewDBConnection creates a database connection based on settings
func NewDBConnection(settings config.DatabaseSettings) (*gorm.DB, error) {
	switch settings.Type {
	case config.PostgresDbType:
		return connectPostgres(settings)
	case config.MysqlDbType:
		return connectMySQL(settings)
	case config.SqliteDbType:
		return connectSQLite(settings)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", settings.Type)
	}
}

// Migrate creates or updates the articles table
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.ArticleModel{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// connectPostgres establishes PostgreSQL connection with optional database creation
func connectPostgres(settings config.DatabaseSettings) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(settings.DSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	if settings.Name == "" {
		return db, nil
	}

	// Postgres has no CREATE DATABASE IF NOT EXISTS; an "already exists" error is expected here
	_ = db.Exec(fmt.Sprintf("CREATE DATABASE %s", settings.Name)).Error

	if err := CloseDB(db); err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf("%s dbname=%s", settings.DSN, settings.Name)
	db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database '%s': %w", settings.Name, err)
	}
	return db, nil
}

// connectMySQL establishes MySQL connection, creating settings.Name when set
func connectMySQL(settings config.DatabaseSettings) (*gorm.DB, error) {
	dsnConfig, err := mysqlDSNConfig(settings.DSN)
	if err != nil {
		return nil, err
	}

	if settings.Name != "" {
		serverConfig := dsnConfig.Clone()
		serverConfig.DBName = ""

		db, err := openMySQL(serverConfig)
		if err != nil {
			return nil, err
		}
		if err := db.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", settings.Name)).Error; err != nil {
			_ = CloseDB(db)
			return nil, fmt.Errorf("failed to create database '%s': %w", settings.Name, err)
		}
		if err := CloseDB(db); err != nil {
			return nil, err
		}

		dsnConfig.DBName = settings.Name
	}

	return openMySQL(dsnConfig)
}

// mysqlDSNConfig parses dsn and forces UTC time parsing and matched-row counts.
// Repository updates treat zero affected rows as not found, so RowsAffected must count matched rows.
func mysqlDSNConfig(dsn string) (*mysqldriver.Config, error) {
	dsnConfig, err := mysqldriver.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid MySQL DSN: %w", err)
	}
	dsnConfig.ParseTime = true
	dsnConfig.Loc = time.UTC
	dsnConfig.ClientFoundRows = true
	return dsnConfig, nil
}

func openMySQL(dsnConfig *mysqldriver.Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:       dsnConfig.FormatDSN(),
		DSNConfig: dsnConfig,
	}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MySQL: %w", err)
	}
	return db, nil
}

// connectSQLite establishes SQLite connection
func connectSQLite(settings config.DatabaseSettings) (*gorm.DB, error) {
	dsn := settings.DSN
	if dsn == "" {
		dsn = ":memory:"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite: %w", err)
	}

	// every new connection to :memory: would see an empty database
	if dsn == ":memory:" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get raw DB connection: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

// CloseDB closes the database connection
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

// DropDatabase drops a PostgreSQL database (test cleanup utility)
func DropDatabase(adminDSN, dbName string) error {
	db, err := gorm.Open(postgres.Open(adminDSN), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer func() {
		if err := CloseDB(db); err != nil {
			log.Printf("Warning: failed to close database connection: %v", err)
		}
	}()

	err = db.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS %s", dbName)).Error
	if err != nil {
		return fmt.Errorf("failed to drop database '%s': %w", dbName, err)
	}

	return nil
}
