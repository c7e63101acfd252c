// Package persistence provides the article repository on top of GORM.
// SQLite, PostgreSQL and MySQL are selected through config.DatabaseSettings.
package persistence
