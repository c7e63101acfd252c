//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDatabaseSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *DatabaseSettings
		expectedError bool
	}{
		{
			name:     "sqlite in memory",
			settings: &DatabaseSettings{Type: SqliteDbType},
		},
		{
			name: "postgres with name",
			settings: &DatabaseSettings{
				Type: PostgresDbType,
				DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
				Name: "articles",
			},
		},
		{
			name: "mysql",
			settings: &DatabaseSettings{
				Type: MysqlDbType,
				DSN:  "root:secret@tcp(localhost:3306)/articles?parseTime=true",
			},
		},
		{
			name:          "missing type",
			settings:      &DatabaseSettings{DSN: "file:articles.db"},
			expectedError: true,
		},
		{
			name:          "unsupported type",
			settings:      &DatabaseSettings{Type: "oracle", DSN: "x"},
			expectedError: true,
		},
		{
			name:          "postgres without dsn",
			settings:      &DatabaseSettings{Type: PostgresDbType},
			expectedError: true,
		},
		{
			name:          "invalid database name",
			settings:      &DatabaseSettings{Type: PostgresDbType, DSN: "host=localhost", Name: "drop table;"},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()

			if tt.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
