package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE test_items (id INTEGER PRIMARY KEY, name TEXT, description TEXT)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "test_items")
	assert.NoError(t, err)
	assert.Len(t, columns, 3)

	colMap := make(map[string]string)
	for _, col := range columns {
		colMap[col.Field] = col.Type
	}

	assert.Equal(t, "integer", colMap["id"])
	assert.Equal(t, "text", colMap["name"])
	assert.Equal(t, "text", colMap["description"])

	// PRAGMA table_info returns no rows for a missing table
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestGetTableColumns_MySQL(t *testing.T) {
	sqlDB, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("Item_Key", "VARCHAR(128)", "NO", "PRI", nil, "").
		AddRow("slots", "INT", "NO", "", "0", "")
	sqlMock.ExpectQuery("SHOW COLUMNS FROM `artifact_catalog`").WillReturnRows(rows)

	columns, err := GetTableColumns(db, "artifact_catalog")
	require.NoError(t, err)
	require.Len(t, columns, 2)
	assert.Equal(t, "item_key", columns[0].Field)
	assert.Equal(t, "varchar(128)", columns[0].Type)
	assert.Equal(t, "int", columns[1].Type)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestMissingColumns(t *testing.T) {
	db, err := Connect(Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE artifact_catalog (item_key TEXT PRIMARY KEY, slots INTEGER)").Error)

	missing, err := MissingColumns(db, "artifact_catalog", []string{"item_key", "slots", "quality", "family"})
	require.NoError(t, err)
	assert.Equal(t, []string{"quality", "family"}, missing)

	missing, err = MissingColumns(db, "absent", []string{"item_key"})
	require.NoError(t, err)
	assert.Equal(t, []string{"item_key"}, missing)
}
