package db

import (
	"database/sql"
	"strings"
	"sync"

	sqlite3 "github.com/mattn/go-sqlite3"
)

const sqliteDriverName = "sqlite3_artistdash"

var registerSQLiteOnce sync.Once

// registerSQLiteDriver registers a mattn driver whose connections replace the
// built-in ASCII-only lower() with full Unicode case folding, so LOWER() means
// the same thing on SQLite as on PostgreSQL.
func registerSQLiteDriver() string {
	registerSQLiteOnce.Do(func() {
		sql.Register(sqliteDriverName, &sqlite3.SQLiteDriver{
			ConnectHook: func(conn *sqlite3.SQLiteConn) error {
				return conn.RegisterFunc("lower", unicodeLower, true)
			},
		})
	})
	return sqliteDriverName
}

func unicodeLower(v interface{}) interface{} {
	switch s := v.(type) {
	case string:
		return strings.ToLower(s)
	case []byte:
		return strings.ToLower(string(s))
	default:
		return v
	}
}
