package testutil

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	dbpkg "github.com/yungbote/artistdash-backend/internal/data/db"
	"github.com/yungbote/artistdash-backend/internal/platform/logger"
)

var (
	pgOnce sync.Once
	pgDB   *gorm.DB
	pgErr  error

	logOnce sync.Once
	logg    *logger.Logger
	logErr  error
)

func Logger(tb testing.TB) *logger.Logger {
	tb.Helper()
	logOnce.Do(func() {
		logg, logErr = logger.New("test")
	})
	if logErr != nil {
		tb.Fatalf("failed to init logger: %v", logErr)
	}
	return logg
}

// DB returns the shared PostgreSQL database when TEST_POSTGRES_DSN is set and a
// fresh in-memory SQLite database otherwise. Pair it with Tx when writing to
// the shared database.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()
	dsn := strings.TrimSpace(os.Getenv("TEST_POSTGRES_DSN"))
	if dsn == "" {
		return SQLite(tb)
	}
	pgOnce.Do(func() {
		svc, err := dbpkg.Open(dbpkg.Config{Driver: dbpkg.DriverPostgres, DSN: dsn}, Logger(tb))
		if err != nil {
			pgErr = err
			return
		}
		pgDB = svc.DB()
		pgErr = dbpkg.AutoMigrateAll(pgDB)
	})
	if pgErr != nil {
		tb.Fatalf("failed to init test db: %v", pgErr)
	}
	return pgDB
}

// SQLite opens a private migrated in-memory database that is closed when the
// test ends.
func SQLite(tb testing.TB) *gorm.DB {
	tb.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=off", uuid.NewString())
	svc, err := dbpkg.Open(dbpkg.Config{Driver: dbpkg.DriverSQLite, DSN: dsn}, Logger(tb))
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}
	tb.Cleanup(func() { _ = svc.Close() })
	if err := dbpkg.AutoMigrateAll(svc.DB()); err != nil {
		tb.Fatalf("migrate sqlite: %v", err)
	}
	return svc.DB()
}

func Tx(tb testing.TB, db *gorm.DB) *gorm.DB {
	tb.Helper()
	tx := db.Begin()
	if tx.Error != nil {
		tb.Fatalf("begin tx: %v", tx.Error)
	}
	tb.Cleanup(func() {
		_ = tx.Rollback().Error
	})
	return tx
}
