package repo

import (
	"Portfolio/internal/model"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// Прагмы для SQLite: ждём снятия блокировки вместо мгновенного SQLITE_BUSY, WAL для параллельного чтения.
const sqlitePragmas = "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)"

// InitDB открывает БД по DSN и прогоняет миграции.
// Postgres определяется по схеме postgres:// или по keyword-строке (host=...),
// всё остальное считается путём к файлу SQLite (драйвер modernc, без cgo).
// Ошибки запросов gorm пишет в переданный zap-логгер (nil — без логов).
func InitDB(dsn string, log *zap.SugaredLogger) (*gorm.DB, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	pg := isPostgresDSN(dsn)

	db, err := gorm.Open(dialectorFor(dsn), &gorm.Config{
		Logger: newGormLogger(log),
	})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if !pg {
		// SQLite допускает одного писателя: все запросы идут через одно соединение по очереди
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("get sql.DB: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate создаёт таблицы для всех моделей сервера.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Admin{}, &model.TokenRecord{}, &model.Blog{}, &model.Project{}); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}

func dialectorFor(dsn string) gorm.Dialector {
	if isPostgresDSN(dsn) {
		return postgres.Open(dsn)
	}
	return gormsqlite.Dialector{DriverName: "sqlite", DSN: sqliteDSN(dsn)}
}

// sqliteDSN дописывает прагмы, если вызывающий не задал свои.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_pragma=") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + sqlitePragmas
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=")
}
