package database

import (
	"errors"
	"strings"

	"github.com/thereayou/socialgraph/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "modernc.org/sqlite"
)

const sqlitePrefix = "sqlite://"

// Connect opens the database behind dsn and migrates the schema. A dsn of the form
// sqlite://<path> opens a local sqlite file, anything else goes to postgres.
// Query logging is verbose outside production.
func (d *Database) Connect(dsn string, isProd bool) error {
	if dsn == "" {
		return errors.New("DATABASE_URL is not set")
	}

	cfg := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	}
	if !isProd {
		cfg.Logger = logger.Default.LogMode(logger.Info)
	}

	var dialector gorm.Dialector
	if path, ok := strings.CutPrefix(dsn, sqlitePrefix); ok {
		dialector = sqliteDialector(path)
	} else {
		dialector = postgres.Open(dsn)
	}

	db, err := gorm.Open(dialector, cfg)
	if err != nil {
		return err
	}

	if err := AutoMigrate(db); err != nil {
		return err
	}

	d.db = db

	return nil
}

// OpenSQLite opens and migrates a sqlite database file at path.
func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqliteDialector(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	if err := AutoMigrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// sqliteDialector uses the pure-Go modernc driver registered as "sqlite".
func sqliteDialector(path string) gorm.Dialector {
	return sqlite.Dialector{DriverName: "sqlite", DSN: path + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"}
}

// AutoMigrate creates or updates the tables of all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Credential{}, &models.Follow{})
}

// Close releases the underlying connection pool.
func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
