package basic

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	core "selectql/data/db"
	"selectql/validation"
)

var (
	_ core.IDatabase            = (*DB)(nil)
	_ core.IDialectNameProvider = (*DB)(nil)
	_ core.NewDatabaseFunc      = Open
)

// DB 基于 database/sql 的最小实现，满足 core.IDatabase 抽象
type DB struct {
	db     *sql.DB
	driver string
}

// New 根据 core.DBConfig 创建基础数据库实例
//
// 调用方必须确保所配置的 Driver 已通过空导入注册（例如 `_ "modernc.org/sqlite"`）。
func New(config core.DBConfig) (*DB, error) {
	driver := config.Driver
	if driver == "" {
		driver = "sqlite"
	}
	if err := validation.ValidateRequired(config.Database, "database"); err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, config.Database)
	if err != nil {
		return nil, err
	}

	// 连接池配置（可选）
	if config.MaxOpenConns > 0 {
		db.SetMaxOpenConns(config.MaxOpenConns)
	}
	if config.MaxIdleConns > 0 {
		db.SetMaxIdleConns(config.MaxIdleConns)
	}
	if config.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(config.ConnMaxLifetime) * time.Second)
	}

	// 基础可用性检查
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &DB{db: db, driver: driver}, nil
}

// Open 与 New 相同，以 core.IDatabase 返回，满足 core.NewDatabaseFunc
func Open(config core.DBConfig) (core.IDatabase, error) {
	d, err := New(config)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (d *DB) Query(ctx context.Context, query string, args ...any) (core.IRows, error) {
	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return &Rows{rows: rows}, nil
}

func (d *DB) QueryRow(ctx context.Context, query string, args ...any) core.IRow {
	return &Row{row: d.db.QueryRowContext(ctx, query, args...)}
}

func (d *DB) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return d.db.ExecContext(ctx, query, args...)
}

func (d *DB) Ping(ctx context.Context) error { return d.db.PingContext(ctx) }
func (d *DB) Close() error                   { return d.db.Close() }

// GetDialectName 实现 core.IDialectNameProvider 接口，返回底层 driver 名
func (d *DB) GetDialectName() string {
	return d.driver
}

// MustExecDDL 辅助：执行 DDL（用于测试环境）
func (d *DB) MustExecDDL(sqlStmt string) error {
	if d.db == nil {
		return fmt.Errorf("db is nil")
	}
	_, err := d.db.Exec(sqlStmt)
	return err
}
