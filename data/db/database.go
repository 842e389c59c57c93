// Package db 提供最小的数据库抽象与查询结果形状
//
// 语句构建本身不依赖数据库；这里的接口用于执行层的替换实现
// （例如测试中以 SQLite 验证生成的语句）。
package db

import (
	"context"
	"database/sql"
)

// IDatabase 通用数据库接口
type IDatabase interface {
	// 查询操作
	Query(ctx context.Context, query string, args ...any) (IRows, error)
	QueryRow(ctx context.Context, query string, args ...any) IRow

	// 执行操作
	Exec(ctx context.Context, query string, args ...any) (sql.Result, error)

	// 连接管理
	Ping(ctx context.Context) error
	Close() error
}

// IDialectNameProvider 可选接口：提供底层 driver 名称
type IDialectNameProvider interface {
	GetDialectName() string
}

// IRows 查询结果集接口
type IRows interface {
	Next() bool
	Scan(dest ...any) error
	Close() error
	Err() error
	Columns() ([]string, error)
}

// IRow 单行结果接口
type IRow interface {
	Scan(dest ...any) error
	Err() error
}

// DBConfig 数据库配置
type DBConfig struct {
	Driver   string // sqlite 等已注册的 database/sql driver 名
	Database string // DSN，例如 ":memory:"

	// 连接池配置
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int // 秒
}

// NewDatabaseFunc 工厂方法（由具体实现提供）
type NewDatabaseFunc func(config DBConfig) (IDatabase, error)
