package statement

import (
	"context"

	"selectql/data/db"
	"selectql/errors"
	"selectql/logging"
)

// Config Selector 配置
type Config struct {
	// Executor 执行语句，默认为 StubExecutor
	Executor Executor

	// Logger 默认为全局 Logger
	Logger logging.Logger
}

// Selector 组合语句构建与执行，创建后不可变，可并发使用
type Selector struct {
	executor Executor
	logger   logging.Logger
}

// NewSelector 创建 Selector，未配置的项使用默认值
func NewSelector(cfg Config) *Selector {
	if cfg.Executor == nil {
		cfg.Executor = StubExecutor{}
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.GetLogger()
	}
	return &Selector{
		executor: cfg.Executor,
		logger:   cfg.Logger.WithFields(logging.String("component", "statement.selector")),
	}
}

// Select 生成语句并交给 Executor 执行
//
// 构建错误原样返回；Executor 返回的错误若未携带错误代码，则包装为 DATABASE_ERROR。
func (s *Selector) Select(ctx context.Context, opts Options) (*db.Result, error) {
	stmt, err := BuildStatement(opts)
	if err != nil {
		s.logger.Warn(ctx, "build select statement failed",
			logging.String("error_code", string(errors.GetErrorCode(err))),
			logging.Error(err),
		)
		return nil, err
	}

	s.logger.Debug(ctx, "select statement built", logging.String("statement", stmt))

	result, err := s.executor.Execute(ctx, stmt)
	if err != nil {
		return nil, errors.WrapDatabaseError(ctx, err, "execute select statement")
	}
	return result, nil
}

// Select 生成语句并通过 StubExecutor 执行
func Select(ctx context.Context, opts Options) (*db.Result, error) {
	stmt, err := BuildStatement(opts)
	if err != nil {
		return nil, err
	}
	return Execute(ctx, stmt)
}
