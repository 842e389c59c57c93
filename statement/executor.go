package statement

import (
	"context"
	"time"

	"github.com/google/uuid"

	"selectql/data/db"
	"selectql/logging"
)

// Executor 执行语句文本并返回结果
//
// 语句构建与执行相互独立，接入真实数据库时只需替换 Executor 实现。
type Executor interface {
	Execute(ctx context.Context, statement string) (*db.Result, error)
}

// ExecutorFunc 将普通函数适配为 Executor
type ExecutorFunc func(ctx context.Context, statement string) (*db.Result, error)

// Execute 实现 Executor 接口
func (f ExecutorFunc) Execute(ctx context.Context, statement string) (*db.Result, error) {
	return f(ctx, statement)
}

// StubExecutor 占位实现：忽略语句，始终返回 {fields: ["COUNT"], records: [{COUNT: 1}]}
type StubExecutor struct{}

// Execute 返回固定结果，每次调用返回新的副本
func (StubExecutor) Execute(ctx context.Context, statement string) (*db.Result, error) {
	return &db.Result{
		Fields:  []string{"COUNT"},
		Records: []map[string]any{{"COUNT": 1}},
	}, nil
}

// Execute 通过 StubExecutor 执行语句
func Execute(ctx context.Context, statement string) (*db.Result, error) {
	return StubExecutor{}.Execute(ctx, statement)
}

type statementIDKey struct{}

// WithStatementID 将语句 ID 写入 context
func WithStatementID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, statementIDKey{}, id)
}

// StatementIDFromContext 读取语句 ID
func StatementIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(statementIDKey{}).(string)
	return id, ok
}

// LoggingExecutor 为每次执行分配语句 ID 并记录日志的装饰器
type LoggingExecutor struct {
	next   Executor
	logger logging.Logger
}

// NewLoggingExecutor 包装 next；logger 为 nil 时使用全局 Logger
func NewLoggingExecutor(next Executor, logger logging.Logger) *LoggingExecutor {
	if next == nil {
		next = StubExecutor{}
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &LoggingExecutor{
		next:   next,
		logger: logger.WithFields(logging.String("component", "statement.executor")),
	}
}

// Execute 调用被包装的 Executor，context 中已有语句 ID 时沿用
func (e *LoggingExecutor) Execute(ctx context.Context, statement string) (*db.Result, error) {
	id, ok := StatementIDFromContext(ctx)
	if !ok {
		id = uuid.NewString()
		ctx = WithStatementID(ctx, id)
	}

	start := time.Now()
	result, err := e.next.Execute(ctx, statement)
	fields := []logging.Field{
		logging.String("statement_id", id),
		logging.String("statement", statement),
		logging.Duration("elapsed", time.Since(start)),
	}
	if err != nil {
		e.logger.Warn(ctx, "execute statement failed", append(fields, logging.Error(err))...)
		return nil, err
	}

	records := 0
	if result != nil {
		records = len(result.Records)
	}
	e.logger.Debug(ctx, "statement executed", append(fields, logging.Int("records", records))...)
	return result, nil
}
