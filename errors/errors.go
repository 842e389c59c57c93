// Package errors 提供带错误代码的应用错误类型
//
// 语句构建过程中的所有失败都以 *AppError 返回，调用方通过 ErrorCode 区分具体原因：
//
//	if errors.IsErrorCode(err, errors.ErrCodeTableDescriptionMissingName) { ... }
//
// 或使用标准库 errors.Is 与预定义错误变量比较（按错误代码相等判定）。
package errors

import (
	stdErrors "errors"
	"fmt"
	"runtime"
	"strings"
)

// ErrorCode 错误代码类型
type ErrorCode string

// 预定义错误代码
const (
	// 通用错误代码
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	ErrCodeValidation   ErrorCode = "VALIDATION_ERROR"
	ErrCodeDatabase     ErrorCode = "DATABASE_ERROR"

	// 语句描述错误代码
	ErrCodeColumnDescriptionInvalid     ErrorCode = "COLUMN_DESCRIPTION_INVALID"
	ErrCodeColumnDescriptionMissingName ErrorCode = "COLUMN_DESCRIPTION_MISSING_NAME"
	ErrCodeTableDescriptionInvalid      ErrorCode = "TABLE_DESCRIPTION_INVALID"
	ErrCodeTableDescriptionMissingName  ErrorCode = "TABLE_DESCRIPTION_MISSING_NAME"
	ErrCodeLimitDescriptionInvalid      ErrorCode = "LIMIT_DESCRIPTION_INVALID"
)

// IError 错误接口
type IError interface {
	error

	// 获取错误代码
	Code() ErrorCode

	// 获取错误消息
	Message() string

	// 获取原始错误
	Cause() error

	// 获取错误详情
	Details() map[string]any

	// 获取堆栈信息
	Stack() string

	// 是否为指定类型的错误
	Is(target error) bool

	// 包装错误
	Wrap(msg string) IError

	// 添加上下文
	WithContext(key string, value any) IError
}

// AppError 应用错误实现
type AppError struct {
	code    ErrorCode
	message string
	cause   error
	details map[string]any
	stack   string
}

// NewError 创建新错误
func NewError(code ErrorCode, message string) IError {
	return &AppError{
		code:    code,
		message: message,
		details: make(map[string]any),
		stack:   captureStack(),
	}
}

// Newf 按格式创建新错误
func Newf(code ErrorCode, format string, args ...any) IError {
	return &AppError{
		code:    code,
		message: fmt.Sprintf(format, args...),
		details: make(map[string]any),
		stack:   captureStack(),
	}
}

// WrapError 包装错误
func WrapError(err error, code ErrorCode, message string) IError {
	if err == nil {
		return nil
	}

	return &AppError{
		code:    code,
		message: message,
		cause:   err,
		details: make(map[string]any),
		stack:   captureStack(),
	}
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

// Code 获取错误代码
func (e *AppError) Code() ErrorCode {
	return e.code
}

// Message 获取错误消息
func (e *AppError) Message() string {
	return e.message
}

// Cause 获取原始错误
func (e *AppError) Cause() error {
	return e.cause
}

// Details 获取错误详情
func (e *AppError) Details() map[string]any {
	if e.details == nil {
		e.details = make(map[string]any)
	}
	return e.details
}

// Stack 获取堆栈信息
func (e *AppError) Stack() string {
	return e.stack
}

// Is 按错误代码判断是否为同类错误，否则继续比较原始错误
func (e *AppError) Is(target error) bool {
	if target == nil {
		return false
	}

	if appErr, ok := target.(*AppError); ok {
		return e.code == appErr.code
	}

	if e.cause != nil {
		return stdErrors.Is(e.cause, target)
	}

	return false
}

// Unwrap 解包错误（支持 errors.Unwrap）
func (e *AppError) Unwrap() error {
	return e.cause
}

// Wrap 包装错误，保留错误代码
func (e *AppError) Wrap(msg string) IError {
	return &AppError{
		code:    e.code,
		message: fmt.Sprintf("%s: %s", msg, e.message),
		cause:   e,
		details: copyMap(e.details),
		stack:   captureStack(),
	}
}

// WithContext 添加上下文，返回新的错误实例
func (e *AppError) WithContext(key string, value any) IError {
	newDetails := copyMap(e.details)
	newDetails[key] = value

	return &AppError{
		code:    e.code,
		message: e.message,
		cause:   e.cause,
		details: newDetails,
		stack:   e.stack,
	}
}

// 预定义错误变量，仅用于 errors.Is 比较
var (
	ErrInvalidInput                 = NewError(ErrCodeInvalidInput, "invalid input")
	ErrValidation                   = NewError(ErrCodeValidation, "validation failed")
	ErrDatabase                     = NewError(ErrCodeDatabase, "database error")
	ErrColumnDescriptionInvalid     = NewError(ErrCodeColumnDescriptionInvalid, "column description invalid")
	ErrColumnDescriptionMissingName = NewError(ErrCodeColumnDescriptionMissingName, "column description missing name")
	ErrTableDescriptionInvalid      = NewError(ErrCodeTableDescriptionInvalid, "table description invalid")
	ErrTableDescriptionMissingName  = NewError(ErrCodeTableDescriptionMissingName, "table description missing name")
	ErrLimitDescriptionInvalid      = NewError(ErrCodeLimitDescriptionInvalid, "limit description invalid")
)

// IsValidation 检查是否为验证错误
func IsValidation(err error) bool {
	return IsErrorCode(err, ErrCodeValidation)
}

// IsErrorCode 检查是否为指定错误代码
func IsErrorCode(err error, code ErrorCode) bool {
	if err == nil {
		return false
	}

	var appErr *AppError
	if stdErrors.As(err, &appErr) {
		return appErr.code == code
	}

	return false
}

// GetErrorCode 获取错误代码，非 AppError 视为内部错误
func GetErrorCode(err error) ErrorCode {
	if err == nil {
		return ""
	}

	var appErr *AppError
	if stdErrors.As(err, &appErr) {
		return appErr.code
	}

	return ErrCodeInternal
}

// GetMessage 获取错误消息（不含错误代码前缀）
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var appErr *AppError
	if stdErrors.As(err, &appErr) {
		return appErr.message
	}

	return err.Error()
}

// captureStack 捕获堆栈信息
func captureStack() string {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:])

	var builder strings.Builder
	frames := runtime.CallersFrames(pcs[:n])

	for {
		frame, more := frames.Next()
		builder.WriteString(fmt.Sprintf("%s:%d %s\n", frame.File, frame.Line, frame.Function))

		if !more {
			break
		}
	}

	return builder.String()
}

// copyMap 复制映射
func copyMap(original map[string]any) map[string]any {
	if original == nil {
		return make(map[string]any)
	}

	copied := make(map[string]any, len(original))
	for k, v := range original {
		copied[k] = v
	}

	return copied
}
