package errors

import (
	"context"
	"errors"
	"strings"
	"testing"

	"selectql/logging"
)

// TestNewError 测试错误创建与格式
func TestNewError(t *testing.T) {
	err := Newf(ErrCodeTableDescriptionInvalid, "Table description is neither string nor object: %s", "[1]")

	if err.Code() != ErrCodeTableDescriptionInvalid {
		t.Errorf("Code = %s", err.Code())
	}
	if err.Message() != "Table description is neither string nor object: [1]" {
		t.Errorf("Message = %s", err.Message())
	}
	if err.Error() != "[TABLE_DESCRIPTION_INVALID] Table description is neither string nor object: [1]" {
		t.Errorf("Error = %s", err.Error())
	}
	if err.Stack() == "" {
		t.Error("堆栈信息为空")
	}
}

// TestIs_ByCode 测试按错误代码比较
func TestIs_ByCode(t *testing.T) {
	err := NewError(ErrCodeLimitDescriptionInvalid, "Limit description is not an array: 5")

	if !errors.Is(err, ErrLimitDescriptionInvalid) {
		t.Error("相同代码应判定为同类错误")
	}
	if errors.Is(err, ErrColumnDescriptionInvalid) {
		t.Error("不同代码不应判定为同类错误")
	}
}

// TestWithContext 测试上下文不修改原错误
func TestWithContext(t *testing.T) {
	base := NewError(ErrCodeColumnDescriptionMissingName, "msg")
	withValue := base.WithContext("value", `{"name":""}`)

	if withValue.Details()["value"] != `{"name":""}` {
		t.Error("详情未写入")
	}
	if _, ok := base.Details()["value"]; ok {
		t.Error("原错误被修改")
	}
	if withValue.Code() != base.Code() {
		t.Error("错误代码应保持不变")
	}
}

// TestWrap_KeepsCode 测试 AppError.Wrap 保留代码
func TestWrap_KeepsCode(t *testing.T) {
	base := NewError(ErrCodeTableDescriptionMissingName, "inner")
	wrapped := base.Wrap("outer")

	if wrapped.Code() != ErrCodeTableDescriptionMissingName {
		t.Errorf("Code = %s", wrapped.Code())
	}
	if wrapped.Message() != "outer: inner" {
		t.Errorf("Message = %s", wrapped.Message())
	}
	if !errors.Is(wrapped, base) {
		t.Error("应能通过 errors.Is 找到原错误")
	}
}

// TestGetErrorCode 测试错误代码提取
func TestGetErrorCode(t *testing.T) {
	if GetErrorCode(nil) != "" {
		t.Error("nil 错误应返回空代码")
	}
	if GetErrorCode(errors.New("plain")) != ErrCodeInternal {
		t.Error("普通错误应视为内部错误")
	}
	if GetMessage(errors.New("plain")) != "plain" {
		t.Error("普通错误消息应为 Error()")
	}
	if !IsValidation(NewValidationError("bad")) {
		t.Error("应为验证错误")
	}
	if IsErrorCode(nil, ErrCodeValidation) {
		t.Error("nil 不应匹配任何代码")
	}
}

// TestWrapHelpers 测试包装辅助函数
func TestWrapHelpers(t *testing.T) {
	original := logging.GetLogger()
	defer logging.SetLogger(original)
	logging.SetLogger(logging.NewNoopLogger())

	ctx := context.Background()
	cause := errors.New("connection refused")

	if WrapDatabaseError(ctx, nil, "x") != nil {
		t.Error("包装 nil 应返回 nil")
	}

	wrapped := WrapDatabaseError(ctx, cause, "execute select statement")
	if GetErrorCode(wrapped) != ErrCodeDatabase {
		t.Errorf("Code = %s", GetErrorCode(wrapped))
	}
	if !errors.Is(wrapped, cause) {
		t.Error("应保留原始错误")
	}
	if !strings.Contains(wrapped.Error(), "connection refused") {
		t.Errorf("Error = %s", wrapped.Error())
	}

	coded := NewError(ErrCodeValidation, "bad")
	if GetErrorCode(WrapDatabaseError(ctx, coded, "op")) != ErrCodeValidation {
		t.Error("已带代码的错误应保留原代码")
	}
	if !errors.Is(wrapped, ErrDatabase) {
		t.Error("应匹配 ErrDatabase")
	}
}
