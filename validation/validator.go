package validation

import (
	"fmt"
	"strings"
	"unicode"

	"selectql/errors"
)

// IsBlank 判断字符串去除首尾空白（含 U+FEFF）后是否为空
func IsBlank(value string) bool {
	return strings.TrimFunc(value, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	}) == ""
}

// ValidateRequired 验证必填字段
func ValidateRequired(value, fieldName string) error {
	if IsBlank(value) {
		return errors.NewError(errors.ErrCodeValidation,
			fmt.Sprintf("%s must not be empty", fieldName))
	}
	return nil
}

// ValidateNonNegative 验证非负整数
func ValidateNonNegative(value int, fieldName string) error {
	if value < 0 {
		return errors.NewError(errors.ErrCodeValidation,
			fmt.Sprintf("%s must not be negative (got %d)", fieldName, value))
	}
	return nil
}
