package statement

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"

	"selectql/errors"
	"selectql/validation"
)

// Limit 行数限制描述 [offset?, count?]
//
// 零值表示未提供，等价于空序列。非序列值会被记录下来，
// 在构建 LIMIT 子句时以 LimitDescriptionInvalid 报告。
type Limit struct {
	set    bool
	valid  bool
	bounds []int
	raw    string
}

// NewLimit 构造有效的 Limit；只使用前两个值（offset、count），每个值必须非负
func NewLimit(bounds ...int) (Limit, error) {
	for i, b := range bounds {
		if err := validation.ValidateNonNegative(b, fmt.Sprintf("limit[%d]", i)); err != nil {
			return Limit{}, err
		}
	}
	copied := make([]int, len(bounds))
	copy(copied, bounds)
	return Limit{set: true, valid: true, bounds: copied, raw: marshalRaw(copied)}, nil
}

// LimitOf 与 NewLimit 相同，但负值视为编程错误，直接 panic
func LimitOf(bounds ...int) Limit {
	l, err := NewLimit(bounds...)
	if err != nil {
		panic("statement: " + errors.GetMessage(err))
	}
	return l
}

// LimitValue 对任意 Go 值做判定：整数切片为有效 Limit，其余非 nil 值为无效 Limit
func LimitValue(v any) (Limit, error) {
	switch val := v.(type) {
	case nil:
		return Limit{}, nil
	case Limit:
		return val, nil
	case []int:
		return NewLimit(val...)
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return Limit{set: true, raw: marshalRaw(v)}, nil
	}

	bounds := make([]int, rv.Len())
	for i := range bounds {
		n, ok := toInt(rv.Index(i).Interface())
		if !ok {
			return Limit{}, errors.NewValidationError(
				fmt.Sprintf("limit[%d] must be an integer (got %s)", i, marshalRaw(rv.Index(i).Interface())))
		}
		bounds[i] = n
	}
	return NewLimit(bounds...)
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint:
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
		if f, err := n.Float64(); err == nil {
			return toInt(f)
		}
	}
	return 0, false
}

// UnmarshalJSON 解码 JSON 数组为 Limit；null 视为未提供，其余非数组值为无效 Limit
func (l *Limit) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] != '[' {
		if !json.Valid(data) {
			return fmt.Errorf("statement: invalid limit JSON: %s", data)
		}
		*l = Limit{set: true, raw: compactRaw(data)}
		return nil
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return err
	}
	bounds := make([]int, len(elems))
	for i, e := range elems {
		var num json.Number
		if e = bytes.TrimSpace(e); len(e) == 0 || e[0] == '"' || json.Unmarshal(e, &num) != nil {
			return errors.NewValidationError(
				fmt.Sprintf("limit[%d] must be an integer (got %s)", i, compactRaw(e)))
		}
		n, ok := toInt(num)
		if !ok {
			return errors.NewValidationError(
				fmt.Sprintf("limit[%d] must be an integer (got %s)", i, compactRaw(e)))
		}
		bounds[i] = n
	}
	parsed, err := NewLimit(bounds...)
	if err != nil {
		return err
	}
	parsed.raw = compactRaw(data)
	*l = parsed
	return nil
}

// IsZero 是否未提供
func (l Limit) IsZero() bool { return !l.set }

// Valid 是否为有效的序列
func (l Limit) Valid() bool { return !l.set || l.valid }

// Offset 返回偏移量，缺省为 0
func (l Limit) Offset() int {
	if len(l.bounds) > 0 {
		return l.bounds[0]
	}
	return 0
}

// Count 返回行数上限；未提供时 ok 为 false
func (l Limit) Count() (count int, ok bool) {
	if len(l.bounds) > 1 {
		return l.bounds[1], true
	}
	return 0, false
}

// String 返回 Limit 的序列化形式
func (l Limit) String() string {
	if !l.set {
		return "[]"
	}
	return l.raw
}
