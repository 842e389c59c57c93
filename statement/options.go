package statement

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"

	"selectql/errors"
)

// Options 查询描述
type Options struct {
	// Table 数据源表；未提供时按空结构化值 {} 处理
	Table Descriptor

	// Columns 列描述；nil 表示未提供，默认为 ["*"]
	Columns []Descriptor

	// Conditions 过滤条件，目前只接受、不参与生成
	Conditions any

	// Limit 行数限制；零值等价于空序列
	Limit Limit
}

type optionsJSON struct {
	Table      Descriptor      `json:"table"`
	Columns    json.RawMessage `json:"columns"`
	Conditions any             `json:"conditions"`
	Limit      Limit           `json:"limit"`
}

// UnmarshalJSON 解码 {"table","columns","conditions","limit"}，任一键为 null 时视为未提供
func (o *Options) UnmarshalJSON(data []byte) error {
	var in optionsJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	out := Options{Table: in.Table, Conditions: in.Conditions, Limit: in.Limit}
	cols := bytes.TrimSpace(in.Columns)
	if len(cols) > 0 && !bytes.Equal(cols, []byte("null")) {
		if cols[0] != '[' {
			return errors.NewError(errors.ErrCodeInvalidInput,
				fmt.Sprintf("columns must be an array: %s", compactRaw(cols)))
		}
		if err := json.Unmarshal(cols, &out.Columns); err != nil {
			return err
		}
	}
	*o = out
	return nil
}

// DecodeOptions 从 JSON 文本解码查询描述
//
// 形状错误的列、表或 Limit 不会在此报错，而是保留到对应子句构建时报告；
// 只有 JSON 本身无法解析、columns 不是数组或 Limit 元素不是非负整数时返回错误。
func DecodeOptions(data []byte) (Options, error) {
	var opts Options
	if err := json.Unmarshal(data, &opts); err != nil {
		if _, ok := err.(errors.IError); ok {
			return Options{}, err
		}
		return Options{}, errors.WrapError(err, errors.ErrCodeInvalidInput, "decode options")
	}
	return opts, nil
}

// OptionsFromMap 从动态值构造查询描述，键与 JSON 形式相同
func OptionsFromMap(m map[string]any) (Options, error) {
	opts := Options{
		Table:      DescriptorOf(m["table"]),
		Conditions: m["conditions"],
	}

	switch cols := m["columns"].(type) {
	case nil:
	case []Descriptor:
		opts.Columns = cols
	case []string:
		opts.Columns = make([]Descriptor, len(cols))
		for i, c := range cols {
			opts.Columns[i] = Text(c)
		}
	default:
		rv := reflect.ValueOf(cols)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return Options{}, errors.NewError(errors.ErrCodeInvalidInput,
				fmt.Sprintf("columns must be an array: %s", marshalRaw(cols)))
		}
		opts.Columns = make([]Descriptor, rv.Len())
		for i := range opts.Columns {
			opts.Columns[i] = DescriptorOf(rv.Index(i).Interface())
		}
	}

	limit, err := LimitValue(m["limit"])
	if err != nil {
		return Options{}, err
	}
	opts.Limit = limit
	return opts, nil
}
