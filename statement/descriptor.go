package statement

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"unicode"
)

// Kind 描述符类别
type Kind int

const (
	KindAbsent Kind = iota // 未提供
	KindText               // 字符串，如 "orders o"
	KindRef                // 结构化值 {name, alias}
	KindList               // 有序序列，始终无效
	KindScalar             // 数字、布尔等标量，始终无效
)

// String 返回类别名称
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindText:
		return "text"
	case KindRef:
		return "ref"
	case KindList:
		return "list"
	case KindScalar:
		return "scalar"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Descriptor 列或表的描述符
//
// 零值表示未提供。raw 保存原始值的 JSON 序列化结果，用于错误消息。
type Descriptor struct {
	kind    Kind
	text    string
	name    string
	alias   string
	hasName bool
	raw     string
}

// Text 以字符串形式构造描述符，例如 "name" 或 "name alias"
func Text(s string) Descriptor {
	return Descriptor{kind: KindText, text: s, raw: marshalRaw(s)}
}

// Ref 以结构化值构造描述符；alias 为空时序列化结果中省略 alias 键
func Ref(name, alias string) Descriptor {
	var sb strings.Builder
	sb.WriteString(`{"name":`)
	sb.WriteString(marshalRaw(name))
	if alias != "" {
		sb.WriteString(`,"alias":`)
		sb.WriteString(marshalRaw(alias))
	}
	sb.WriteByte('}')
	return Descriptor{kind: KindRef, name: name, alias: alias, hasName: true, raw: sb.String()}
}

// DescriptorOf 对任意 Go 值做类别判定
//
//   - nil                              → KindAbsent
//   - Descriptor                       → 原样返回
//   - string                           → KindText
//   - map[string]any / map[string]string → KindRef（name 非字符串视为缺失）
//   - slice / array                    → KindList
//   - 其他                             → KindScalar
func DescriptorOf(v any) Descriptor {
	switch val := v.(type) {
	case nil:
		return Descriptor{}
	case Descriptor:
		return val
	case string:
		return Text(val)
	case map[string]string:
		m := make(map[string]any, len(val))
		for k, s := range val {
			m[k] = s
		}
		return refFromMap(m, marshalRaw(val))
	case map[string]any:
		return refFromMap(val, marshalRaw(val))
	}

	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return Descriptor{kind: KindList, raw: marshalRaw(v)}
	default:
		return Descriptor{kind: KindScalar, raw: marshalRaw(v)}
	}
}

func refFromMap(m map[string]any, raw string) Descriptor {
	d := Descriptor{kind: KindRef, raw: raw}
	if name, ok := m["name"].(string); ok {
		d.name = name
		d.hasName = true
	}
	if alias, ok := m["alias"].(string); ok {
		d.alias = alias
	}
	return d
}

// UnmarshalJSON 根据 JSON 值的形状确定描述符类别，null 视为未提供
func (d *Descriptor) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := compactRaw(data)
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*d = Text(s)
		d.raw = raw
	case '[':
		*d = Descriptor{kind: KindList, raw: raw}
	case '{':
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(data, &fields); err != nil {
			return err
		}
		ref := Descriptor{kind: KindRef, raw: raw}
		if v, ok := fields["name"]; ok {
			var name string
			if json.Unmarshal(v, &name) == nil {
				ref.name = name
				ref.hasName = true
			}
		}
		if v, ok := fields["alias"]; ok {
			var alias string
			if json.Unmarshal(v, &alias) == nil {
				ref.alias = alias
			}
		}
		*d = ref
	default:
		if !json.Valid(data) {
			return fmt.Errorf("statement: invalid descriptor JSON: %s", data)
		}
		*d = Descriptor{kind: KindScalar, raw: raw}
	}
	return nil
}

// Kind 返回描述符类别
func (d Descriptor) Kind() Kind { return d.kind }

// IsZero 是否未提供
func (d Descriptor) IsZero() bool { return d.kind == KindAbsent }

// String 返回描述符的序列化形式
func (d Descriptor) String() string {
	if d.kind == KindAbsent {
		return "null"
	}
	return d.raw
}

// split 按空白切分字符串描述符，返回 name/alias 以及对应结构化值的序列化形式
func (d Descriptor) split() (name, alias, raw string) {
	tokens := strings.FieldsFunc(d.text, isSpace)
	if len(tokens) > 0 {
		name = tokens[0]
	}
	if len(tokens) > 1 {
		alias = tokens[1]
	}
	raw = Ref(name, alias).raw
	return name, alias, raw
}

// isSpace 空白字符，包含字节序标记 U+FEFF
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

func marshalRaw(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Sprintf("%v", v)
	}
	return strings.TrimRight(buf.String(), "\n")
}

func compactRaw(data []byte) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return string(data)
	}
	return buf.String()
}
