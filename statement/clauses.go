package statement

import (
	"strconv"
	"strings"

	"selectql/errors"
	"selectql/validation"
)

// WhereClause 恒真谓词，Conditions 暂不参与生成
const WhereClause = "WHERE ( 1 )"

var defaultColumns = []Descriptor{Text("*")}

// emptyTable 表未提供时使用的空结构化值
var emptyTable = Descriptor{kind: KindRef, raw: "{}"}

// descriptorRole 区分列与表描述符的错误代码与消息主语
type descriptorRole struct {
	subject     string
	invalid     errors.ErrorCode
	missingName errors.ErrorCode
}

var (
	columnRole = descriptorRole{
		subject:     "Column",
		invalid:     errors.ErrCodeColumnDescriptionInvalid,
		missingName: errors.ErrCodeColumnDescriptionMissingName,
	}
	tableRole = descriptorRole{
		subject:     "Table",
		invalid:     errors.ErrCodeTableDescriptionInvalid,
		missingName: errors.ErrCodeTableDescriptionMissingName,
	}
)

func (r descriptorRole) invalidError(raw string) error {
	return errors.Newf(r.invalid, "%s description is neither string nor object: %s", r.subject, raw).
		WithContext("value", raw)
}

func (r descriptorRole) missingNameError(raw string) error {
	return errors.Newf(r.missingName, "%s description has no name property or name property is empty: %s", r.subject, raw).
		WithContext("value", raw)
}

// resolve 将描述符归一为 name/alias
//
// 字符串描述符整体去除首尾空白后按空白切分；结构化值的 name/alias 原样返回，
// 不再去除空白，只要求 name 去除空白后非空。
func (r descriptorRole) resolve(d Descriptor) (name, alias string, err error) {
	switch d.kind {
	case KindText:
		name, alias, raw := d.split()
		if validation.IsBlank(name) {
			return "", "", r.missingNameError(raw)
		}
		return name, alias, nil
	case KindRef:
		if !d.hasName || validation.IsBlank(d.name) {
			return "", "", r.missingNameError(d.raw)
		}
		return d.name, d.alias, nil
	default:
		return "", "", r.invalidError(d.String())
	}
}

// BuildColumnsClause 生成列子句，例如 "id, name n"
//
// 未提供 Columns 时为 "*"；遇到第一个无效描述符即返回错误。
func BuildColumnsClause(opts Options) (string, error) {
	columns := opts.Columns
	if columns == nil {
		columns = defaultColumns
	}

	cols := make([]string, 0, len(columns))
	for _, column := range columns {
		name, alias, err := columnRole.resolve(column)
		if err != nil {
			return "", err
		}
		cols = append(cols, strings.TrimSpace(name+" "+alias))
	}
	return strings.Join(cols, ", "), nil
}

// BuildFromClause 生成 FROM 子句，例如 "FROM orders o"
func BuildFromClause(opts Options) (string, error) {
	table := opts.Table
	if table.IsZero() {
		table = emptyTable
	}

	name, alias, err := tableRole.resolve(table)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace("FROM " + name + " " + alias), nil
}

// BuildWhereClause 生成 WHERE 子句，目前恒为 "WHERE ( 1 )"
func BuildWhereClause(opts Options) string {
	return WhereClause
}

// BuildLimitClause 生成 LIMIT 子句，例如 "LIMIT 5, 10"
//
// count 为 0 时与未提供相同，只输出 offset。
func BuildLimitClause(opts Options) (string, error) {
	limit := opts.Limit
	if !limit.Valid() {
		return "", errors.Newf(errors.ErrCodeLimitDescriptionInvalid,
			"Limit description is not an array: %s", limit.raw).
			WithContext("value", limit.raw)
	}

	clause := "LIMIT " + strconv.Itoa(limit.Offset())
	if count, ok := limit.Count(); ok && count != 0 {
		clause += ", " + strconv.Itoa(count)
	}
	return clause, nil
}
