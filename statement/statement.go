package statement

import "strings"

// Clauses 一条 SELECT 语句的四个子句
type Clauses struct {
	Columns string
	From    string
	Where   string
	Limit   string
}

// String 以单个空格连接各子句并去除首尾空白
func (c Clauses) String() string {
	return strings.TrimSpace("SELECT " + c.Columns + " " + c.From + " " + c.Where + " " + c.Limit)
}

// BuildClauses 按 columns、from、where、limit 的顺序生成子句，第一个错误即中止
func BuildClauses(opts Options) (Clauses, error) {
	var (
		c   Clauses
		err error
	)
	if c.Columns, err = BuildColumnsClause(opts); err != nil {
		return Clauses{}, err
	}
	if c.From, err = BuildFromClause(opts); err != nil {
		return Clauses{}, err
	}
	c.Where = BuildWhereClause(opts)
	if c.Limit, err = BuildLimitClause(opts); err != nil {
		return Clauses{}, err
	}
	return c, nil
}

// BuildStatement 生成完整的 SELECT 语句文本
//
// 子句构建的错误原样返回，失败时不产生任何语句文本。
func BuildStatement(opts Options) (string, error) {
	c, err := BuildClauses(opts)
	if err != nil {
		return "", err
	}
	return c.String(), nil
}
