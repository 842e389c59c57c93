// Package statement 将结构化的查询描述拼装为单表 SELECT 语句文本。
//
// 一条语句由四个子句组成，按固定顺序独立生成后以单个空格连接：
//
//	SELECT <columns> <from> <where> <limit>
//
// 列与表均通过 Descriptor 描述，可以是 "name alias" 形式的字符串，
// 也可以是带 name/alias 键的结构化值。Descriptor 在边界处（构造函数、
// JSON 解码、OptionsFromMap）即确定其类别，子句构建只处理已分类的值。
//
// 基本用法：
//
//	stmt, err := statement.BuildStatement(statement.Options{
//		Table:   statement.Text("orders o"),
//		Columns: []statement.Descriptor{statement.Text("o.id"), statement.Ref("o.total", "total")},
//		Limit:   statement.LimitOf(0, 100),
//	})
//	// SELECT o.id, o.total total FROM orders o WHERE ( 1 ) LIMIT 0, 100
//
// 注意：
//   - 值直接插入子句文本，不做转义，也不产生绑定参数；
//   - WHERE 子句目前恒为 "WHERE ( 1 )"，Conditions 会被接受但不参与生成；
//   - 执行通过 Executor 接口完成，默认的 StubExecutor 始终返回固定结果。
package statement
