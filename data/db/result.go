package db

// Result 语句执行结果
//
// Fields 为列名（保持顺序），Records 中每条记录以列名为键。
type Result struct {
	Fields  []string         `json:"fields"`
	Records []map[string]any `json:"records"`
}

// CollectResult 读取并关闭 rows，转换为 Result
//
// []byte 列值转换为 string，其余值保持 driver 返回的类型。
func CollectResult(rows IRows) (*Result, error) {
	defer rows.Close()

	fields, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	result := &Result{Fields: fields, Records: make([]map[string]any, 0)}
	for rows.Next() {
		values := make([]any, len(fields))
		dest := make([]any, len(fields))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}

		record := make(map[string]any, len(fields))
		for i, name := range fields {
			if b, ok := values[i].([]byte); ok {
				record[name] = string(b)
				continue
			}
			record[name] = values[i]
		}
		result.Records = append(result.Records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
