package statement

import (
	stdErrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"selectql/errors"
)

func TestDescriptorOf(t *testing.T) {
	tests := []struct {
		name string
		in   any
		kind Kind
		raw  string
	}{
		{name: "nil", in: nil, kind: KindAbsent, raw: "null"},
		{name: "string", in: "tn ta", kind: KindText, raw: `"tn ta"`},
		{name: "map", in: map[string]any{"name": "tn"}, kind: KindRef, raw: `{"name":"tn"}`},
		{name: "string map", in: map[string]string{"alias": ""}, kind: KindRef, raw: `{"alias":""}`},
		{name: "slice", in: []int{1, 2, 3}, kind: KindList, raw: `[1,2,3]`},
		{name: "array", in: [2]string{"a", "b"}, kind: KindList, raw: `["a","b"]`},
		{name: "number", in: 5, kind: KindScalar, raw: `5`},
		{name: "descriptor", in: Ref("tn", ""), kind: KindRef, raw: `{"name":"tn"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := DescriptorOf(tt.in)
			assert.Equal(t, tt.kind, d.Kind())
			assert.Equal(t, tt.raw, d.String())
		})
	}
}

func TestDescriptor_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		js   string
		kind Kind
		raw  string
	}{
		{js: `"name alias"`, kind: KindText, raw: `"name alias"`},
		{js: `{ "alias" : "a", "name" : "n" }`, kind: KindRef, raw: `{"alias":"a","name":"n"}`},
		{js: `[ 1, 2 ]`, kind: KindList, raw: `[1,2]`},
		{js: `false`, kind: KindScalar, raw: `false`},
		{js: `null`, kind: KindAbsent, raw: `null`},
	}

	for _, tt := range tests {
		t.Run(tt.js, func(t *testing.T) {
			var d Descriptor
			require.NoError(t, d.UnmarshalJSON([]byte(tt.js)))
			assert.Equal(t, tt.kind, d.Kind())
			assert.Equal(t, tt.raw, d.String())
		})
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "text", KindText.String())
	assert.Equal(t, "list", KindList.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}

func TestDecodeOptions(t *testing.T) {
	opts, err := DecodeOptions([]byte(`{
		"table": "orders o",
		"columns": ["id", {"name": "total"}],
		"conditions": {"status": "paid"},
		"limit": [5, 10]
	}`))
	require.NoError(t, err)

	assert.Equal(t, KindText, opts.Table.Kind())
	require.Len(t, opts.Columns, 2)
	assert.Equal(t, KindRef, opts.Columns[1].Kind())
	assert.Equal(t, map[string]any{"status": "paid"}, opts.Conditions)
	assert.Equal(t, 5, opts.Limit.Offset())
	count, ok := opts.Limit.Count()
	assert.True(t, ok)
	assert.Equal(t, 10, count)
}

func TestDecodeOptions_NullsAreAbsent(t *testing.T) {
	opts, err := DecodeOptions([]byte(`{"table":null,"columns":null,"limit":null}`))
	require.NoError(t, err)

	assert.True(t, opts.Table.IsZero())
	assert.Nil(t, opts.Columns)
	assert.True(t, opts.Limit.IsZero())
}

func TestDecodeOptions_Errors(t *testing.T) {
	tests := []struct {
		name string
		js   string
		code errors.ErrorCode
	}{
		{name: "malformed json", js: `{"table":`, code: errors.ErrCodeInvalidInput},
		{name: "columns not array", js: `{"columns":"id"}`, code: errors.ErrCodeInvalidInput},
		{name: "negative limit", js: `{"limit":[-1]}`, code: errors.ErrCodeValidation},
		{name: "fractional limit", js: `{"limit":[1.5]}`, code: errors.ErrCodeValidation},
		{name: "null limit element", js: `{"limit":[null, 3]}`, code: errors.ErrCodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeOptions([]byte(tt.js))
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetErrorCode(err))
		})
	}
}

func TestOptionsFromMap(t *testing.T) {
	opts, err := OptionsFromMap(map[string]any{
		"table":   map[string]any{"name": "orders", "alias": "o"},
		"columns": []any{"id", map[string]any{"name": "total", "alias": "t"}},
		"limit":   []any{float64(0), float64(50)},
	})
	require.NoError(t, err)

	stmt, err := BuildStatement(opts)
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, total t FROM orders o WHERE ( 1 ) LIMIT 0, 50", stmt)

	opts, err = OptionsFromMap(map[string]any{"table": "tn", "columns": []string{"a b"}, "limit": "5"})
	require.NoError(t, err)
	_, err = BuildStatement(opts)
	requireCodeAndMessage(t, err, errors.ErrCodeLimitDescriptionInvalid, `Limit description is not an array: "5"`)
}

func TestOptionsFromMap_Errors(t *testing.T) {
	_, err := OptionsFromMap(map[string]any{"columns": "id"})
	assert.Equal(t, errors.ErrCodeInvalidInput, errors.GetErrorCode(err))

	_, err = OptionsFromMap(map[string]any{"limit": []any{"a"}})
	assert.Equal(t, errors.ErrCodeValidation, errors.GetErrorCode(err))

	_, err = OptionsFromMap(map[string]any{"limit": []int{1, -2}})
	assert.Equal(t, errors.ErrCodeValidation, errors.GetErrorCode(err))
}

func TestLimitOf_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { LimitOf(-1) })

	l, err := NewLimit(0, 100)
	require.NoError(t, err)
	assert.Equal(t, "[0,100]", l.String())
	assert.True(t, l.Valid())
	assert.Equal(t, "[]", Limit{}.String())
}

func TestDecodeOptions_WholeNumberLimits(t *testing.T) {
	tests := []struct {
		js   string
		want string
	}{
		{js: `{"limit":[5.0]}`, want: "LIMIT 5"},
		{js: `{"limit":[0, 1e2]}`, want: "LIMIT 0, 100"},
		{js: `{"limit":[2, 10.0]}`, want: "LIMIT 2, 10"},
	}

	for _, tt := range tests {
		t.Run(tt.js, func(t *testing.T) {
			got, err := BuildLimitClause(mustDecode(t, tt.js))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := DecodeOptions([]byte(`{"limit":["5"]}`))
	assert.True(t, stdErrors.Is(err, errors.ErrValidation))
}

func TestDecodeOptions_SentinelErrors(t *testing.T) {
	_, err := DecodeOptions([]byte(`{"table":`))
	assert.True(t, stdErrors.Is(err, errors.ErrInvalidInput))

	_, err = DecodeOptions([]byte(`{"columns":{}}`))
	assert.True(t, stdErrors.Is(err, errors.ErrInvalidInput))

	_, err = DecodeOptions([]byte(`{"limit":[-1.0]}`))
	assert.True(t, stdErrors.Is(err, errors.ErrValidation))
}
