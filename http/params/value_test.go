package params_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/ginger/http/params"
)

func TestCoerce(t *testing.T) {
	for _, tc := range []struct {
		name     string
		raw      string
		expected params.Value
	}{
		{"True", "true", params.BoolValue(true)},
		{"False", "false", params.BoolValue(false)},
		{"On", "on", params.BoolValue(true)},
		{"Off-Stays-Text", "off", params.StringValue("off")},
		{"Int", "42", params.IntValue(42)},
		{"Signed-Int", "-7", params.IntValue(-7)},
		{"Plus-Int", "+7", params.IntValue(7)},
		{"Float", "3.5", params.FloatValue(3.5)},
		{"Float-Trailing-Point", "1.", params.FloatValue(1)},
		{"Float-Leading-Point", ".25", params.FloatValue(0.25)},
		{"Float-Zero-Fraction", "1.0", params.FloatValue(1)},
		{"Huge-Int", "99999999999999999999", params.FloatValue(99999999999999999999)},
		{"Exponent-Stays-Text", "1e3", params.StringValue("1e3")},
		{"Hex-Stays-Text", "0x1f", params.StringValue("0x1f")},
		{"List", "a|b|c", params.ListValue("a", "b", "c")},
		{"List-Not-Coerced", "3|4", params.ListValue("3", "4")},
		{"List-Leading-Pipe", "|a", params.ListValue("", "a")},
		{"Quoted-Number", `"42"`, params.StringValue("42")},
		{"Quoted-True", `"true"`, params.StringValue("true")},
		{"Quoted-Pipe", `"a|b"`, params.StringValue("a|b")},
		{"Quoted-Empty", `""`, params.StringValue("")},
		{"Lone-Quote", `"`, params.StringValue(`"`)},
		{"Empty", "", params.StringValue("")},
		{"Text", "ginger", params.StringValue("ginger")},
		{"Case-Sensitive", "TRUE", params.StringValue("TRUE")},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, params.Coerce(tc.raw))
		})
	}
}

func TestValueAccessors(t *testing.T) {
	// Arrange
	var zero params.Value

	// Act + Assert
	require.False(t, zero.Exists())
	require.Equal(t, params.KindNone, zero.Kind())
	require.Equal(t, "", zero.String())
	require.Nil(t, zero.Strings())
	require.Nil(t, zero.Any())

	b, ok := params.BoolValue(true).Bool()
	require.True(t, ok)
	require.True(t, b)

	_, ok = params.StringValue("true").Bool()
	require.False(t, ok)

	i, ok := params.IntValue(10).Int()
	require.True(t, ok)
	require.Equal(t, int64(10), i)

	f, ok := params.IntValue(10).Float()
	require.True(t, ok)
	require.Equal(t, float64(10), f)

	_, ok = params.StringValue("10").Float()
	require.False(t, ok)

	// Arrange
	list := params.ListValue("a", "b")

	// Act
	items, ok := list.List()
	items[0] = "mutated"

	// Assert
	require.True(t, ok)
	again, _ := list.List()
	require.Equal(t, []string{"a", "b"}, again)
	require.Equal(t, "a|b", list.String())
	require.Equal(t, []string{"a", "b"}, list.Strings())
	require.Equal(t, "list", list.Kind().String())
}

func TestValueString(t *testing.T) {
	require.Equal(t, "true", params.BoolValue(true).String())
	require.Equal(t, "-3", params.IntValue(-3).String())
	require.Equal(t, "3.5", params.FloatValue(3.5).String())
	require.Equal(t, "100000", params.FloatValue(1e5).String())
}

func TestValueMarshalJSON(t *testing.T) {
	// Arrange
	m := params.Map{
		"a": params.StringValue("x"),
		"b": params.BoolValue(false),
		"c": params.IntValue(1),
		"d": params.FloatValue(1.5),
		"e": params.ListValue("p", "q"),
		"f": {},
	}

	// Act
	b, err := json.Marshal(m)

	// Assert
	require.Nil(t, err)
	require.JSONEq(t, `{"a":"x","b":false,"c":1,"d":1.5,"e":["p","q"],"f":null}`, string(b))
}

func TestMap(t *testing.T) {
	// Arrange
	m := params.CoerceAll(map[string]string{
		"name": "ann",
		"ids":  "1|2",
		"page": "2",
	})

	// Act + Assert
	require.True(t, m.Has("name"))
	require.False(t, m.Has("missing"))
	require.False(t, m.Get("missing").Exists())
	require.Equal(t, []string{"ids", "name", "page"}, m.Keys())
	require.Equal(t, map[string]any{"name": "ann", "ids": []string{"1", "2"}, "page": int64(2)}, m.Any())

	vals := m.URLValues()
	require.Equal(t, []string{"1", "2"}, vals["ids"])
	require.Equal(t, "2", vals.Get("page"))
}
