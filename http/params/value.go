package params

import (
	"encoding/json"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// A Kind is the type of data a Value holds.
type Kind int

const (
	KindNone Kind = iota
	KindString
	KindBool
	KindInt
	KindFloat
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindList:
		return "list"
	default:
		return "none"
	}
}

// numericRegexp matches an optionally signed integer or decimal number.
var numericRegexp = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)

// A Value is a request parameter after coercion.
// The zero Value holds nothing and reports KindNone.
type Value struct {
	kind Kind
	s    string
	b    bool
	i    int64
	f    float64
	list []string
}

func StringValue(s string) Value { return Value{kind: KindString, s: s} }
func BoolValue(b bool) Value     { return Value{kind: KindBool, b: b} }
func IntValue(i int64) Value     { return Value{kind: KindInt, i: i} }
func FloatValue(f float64) Value { return Value{kind: KindFloat, f: f} }

// ListValue copies items into a Value.
func ListValue(items ...string) Value {
	list := make([]string, len(items))
	copy(list, items)

	return Value{kind: KindList, list: list}
}

// Coerce converts the raw text of a parameter into a Value.
// The first matching rule wins:
//
//  1. wrapped in double quotes: the unquoted text, as a string
//  2. contains "|": a list of the pipe-separated parts, each left as a string
//  3. "false": false
//  4. "true": true
//  5. a number: a float if it has a ".", otherwise an int
//  6. "on": true
//  7. otherwise, raw as a string
func Coerce(raw string) Value {
	switch {
	case len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"':
		return StringValue(raw[1 : len(raw)-1])

	case strings.Contains(raw, "|"):
		return Value{kind: KindList, list: strings.Split(raw, "|")}

	case raw == "false":
		return BoolValue(false)

	case raw == "true":
		return BoolValue(true)

	case numericRegexp.MatchString(raw):
		return coerceNumber(raw)

	case raw == "on":
		return BoolValue(true)

	default:
		return StringValue(raw)
	}
}

// coerceNumber converts text already known to be numeric.
// Integers too large for an int64 stay floats.
func coerceNumber(raw string) Value {
	if !strings.Contains(raw, ".") {
		if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return IntValue(i)
		}
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return StringValue(raw)
	}

	return FloatValue(f)
}

// CoerceAll runs Coerce over every value in raw.
func CoerceAll(raw map[string]string) Map {
	m := make(Map, len(raw))
	for k, v := range raw {
		m[k] = Coerce(v)
	}

	return m
}

func (v Value) Kind() Kind { return v.kind }

// Exists reports whether v holds anything.
func (v Value) Exists() bool { return v.kind != KindNone }

// Bool returns the boolean held by v and whether v holds one.
func (v Value) Bool() (bool, bool) { return v.b, v.kind == KindBool }

// Int returns the integer held by v and whether v holds one.
func (v Value) Int() (int64, bool) { return v.i, v.kind == KindInt }

// Float returns the number held by v and whether v holds one.
// An int Value converts to its float equivalent.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInt:
		return float64(v.i), true
	default:
		return 0, false
	}
}

// List returns a copy of the items held by v and whether v holds a list.
func (v Value) List() ([]string, bool) {
	if v.kind != KindList {
		return nil, false
	}

	list := make([]string, len(v.list))
	copy(list, v.list)

	return list, true
}

// String formats v as text.
// A list joins its items with "|"; KindNone is "".
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case KindList:
		return strings.Join(v.list, "|")
	default:
		return ""
	}
}

// Strings formats v as the one or more values a key holds in a url.Values.
func (v Value) Strings() []string {
	switch v.kind {
	case KindNone:
		return nil
	case KindList:
		list, _ := v.List()
		return list
	default:
		return []string{v.String()}
	}
}

// Any unwraps v into a string, bool, int64, float64, []string or nil.
func (v Value) Any() any {
	switch v.kind {
	case KindString:
		return v.s
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindList:
		list, _ := v.List()
		return list
	default:
		return nil
	}
}

// MarshalJSON implements [encoding/json.Marshaler].
func (v Value) MarshalJSON() ([]byte, error) { return json.Marshal(v.Any()) }

// MarshalYAML implements [gopkg.in/yaml.v3.Marshaler].
func (v Value) MarshalYAML() (any, error) { return v.Any(), nil }

// A Map holds coerced parameters by key.
type Map map[string]Value

// Get returns the Value for key; the zero Value if unset.
func (m Map) Get(key string) Value { return m[key] }

// Has reports whether key is set.
func (m Map) Has(key string) bool {
	_, ok := m[key]
	return ok
}

// Keys lists the keys set in m, sorted.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// Any unwraps every Value in m.
func (m Map) Any() map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v.Any()
	}

	return out
}

// URLValues formats m as a url.Values, so it can be decoded into a struct.
// A list Value becomes multiple values for its key.
func (m Map) URLValues() url.Values {
	out := make(url.Values, len(m))
	for k, v := range m {
		out[k] = v.Strings()
	}

	return out
}

// clone copies m, so callers cannot mutate the original.
func (m Map) clone() Map {
	out := make(Map, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}
