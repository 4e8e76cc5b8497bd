package params

import (
	"net/url"
	"strings"
)

// idKey holds the lone segment of a path that does not pair keys with values.
const idKey = "id"

// ParsePath pulls raw filter parameters out of the part of path following prefix.
//
// One leading and one trailing "/" are trimmed from that remainder.
// An empty remainder yields an empty map.
// A remainder without a "/" yields its text, as sent, under "id".
// Otherwise, the remainder is split into alternating key and value segments,
// "/users/id/1/name/ann" with prefix "/users" yielding {"id": "1", "name": "ann"}.
// Pair values are URL-decoded; keys are not.
// A trailing key without a value maps to "".
//
// If path does not begin with prefix, the whole path is parsed.
func ParsePath(path, prefix string) map[string]string {
	rest := strings.TrimPrefix(path, prefix)
	rest = strings.TrimPrefix(rest, "/")
	rest = strings.TrimSuffix(rest, "/")

	filter := make(map[string]string)
	if rest == "" {
		return filter
	}

	segs := strings.Split(rest, "/")
	if len(segs) == 1 {
		filter[idKey] = segs[0]
		return filter
	}

	for i := 0; i < len(segs); i += 2 {
		if i+1 == len(segs) {
			filter[segs[i]] = ""
			break
		}

		filter[segs[i]] = decode(segs[i+1])
	}

	return filter
}

// MergeQuery overlays query onto filter.
// A key set in both takes the query's value.
// A key repeated in query takes its last value.
func MergeQuery(filter map[string]string, query url.Values) {
	for k, vals := range query {
		if len(vals) == 0 {
			continue
		}

		filter[k] = vals[len(vals)-1]
	}
}

// decode URL-decodes s, treating "+" as a space.
// Malformed escapes leave s as is.
func decode(s string) string {
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}

	return decoded
}
