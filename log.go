package ginger

import (
	"net/http"
	"net/url"
	"strings"
)

// LogMaskVal replaces sensitive values before they are logged.
const LogMaskVal = "xxxxxx"

// Mask replaces every value set for key in vals with a single LogMaskVal.
// Mask does nothing if key is not set.
func Mask(vals url.Values, key string) {
	if _, ok := vals[key]; !ok {
		return
	}

	vals[key] = []string{LogMaskVal}
}

// MaskHeader clones hm, replacing the values of the named headers with a single LogMaskVal.
func MaskHeader(hm http.Header, names ...string) http.Header {
	if hm == nil {
		return nil
	}

	masked := hm.Clone()
	for _, name := range names {
		if masked.Get(name) != "" {
			masked.Set(name, LogMaskVal)
		}
	}

	return masked
}

// MaskPath replaces the path segment following any of keys with LogMaskVal,
// since a path like "/users/oauth_token/abc" carries parameters as key and value segments.
func MaskPath(path string, keys ...string) string {
	segs := strings.Split(path, "/")
	masked := false
	for i := 0; i < len(segs)-1; i++ {
		for _, key := range keys {
			if segs[i] == key && segs[i+1] != "" {
				segs[i+1] = LogMaskVal
				masked = true
				i++
				break
			}
		}
	}

	if !masked {
		return path
	}

	return strings.Join(segs, "/")
}
