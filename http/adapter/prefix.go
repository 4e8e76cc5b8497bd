package adapter

import "strings"

// StaticPrefix trims a route pattern at its first parameter or wildcard segment.
//
//	/users/*rest     => /users
//	/users/:id/posts => /users
//	/users/*         => /users
//	/*               => /
func StaticPrefix(pattern string) string {
	if pattern == "" {
		return "/"
	}

	segments := strings.Split(strings.TrimPrefix(pattern, "/"), "/")
	kept := make([]string, 0, len(segments))
	for _, seg := range segments {
		if strings.HasPrefix(seg, ":") || strings.HasPrefix(seg, "*") {
			break
		}

		kept = append(kept, seg)
	}

	prefix := "/" + strings.Join(kept, "/")
	if prefix != "/" {
		prefix = strings.TrimSuffix(prefix, "/")
	}

	return prefix
}
