package params

import (
	"context"
	"strings"

	"github.com/xy-planning-network/ginger"
)

// A Field names a setting a reserved parameter controls.
type Field int

const (
	FieldFormat Field = iota + 1
	FieldLimit
	FieldOffset
	FieldSort
	FieldDirection
	FieldDebug
	FieldOptions
	FieldLocale
	FieldMode
	FieldTemplate
	FieldFlags
	FieldTimestamp
	FieldOAuthToken
	FieldCallback
)

func (f Field) String() string {
	switch f {
	case FieldFormat:
		return "format"
	case FieldLimit:
		return "limit"
	case FieldOffset:
		return "offset"
	case FieldSort:
		return "sort"
	case FieldDirection:
		return "direction"
	case FieldDebug:
		return "debug"
	case FieldOptions:
		return "options"
	case FieldLocale:
		return "locale"
	case FieldMode:
		return "mode"
	case FieldTemplate:
		return "template"
	case FieldFlags:
		return "flags"
	case FieldTimestamp:
		return "ts"
	case FieldOAuthToken:
		return "oauth_token"
	case FieldCallback:
		return "callback"
	default:
		return ""
	}
}

// A ReservedParam pairs the key a client sends with the Field it sets.
type ReservedParam struct {
	Key   string
	Field Field
}

// OAuthTokenKey is the reserved parameter carrying an OAuth token,
// in filter or data parameters.
const OAuthTokenKey = "oauth_token"

// ReservedParams lists, in the order they are swept, the filter parameters
// moved out of the filter and into Settings.
var ReservedParams = []ReservedParam{
	{"_format", FieldFormat},
	{"_limit", FieldLimit},
	{"_offset", FieldOffset},
	{"_sort", FieldSort},
	{"_direction", FieldDirection},
	{"_debug", FieldDebug},
	{"_options", FieldOptions},
	{"_locale", FieldLocale},
	{"_mode", FieldMode},
	{"_template", FieldTemplate},
	{"_flags", FieldFlags},
	{"_ts", FieldTimestamp},
	{OAuthTokenKey, FieldOAuthToken},
	{"callback", FieldCallback},
}

// IsReserved reports whether key is swept out of filter parameters.
func IsReserved(key string) bool {
	for _, p := range ReservedParams {
		if p.Key == key {
			return true
		}
	}

	return false
}

// Settings holds the values of a request's reserved parameters
// and the credentials and address it came with.
//
// A Settings belongs to one request; see NewSettingsContext.
// An unset field holds the zero Value.
type Settings struct {
	Format     Value `json:"format" yaml:"format"`
	Limit      Value `json:"limit" yaml:"limit"`
	Offset     Value `json:"offset" yaml:"offset"`
	Sort       Value `json:"sort" yaml:"sort"`
	Direction  Value `json:"direction" yaml:"direction"`
	Debug      Value `json:"debug" yaml:"debug"`
	Options    Value `json:"options" yaml:"options"`
	Locale     Value `json:"locale" yaml:"locale"`
	Mode       Value `json:"mode" yaml:"mode"`
	Template   Value `json:"template" yaml:"template"`
	Flags      Value `json:"flags" yaml:"flags"`
	Timestamp  Value `json:"ts" yaml:"ts"`
	OAuthToken Value `json:"oauth_token" yaml:"oauth_token"`
	Callback   Value `json:"callback" yaml:"callback"`

	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
	IP     string `json:"ip,omitempty" yaml:"ip,omitempty"`
}

// Get returns the Value set for f.
func (s *Settings) Get(f Field) Value {
	if p := s.field(f); p != nil {
		return *p
	}

	return Value{}
}

// Set stores v for f.
func (s *Settings) Set(f Field, v Value) {
	if p := s.field(f); p != nil {
		*p = v
	}
}

func (s *Settings) field(f Field) *Value {
	switch f {
	case FieldFormat:
		return &s.Format
	case FieldLimit:
		return &s.Limit
	case FieldOffset:
		return &s.Offset
	case FieldSort:
		return &s.Sort
	case FieldDirection:
		return &s.Direction
	case FieldDebug:
		return &s.Debug
	case FieldOptions:
		return &s.Options
	case FieldLocale:
		return &s.Locale
	case FieldMode:
		return &s.Mode
	case FieldTemplate:
		return &s.Template
	case FieldFlags:
		return &s.Flags
	case FieldTimestamp:
		return &s.Timestamp
	case FieldOAuthToken:
		return &s.OAuthToken
	case FieldCallback:
		return &s.Callback
	default:
		return nil
	}
}

// NewSettingsContext stashes s in ctx.
func NewSettingsContext(ctx context.Context, s *Settings) context.Context {
	return context.WithValue(ctx, ginger.SettingsKey, s)
}

// SettingsFromContext retrieves the *Settings stashed by NewSettingsContext.
// If none is set, SettingsFromContext returns an empty *Settings,
// not shared with any other caller.
func SettingsFromContext(ctx context.Context) *Settings {
	s, ok := ctx.Value(ginger.SettingsKey).(*Settings)
	if !ok || s == nil {
		return new(Settings)
	}

	return s
}

// sweep moves the reserved parameters and header-derived values of a request into s.
//
// Filter parameters are swept first, then an OAuth token in data parameters,
// then the Authorization header, so each source overwrites the ones before it.
func (s *Settings) sweep(filter, data Map, in Input, apiKeyHeader string) {
	for _, p := range ReservedParams {
		v, ok := filter[p.Key]
		if !ok {
			continue
		}

		s.Set(p.Field, v)
		delete(filter, p.Key)
	}

	if v, ok := data[OAuthTokenKey]; ok {
		s.OAuthToken = v
		delete(data, OAuthTokenKey)
	}

	if auth := in.Header.Get("Authorization"); strings.HasPrefix(auth, OAuthTokenKey) {
		s.OAuthToken = StringValue(strings.TrimSpace(strings.TrimPrefix(auth, OAuthTokenKey)))
	}

	if keys := in.Header.Values(apiKeyHeader); len(keys) > 0 {
		s.APIKey = keys[0]
	}

	if ip := hostOf(in.RemoteAddr); ip != "" {
		s.IP = ip
	}
}
