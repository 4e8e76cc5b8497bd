package ginger

type Key string

const (
	// IpAddrKey stashes the IP address of an HTTP request being handled by ginger.
	IpAddrKey Key = "IpAddrKey"

	// ParamsKey stashes the *params.Parameters extracted from an HTTP request.
	ParamsKey Key = "ParamsKey"

	// RequestIDKey stashes a unique UUID for each HTTP request.
	RequestIDKey Key = "RequestIDKey"

	// SettingsKey stashes the *params.Settings swept out of an HTTP request's reserved parameters.
	SettingsKey Key = "SettingsKey"
)

// String formats the stringified key with additional contextual information
func (k Key) String() string {
	return "ginger context key: " + string(k)
}
