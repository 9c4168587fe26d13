// Package entities contains core business entities.
package entities

// Route is an endpoint a role is allowed to call.
type Route struct {
	URI         string
	RequestType string
}

// Role names a set of permitted routes.
type Role struct {
	ID     string
	Name   string
	Routes []Route
}

// Allows reports whether the role permits the given method and uri.
func (r Role) Allows(requestType, uri string) bool {
	for _, rt := range r.Routes {
		if rt.RequestType == requestType && rt.URI == uri {
			return true
		}
	}
	return false
}
