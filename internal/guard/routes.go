package guard

import "strings"

// Navigation targets used by the guard and the front ends.
const (
	RouteSignIn       = "/auth/signin"
	RouteDashboard    = "/admin/dashboard"
	RoutePending      = "/pending"
	RouteUnauthorized = "/unauthorized"
)

const (
	protectedPrefix = "/admin"
	authPrefix      = "/auth"
)

// Class is the access class of a navigable path.
type Class int

const (
	// Public paths have no restriction and bypass the guard.
	Public Class = iota
	// Protected paths require a session.
	Protected
	// AuthPage paths (sign-in, sign-up) send signed-in users away.
	AuthPage
)

func (c Class) String() string {
	switch c {
	case Protected:
		return "protected"
	case AuthPage:
		return "auth"
	default:
		return "public"
	}
}

// Classify maps a request path to its access class by prefix.
func Classify(path string) Class {
	switch {
	case hasSegmentPrefix(path, protectedPrefix):
		return Protected
	case hasSegmentPrefix(path, authPrefix):
		return AuthPage
	default:
		return Public
	}
}

// hasSegmentPrefix reports whether path is prefix itself or lies below it,
// so "/administrator" does not match "/admin".
func hasSegmentPrefix(path, prefix string) bool {
	if path == prefix {
		return true
	}
	return strings.HasPrefix(path, prefix+"/")
}
