package domain

import "errors"

// Role is a project membership privilege level. The set is closed: anything
// outside read/write/admin is rejected at the boundary, never carried along
// as a raw string.
type Role string

const (
	RoleRead  Role = "read"
	RoleWrite Role = "write"
	RoleAdmin Role = "admin"
)

// ErrInvalidRole reports a role value outside the closed set.
var ErrInvalidRole = errors.New("domain: invalid role")

// roleRank gives the total order read < write < admin.
var roleRank = map[Role]int{
	RoleRead:  0,
	RoleWrite: 1,
	RoleAdmin: 2,
}

// ParseRole validates a raw label against the closed role set.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", ErrInvalidRole
	}
	return r, nil
}

// Valid reports whether r is one of the defined roles.
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// CompareRoles orders two roles. Returns -1 if a < b, 0 if equal, +1 if a > b.
// Either side outside the closed set is a hard failure.
func CompareRoles(a, b Role) (int, error) {
	ra, ok := roleRank[a]
	if !ok {
		return 0, ErrInvalidRole
	}
	rb, ok := roleRank[b]
	if !ok {
		return 0, ErrInvalidRole
	}
	switch {
	case ra < rb:
		return -1, nil
	case ra > rb:
		return 1, nil
	default:
		return 0, nil
	}
}

// AtLeast reports whether r grants at least the required level. It fails
// safe: an invalid role on either side never satisfies a requirement.
func (r Role) AtLeast(required Role) bool {
	ra, ok := roleRank[r]
	if !ok {
		return false
	}
	rb, ok := roleRank[required]
	if !ok {
		return false
	}
	return ra >= rb
}

func (r Role) String() string { return string(r) }
