package entity

// Role is a free-form tag stored with an account.
type Role string

const (
	// RoleUser is assigned when registration does not name a role.
	RoleUser Role = "user"
	// RoleAdmin marks operator accounts.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// RoleOrDefault returns RoleUser for an empty tag and the tag itself otherwise.
func RoleOrDefault(tag string) Role {
	if tag == "" {
		return RoleUser
	}

	return Role(tag)
}
