package user

type Role string

const (
	RoleParent     Role = "parent"
	RoleBabysitter Role = "babysitter"
	RoleAdmin      Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleParent, RoleBabysitter, RoleAdmin:
		return true
	default:
		return false
	}
}

func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.IsValid()
}
