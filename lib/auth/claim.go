package auth

type User string

type Role string

type Roles []Role

func (rr Roles) Has(role Role) bool {
	for _, r := range rr {
		if r == role {
			return true
		}
	}
	return false
}

type Claims struct {
	User      User
	Roles     Roles
	Additions map[string]any
}

const (
	claimUser  = "user"
	claimRoles = "roles"
)
