package consts

// Role 用户角色。
type Role string

const (
	RoleAdmin Role = "admin"
	RoleAgent Role = "agent"
	RoleGuest Role = "guest"
)

// ValidRole 判断角色取值是否合法。
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleAgent, RoleGuest:
		return true
	}
	return false
}
