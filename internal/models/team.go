package models

// Role is one of the five elected officer titles.
type Role string

const (
	RolePresident     Role = "President"
	RoleVicePresident Role = "Vice President"
	RoleSecretary     Role = "Secretary"
	RoleTreasurer     Role = "Treasurer"
	RoleSocialChair   Role = "Social Chair"
)

// Valid reports whether r is one of the five elected roles.
func (r Role) Valid() bool {
	switch r {
	case RolePresident, RoleVicePresident, RoleSecretary, RoleTreasurer, RoleSocialChair:
		return true
	}
	return false
}

// TeamMember is an elected officer. OfficeHours, Bio, Avatar and Focus
// are optional; empty string means absent.
type TeamMember struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Role        Role   `json:"role"`
	Email       string `json:"email"`
	OfficeHours string `json:"officeHours,omitempty"`
	Bio         string `json:"bio,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
	Focus       string `json:"focus,omitempty"`
}
