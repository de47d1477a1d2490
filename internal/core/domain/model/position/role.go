package position

// Role is the declarative capability set attached to a position label.
// The source system only ever used these as UI labels; nothing here is
// enforced server-side, the permission sets exist so the console can show
// or hide actions. Keep that in mind before building authorization on top.
type Role string

const (
	RoleAdministrateur Role = "Administrateur"
	RoleMagasinier     Role = "Magasinier"
	RoleLivreur        Role = "Livreur"
	RoleChefLivreur    Role = "Chef Livreur"
	RoleUnknown        Role = ""
)

// Permission names follow "area:action".
const (
	PermManageStaff      = "staff:write"
	PermManagePositions  = "positions:write"
	PermManageArticles   = "articles:write"
	PermManageOrders     = "orders:write"
	PermScheduleDelivery = "deliveries:write"
	PermPerformDelivery  = "deliveries:perform"
	PermReadAll          = "all:read"
)

// rolePermissions is the declarative role-to-permission lookup table.
func rolePermissions() map[Role][]string {
	return map[Role][]string{
		RoleAdministrateur: {
			PermReadAll, PermManageStaff, PermManagePositions,
			PermManageArticles, PermManageOrders, PermScheduleDelivery,
		},
		RoleMagasinier: {
			PermReadAll, PermManageArticles, PermManageOrders,
		},
		RoleChefLivreur: {
			PermReadAll, PermScheduleDelivery, PermPerformDelivery,
		},
		RoleLivreur: {
			PermPerformDelivery,
		},
	}
}

// RoleFromLabel maps a position label to its role; unrecognized labels get
// RoleUnknown with no permissions.
func RoleFromLabel(label string) Role {
	switch label {
	case string(RoleAdministrateur):
		return RoleAdministrateur
	case string(RoleMagasinier):
		return RoleMagasinier
	case string(RoleLivreur):
		return RoleLivreur
	case string(RoleChefLivreur):
		return RoleChefLivreur
	default:
		return RoleUnknown
	}
}

// Permissions returns the declarative permission set for the role.
func (r Role) Permissions() []string {
	return rolePermissions()[r]
}

// Has reports whether the role's permission set includes perm.
func (r Role) Has(perm string) bool {
	for _, p := range r.Permissions() {
		if p == perm {
			return true
		}
	}
	return false
}

// CanDeliver reports whether staff holding this role may be assigned
// deliveries as a carrier.
func (r Role) CanDeliver() bool {
	return r.Has(PermPerformDelivery)
}
