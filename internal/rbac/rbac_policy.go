package rbac

import "go-hrms/internal/shared/identity"

// Resources guarded by RBACAuthorize.
const (
	ResourceUser            = "user"
	ResourceUnit            = "unit"
	ResourceLeave           = "leave"
	ResourceAnnouncement    = "announcement"
	ResourceSalary          = "salary"
	ResourceOwnLeave        = "leave_own"
	ResourceOwnSalary       = "salary_own"
	ResourceOwnNotification = "notification_own"
	ResourceProfile         = "profile"
	ResourceDashboard       = "dashboard"
)

const (
	ActionView   = "view"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionReview = "review"
)

type Permission struct {
	Resource string
	Action   string
}

func (p Permission) String() string {
	return p.Resource + ":" + p.Action
}

func crud(resource string) []Permission {
	return []Permission{
		{resource, ActionView},
		{resource, ActionCreate},
		{resource, ActionUpdate},
		{resource, ActionDelete},
	}
}

// DefaultPolicy is the built-in role matrix. Managers inherit staff
// self-service; admins are granted everything.
func DefaultPolicy() map[identity.Role][]Permission {
	staff := []Permission{
		{ResourceProfile, ActionView},
		{ResourceProfile, ActionUpdate},
		{ResourceAnnouncement, ActionView},
		{ResourceOwnSalary, ActionView},
		{ResourceOwnNotification, ActionView},
		{ResourceOwnNotification, ActionUpdate},
	}
	staff = append(staff, crud(ResourceOwnLeave)...)

	manager := crud(ResourceUser)
	manager = append(manager,
		Permission{ResourceDashboard, ActionView},
		Permission{ResourceUnit, ActionView},
		Permission{ResourceUnit, ActionUpdate},
		Permission{ResourceLeave, ActionView},
		Permission{ResourceLeave, ActionCreate},
		Permission{ResourceLeave, ActionUpdate},
		Permission{ResourceLeave, ActionReview},
	)
	manager = append(manager, crud(ResourceAnnouncement)...)
	manager = append(manager, crud(ResourceSalary)...)

	return map[identity.Role][]Permission{
		identity.RoleStaff:   staff,
		identity.RoleManager: manager,
		identity.RoleAdmin:   {{"*", "*"}},
	}
}

// inheritance: child role -> parent role
var roleParents = map[identity.Role]identity.Role{
	identity.RoleManager: identity.RoleStaff,
	identity.RoleAdmin:   identity.RoleManager,
}
