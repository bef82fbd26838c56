package user

// Permission is an action on a resource, enforced by the RBAC layer.
type Permission struct {
	Resource string
	Action   string
}

const (
	ResourceEmployee = "employee"
	ResourceLeave    = "leave"
)

var (
	// Employee Directory
	PermissionEmployeeCreate  = Permission{ResourceEmployee, "create"}
	PermissionEmployeeReadAll = Permission{ResourceEmployee, "read_all"}
	PermissionEmployeeReadOwn = Permission{ResourceEmployee, "read_own"}
	PermissionEmployeeUpdate  = Permission{ResourceEmployee, "update"}
	PermissionEmployeeDelete  = Permission{ResourceEmployee, "delete"}

	// Leave Management
	PermissionLeaveApply    = Permission{ResourceLeave, "apply"}
	PermissionLeaveReadOwn  = Permission{ResourceLeave, "read_own"}
	PermissionLeaveReadAll  = Permission{ResourceLeave, "read_all"}
	PermissionLeaveValidate = Permission{ResourceLeave, "validate"}
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleEmployee: {
		PermissionEmployeeReadOwn,
		PermissionLeaveApply,
		PermissionLeaveReadOwn,
	},
	RoleHR: {
		PermissionEmployeeCreate,
		PermissionEmployeeReadAll,
		PermissionEmployeeUpdate,
		PermissionEmployeeDelete,
		PermissionLeaveApply,
		PermissionLeaveReadOwn,
		PermissionLeaveReadAll,
		PermissionLeaveValidate,
	},
	// Admin manages the directory but does not decide leave
	RoleAdmin: {
		PermissionEmployeeReadAll,
		PermissionEmployeeUpdate,
		PermissionEmployeeDelete,
	},
}
