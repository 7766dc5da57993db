package auth

import "github.com/campuscore/campuscore/internal/app/models"

// Action identifies one guarded operation.
type Action string

const (
	ActionTenantCreate Action = "tenant:create"
	ActionTenantRead   Action = "tenant:read"
	ActionTenantUpdate Action = "tenant:update"
	ActionTenantDelete Action = "tenant:delete"

	ActionUserRegister Action = "user:register"
	ActionUserList     Action = "user:list"
	ActionUserUpdate   Action = "user:update"
	ActionUserDelete   Action = "user:delete"

	ActionStudentCreate Action = "student:create"
	ActionStudentRead   Action = "student:read"
	ActionStudentUpdate Action = "student:update"
	ActionStudentDelete Action = "student:delete"

	ActionProgramManage  Action = "program:manage"
	ActionCourseManage   Action = "course:manage"
	ActionOfferingManage Action = "offering:manage"
	ActionExamManage     Action = "exam:manage"
	ActionExamRead       Action = "exam:read"

	ActionFinanceManage Action = "finance:manage"
	ActionFinanceRead   Action = "finance:read"

	ActionTranscriptCreate Action = "transcript:create"
	ActionTranscriptRead   Action = "transcript:read"

	ActionTicketCreate Action = "ticket:create"
	ActionTicketList   Action = "ticket:list"
	ActionTicketUpdate Action = "ticket:update"
)

// policy is the role-permission matrix. An action missing from a role's set is
// denied; contextual rules (tenant scoping, self-access, target shielding) are
// enforced by the services on top of this.
var policy = map[models.RoleType]map[Action]bool{
	models.RolePlatformAdmin: {
		ActionTenantCreate:     true,
		ActionTenantRead:       true,
		ActionTenantUpdate:     true,
		ActionTenantDelete:     true,
		ActionUserRegister:     true,
		ActionUserList:         true,
		ActionUserUpdate:       true,
		ActionUserDelete:       true,
		ActionStudentCreate:    true,
		ActionStudentRead:      true,
		ActionStudentUpdate:    true,
		ActionStudentDelete:    true,
		ActionProgramManage:    true,
		ActionCourseManage:     true,
		ActionOfferingManage:   true,
		ActionExamManage:       true,
		ActionExamRead:         true,
		ActionFinanceManage:    true,
		ActionFinanceRead:      true,
		ActionTranscriptCreate: true,
		ActionTranscriptRead:   true,
		ActionTicketCreate:     true,
		ActionTicketList:       true,
		ActionTicketUpdate:     true,
	},
	models.RoleSchoolAdmin: {
		ActionTenantRead:       true,
		ActionUserRegister:     true,
		ActionUserList:         true,
		ActionUserUpdate:       true,
		ActionUserDelete:       true,
		ActionStudentCreate:    true,
		ActionStudentRead:      true,
		ActionStudentUpdate:    true,
		ActionStudentDelete:    true,
		ActionProgramManage:    true,
		ActionCourseManage:     true,
		ActionOfferingManage:   true,
		ActionExamManage:       true,
		ActionExamRead:         true,
		ActionFinanceManage:    true,
		ActionFinanceRead:      true,
		ActionTranscriptCreate: true,
		ActionTranscriptRead:   true,
		ActionTicketCreate:     true,
		ActionTicketList:       true,
		ActionTicketUpdate:     true,
	},
	models.RoleProfessor: {
		ActionUserRegister:  true, // students only, enforced downstream
		ActionStudentCreate: true,
		ActionStudentRead:   true,
		ActionStudentUpdate: true,
		ActionExamRead:      true,
		ActionTicketCreate:  true,
	},
	models.RoleStudent: {
		ActionExamRead:       true,
		ActionTranscriptRead: true,
		ActionTicketCreate:   true,
	},
}

// Allowed reports whether the role may perform the action.
func Allowed(role models.RoleType, action Action) bool {
	perms, ok := policy[role]
	if !ok {
		return false
	}
	return perms[action]
}

// CanRegisterRole reports whether an actor role may create an account with the
// target role. Professors may only register students; school admins may not
// mint platform admins.
func CanRegisterRole(actor, target models.RoleType) bool {
	if !Allowed(actor, ActionUserRegister) {
		return false
	}
	switch actor {
	case models.RolePlatformAdmin:
		return true
	case models.RoleSchoolAdmin:
		return target != models.RolePlatformAdmin
	case models.RoleProfessor:
		return target == models.RoleStudent
	}
	return false
}
