package models

// RoleType defines the user role type
type RoleType string

const (
	RolePlatformAdmin RoleType = "PLATFORM_ADMIN"
	RoleSchoolAdmin   RoleType = "SCHOOL_ADMIN"
	RoleProfessor     RoleType = "PROFESSOR"
	RoleStudent       RoleType = "STUDENT"
)

// ValidRole reports whether s is one of the known role values.
func ValidRole(s string) bool {
	switch RoleType(s) {
	case RolePlatformAdmin, RoleSchoolAdmin, RoleProfessor, RoleStudent:
		return true
	}
	return false
}

// StudentStatus is the lifecycle status of a student person record.
type StudentStatus string

const (
	StudentActive    StudentStatus = "ACTIVE"
	StudentGraduated StudentStatus = "GRADUATED"
	StudentDropped   StudentStatus = "DROPPED"
	StudentSuspended StudentStatus = "SUSPENDED"
)

// ValidStudentStatus reports whether s is one of the known status values.
// Transitions are deliberately unconstrained: status changes are administrative
// overrides, so GRADUATED may move back to ACTIVE.
func ValidStudentStatus(s string) bool {
	switch StudentStatus(s) {
	case StudentActive, StudentGraduated, StudentDropped, StudentSuspended:
		return true
	}
	return false
}

// Term represents a semester term
type Term string

const (
	TermFall   Term = "FALL"
	TermSpring Term = "SPRING"
)

// ValidTerm reports whether s is one of the known term values.
func ValidTerm(s string) bool {
	switch Term(s) {
	case TermFall, TermSpring:
		return true
	}
	return false
}

// TicketStatus is the workflow status of a support ticket.
type TicketStatus string

const (
	TicketNew        TicketStatus = "NEW"
	TicketInProgress TicketStatus = "IN_PROGRESS"
	TicketResolved   TicketStatus = "RESOLVED"
)

// ValidTicketStatus reports whether s is one of the known ticket statuses.
func ValidTicketStatus(s string) bool {
	switch TicketStatus(s) {
	case TicketNew, TicketInProgress, TicketResolved:
		return true
	}
	return false
}

// NotificationAction describes what happened to the user a notification is about.
type NotificationAction string

const (
	ActionCreated NotificationAction = "CREATED"
	ActionUpdated NotificationAction = "UPDATED"
	ActionDeleted NotificationAction = "DELETED"
)
