package auth

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/campuscore/campuscore/internal/app/models"
)

func TestAllowed(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		name   string
		role   models.RoleType
		action Action
		want   bool
	}{
		{"platform admin creates tenants", models.RolePlatformAdmin, ActionTenantCreate, true},
		{"school admin cannot create tenants", models.RoleSchoolAdmin, ActionTenantCreate, false},
		{"school admin manages programs", models.RoleSchoolAdmin, ActionProgramManage, true},
		{"professor reads students", models.RoleProfessor, ActionStudentRead, true},
		{"professor cannot delete students", models.RoleProfessor, ActionStudentDelete, false},
		{"professor cannot manage finance", models.RoleProfessor, ActionFinanceManage, false},
		{"student reads own transcript", models.RoleStudent, ActionTranscriptRead, true},
		{"student cannot list users", models.RoleStudent, ActionUserList, false},
		{"student creates tickets", models.RoleStudent, ActionTicketCreate, true},
		{"school admin lists tickets", models.RoleSchoolAdmin, ActionTicketList, true},
		{"school admin updates tickets", models.RoleSchoolAdmin, ActionTicketUpdate, true},
		{"professor cannot list tickets", models.RoleProfessor, ActionTicketList, false},
		{"unknown role denied", models.RoleType("JANITOR"), ActionExamRead, false},
	}

	for _, tt := range tests {
		c.Run(tt.name, func(c *qt.C) {
			c.Assert(Allowed(tt.role, tt.action), qt.Equals, tt.want)
		})
	}
}

func TestCanRegisterRole(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		name   string
		actor  models.RoleType
		target models.RoleType
		want   bool
	}{
		{"platform admin registers anyone", models.RolePlatformAdmin, models.RolePlatformAdmin, true},
		{"school admin registers professors", models.RoleSchoolAdmin, models.RoleProfessor, true},
		{"school admin cannot mint platform admins", models.RoleSchoolAdmin, models.RolePlatformAdmin, false},
		{"professor registers students", models.RoleProfessor, models.RoleStudent, true},
		{"professor cannot register professors", models.RoleProfessor, models.RoleProfessor, false},
		{"student registers nobody", models.RoleStudent, models.RoleStudent, false},
	}

	for _, tt := range tests {
		c.Run(tt.name, func(c *qt.C) {
			c.Assert(CanRegisterRole(tt.actor, tt.target), qt.Equals, tt.want)
		})
	}
}
