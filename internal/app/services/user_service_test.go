package services

import (
	"context"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/campuscore/campuscore/internal/app/models"
	"github.com/campuscore/campuscore/internal/app/models/dto"
	"github.com/campuscore/campuscore/internal/app/repositories"
	"github.com/campuscore/campuscore/internal/pkg/apperrors"
)

type fakeUserRepo struct {
	users        map[int64]*models.User
	affiliations map[int64][]int64
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	cp := *user
	return &cp, nil
}

func (f *fakeUserRepo) GetUserTenantIDs(_ context.Context, userID int64) ([]int64, error) {
	if ids, ok := f.affiliations[userID]; ok {
		return ids, nil
	}
	user, ok := f.users[userID]
	if !ok {
		return nil, nil
	}
	return []int64{user.TenantID}, nil
}

func (f *fakeUserRepo) ListUsers(_ context.Context, filter repositories.UserFilter) ([]*models.User, int, error) {
	var matched []*models.User
	for _, u := range f.users {
		if filter.TenantID != nil && u.TenantID != *filter.TenantID {
			continue
		}
		matched = append(matched, u)
	}
	return matched, len(matched), nil
}

func (f *fakeUserRepo) UpdateUser(_ context.Context, user *models.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return apperrors.ErrUserNotFound
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) DeleteUser(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

type recordedNotification struct {
	targetID int64
	action   models.NotificationAction
	fields   []string
}

type fakeNotifier struct {
	sent []recordedNotification
}

func (f *fakeNotifier) NotifyUserAction(_ context.Context, _ Identity, target *models.User, action models.NotificationAction, changedFields []string) {
	f.sent = append(f.sent, recordedNotification{targetID: target.ID, action: action, fields: changedFields})
}

func userFixture() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*models.User{
		1: {ID: 1, Email: "pa@x.edu", Role: models.RolePlatformAdmin, TenantID: 1},
		2: {ID: 2, Email: "sa@x.edu", Role: models.RoleSchoolAdmin, TenantID: 2},
		3: {ID: 3, Email: "prof@x.edu", Role: models.RoleProfessor, TenantID: 2},
		4: {ID: 4, Email: "other@y.edu", Role: models.RoleStudent, TenantID: 3},
	}}
}

func TestUpdateUser(t *testing.T) {
	c := qt.New(t)

	platform := Identity{UserID: 1, TenantID: 1, Role: models.RolePlatformAdmin}
	schoolAdmin := Identity{UserID: 2, TenantID: 2, Role: models.RoleSchoolAdmin}

	c.Run("school admin edits same-tenant user and target is notified", func(c *qt.C) {
		repo, notifier := userFixture(), &fakeNotifier{}
		svc := NewUserService(repo, notifier)

		first := "Petra"
		resp, err := svc.UpdateUser(context.Background(), schoolAdmin, 3, dto.UpdateUserRequest{FirstName: &first})
		c.Assert(err, qt.IsNil)
		c.Assert(resp.FirstName, qt.Equals, "Petra")
		c.Assert(notifier.sent, qt.HasLen, 1)
		c.Assert(notifier.sent[0].fields, qt.DeepEquals, []string{"firstName"})
	})

	c.Run("school admin cannot touch another tenant", func(c *qt.C) {
		repo, notifier := userFixture(), &fakeNotifier{}
		svc := NewUserService(repo, notifier)

		first := "X"
		_, err := svc.UpdateUser(context.Background(), schoolAdmin, 4, dto.UpdateUserRequest{FirstName: &first})
		c.Assert(err, qt.ErrorIs, apperrors.ErrPermissionDenied)
	})

	c.Run("platform admin accounts are shielded from school admins", func(c *qt.C) {
		repo, notifier := userFixture(), &fakeNotifier{}
		repo.users[5] = &models.User{ID: 5, Email: "pa2@x.edu", Role: models.RolePlatformAdmin, TenantID: 2}
		svc := NewUserService(repo, notifier)

		suspended := true
		_, err := svc.UpdateUser(context.Background(), schoolAdmin, 5, dto.UpdateUserRequest{Suspended: &suspended})
		c.Assert(err, qt.ErrorIs, apperrors.ErrPermissionDenied)
	})

	c.Run("school admin cannot grant the platform role", func(c *qt.C) {
		repo, notifier := userFixture(), &fakeNotifier{}
		svc := NewUserService(repo, notifier)

		role := "PLATFORM_ADMIN"
		_, err := svc.UpdateUser(context.Background(), schoolAdmin, 3, dto.UpdateUserRequest{Role: &role})
		c.Assert(err, qt.ErrorIs, apperrors.ErrPermissionDenied)
	})

	c.Run("no-op update sends no notification", func(c *qt.C) {
		repo, notifier := userFixture(), &fakeNotifier{}
		svc := NewUserService(repo, notifier)

		email := "prof@x.edu"
		_, err := svc.UpdateUser(context.Background(), platform, 3, dto.UpdateUserRequest{Email: &email})
		c.Assert(err, qt.IsNil)
		c.Assert(notifier.sent, qt.HasLen, 0)
	})
}

func TestDeleteUser(t *testing.T) {
	c := qt.New(t)

	platform := Identity{UserID: 1, TenantID: 1, Role: models.RolePlatformAdmin}
	schoolAdmin := Identity{UserID: 2, TenantID: 2, Role: models.RoleSchoolAdmin}

	c.Run("self-delete is refused", func(c *qt.C) {
		repo, notifier := userFixture(), &fakeNotifier{}
		svc := NewUserService(repo, notifier)

		err := svc.DeleteUser(context.Background(), platform, 1)
		c.Assert(err, qt.ErrorIs, apperrors.ErrSelfDelete)
	})

	c.Run("platform admin deletes and admins are notified", func(c *qt.C) {
		repo, notifier := userFixture(), &fakeNotifier{}
		svc := NewUserService(repo, notifier)

		err := svc.DeleteUser(context.Background(), platform, 3)
		c.Assert(err, qt.IsNil)
		_, exists := repo.users[3]
		c.Assert(exists, qt.IsFalse)
		c.Assert(notifier.sent, qt.HasLen, 1)
		c.Assert(notifier.sent[0].action, qt.Equals, models.ActionDeleted)
	})

	c.Run("school admin cannot delete across tenants", func(c *qt.C) {
		repo, notifier := userFixture(), &fakeNotifier{}
		svc := NewUserService(repo, notifier)

		err := svc.DeleteUser(context.Background(), schoolAdmin, 4)
		c.Assert(err, qt.ErrorIs, apperrors.ErrPermissionDenied)
	})
}

func TestListUsers(t *testing.T) {
	c := qt.New(t)

	schoolAdmin := Identity{UserID: 2, TenantID: 2, Role: models.RoleSchoolAdmin}

	c.Run("school admin is pinned to own tenant", func(c *qt.C) {
		repo, notifier := userFixture(), &fakeNotifier{}
		svc := NewUserService(repo, notifier)

		users, _, err := svc.ListUsers(context.Background(), schoolAdmin, dto.ListUsersQuery{})
		c.Assert(err, qt.IsNil)
		for _, u := range users {
			c.Assert(u.TenantID, qt.Equals, int64(2))
		}
	})

	c.Run("school admin naming another tenant is refused", func(c *qt.C) {
		repo, notifier := userFixture(), &fakeNotifier{}
		svc := NewUserService(repo, notifier)

		other := int64(3)
		_, _, err := svc.ListUsers(context.Background(), schoolAdmin, dto.ListUsersQuery{TenantID: &other})
		c.Assert(err, qt.ErrorIs, apperrors.ErrPermissionDenied)
	})

	c.Run("platform admin must name a tenant", func(c *qt.C) {
		repo, notifier := userFixture(), &fakeNotifier{}
		svc := NewUserService(repo, notifier)

		platformAdmin := Identity{UserID: 1, TenantID: 1, Role: models.RolePlatformAdmin}
		_, _, err := svc.ListUsers(context.Background(), platformAdmin, dto.ListUsersQuery{})
		c.Assert(err, qt.ErrorIs, apperrors.ErrTenantQueryRequired)

		wanted := int64(2)
		users, _, err := svc.ListUsers(context.Background(), platformAdmin, dto.ListUsersQuery{TenantID: &wanted})
		c.Assert(err, qt.IsNil)
		for _, u := range users {
			c.Assert(u.TenantID, qt.Equals, int64(2))
		}
	})
}

func TestProfile(t *testing.T) {
	c := qt.New(t)

	c.Run("returns the caller with all affiliated tenants", func(c *qt.C) {
		repo, notifier := userFixture(), &fakeNotifier{}
		repo.affiliations = map[int64][]int64{3: {2, 3}}
		svc := NewUserService(repo, notifier)

		me, err := svc.Profile(context.Background(), Identity{UserID: 3, TenantID: 2, Role: models.RoleProfessor})
		c.Assert(err, qt.IsNil)
		c.Assert(me.Email, qt.Equals, "prof@x.edu")
		c.Assert(me.TenantID, qt.Equals, int64(2))
		c.Assert(me.TenantIDs, qt.DeepEquals, []int64{2, 3})
	})

	c.Run("single-tenant user sees only the primary tenant", func(c *qt.C) {
		repo, notifier := userFixture(), &fakeNotifier{}
		svc := NewUserService(repo, notifier)

		me, err := svc.Profile(context.Background(), Identity{UserID: 4, TenantID: 3, Role: models.RoleStudent})
		c.Assert(err, qt.IsNil)
		c.Assert(me.TenantIDs, qt.DeepEquals, []int64{3})
	})
}
