package services

import (
	"context"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/campuscore/campuscore/internal/app/models"
	"github.com/campuscore/campuscore/internal/app/models/dto"
	"github.com/campuscore/campuscore/internal/pkg/apperrors"
	pkgauth "github.com/campuscore/campuscore/internal/pkg/auth"
)

type fakeAuthUserRepo struct {
	usersByEmail map[string]*models.User
	created      []*models.User
	affiliated   map[int64][]int64
	nextID       int64
}

func (f *fakeAuthUserRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	user, ok := f.usersByEmail[email]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeAuthUserRepo) CreateUser(_ context.Context, user *models.User) (int64, error) {
	if _, exists := f.usersByEmail[user.Email]; exists {
		return 0, apperrors.ErrEmailAlreadyExists
	}
	f.nextID++
	user.ID = f.nextID
	if f.usersByEmail == nil {
		f.usersByEmail = map[string]*models.User{}
	}
	f.usersByEmail[user.Email] = user
	f.created = append(f.created, user)
	return user.ID, nil
}

func (f *fakeAuthUserRepo) AddUserTenant(_ context.Context, userID, tenantID int64) error {
	if f.affiliated == nil {
		f.affiliated = map[int64][]int64{}
	}
	f.affiliated[userID] = append(f.affiliated[userID], tenantID)
	return nil
}

type fakeAuthTenantRepo struct {
	tenants map[int64]*models.Tenant
}

func (f *fakeAuthTenantRepo) GetTenantByID(_ context.Context, id int64) (*models.Tenant, error) {
	tenant, ok := f.tenants[id]
	if !ok {
		return nil, apperrors.ErrTenantNotFound
	}
	return tenant, nil
}

func authTenantFixture() *fakeAuthTenantRepo {
	return &fakeAuthTenantRepo{tenants: map[int64]*models.Tenant{
		1: {ID: 1, Name: "Platform", Code: "PLAT", IsActive: true},
		2: {ID: 2, Name: "Riverside", Code: "RIV", IsActive: true},
	}}
}

type fakeTokenIssuer struct{}

func (fakeTokenIssuer) GenerateToken(*models.User) (string, error) { return "tok", nil }

func testUser(c *qt.C, email, password string, role models.RoleType, suspended bool) *models.User {
	hash, err := pkgauth.HashPassword(password)
	c.Assert(err, qt.IsNil)
	return &models.User{
		ID:        1,
		Email:     email,
		Password:  hash,
		FirstName: "Test",
		LastName:  "User",
		Role:      role,
		Suspended: suspended,
		TenantID:  1,
	}
}

func TestLogin(t *testing.T) {
	c := qt.New(t)

	user := testUser(c, "admin@x.edu", "secret123", models.RoleSchoolAdmin, false)
	repo := &fakeAuthUserRepo{usersByEmail: map[string]*models.User{user.Email: user}}
	svc := NewAuthService(repo, authTenantFixture(), fakeTokenIssuer{}, &fakeNotifier{})

	c.Run("valid credentials issue a token", func(c *qt.C) {
		resp, err := svc.Login(context.Background(), dto.LoginRequest{Email: "admin@x.edu", Password: "secret123"})
		c.Assert(err, qt.IsNil)
		c.Assert(resp.Token, qt.Equals, "tok")
		c.Assert(resp.User.Email, qt.Equals, "admin@x.edu")
	})

	c.Run("unknown email fails like a wrong password", func(c *qt.C) {
		_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "nobody@x.edu", Password: "secret123"})
		c.Assert(err, qt.ErrorIs, apperrors.ErrInvalidCredentials)
	})

	c.Run("wrong password is refused", func(c *qt.C) {
		_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "admin@x.edu", Password: "wrong"})
		c.Assert(err, qt.ErrorIs, apperrors.ErrInvalidCredentials)
	})

	c.Run("suspended account is refused after password check", func(c *qt.C) {
		suspended := testUser(c, "sus@x.edu", "secret123", models.RoleStudent, true)
		repo.usersByEmail[suspended.Email] = suspended

		_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "sus@x.edu", Password: "secret123"})
		c.Assert(err, qt.ErrorIs, apperrors.ErrAccountSuspended)

		_, err = svc.Login(context.Background(), dto.LoginRequest{Email: "sus@x.edu", Password: "wrong"})
		c.Assert(err, qt.ErrorIs, apperrors.ErrInvalidCredentials)
	})
}

func TestRegister(t *testing.T) {
	c := qt.New(t)

	platform := Identity{UserID: 1, TenantID: 1, Role: models.RolePlatformAdmin}
	professor := Identity{UserID: 3, TenantID: 2, Role: models.RoleProfessor}
	schoolAdmin := Identity{UserID: 2, TenantID: 2, Role: models.RoleSchoolAdmin}

	newSvc := func() (*AuthService, *fakeAuthUserRepo, *fakeNotifier) {
		repo := &fakeAuthUserRepo{usersByEmail: map[string]*models.User{}}
		notifier := &fakeNotifier{}
		return NewAuthService(repo, authTenantFixture(), fakeTokenIssuer{}, notifier), repo, notifier
	}

	c.Run("school admin registers a professor in own tenant", func(c *qt.C) {
		svc, repo, _ := newSvc()
		resp, err := svc.Register(context.Background(), schoolAdmin, dto.RegisterRequest{
			Email: "p@x.edu", Password: "secret123", FirstName: "P", LastName: "Q", Role: "PROFESSOR",
		})
		c.Assert(err, qt.IsNil)
		c.Assert(resp.User.TenantID, qt.Equals, int64(2))
		c.Assert(repo.created, qt.HasLen, 1)
	})

	c.Run("school admin cannot mint a platform admin", func(c *qt.C) {
		svc, _, _ := newSvc()
		_, err := svc.Register(context.Background(), schoolAdmin, dto.RegisterRequest{
			Email: "pa@x.edu", Password: "secret123", FirstName: "P", LastName: "A", Role: "PLATFORM_ADMIN",
		})
		c.Assert(err, qt.ErrorIs, apperrors.ErrPermissionDenied)
	})

	c.Run("professor may only register students", func(c *qt.C) {
		svc, _, _ := newSvc()
		_, err := svc.Register(context.Background(), professor, dto.RegisterRequest{
			Email: "p2@x.edu", Password: "secret123", FirstName: "P", LastName: "Q", Role: "PROFESSOR",
		})
		c.Assert(err, qt.ErrorIs, apperrors.ErrPermissionDenied)

		resp, err := svc.Register(context.Background(), professor, dto.RegisterRequest{
			Email: "s@x.edu", Password: "secret123", FirstName: "S", LastName: "T", Role: "STUDENT",
		})
		c.Assert(err, qt.IsNil)
		c.Assert(resp.User.Role, qt.Equals, "STUDENT")
	})

	c.Run("professor cannot register into another tenant", func(c *qt.C) {
		svc, _, _ := newSvc()
		other := int64(9)
		_, err := svc.Register(context.Background(), professor, dto.RegisterRequest{
			Email: "s2@x.edu", Password: "secret123", FirstName: "S", LastName: "T", Role: "STUDENT", TenantID: &other,
		})
		c.Assert(err, qt.ErrorIs, apperrors.ErrPermissionDenied)
	})

	c.Run("platform admin must name a tenant for school roles", func(c *qt.C) {
		svc, _, _ := newSvc()
		_, err := svc.Register(context.Background(), platform, dto.RegisterRequest{
			Email: "sa@x.edu", Password: "secret123", FirstName: "S", LastName: "A", Role: "SCHOOL_ADMIN",
		})
		c.Assert(err, qt.ErrorIs, apperrors.ErrTenantQueryRequired)
	})

	c.Run("unknown role is a bad request", func(c *qt.C) {
		svc, _, _ := newSvc()
		_, err := svc.Register(context.Background(), platform, dto.RegisterRequest{
			Email: "x@x.edu", Password: "secret123", FirstName: "X", LastName: "Y", Role: "WIZARD",
		})
		c.Assert(err, qt.ErrorIs, apperrors.ErrBadRequest)
	})

	c.Run("registering under an unknown tenant is not found", func(c *qt.C) {
		svc, repo, _ := newSvc()
		ghost := int64(404)
		_, err := svc.Register(context.Background(), platform, dto.RegisterRequest{
			Email: "g@x.edu", Password: "secret123", FirstName: "G", LastName: "H", Role: "STUDENT", TenantID: &ghost,
		})
		c.Assert(err, qt.ErrorIs, apperrors.ErrTenantNotFound)
		c.Assert(repo.created, qt.HasLen, 0)
	})

	c.Run("re-registering a professor in another tenant adds an affiliation", func(c *qt.C) {
		svc, repo, _ := newSvc()
		prof := testUser(c, "prof@x.edu", "secret123", models.RoleProfessor, false)
		prof.ID = 7
		repo.usersByEmail[prof.Email] = prof

		other := int64(2)
		resp, err := svc.Register(context.Background(), platform, dto.RegisterRequest{
			Email: "prof@x.edu", Password: "secret123", FirstName: "P", LastName: "Q", Role: "PROFESSOR", TenantID: &other,
		})
		c.Assert(err, qt.IsNil)
		c.Assert(resp.User.ID, qt.Equals, prof.ID)
		c.Assert(repo.created, qt.HasLen, 0)
		c.Assert(repo.affiliated[prof.ID], qt.DeepEquals, []int64{2})
	})

	c.Run("duplicate email outside the professor case is a conflict", func(c *qt.C) {
		svc, repo, _ := newSvc()
		student := testUser(c, "s@x.edu", "secret123", models.RoleStudent, false)
		repo.usersByEmail[student.Email] = student

		wanted := int64(2)
		_, err := svc.Register(context.Background(), platform, dto.RegisterRequest{
			Email: "s@x.edu", Password: "secret123", FirstName: "S", LastName: "T", Role: "STUDENT", TenantID: &wanted,
		})
		c.Assert(err, qt.ErrorIs, apperrors.ErrEmailAlreadyExists)
	})

	c.Run("platform admin creating an account fans out a notification", func(c *qt.C) {
		svc, _, notifier := newSvc()
		wanted := int64(2)
		resp, err := svc.Register(context.Background(), platform, dto.RegisterRequest{
			Email: "n@x.edu", Password: "secret123", FirstName: "N", LastName: "O", Role: "STUDENT", TenantID: &wanted,
		})
		c.Assert(err, qt.IsNil)
		c.Assert(notifier.sent, qt.HasLen, 1)
		c.Assert(notifier.sent[0].targetID, qt.Equals, resp.User.ID)
		c.Assert(notifier.sent[0].action, qt.Equals, models.ActionCreated)
	})
}
