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

type fakeStudentRepo struct {
	students    map[int64]*models.Student
	enrollments []*models.Enrollment
	nextID      int64
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{students: map[int64]*models.Student{}}
}

func (f *fakeStudentRepo) indexTaken(tenantID int64, index string) bool {
	for _, e := range f.enrollments {
		if e.TenantID == tenantID && e.IndexNumber == index {
			return true
		}
	}
	return false
}

func (f *fakeStudentRepo) CreateStudentWithEnrollment(_ context.Context, student *models.Student, enrollment *models.Enrollment) error {
	if f.indexTaken(enrollment.TenantID, enrollment.IndexNumber) {
		return apperrors.ErrIndexNumberExists
	}
	f.nextID++
	student.ID = f.nextID
	f.students[student.ID] = student
	enrollment.StudentID = student.ID
	f.nextID++
	enrollment.ID = f.nextID
	f.enrollments = append(f.enrollments, enrollment)
	return nil
}

func (f *fakeStudentRepo) GetStudentByID(_ context.Context, id int64) (*models.Student, error) {
	student, ok := f.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	cp := *student
	return &cp, nil
}

func (f *fakeStudentRepo) ListStudents(_ context.Context, filter repositories.StudentFilter) ([]*models.StudentListItem, int, error) {
	var items []*models.StudentListItem
	for _, e := range f.enrollments {
		if e.TenantID != filter.TenantID {
			continue
		}
		s := f.students[e.StudentID]
		if filter.Status != "" && string(s.Status) != filter.Status {
			continue
		}
		items = append(items, &models.StudentListItem{
			EnrollmentID: e.ID,
			StudentID:    s.ID,
			TenantID:     e.TenantID,
			IndexNumber:  e.IndexNumber,
			FirstName:    s.FirstName,
			LastName:     s.LastName,
			Status:       s.Status,
		})
	}
	return items, len(items), nil
}

func (f *fakeStudentRepo) GetEnrollments(_ context.Context, studentID int64) ([]*models.Enrollment, map[int64]string, error) {
	var result []*models.Enrollment
	for _, e := range f.enrollments {
		if e.StudentID == studentID {
			result = append(result, e)
		}
	}
	return result, map[int64]string{}, nil
}

func (f *fakeStudentRepo) GetEnrollment(_ context.Context, studentID, tenantID int64) (*models.Enrollment, error) {
	for _, e := range f.enrollments {
		if e.StudentID == studentID && e.TenantID == tenantID {
			cp := *e
			return &cp, nil
		}
	}
	return nil, apperrors.ErrEnrollmentNotFound
}

func (f *fakeStudentRepo) CreateEnrollment(_ context.Context, enrollment *models.Enrollment) error {
	for _, e := range f.enrollments {
		if e.StudentID == enrollment.StudentID && e.TenantID == enrollment.TenantID {
			return apperrors.ErrAlreadyEnrolled
		}
	}
	if f.indexTaken(enrollment.TenantID, enrollment.IndexNumber) {
		return apperrors.ErrIndexNumberExists
	}
	f.nextID++
	enrollment.ID = f.nextID
	f.enrollments = append(f.enrollments, enrollment)
	return nil
}

func (f *fakeStudentRepo) UpdateStudent(_ context.Context, student *models.Student) error {
	if _, ok := f.students[student.ID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	f.students[student.ID] = student
	return nil
}

func (f *fakeStudentRepo) UpdateEnrollment(_ context.Context, enrollment *models.Enrollment) error {
	for i, e := range f.enrollments {
		if e.ID == enrollment.ID {
			f.enrollments[i] = enrollment
			return nil
		}
	}
	return apperrors.ErrEnrollmentNotFound
}

func (f *fakeStudentRepo) DeleteEnrollment(_ context.Context, studentID, tenantID int64) error {
	for i, e := range f.enrollments {
		if e.StudentID == studentID && e.TenantID == tenantID {
			f.enrollments = append(f.enrollments[:i], f.enrollments[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrEnrollmentNotFound
}

func TestCreateStudent(t *testing.T) {
	c := qt.New(t)

	admin := Identity{UserID: 2, TenantID: 2, Role: models.RoleSchoolAdmin}
	platform := Identity{UserID: 1, TenantID: 1, Role: models.RolePlatformAdmin}

	c.Run("creates person with first enrollment", func(c *qt.C) {
		svc := NewStudentService(newFakeStudentRepo())
		resp, err := svc.CreateStudent(context.Background(), admin, nil, dto.CreateStudentRequest{
			FirstName: "Jane", LastName: "Doe", IndexNumber: "2026/0001",
		})
		c.Assert(err, qt.IsNil)
		c.Assert(resp.Status, qt.Equals, "ACTIVE")
		c.Assert(resp.Enrollments, qt.HasLen, 1)
		c.Assert(resp.Enrollments[0].TenantID, qt.Equals, int64(2))
	})

	c.Run("duplicate index in same tenant conflicts", func(c *qt.C) {
		svc := NewStudentService(newFakeStudentRepo())
		_, err := svc.CreateStudent(context.Background(), admin, nil, dto.CreateStudentRequest{
			FirstName: "Jane", LastName: "Doe", IndexNumber: "2026/0001",
		})
		c.Assert(err, qt.IsNil)
		_, err = svc.CreateStudent(context.Background(), admin, nil, dto.CreateStudentRequest{
			FirstName: "John", LastName: "Roe", IndexNumber: "2026/0001",
		})
		c.Assert(err, qt.ErrorIs, apperrors.ErrIndexNumberExists)
	})

	c.Run("platform admin must name a tenant", func(c *qt.C) {
		svc := NewStudentService(newFakeStudentRepo())
		_, err := svc.CreateStudent(context.Background(), platform, nil, dto.CreateStudentRequest{
			FirstName: "Jane", LastName: "Doe", IndexNumber: "2026/0001",
		})
		c.Assert(err, qt.ErrorIs, apperrors.ErrTenantQueryRequired)
	})
}

func TestEnrollStudent(t *testing.T) {
	c := qt.New(t)

	adminA := Identity{UserID: 2, TenantID: 2, Role: models.RoleSchoolAdmin}
	adminB := Identity{UserID: 3, TenantID: 3, Role: models.RoleSchoolAdmin}

	setup := func(c *qt.C) (*StudentService, int64) {
		svc := NewStudentService(newFakeStudentRepo())
		resp, err := svc.CreateStudent(context.Background(), adminA, nil, dto.CreateStudentRequest{
			FirstName: "Jane", LastName: "Doe", IndexNumber: "A-1",
		})
		c.Assert(err, qt.IsNil)
		return svc, resp.ID
	}

	c.Run("same person enrolls in a second tenant with its own index", func(c *qt.C) {
		svc, studentID := setup(c)
		enr, err := svc.EnrollStudent(context.Background(), adminB, nil, dto.EnrollStudentRequest{
			StudentID: studentID, IndexNumber: "B-1",
		})
		c.Assert(err, qt.IsNil)
		c.Assert(enr.TenantID, qt.Equals, int64(3))
	})

	c.Run("double enrollment in one tenant conflicts", func(c *qt.C) {
		svc, studentID := setup(c)
		_, err := svc.EnrollStudent(context.Background(), adminA, nil, dto.EnrollStudentRequest{
			StudentID: studentID, IndexNumber: "A-2",
		})
		c.Assert(err, qt.ErrorIs, apperrors.ErrAlreadyEnrolled)
	})

	c.Run("withdrawing from one tenant keeps the other enrollment", func(c *qt.C) {
		svc, studentID := setup(c)
		_, err := svc.EnrollStudent(context.Background(), adminB, nil, dto.EnrollStudentRequest{
			StudentID: studentID, IndexNumber: "B-1",
		})
		c.Assert(err, qt.IsNil)

		c.Assert(svc.RemoveStudent(context.Background(), adminA, nil, studentID), qt.IsNil)

		detail, err := svc.GetStudent(context.Background(), adminB, studentID)
		c.Assert(err, qt.IsNil)
		c.Assert(detail.Enrollments, qt.HasLen, 1)
		c.Assert(detail.Enrollments[0].TenantID, qt.Equals, int64(3))
	})
}

func TestGetStudentVisibility(t *testing.T) {
	c := qt.New(t)

	adminA := Identity{UserID: 2, TenantID: 2, Role: models.RoleSchoolAdmin}
	adminB := Identity{UserID: 3, TenantID: 3, Role: models.RoleSchoolAdmin}

	svc := NewStudentService(newFakeStudentRepo())
	resp, err := svc.CreateStudent(context.Background(), adminA, nil, dto.CreateStudentRequest{
		FirstName: "Jane", LastName: "Doe", IndexNumber: "A-1",
	})
	c.Assert(err, qt.IsNil)

	c.Run("enrolling tenant sees the student", func(c *qt.C) {
		_, err := svc.GetStudent(context.Background(), adminA, resp.ID)
		c.Assert(err, qt.IsNil)
	})

	c.Run("unrelated tenant gets not found", func(c *qt.C) {
		_, err := svc.GetStudent(context.Background(), adminB, resp.ID)
		c.Assert(err, qt.ErrorIs, apperrors.ErrStudentNotFound)
	})
}

func TestUpdateStudentStatus(t *testing.T) {
	c := qt.New(t)

	admin := Identity{UserID: 2, TenantID: 2, Role: models.RoleSchoolAdmin}
	svc := NewStudentService(newFakeStudentRepo())
	created, err := svc.CreateStudent(context.Background(), admin, nil, dto.CreateStudentRequest{
		FirstName: "Jane", LastName: "Doe", IndexNumber: "A-1",
	})
	c.Assert(err, qt.IsNil)

	c.Run("status moves freely between known values", func(c *qt.C) {
		for _, status := range []string{"GRADUATED", "ACTIVE", "DROPPED", "SUSPENDED"} {
			st := status
			resp, err := svc.UpdateStudent(context.Background(), admin, nil, created.ID, dto.UpdateStudentRequest{Status: &st})
			c.Assert(err, qt.IsNil)
			c.Assert(resp.Status, qt.Equals, status)
		}
	})

	c.Run("unknown status is a bad request", func(c *qt.C) {
		st := "EXPELLED"
		_, err := svc.UpdateStudent(context.Background(), admin, nil, created.ID, dto.UpdateStudentRequest{Status: &st})
		c.Assert(err, qt.ErrorIs, apperrors.ErrBadRequest)
	})
}
