package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories aggregates all repository instances for dependency injection.
type Repositories struct {
	Tenant       *TenantRepository
	User         *UserRepository
	Student      *StudentRepository
	Program      *ProgramRepository
	Course       *CourseRepository
	Exam         *ExamRepository
	Finance      *FinanceRepository
	Transcript   *TranscriptRepository
	Ticket       *TicketRepository
	Notification *NotificationRepository
}

// NewRepositories creates all repositories sharing one connection pool.
func NewRepositories(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Tenant:       NewTenantRepository(pool),
		User:         NewUserRepository(pool),
		Student:      NewStudentRepository(pool),
		Program:      NewProgramRepository(pool),
		Course:       NewCourseRepository(pool),
		Exam:         NewExamRepository(pool),
		Finance:      NewFinanceRepository(pool),
		Transcript:   NewTranscriptRepository(pool),
		Ticket:       NewTicketRepository(pool),
		Notification: NewNotificationRepository(pool),
	}
}
