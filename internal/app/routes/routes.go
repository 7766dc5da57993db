package routes

import (
	"github.com/gin-gonic/gin"

	appauth "github.com/campuscore/campuscore/internal/app/auth"
	"github.com/campuscore/campuscore/internal/app/controllers"
	"github.com/campuscore/campuscore/internal/app/models/dto"
	"github.com/campuscore/campuscore/internal/middleware"
	"github.com/campuscore/campuscore/internal/pkg/auth"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	tenantController *controllers.TenantController,
	userController *controllers.UserController,
	studentController *controllers.StudentController,
	programController *controllers.ProgramController,
	courseController *controllers.CourseController,
	examController *controllers.ExamController,
	financeController *controllers.FinanceController,
	recordsController *controllers.RecordsController,
	ticketController *controllers.TicketController,
	notificationController *controllers.NotificationController,
	jwtService *auth.JWTService,
	testBypass bool,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	v1.POST("/auth/login", authController.Login)
	v1.POST("/auth/forgot-password", authController.ForgotPassword)

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(middleware.RequireAuth(jwtService, testBypass))
	{
		// Registration is operator-driven, so it sits behind auth
		authenticated.POST("/auth/register",
			middleware.RequirePermission(appauth.ActionUserRegister), authController.Register)
		authenticated.GET("/auth/me", userController.Me)

		tenants := authenticated.Group("/tenants")
		{
			tenants.POST("", middleware.RequirePermission(appauth.ActionTenantCreate), tenantController.CreateTenant)
			tenants.GET("", middleware.RequirePermission(appauth.ActionTenantRead), tenantController.ListTenants)
			tenants.GET("/:id", middleware.RequirePermission(appauth.ActionTenantRead), tenantController.GetTenant)
			tenants.PATCH("/:id", middleware.RequirePermission(appauth.ActionTenantUpdate), tenantController.UpdateTenant)
			tenants.DELETE("/:id", middleware.RequirePermission(appauth.ActionTenantDelete), tenantController.DeactivateTenant)
		}

		users := authenticated.Group("/users")
		{
			users.GET("", middleware.RequirePermission(appauth.ActionUserList), userController.ListUsers)
			users.GET("/:id", middleware.RequirePermission(appauth.ActionUserList), userController.GetUser)
			users.PATCH("/:id", middleware.RequirePermission(appauth.ActionUserUpdate), userController.UpdateUser)
			users.DELETE("/:id", middleware.RequirePermission(appauth.ActionUserDelete), userController.DeleteUser)
		}

		students := authenticated.Group("/students")
		{
			students.POST("", middleware.RequirePermission(appauth.ActionStudentCreate), studentController.CreateStudent)
			students.POST("/enroll", middleware.RequirePermission(appauth.ActionStudentCreate), studentController.EnrollStudent)
			students.GET("", middleware.RequirePermission(appauth.ActionStudentRead), studentController.ListStudents)
			students.GET("/:id", middleware.RequirePermission(appauth.ActionStudentRead), studentController.GetStudent)
			students.PATCH("/:id", middleware.RequirePermission(appauth.ActionStudentUpdate), studentController.UpdateStudent)
			students.PATCH("/:id/enrollment", middleware.RequirePermission(appauth.ActionStudentUpdate), studentController.UpdateEnrollment)
			students.DELETE("/:id", middleware.RequirePermission(appauth.ActionStudentDelete), studentController.RemoveStudent)

			// Finance and records views keyed by student
			students.GET("/:id/payments", middleware.RequirePermission(appauth.ActionFinanceRead), financeController.ListPayments)
			students.GET("/:id/balance/:tuitionId", middleware.RequirePermission(appauth.ActionFinanceRead), financeController.GetBalance)
			students.GET("/:id/transcripts", middleware.RequirePermission(appauth.ActionTranscriptRead), recordsController.ListTranscripts)
		}

		programs := authenticated.Group("/programs")
		{
			programs.GET("", middleware.RequirePermission(appauth.ActionStudentRead), programController.ListPrograms)
			programs.GET("/:id", middleware.RequirePermission(appauth.ActionStudentRead), programController.GetProgram)

			programsManage := programs.Group("")
			programsManage.Use(middleware.RequirePermission(appauth.ActionProgramManage))
			{
				programsManage.POST("", programController.CreateProgram)
				programsManage.PATCH("/:id", programController.UpdateProgram)
				programsManage.DELETE("/:id", programController.DeleteProgram)
			}
		}

		courses := authenticated.Group("/courses")
		courses.Use(middleware.RequirePermission(appauth.ActionCourseManage))
		{
			courses.POST("", courseController.CreateCourse)
			courses.GET("", courseController.ListCourses)
			courses.GET("/:id", courseController.GetCourse)
			courses.PATCH("/:id", courseController.UpdateCourse)
			courses.DELETE("/:id", courseController.DeleteCourse)
		}

		offerings := authenticated.Group("/offerings")
		offerings.Use(middleware.RequirePermission(appauth.ActionOfferingManage))
		{
			offerings.POST("", courseController.CreateOffering)
			offerings.GET("", courseController.ListOfferings)
			offerings.DELETE("/:id", courseController.DeleteOffering)
		}

		examPeriods := authenticated.Group("/exam-periods")
		{
			examPeriods.GET("", middleware.RequirePermission(appauth.ActionExamRead), examController.ListPeriods)
			examPeriods.GET("/:id/exams", middleware.RequirePermission(appauth.ActionExamRead), examController.ListExams)

			examPeriodsManage := examPeriods.Group("")
			examPeriodsManage.Use(middleware.RequirePermission(appauth.ActionExamManage))
			{
				examPeriodsManage.POST("", examController.CreatePeriod)
				examPeriodsManage.DELETE("/:id", examController.DeletePeriod)
				examPeriodsManage.POST("/:id/exams", examController.ScheduleExam)
			}
		}

		exams := authenticated.Group("/exams")
		exams.Use(middleware.RequirePermission(appauth.ActionExamManage))
		{
			exams.PATCH("/:id", examController.RescheduleExam)
			exams.DELETE("/:id", examController.CancelExam)
		}

		tuitions := authenticated.Group("/tuitions")
		{
			tuitions.GET("", middleware.RequirePermission(appauth.ActionFinanceRead), financeController.ListTuitions)

			tuitionsManage := tuitions.Group("")
			tuitionsManage.Use(middleware.RequirePermission(appauth.ActionFinanceManage))
			{
				tuitionsManage.POST("", financeController.CreateTuition)
				tuitionsManage.PATCH("/:id", financeController.UpdateTuition)
				tuitionsManage.DELETE("/:id", financeController.DeleteTuition)
			}
		}

		authenticated.POST("/payments",
			middleware.RequirePermission(appauth.ActionFinanceManage), financeController.RecordPayment)

		transcripts := authenticated.Group("/transcripts")
		{
			transcripts.POST("", middleware.RequirePermission(appauth.ActionTranscriptCreate), recordsController.GenerateTranscript)
			transcripts.GET("/:id", middleware.RequirePermission(appauth.ActionTranscriptRead), recordsController.GetTranscript)
		}

		tickets := authenticated.Group("/tickets")
		{
			tickets.POST("", middleware.RequirePermission(appauth.ActionTicketCreate), ticketController.CreateTicket)
			tickets.GET("", middleware.RequirePermission(appauth.ActionTicketList), ticketController.ListTickets)
			tickets.GET("/:id", middleware.RequirePermission(appauth.ActionTicketList), ticketController.GetTicket)
			tickets.PATCH("/:id/status", middleware.RequirePermission(appauth.ActionTicketUpdate), ticketController.UpdateTicketStatus)
		}

		// Notifications belong to the caller, no extra permission gate
		notifications := authenticated.Group("/notifications")
		{
			notifications.GET("", notificationController.ListNotifications)
			notifications.GET("/unread-count", notificationController.CountUnread)
			notifications.POST("/read-all", notificationController.MarkAllRead)
			notifications.POST("/:id/read", notificationController.MarkRead)
		}
	}

	// Swagger and metrics routes are set up in bootstrap.go
}
