package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/jobvista/jobvista-backend/internal/config"
	"github.com/jobvista/jobvista-backend/internal/handlers"
	"github.com/jobvista/jobvista-backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	jobHandler *handlers.JobHandler,
	resumeHandler *handlers.ResumeHandler,
	learnHandler *handlers.LearnHandler,
	notificationHandler *handlers.NotificationHandler,
	employeeHandler *handlers.EmployeeHandler,
	feedbackHandler *handlers.FeedbackHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth is public but gets a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	jwt := middleware.JWTProtected(cfg)
	recruiter := middleware.RecruiterRequired()

	api.Post("/auth/logout", jwt, authHandler.Logout)
	api.Get("/auth/me", jwt, authHandler.Me)
	api.Post("/auth/upload-image", jwt, authHandler.UploadAvatar)

	// Jobs
	jobs := api.Group("/jobs", jwt)
	jobs.Post("/create", recruiter, jobHandler.Create)
	jobs.Post("/search", jobHandler.Search)
	jobs.Get("/all", jobHandler.GetAll)
	jobs.Get("/applied", jobHandler.ListApplied)
	jobs.Get("/user/:userId", jobHandler.ListByOwner)
	jobs.Put("/update-user-status/:jobId", recruiter, jobHandler.UpdateUserStatus)
	jobs.Get("/:jobId/applicants", recruiter, jobHandler.Applicants)
	jobs.Post("/:id/apply", jobHandler.Apply)
	jobs.Get("/:id", jobHandler.GetByID)
	jobs.Put("/:id", recruiter, jobHandler.Update)
	jobs.Delete("/:id", recruiter, jobHandler.Delete)

	// Resumes
	resumes := api.Group("/resumes", jwt)
	resumes.Post("/create-resume-pdf", resumeHandler.CreateFromPDF)
	resumes.Post("/create-resume-text", resumeHandler.CreateFromText)
	resumes.Post("/search", recruiter, resumeHandler.Search)
	resumes.Post("/search-recommended-resume", recruiter, resumeHandler.SearchRecommended)
	resumes.Post("/upload-video/:jobId", resumeHandler.UploadVideo)
	resumes.Put("/personality", resumeHandler.UpdatePersonality)
	resumes.Get("/ocr-content", resumeHandler.GetOCRContent)
	resumes.Get("/details/:userId", resumeHandler.GetDetails)

	// Learning
	learn := api.Group("/learn", jwt)
	learn.Post("/save-learning-type", learnHandler.SaveLearningType)
	learn.Post("/start-topic", learnHandler.StartTopic)
	learn.Post("/fetch-questions", learnHandler.FetchQuestions)
	learn.Post("/submit-quiz", learnHandler.SubmitQuiz)
	learn.Get("/results", learnHandler.Results)
	learn.Get("/results/:userId", learnHandler.ResultsForUser)

	// Notifications
	notifications := api.Group("/notifications", jwt)
	notifications.Get("/", notificationHandler.List)
	notifications.Put("/:id/read", notificationHandler.MarkRead)
	notifications.Post("/decide", recruiter, notificationHandler.Decide)

	// Employee details
	employee := api.Group("/employee", jwt)
	employee.Post("/add-details", employeeHandler.Add)
	employee.Put("/update-details", employeeHandler.Update)
	employee.Get("/details/:userId", employeeHandler.Get)

	// Feedback
	feedbacks := api.Group("/feedbacks", jwt)
	feedbacks.Post("/", feedbackHandler.Add)
	feedbacks.Get("/mine", feedbackHandler.ListMine)
	feedbacks.Get("/", feedbackHandler.ListAll)
}
