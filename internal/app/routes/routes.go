package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"placementhub/internal/app/controllers"
	"placementhub/internal/app/models"
	"placementhub/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	profileController *controllers.ProfileController,
	driveController *controllers.DriveController,
	applicationController *controllers.ApplicationController,
	mentorshipController *controllers.MentorshipController,
	referralController *controllers.ReferralController,
	botController *controllers.BotController,
	analyticsController *controllers.AnalyticsController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		studentOnly := authMiddleware.RoleRequired(string(models.RoleStudent))
		tpoOnly := authMiddleware.RoleRequired(string(models.RoleTPO))
		alumniOnly := authMiddleware.RoleRequired(string(models.RoleAlumni))

		// Student profile
		profile := authenticated.Group("/profile", studentOnly)
		{
			profile.GET("", profileController.GetProfile)
			profile.PUT("", profileController.UpdateProfile)
		}

		// Placement drives
		drives := authenticated.Group("/drives")
		{
			drives.GET("/eligible", studentOnly, driveController.GetEligibleDrives)

			drivesTPO := drives.Group("", tpoOnly)
			{
				drivesTPO.POST("", driveController.CreateDrive)
				drivesTPO.GET("", driveController.GetAllDrives)
				drivesTPO.GET("/:id/eligible-students", driveController.GetEligibleStudents)
			}
		}

		// Applications
		applications := authenticated.Group("/applications", studentOnly)
		{
			applications.POST("", applicationController.Apply)
			applications.GET("", applicationController.GetMyApplications)
		}

		// Mentorship
		mentorship := authenticated.Group("/mentorship")
		{
			mentorship.POST("/slots", alumniOnly, mentorshipController.CreateSlot)
			mentorship.GET("/my-slots", alumniOnly, mentorshipController.GetMySlots)
			mentorship.GET("/slots", studentOnly, mentorshipController.GetAvailableSlots)
			mentorship.POST("/bookings", studentOnly, mentorshipController.BookSlot)
		}

		// Referral board
		jobs := authenticated.Group("/jobs")
		{
			jobs.GET("", referralController.GetActiveJobs)
			jobs.POST("", alumniOnly, referralController.PostJob)
			jobs.GET("/mine", alumniOnly, referralController.GetMyJobs)
			jobs.PATCH("/:id/status", alumniOnly, referralController.UpdateJobStatus)
		}

		// FAQ assistant
		authenticated.POST("/bot/ask", botController.Ask)

		// Analytics
		analytics := authenticated.Group("/analytics")
		{
			analytics.GET("/stats", tpoOnly, analyticsController.GetStats)
			analytics.GET("/skill-gap", studentOnly, analyticsController.GetSkillGap)
		}
	}
}
