package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/temidayo/servecorps/internal/app/controllers"
	"github.com/temidayo/servecorps/internal/app/models"
	"github.com/temidayo/servecorps/internal/app/models/dto"
	"github.com/temidayo/servecorps/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	rosterController *controllers.RosterController,
	graduateController *controllers.GraduateController,
	staffRequestController *controllers.StaffRequestController,
	referenceController *controllers.ReferenceController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// Reference data for search and upload forms
	v1.GET("/zones", referenceController.Zones)
	v1.GET("/departments", referenceController.Departments)

	// Registrants search for their roster record and claim it without an
	// account; the claim itself creates their profile.
	roster := v1.Group("/roster")
	{
		roster.GET("/search", rosterController.Search)
		roster.POST("/rows/:id/claim", rosterController.Claim)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Roster uploads are restricted to zone accounts
		rosterProtected := authenticated.Group("/roster")
		rosterProtected.Use(authMiddleware.RoleRequired(models.RoleZone))
		{
			rosterProtected.POST("/batches", rosterController.IngestBatch)
		}

		// Graduate review pipeline
		graduates := authenticated.Group("/graduates")
		{
			graduates.GET("/:id/progress", graduateController.Progress)

			// Profile data and decisions are office-only
			graduatesOfficeProtected := graduates.Group("")
			graduatesOfficeProtected.Use(authMiddleware.RoleRequired(models.RoleOffice))
			{
				graduatesOfficeProtected.GET("", graduateController.List)
				graduatesOfficeProtected.GET("/:id", graduateController.GetByID)
				graduatesOfficeProtected.POST("/:id/status", graduateController.Transition)
				graduatesOfficeProtected.POST("/:id/assignment", graduateController.Assign)
				graduatesOfficeProtected.POST("/:id/complete", graduateController.CompleteService)
			}
		}

		// Staff requests
		staffRequests := authenticated.Group("/staff-requests")
		{
			staffRequests.GET("", staffRequestController.List)
			staffRequests.GET("/:id", staffRequestController.GetByID)

			// Departments file requests
			staffRequestsDeptProtected := staffRequests.Group("")
			staffRequestsDeptProtected.Use(authMiddleware.RoleRequired(models.RoleDepartment))
			{
				staffRequestsDeptProtected.POST("", staffRequestController.Create)
			}

			// Office reviews and manages fulfillment
			staffRequestsOfficeProtected := staffRequests.Group("")
			staffRequestsOfficeProtected.Use(authMiddleware.RoleRequired(models.RoleOffice))
			{
				staffRequestsOfficeProtected.POST("/:id/review", staffRequestController.Review)
				staffRequestsOfficeProtected.POST("/:id/fulfillments", staffRequestController.Fulfill)
				staffRequestsOfficeProtected.DELETE("/:id/fulfillments", staffRequestController.Unfulfill)
			}
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
