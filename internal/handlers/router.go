package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/UCAS-CE/cyberhub-service/internal/config"
	"github.com/UCAS-CE/cyberhub-service/internal/models"
	"github.com/UCAS-CE/cyberhub-service/internal/services"
	"github.com/UCAS-CE/cyberhub-service/internal/store"
	"github.com/UCAS-CE/cyberhub-service/internal/utils"
)

type HandlerManager struct {
	authHandler         *AuthHandler
	forumHandler        *ForumHandler
	libraryHandler      *LibraryHandler
	coordinationHandler *CoordinationHandler
	challengeHandler    *ChallengeHandler
	moderationHandler   *ModerationHandler
	directoryHandler    *DirectoryHandler
	roadmapHandler      *RoadmapHandler
	assistantHandler    *AssistantHandler
	authMiddleware      *JWTAuthMiddleware
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	st *store.Store,
	logger utils.Logger,
	authConfig config.AuthConfig,
) *HandlerManager {
	authMiddleware := NewJWTAuthMiddleware(authConfig.JWTSecret, st)

	return &HandlerManager{
		authHandler:         NewAuthHandler(serviceManager.Auth(), logger),
		forumHandler:        NewForumHandler(serviceManager.Forum(), logger),
		libraryHandler:      NewLibraryHandler(serviceManager.Library(), logger),
		coordinationHandler: NewCoordinationHandler(serviceManager.Coordination(), logger),
		challengeHandler:    NewChallengeHandler(serviceManager.Challenge(), logger),
		moderationHandler:   NewModerationHandler(serviceManager.Moderation(), logger),
		directoryHandler:    NewDirectoryHandler(serviceManager.Directory(), logger),
		roadmapHandler:      NewRoadmapHandler(serviceManager.Roadmap(), logger),
		assistantHandler:    NewAssistantHandler(serviceManager.Assistant(), logger),
		authMiddleware:      authMiddleware,
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	// Public endpoints
	auth := router.Group("/api/v1/auth")
	{
		auth.POST("/register", hm.authHandler.Register)
		auth.POST("/login", hm.authHandler.Login)
	}

	// API v1 routes with authentication
	v1 := router.Group("/api/v1")
	v1.Use(hm.authMiddleware.AuthMiddleware())
	{
		// Profile and membership
		users := v1.Group("/users")
		{
			users.GET("/me", hm.authHandler.Me)
			users.PUT("/me", hm.authHandler.UpdateProfile)

			// Role changes - the service enforces the promotion matrix,
			// the route gate keeps students out entirely
			users.PUT("/:id/role", hm.authMiddleware.RequireRoleMiddleware(models.RoleFaculty), hm.authHandler.UpdateRole)
		}

		// Member directory - Experts and above
		directory := v1.Group("/directory")
		{
			directory.GET("", hm.authMiddleware.RequireRoleMiddleware(models.RoleExpert, models.RoleFaculty), hm.directoryHandler.ListMembers)
			directory.GET("/leaderboard", hm.directoryHandler.Leaderboard)
		}

		// Forum routes
		questions := v1.Group("/questions")
		{
			questions.GET("", hm.forumHandler.ListQuestions)
			questions.POST("", hm.forumHandler.CreateQuestion)
			questions.GET("/:id", hm.forumHandler.GetQuestion)
			questions.POST("/:id/answers", hm.forumHandler.AppendAnswer)
			questions.POST("/:id/feature", hm.authMiddleware.RequireRoleMiddleware(models.RoleFaculty), hm.forumHandler.ToggleFeatured)
			questions.POST("/:id/answers/:answer_id/upvote", hm.forumHandler.UpvoteAnswer)
			questions.POST("/:id/report", hm.forumHandler.ReportQuestion)
		}

		// Resource library routes
		courses := v1.Group("/courses")
		{
			courses.GET("", hm.libraryHandler.ListCourses)
			courses.GET("/:id", hm.libraryHandler.GetCourse)
		}

		resources := v1.Group("/resources")
		{
			resources.GET("", hm.libraryHandler.ListResources)
			resources.POST("", hm.libraryHandler.AddResource)
			resources.GET("/pending", hm.authMiddleware.RequireRoleMiddleware(models.RoleExpert, models.RoleFaculty), hm.libraryHandler.ListPendingResources)
			resources.PUT("/:id/review", hm.authMiddleware.RequireRoleMiddleware(models.RoleExpert, models.RoleFaculty), hm.libraryHandler.ReviewResource)
		}

		// Project coordination routes
		projects := v1.Group("/projects")
		{
			projects.GET("", hm.coordinationHandler.ListProjects)
			projects.POST("", hm.authMiddleware.RequireRoleMiddleware(models.RoleExpert, models.RoleFaculty), hm.coordinationHandler.ProposeProject)
			projects.POST("/:id/membership", hm.coordinationHandler.ToggleMembership)
		}

		// Weekly challenge routes
		challenge := v1.Group("/challenge")
		{
			challenge.GET("", hm.challengeHandler.GetChallenge)
			challenge.POST("/join", hm.challengeHandler.RequestJoin)
			challenge.POST("/requests/decide", hm.authMiddleware.RequireRoleMiddleware(models.RoleFaculty), hm.challengeHandler.DecideRequest)
		}

		// Moderation routes - listing and resolving are Owner-only
		reports := v1.Group("/reports")
		{
			reports.POST("", hm.moderationHandler.CreateReport)
			reports.GET("", hm.authMiddleware.RequireRoleMiddleware(models.RoleOwner), hm.moderationHandler.ListReports)
			reports.PUT("/:id/resolve", hm.authMiddleware.RequireRoleMiddleware(models.RoleOwner), hm.moderationHandler.ResolveReport)
		}

		v1.POST("/broadcast", hm.authMiddleware.RequireRoleMiddleware(models.RoleOwner), hm.moderationHandler.Broadcast)

		// Roadmap routes
		roadmaps := v1.Group("/roadmaps")
		{
			roadmaps.GET("", hm.roadmapHandler.ListRoadmaps)
			roadmaps.POST("/:id/steps/:step_id/toggle", hm.roadmapHandler.ToggleStep)
		}

		// Assistant routes
		assistant := v1.Group("/assistant")
		{
			assistant.POST("/chat", hm.assistantHandler.Chat)
			assistant.POST("/learning-path", hm.assistantHandler.RecommendLearningPath)
		}
	}

	// Metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "cyberhub-service",
		})
	})
}
