package server

import (
	"log"
	"strings"
	"time"

	"anoa.com/communityhub/internal/config"
	"anoa.com/communityhub/internal/middleware"

	achievementHttp "anoa.com/communityhub/internal/modules/achievement/delivery/http"
	achievementRepo "anoa.com/communityhub/internal/modules/achievement/repository"
	achievementService "anoa.com/communityhub/internal/modules/achievement/service"

	activityRepo "anoa.com/communityhub/internal/modules/activity/repository"
	activityService "anoa.com/communityhub/internal/modules/activity/service"

	gamificationHttp "anoa.com/communityhub/internal/modules/gamification/delivery/http"
	gamificationRepo "anoa.com/communityhub/internal/modules/gamification/repository"
	gamificationService "anoa.com/communityhub/internal/modules/gamification/service"

	leaderboardHttp "anoa.com/communityhub/internal/modules/leaderboard/delivery/http"
	leaderboardRepo "anoa.com/communityhub/internal/modules/leaderboard/repository"
	leaderboardService "anoa.com/communityhub/internal/modules/leaderboard/service"

	userRepo "anoa.com/communityhub/internal/modules/user/repository"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Server struct {
	engine      *gin.Engine
	db          *gorm.DB
	redisClient *redis.Client
}

func NewServer(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *Server {
	users := userRepo.NewUserRepository(db)

	content := activityRepo.NewContentRepository(db)
	counter := activityService.NewCounter(content)

	gamRepository := gamificationRepo.NewGamificationRepository(db)

	achRepository := achievementRepo.NewAchievementRepository(db)
	achSvc := achievementService.NewAchievementService(achRepository, counter, gamRepository)
	achHandler := achievementHttp.NewAchievementHandler(achSvc)

	gamSvc := gamificationService.NewGamificationService(gamRepository, achSvc, nil)
	gamHandler := gamificationHttp.NewGamificationHandler(gamSvc)

	lbRepository := leaderboardRepo.NewLeaderboardRepository(db)
	lbSvc := leaderboardService.NewLeaderboardService(lbRepository, users, counter, redisClient, cfg.LeaderboardCacheTTL)
	lbHandler := leaderboardHttp.NewLeaderboardHandler(lbSvc)

	// Keep the configured leaderboards fresh in the background.
	if err := lbSvc.StartRefreshScheduler(cfg.LeaderboardRefreshInterval); err != nil {
		log.Printf("failed to start leaderboard refresh scheduler: %v", err)
	}

	router := gin.New()

	setupCORS(router, cfg.AllowedOrigins)

	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	authMiddleware := middleware.NewAuthMiddleware(users, cfg.JWTSecret)

	api := router.Group("/api")

	protected := api.Group("")
	protected.Use(authMiddleware.RequireAuth())
	{
		// Admin routes
		adminGroup := protected.Group("/admin")
		adminGroup.Use(authMiddleware.RequireAdmin())
		{
			adminGroup.GET("/achievements", achHandler.ListAll)
			adminGroup.POST("/achievements", achHandler.Create)
			adminGroup.PUT("/achievements/:id", achHandler.Update)
			adminGroup.DELETE("/achievements/:id", achHandler.Delete)
			adminGroup.POST("/achievements/evaluate/:user_id", achHandler.Evaluate)

			adminGroup.POST("/gamification/:user_id/bonus", gamHandler.AwardBonus)
			adminGroup.POST("/gamification/:user_id/reset", gamHandler.Reset)

			adminGroup.POST("/leaderboards/generate", lbHandler.Generate)
		}

		// Gamification routes
		protected.GET("/gamification/me", gamHandler.GetMyStats)
		protected.GET("/achievements", achHandler.List)

		// Leaderboard routes
		protected.GET("/leaderboard", lbHandler.GetLeaderboard)
		protected.GET("/leaderboard/me", lbHandler.GetMyRank)
		protected.GET("/leaderboard/around", lbHandler.GetAroundRank)
	}

	return &Server{
		engine:      router,
		db:          db,
		redisClient: redisClient,
	}
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
