package bootstrap

import (
	"log"

	"anoa.com/communityhub/internal/entity"
	"anoa.com/communityhub/pkg/period"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Role{},
		&entity.User{},
		&entity.Profile{},
		&entity.Article{},
		&entity.ForumPost{},
		&entity.ForumReply{},
		&entity.Event{},
		&entity.EventAttendance{},
		&entity.Achievement{},
		&entity.UserAchievement{},
		&entity.PointLog{},
		&entity.Leaderboard{},
		&entity.LeaderboardEntry{},
	)
}

func SeedRoles(db *gorm.DB) error {
	defaultRoles := []entity.Role{
		{Name: entity.RoleAdmin, Description: "Super administrator"},
		{Name: entity.RoleMember, Description: "Community member"},
	}

	for _, role := range defaultRoles {
		var count int64
		if err := db.Model(&entity.Role{}).
			Where("name = ?", role.Name).
			Count(&count).Error; err != nil {
			return err
		}

		if count == 0 {
			if err := db.Create(&role).Error; err != nil {
				return err
			}
		}
	}

	return nil
}

func SeedAdminUser(db *gorm.DB) error {
	var adminRole entity.Role
	if err := db.Where("name = ?", entity.RoleAdmin).First(&adminRole).Error; err != nil {
		return err
	}

	var count int64
	if err := db.Model(&entity.User{}).
		Where("email = ?", "admin@communityhub.local").
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("Admin user already exists, skipping seed")
		return nil
	}

	password := "admin123"
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	adminUser := entity.User{
		Username:     "admin",
		Email:        "admin@communityhub.local",
		PasswordHash: string(hashedPasswordBytes),
		RoleID:       &adminRole.ID,
		IsActive:     true,
		Level:        1,
		Badges:       []string{},
	}

	if err := db.Create(&adminUser).Error; err != nil {
		return err
	}

	adminProfile := entity.Profile{
		UserID:   adminUser.ID,
		FullName: "Administrator",
	}

	if err := db.Create(&adminProfile).Error; err != nil {
		return err
	}

	log.Println("✅ Admin user seeded successfully")
	log.Println("   Email: admin@communityhub.local")

	return nil
}

// SeedAchievements installs the default catalog. Existing achievements (by
// name) are left untouched so admin edits survive restarts.
func SeedAchievements(db *gorm.DB) error {
	defaults := []entity.Achievement{
		{
			Name: "First Words", Description: "Publish your first article",
			Icon: "✍️", Category: "content", Rarity: "common", Points: 20,
			IsActive: true,
			Criteria: entity.AchievementCriteria{MetricType: entity.MetricArticleCount, Threshold: 1, Timeframe: period.AllTime},
		},
		{
			Name: "Columnist", Description: "Publish 5 articles",
			Icon: "📰", Category: "content", Rarity: "uncommon", Points: 50,
			IsActive: true,
			Criteria: entity.AchievementCriteria{MetricType: entity.MetricArticleCount, Threshold: 5, Timeframe: period.AllTime},
		},
		{
			Name: "Conversation Starter", Description: "Create 10 forum posts",
			Icon: "💬", Category: "forums", Rarity: "common", Points: 30,
			IsActive: true,
			Criteria: entity.AchievementCriteria{MetricType: entity.MetricForumPosts, Threshold: 10, Timeframe: period.AllTime},
		},
		{
			Name: "Always There", Description: "Attend 5 events",
			Icon: "📅", Category: "events", Rarity: "uncommon", Points: 40,
			IsActive: true,
			Criteria: entity.AchievementCriteria{MetricType: entity.MetricEventAttendance, Threshold: 5, Timeframe: period.AllTime},
		},
		{
			Name: "Crowd Favorite", Description: "Receive 50 likes on your articles",
			Icon: "❤️", Category: "engagement", Rarity: "rare", Points: 75,
			IsActive: true,
			Criteria: entity.AchievementCriteria{MetricType: entity.MetricLikesReceived, Threshold: 50, Timeframe: period.AllTime},
		},
		{
			Name: "Rising Star", Description: "Reach level 5",
			Icon: "⭐", Category: "progression", Rarity: "rare", Points: 100,
			IsActive: true,
			Criteria: entity.AchievementCriteria{MetricType: entity.MetricLevelReached, Threshold: 5, Timeframe: period.AllTime},
		},
	}

	for _, achievement := range defaults {
		var count int64
		if err := db.Model(&entity.Achievement{}).
			Where("name = ?", achievement.Name).
			Count(&count).Error; err != nil {
			return err
		}

		if count == 0 {
			if err := db.Create(&achievement).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
