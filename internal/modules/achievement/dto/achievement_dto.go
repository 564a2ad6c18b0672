package dto

type CriteriaRequest struct {
	MetricType string `json:"metric_type" binding:"required,oneof=article_count forum_posts forum_replies event_attendance event_creation likes_received points_earned level_reached days_active custom"`
	Threshold  int    `json:"threshold" binding:"required,min=1"`
	Timeframe  string `json:"timeframe" binding:"required,oneof=daily weekly monthly yearly all_time"`
}

type CreateAchievementRequest struct {
	Name        string          `json:"name" binding:"required,max=100"`
	Description string          `json:"description"`
	Icon        string          `json:"icon" binding:"max=100"`
	Category    string          `json:"category" binding:"required,max=50"`
	Rarity      string          `json:"rarity" binding:"omitempty,oneof=common uncommon rare epic legendary"`
	Points      int             `json:"points" binding:"gte=0"`
	IsHidden    bool            `json:"is_hidden"`
	Criteria    CriteriaRequest `json:"criteria" binding:"required"`
}

type UpdateAchievementRequest struct {
	Name        *string          `json:"name" binding:"omitempty,max=100"`
	Description *string          `json:"description"`
	Icon        *string          `json:"icon" binding:"omitempty,max=100"`
	Category    *string          `json:"category" binding:"omitempty,max=50"`
	Rarity      *string          `json:"rarity" binding:"omitempty,oneof=common uncommon rare epic legendary"`
	Points      *int             `json:"points" binding:"omitempty,gte=0"`
	IsActive    *bool            `json:"is_active"`
	IsHidden    *bool            `json:"is_hidden"`
	Criteria    *CriteriaRequest `json:"criteria"`
}
