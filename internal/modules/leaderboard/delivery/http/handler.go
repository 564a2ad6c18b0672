package http

import (
	"net/http"
	"strconv"

	"anoa.com/communityhub/internal/entity"
	"anoa.com/communityhub/internal/modules/leaderboard/dto"
	leaderboardService "anoa.com/communityhub/internal/modules/leaderboard/service"
	"anoa.com/communityhub/pkg/period"
	"anoa.com/communityhub/pkg/response"
	"anoa.com/communityhub/pkg/validator"
	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct {
	service leaderboardService.LeaderboardService
}

func NewLeaderboardHandler(service leaderboardService.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{service: service}
}

func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	scope := entity.Scope(c.DefaultQuery("scope", string(entity.ScopeOverall)))
	p := period.Period(c.DefaultQuery("period", string(period.AllTime)))

	snapshot, err := h.service.GetCurrent(c.Request.Context(), scope, p)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.FromSnapshot(snapshot)})
}

func (h *LeaderboardHandler) GetMyRank(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	scope := entity.Scope(c.DefaultQuery("scope", string(entity.ScopeOverall)))
	p := period.Period(c.DefaultQuery("period", string(period.AllTime)))

	snapshot, err := h.service.GetCurrent(c.Request.Context(), scope, p)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	resp := dto.RankResponse{
		Scope:  string(scope),
		Period: string(p),
		UserID: userID.String(),
	}
	if rank, ok := h.service.GetUserRank(snapshot, userID); ok {
		resp.Rank = &rank
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (h *LeaderboardHandler) GetAroundRank(c *gin.Context) {
	scope := entity.Scope(c.DefaultQuery("scope", string(entity.ScopeOverall)))
	p := period.Period(c.DefaultQuery("period", string(period.AllTime)))

	rank, _ := strconv.Atoi(c.DefaultQuery("rank", "1"))
	radius, _ := strconv.Atoi(c.DefaultQuery("radius", "2"))
	if rank < 1 {
		rank = 1
	}
	if radius < 0 {
		radius = 0
	}
	if radius > 25 {
		radius = 25
	}

	snapshot, err := h.service.GetCurrent(c.Request.Context(), scope, p)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	window := h.service.GetUsersAroundRank(snapshot, rank, radius)
	trimmed := *snapshot
	trimmed.Entries = window

	c.JSON(http.StatusOK, gin.H{"data": dto.FromSnapshot(&trimmed).Entries})
}

func (h *LeaderboardHandler) Generate(c *gin.Context) {
	var req dto.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	snapshot, err := h.service.Generate(c.Request.Context(), entity.Scope(req.Scope), period.Period(req.Period))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": dto.FromSnapshot(snapshot)})
}
