package handler

import (
	"ReviewArena/internal/api/dto"
	"ReviewArena/internal/pkg/response"
	"ReviewArena/internal/pkg/util"
	"ReviewArena/internal/service"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
)

type ArenaHandler struct {
	pairSvc   service.PairService
	reviewSvc service.ReviewService
}

func NewArenaHandler(pairSvc service.PairService, reviewSvc service.ReviewService) *ArenaHandler {
	return &ArenaHandler{
		pairSvc:   pairSvc,
		reviewSvc: reviewSvc,
	}
}

// GetPair 为评审人抽取一对作品集。
// exclude 参数携带上一轮展示过的作品集 ID，避免连续两轮重复。
func (s *ArenaHandler) GetPair(c *gin.Context) {
	userID := c.GetUint64("user_id")

	excludeIDs, err := parseIDList(c.Query("exclude"))
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	left, right, reducedNovelty, err := s.pairSvc.SelectPair(c.Request.Context(), userID, excludeIDs)
	if err != nil {
		response.Error(c, err)
		return
	}

	pair := &dto.PairDTO{
		Left:           &dto.PortfolioDTO{},
		Right:          &dto.PortfolioDTO{},
		ReducedNovelty: reducedNovelty,
	}
	_ = copier.Copy(pair.Left, left)
	_ = copier.Copy(pair.Right, right)

	response.Success(c, pair)
}

// SubmitReview 提交一轮评审并入账 XP
func (s *ArenaHandler) SubmitReview(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var submitDTO dto.SubmitReviewDTO
	if err := c.ShouldBindJSON(&submitDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&submitDTO); err != nil {
		response.Error(c, err)
		return
	}

	review, err := s.reviewSvc.SubmitReview(c.Request.Context(), userID, &submitDTO)
	if err != nil {
		// 评审已落库但 XP 未入账：返回评审记录，让前端只重试入账
		if errors.Is(err, service.ErrXpCreditPending) && review != nil {
			reviewDTO := &dto.ReviewDTO{}
			_ = copier.Copy(reviewDTO, review)
			c.JSON(http.StatusOK, dto.Response{
				Code:    response.Accepted,
				Message: err.Error(),
				Data:    reviewDTO,
			})
			return
		}
		response.Error(c, err)
		return
	}

	reviewDTO := &dto.ReviewDTO{}
	_ = copier.Copy(reviewDTO, review)
	response.Success(c, reviewDTO)
}

// GetRemaining 查询今日剩余评审次数
func (s *ArenaHandler) GetRemaining(c *gin.Context) {
	userID := c.GetUint64("user_id")

	submitted, err := s.reviewSvc.CountSubmittedToday(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	remaining, err := s.reviewSvc.RemainingToday(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.RemainingDTO{
		Submitted: submitted,
		Remaining: remaining,
		DailyCap:  s.reviewSvc.DailyCap(),
	})
}

func parseIDList(raw string) ([]uint64, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]uint64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
