package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	TooManyRequests     = 429
	InternalServerError = 500
)

var (
	ErrParamInvalid           = errors.New("参数错误")
	ErrScoreOutOfRange        = errors.New("评分必须在 0 到 10 之间")
	ErrFeedbackEmpty          = errors.New("反馈内容不能为空")
	ErrSamePortfolio          = errors.New("不能对同一个作品集进行对比评审")
	ErrSelfReview             = errors.New("不能评审自己的作品集")
	ErrPortfolioNotFound      = errors.New("作品集不存在")
	ErrProfileNotFound        = errors.New("用户档案不存在")
	ErrInsufficientCandidates = errors.New("可供评审的作品集不足")
	ErrRateLimitExceeded      = errors.New("今日评审次数已达上限")
	ErrPersistence            = errors.New("评审保存失败")
	ErrXpCreditPending        = errors.New("评审已记录，XP 入账待重试")
	UnauthorizedError         = errors.New("权限不足")
	UnExpectedError           = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:           BadRequest,
	ErrScoreOutOfRange:        BadRequest,
	ErrFeedbackEmpty:          BadRequest,
	ErrSamePortfolio:          BadRequest,
	ErrSelfReview:             BadRequest,
	ErrPortfolioNotFound:      NotFound,
	ErrProfileNotFound:        NotFound,
	ErrInsufficientCandidates: NotFound,
	ErrRateLimitExceeded:      TooManyRequests,
	ErrPersistence:            InternalServerError,
	ErrXpCreditPending:        InternalServerError,
	UnauthorizedError:         Unauthorized,
	UnExpectedError:           InternalServerError,
}
