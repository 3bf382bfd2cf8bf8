package service

import (
	"strings"
	"unicode/utf8"
)

// XP 规则：按单侧反馈的去空白字符数分档，左右独立计分，提交成功再加固定奖励。
// 只依赖反馈长度，与评分值、历史记录、时间无关。
const (
	XpCompletionBonus = 10

	xpFeedbackLongLen   = 300
	xpFeedbackMediumLen = 150
	xpFeedbackShortLen  = 50
)

// ScoreFeedback 计算一次评审的 XP 总额
func ScoreFeedback(feedbackLeft, feedbackRight string) int {
	return scoreFeedbackSide(feedbackLeft) + scoreFeedbackSide(feedbackRight) + XpCompletionBonus
}

// scoreFeedbackSide 单侧计分，边界值落入低档（恰好 50/150/300 不进上一档）
func scoreFeedbackSide(feedback string) int {
	length := utf8.RuneCountInString(strings.TrimSpace(feedback))

	switch {
	case length > xpFeedbackLongLen:
		return 20
	case length > xpFeedbackMediumLen:
		return 15
	case length > xpFeedbackShortLen:
		return 10
	default:
		return 0
	}
}
