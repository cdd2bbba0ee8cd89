package util

import "errors"

var (
	ErrUserNotFound    = errors.New("用户不存在")
	ErrEmailRegistered = errors.New("该邮箱已被注册")

	// 培训进度引擎错误分类：除此之外的情形（重复签发、重复答题、证书过期）
	// 都是数据状态而不是错误
	ErrUnknownCourse        = errors.New("course not found in catalog")
	ErrIncompleteSubmission = errors.New("submission must answer every question exactly once")
	ErrIncompleteReflection = errors.New("reflection requires learned, value and proud moment")
	ErrTierLocked           = errors.New("tier is locked")
	ErrNotCapstone          = errors.New("course does not require reflection")
	ErrNoPendingPass        = errors.New("no passed quiz awaiting reflection")

	ErrOrderNotOpen = errors.New("supplier order is not open")
)
