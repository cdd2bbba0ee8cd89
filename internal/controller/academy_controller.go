package controller

import (
	"errors"
	"net/http"
	"resto_ops_backend/internal/model"
	"resto_ops_backend/internal/service"
	"resto_ops_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

// AcademyController 员工端培训学院：目录、测验提交、反思、证书、旅程
type AcademyController struct {
	courses     *service.CourseService
	progress    *service.ProgressService
	tiers       *service.TierService
	reflections *service.ReflectionService
	certs       *service.CertificateService
	journey     *service.JourneyService
}

func NewAcademyController(
	courses *service.CourseService,
	progress *service.ProgressService,
	tiers *service.TierService,
	reflections *service.ReflectionService,
	certs *service.CertificateService,
	journey *service.JourneyService,
) *AcademyController {
	return &AcademyController{
		courses:     courses,
		progress:    progress,
		tiers:       tiers,
		reflections: reflections,
		certs:       certs,
		journey:     journey,
	}
}

// respondEngineError 引擎错误分类到状态码：校验类 400 可重提，
// 门禁类 403，引用类 404，时序类 409
func respondEngineError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrUnknownCourse):
		util.Error(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, util.ErrIncompleteSubmission),
		errors.Is(err, util.ErrIncompleteReflection),
		errors.Is(err, util.ErrNotCapstone):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrTierLocked):
		util.Error(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, util.ErrNoPendingPass):
		util.Conflict(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

// GetOverview 四个等级的解锁与进度汇总
func (c *AcademyController) GetOverview(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	summaries, err := c.tiers.Overview(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, summaries)
}

// ListTierCourses 等级内课程与本人进度
func (c *AcademyController) ListTierCourses(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	tier := model.Tier(ctx.Param("tier"))
	if !tier.Valid() {
		util.BadRequest(ctx, "invalid tier")
		return
	}

	states, err := c.progress.ListTierCourses(claims.UserID, tier)
	if err != nil {
		respondEngineError(ctx, err)
		return
	}
	util.Success(ctx, states)
}

// GetCatalog 已发布课程目录
func (c *AcademyController) GetCatalog(ctx *gin.Context) {
	courses, err := c.courses.ListPublished()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// CompleteReading 阅读课完成打卡
func (c *AcademyController) CompleteReading(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	courseID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	result, err := c.progress.RecordCompletion(claims.UserID, uint(courseID), nil)
	if err != nil {
		respondEngineError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

type QuizSubmitRequest struct {
	Answers map[uint]int `json:"answers" binding:"required"`
}

// SubmitQuiz 测验提交，不完整的答卷在评分前被拒绝
func (c *AcademyController) SubmitQuiz(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	courseID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	var req QuizSubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.progress.RecordCompletion(claims.UserID, uint(courseID), service.QuizAnswers(req.Answers))
	if err != nil {
		respondEngineError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// SubmitReflection 压轴课反思提交，成功后课程才真正完成
func (c *AcademyController) SubmitReflection(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	courseID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	var sub service.ReflectionSubmission
	if err := ctx.ShouldBindJSON(&sub); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	rec, cert, err := c.reflections.SubmitReflection(claims.UserID, uint(courseID), sub)
	if err != nil {
		respondEngineError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{
		"reflection":  rec,
		"certificate": cert,
	})
}

// GetMyCertificates 本人证书，含有效期分类；过期展示为「需要重新培训」
func (c *AcademyController) GetMyCertificates(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	views, err := c.certs.ListForStaff(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, views)
}

// GetMyJourney 入职旅程里程碑
func (c *AcademyController) GetMyJourney(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	jp, err := c.journey.Get(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, jp)
}
