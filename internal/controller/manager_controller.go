package controller

import (
	"resto_ops_backend/internal/model"
	"resto_ops_backend/internal/service"
	"resto_ops_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ManagerController 经理端视图：团队证书墙与公开反思
type ManagerController struct {
	certs       *service.CertificateService
	reflections *service.ReflectionService
	tiers       *service.TierService
	users       *service.AuthService
}

func NewManagerController(
	certs *service.CertificateService,
	reflections *service.ReflectionService,
	tiers *service.TierService,
	users *service.AuthService,
) *ManagerController {
	return &ManagerController{
		certs:       certs,
		reflections: reflections,
		tiers:       tiers,
		users:       users,
	}
}

// ListCertificates 全店证书，含有效期分类，供经理排查到期重训
func (c *ManagerController) ListCertificates(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("pageSize", "20"))

	views, total, err := c.certs.ListAll(page, pageSize)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{
		"certificates": views,
		"total":        total,
	})
}

// ListReflections 公开反思；私有反思仅管理员可见
func (c *ManagerController) ListReflections(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("pageSize", "20"))

	recs, total, err := c.reflections.ListVisible(claims.Role, page, pageSize)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{
		"reflections": recs,
		"total":       total,
	})
}

// StaffTrainingRow 单个员工的培训进度摘要
type StaffTrainingRow struct {
	Staff model.User            `json:"staff"`
	Tiers []service.TierSummary `json:"tiers"`
}

// GetTeamTraining 团队成员逐人等级进度
func (c *ManagerController) GetTeamTraining(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("pageSize", "20"))

	staff, total, err := c.users.ListUsers(string(model.Staff), page, pageSize)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	rows := make([]StaffTrainingRow, len(staff))
	for i, u := range staff {
		summaries, err := c.tiers.Overview(u.ID)
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		rows[i] = StaffTrainingRow{Staff: u, Tiers: summaries}
	}
	util.Success(ctx, gin.H{
		"staff": rows,
		"total": total,
	})
}
