package controller

import (
	"resto_ops_backend/internal/service"
	"resto_ops_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ValuesController 企业价值观手册
type ValuesController struct {
	service *service.ValuesService
}

func NewValuesController(s *service.ValuesService) *ValuesController {
	return &ValuesController{service: s}
}

func (c *ValuesController) ListValues(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	values, err := c.service.ListValues()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	acknowledged, err := c.service.HasAcknowledged(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"values":       values,
		"acknowledged": acknowledged,
	})
}

// Acknowledge 确认已阅读价值观手册，重复确认幂等
func (c *ValuesController) Acknowledge(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.service.Acknowledge(claims.UserID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"acknowledged": true})
}
