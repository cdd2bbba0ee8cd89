package controller

import (
	"fmt"
	"resto_ops_backend/internal/service"
	"resto_ops_backend/internal/util"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// ComplianceController 食品安全温度记录
type ComplianceController struct {
	service *service.ComplianceService
	storage *service.StorageService
}

func NewComplianceController(s *service.ComplianceService, storage *service.StorageService) *ComplianceController {
	return &ComplianceController{service: s, storage: storage}
}

func (c *ComplianceController) RecordLog(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.TemperatureLogRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	log, err := c.service.RecordLog(claims.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, log)
}

// UploadPhoto 上传温度计读数照片，返回的 URL 随后放进记录的 photoUrl
func (c *ComplianceController) UploadPhoto(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	file, err := ctx.FormFile("photo")
	if err != nil {
		util.BadRequest(ctx, "photo file required")
		return
	}

	src, err := file.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer src.Close()

	filename := fmt.Sprintf("compliance/%d-%d-%s", claims.UserID, time.Now().UnixNano(), file.Filename)
	url, err := c.storage.Upload(ctx.Request.Context(), filename, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"url": url})
}

func (c *ComplianceController) ListLogs(ctx *gin.Context) {
	days, _ := strconv.Atoi(ctx.DefaultQuery("days", "7"))
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("pageSize", "50"))

	logs, total, err := c.service.ListRecent(ctx.Query("location"), days, page, pageSize)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{
		"logs":  logs,
		"total": total,
	})
}

func (c *ComplianceController) ListOutOfRange(ctx *gin.Context) {
	days, _ := strconv.Atoi(ctx.DefaultQuery("days", "7"))

	logs, err := c.service.ListOutOfRange(days)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, logs)
}
