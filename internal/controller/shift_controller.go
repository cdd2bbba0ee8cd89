package controller

import (
	"errors"
	"resto_ops_backend/internal/service"
	"resto_ops_backend/internal/util"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ShiftController 排班表
type ShiftController struct {
	service *service.ShiftService
}

func NewShiftController(s *service.ShiftService) *ShiftController {
	return &ShiftController{service: s}
}

// weekStart 缺省取本周一零点
func weekStart(ctx *gin.Context) (time.Time, error) {
	if q := ctx.Query("weekStart"); q != "" {
		return time.Parse("2006-01-02", q)
	}
	now := time.Now()
	offset := (int(now.Weekday()) + 6) % 7
	day := now.AddDate(0, 0, -offset)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location()), nil
}

func (c *ShiftController) GetRoster(ctx *gin.Context) {
	start, err := weekStart(ctx)
	if err != nil {
		util.BadRequest(ctx, "weekStart must be YYYY-MM-DD")
		return
	}

	shifts, err := c.service.WeekRoster(start)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{
		"weekStart": start,
		"shifts":    shifts,
	})
}

func (c *ShiftController) GetMyShifts(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	days, _ := strconv.Atoi(ctx.DefaultQuery("days", "14"))
	shifts, err := c.service.MyShifts(claims.UserID, time.Now(), days)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, shifts)
}

func (c *ShiftController) Create(ctx *gin.Context) {
	var req service.ShiftRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	shift, err := c.service.Create(req)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Created(ctx, shift)
}

func (c *ShiftController) Update(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid shift id")
		return
	}

	var req service.ShiftRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	shift, err := c.service.Update(uint(id), req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
			return
		}
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, shift)
}

func (c *ShiftController) Delete(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid shift id")
		return
	}
	if err := c.service.Delete(uint(id)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
