package controller

import (
	"errors"
	"resto_ops_backend/internal/service"
	"resto_ops_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

// CourseController 管理员端课程编排
type CourseController struct {
	service *service.CourseService
}

func NewCourseController(s *service.CourseService) *CourseController {
	return &CourseController{service: s}
}

func (c *CourseController) ListCourses(ctx *gin.Context) {
	courses, err := c.service.ListAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

func (c *CourseController) GetCourse(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	course, err := c.service.GetCourse(uint(id))
	if err != nil {
		if errors.Is(err, util.ErrUnknownCourse) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req service.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.service.CreateCourse(req)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Created(ctx, course)
}

func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	var req service.CourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.service.UpdateCourse(uint(id), req)
	if err != nil {
		if errors.Is(err, util.ErrUnknownCourse) {
			util.NotFound(ctx)
			return
		}
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, course)
}

func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	if err := c.service.DeleteCourse(uint(id)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
