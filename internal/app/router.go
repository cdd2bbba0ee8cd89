package app

import (
	"resto_ops_backend/internal/config"
	"resto_ops_backend/internal/middleware"
	"resto_ops_backend/internal/model"
	"resto_ops_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.Check)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerStaffRoutes(authGroup, c)
		a.registerManagerRoutes(authGroup, c)
	}

	// 3. 管理员相关接口
	a.registerAdminRoutes(router, c, repos, cfg)
}

func (a *App) registerStaffRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.auth.GetProfile)
	rg.PUT("/profile", c.auth.UpdateProfile)
	rg.POST("/profile/avatar", c.auth.UploadAvatar)

	// 培训学院
	academy := rg.Group("/academy")
	{
		academy.GET("/overview", c.academy.GetOverview)
		academy.GET("/catalog", c.academy.GetCatalog)
		academy.GET("/tiers/:tier/courses", c.academy.ListTierCourses)
		academy.POST("/courses/:id/complete", c.academy.CompleteReading)
		academy.POST("/courses/:id/quiz", c.academy.SubmitQuiz)
		academy.POST("/courses/:id/reflection", c.academy.SubmitReflection)
		academy.GET("/certificates", c.academy.GetMyCertificates)
		academy.GET("/journey", c.academy.GetMyJourney)
	}

	// 企业价值观
	rg.GET("/values", c.values.ListValues)
	rg.POST("/values/acknowledge", c.values.Acknowledge)

	// 排班：本人班次人人可看
	rg.GET("/shifts/my", c.shift.GetMyShifts)

	// 温度合规打点：一线员工日常操作
	rg.POST("/compliance/temperature", c.compliance.RecordLog)
	rg.POST("/compliance/temperature/photo", c.compliance.UploadPhoto)
}

func (a *App) registerManagerRoutes(rg *gin.RouterGroup, c *controllers) {
	manager := rg.Group("/manager")
	manager.Use(middleware.RoleMiddleware(model.Manager, model.Admin))
	{
		// 团队培训
		manager.GET("/training/team", c.manager.GetTeamTraining)
		manager.GET("/training/certificates", c.manager.ListCertificates)
		manager.GET("/training/reflections", c.manager.ListReflections)

		// 库存与采购
		manager.GET("/inventory/items", c.inventory.ListItems)
		manager.POST("/inventory/items", c.inventory.CreateItem)
		manager.PUT("/inventory/items/:id", c.inventory.UpdateItem)
		manager.DELETE("/inventory/items/:id", c.inventory.DeleteItem)
		manager.POST("/inventory/items/:id/adjust", c.inventory.AdjustStock)
		manager.GET("/inventory/low-stock", c.inventory.ListLowStock)
		manager.GET("/inventory/orders", c.inventory.ListOrders)
		manager.POST("/inventory/orders", c.inventory.PlaceOrder)
		manager.POST("/inventory/orders/:id/receive", c.inventory.ReceiveOrder)

		// 菜单与成本
		manager.GET("/menu/items", c.menu.List)
		manager.GET("/menu/items/:id", c.menu.Get)
		manager.POST("/menu/items", c.menu.Create)
		manager.PUT("/menu/items/:id", c.menu.Update)
		manager.DELETE("/menu/items/:id", c.menu.Delete)

		// 排班管理
		manager.GET("/shifts/roster", c.shift.GetRoster)
		manager.POST("/shifts", c.shift.Create)
		manager.PUT("/shifts/:id", c.shift.Update)
		manager.DELETE("/shifts/:id", c.shift.Delete)

		// 温度合规复查
		manager.GET("/compliance/temperature", c.compliance.ListLogs)
		manager.GET("/compliance/temperature/out-of-range", c.compliance.ListOutOfRange)
	}
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	admin.Use(middleware.RoleMiddleware(model.Admin))
	{
		// 课程编排
		admin.GET("/courses", c.course.ListCourses)
		admin.GET("/courses/:id", c.course.GetCourse)
		admin.POST("/courses", c.course.CreateCourse)
		admin.PUT("/courses/:id", c.course.UpdateCourse)
		admin.DELETE("/courses/:id", c.course.DeleteCourse)
	}
}
