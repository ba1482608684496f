package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/linjialin0/reggie-take-out/cache"
	"github.com/linjialin0/reggie-take-out/controllers"
	"github.com/linjialin0/reggie-take-out/repository"
	"github.com/linjialin0/reggie-take-out/services"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, aside *cache.Aside, log *slog.Logger) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	dishRepo := repository.NewDishRepository(db)
	setmealRepo := repository.NewSetmealRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)

	// Services
	dishSvc := services.NewDishService(db, dishRepo, setmealRepo, categoryRepo, aside, log)
	setmealSvc := services.NewSetmealService(db, setmealRepo, categoryRepo, aside, log)
	categorySvc := services.NewCategoryService(categoryRepo)

	// Controllers
	dishCtl := controllers.NewDishController(dishSvc, log)
	setmealCtl := controllers.NewSetmealController(setmealSvc, log)
	categoryCtl := controllers.NewCategoryController(categorySvc, log)

	d := r.Group("/dish")
	{
		d.POST("", dishCtl.Save)
		d.GET("/page", dishCtl.Page)
		d.GET("/list", dishCtl.List)
		d.GET("/:id", dishCtl.Get)
		d.PUT("", dishCtl.Update)
		d.POST("/status/:status", dishCtl.UpdateStatus)
		d.DELETE("", dishCtl.Delete)
	}

	s := r.Group("/setmeal")
	{
		s.POST("", setmealCtl.Save)
		s.GET("/page", setmealCtl.Page)
		s.GET("/list", setmealCtl.List)
		s.GET("/:id", setmealCtl.Get)
		s.PUT("", setmealCtl.Update)
		s.POST("/status/:status", setmealCtl.UpdateStatus)
		s.DELETE("", setmealCtl.Delete)
	}

	r.GET("/category/list", categoryCtl.List)
}
