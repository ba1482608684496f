package controllers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/linjialin0/reggie-take-out/pkg/resp"
	"github.com/linjialin0/reggie-take-out/services"
)

type CategoryController struct {
	Service *services.CategoryService
	Log     *slog.Logger
}

func NewCategoryController(service *services.CategoryService, log *slog.Logger) *CategoryController {
	if log == nil {
		log = slog.Default()
	}
	return &CategoryController{Service: service, Log: log}
}

// GET /category/list
func (ctl *CategoryController) List(c *gin.Context) {
	categories, err := ctl.Service.List()
	if err != nil {
		ctl.Log.Error("category list failed", "error", err)
		resp.ServerError(c)
		return
	}
	resp.OK(c, categories)
}
