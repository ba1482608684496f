package controllers

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/linjialin0/reggie-take-out/entity"
	"github.com/linjialin0/reggie-take-out/pkg/resp"
	"github.com/linjialin0/reggie-take-out/repository"
	"github.com/linjialin0/reggie-take-out/services"
)

type DishController struct {
	Service *services.DishService
	Log     *slog.Logger
}

func NewDishController(service *services.DishService, log *slog.Logger) *DishController {
	if log == nil {
		log = slog.Default()
	}
	return &DishController{Service: service, Log: log}
}

// POST /dish
func (ctl *DishController) Save(c *gin.Context) {
	var req services.DishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Service.SaveWithFlavors(c.Request.Context(), &req); err != nil {
		ctl.Log.Error("save dish failed", "name", req.Name, "error", err)
		resp.ServerError(c)
		return
	}
	resp.OKMsg(c, "dish saved")
}

// GET /dish/page?page=&pageSize=&name=
func (ctl *DishController) Page(c *gin.Context) {
	page, pageSize := parsePaging(c)
	name := c.Query("name")

	result, err := ctl.Service.Page(page, pageSize, name)
	if err != nil {
		ctl.Log.Error("dish page failed", "error", err)
		resp.ServerError(c)
		return
	}
	resp.OK(c, result)
}

// GET /dish/:id
func (ctl *DishController) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	dto, err := ctl.Service.GetByIDWithFlavors(id)
	if errors.Is(err, repository.ErrNotFound) {
		resp.NotFound(c, "dish not found")
		return
	}
	if err != nil {
		ctl.Log.Error("get dish failed", "id", id, "error", err)
		resp.ServerError(c)
		return
	}
	resp.OK(c, dto)
}

// PUT /dish
func (ctl *DishController) Update(c *gin.Context) {
	var req services.DishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.ID == 0 {
		resp.BadRequest(c, "id is required")
		return
	}
	if err := req.Validate(); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	err := ctl.Service.UpdateWithFlavors(c.Request.Context(), &req)
	if errors.Is(err, repository.ErrNotFound) {
		resp.NotFound(c, "dish not found")
		return
	}
	if err != nil {
		ctl.Log.Error("update dish failed", "id", req.ID, "error", err)
		resp.ServerError(c)
		return
	}
	resp.OKMsg(c, "dish updated")
}

// POST /dish/status/:status?ids=1,2,3
func (ctl *DishController) UpdateStatus(c *gin.Context) {
	status, err := strconv.Atoi(c.Param("status"))
	if err != nil || (status != entity.StatusDiscontinued && status != entity.StatusOnSale) {
		resp.BadRequest(c, "status must be 0 or 1")
		return
	}
	ids, err := parseIDs(c)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Service.UpdateStatus(c.Request.Context(), ids, status); err != nil {
		ctl.Log.Error("update dish status failed", "ids", ids, "status", status, "error", err)
		resp.ServerError(c)
		return
	}
	resp.OKMsg(c, "status updated")
}

// DELETE /dish?ids=1,2,3
func (ctl *DishController) Delete(c *gin.Context) {
	ids, err := parseIDs(c)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	err = ctl.Service.RemoveWithFlavors(c.Request.Context(), ids)
	if errors.Is(err, services.ErrDishInActiveSetmeal) {
		resp.Conflict(c, err.Error())
		return
	}
	if err != nil {
		ctl.Log.Error("delete dishes failed", "ids", ids, "error", err)
		resp.ServerError(c)
		return
	}
	resp.OKMsg(c, "dishes deleted")
}

// GET /dish/list?categoryId=&status=
func (ctl *DishController) List(c *gin.Context) {
	categoryID, _ := strconv.ParseUint(c.Query("categoryId"), 10, 64)
	status, err := strconv.Atoi(c.DefaultQuery("status", strconv.Itoa(entity.StatusOnSale)))
	if err != nil {
		resp.BadRequest(c, "invalid status")
		return
	}

	list, err := ctl.Service.List(c.Request.Context(), uint(categoryID), status)
	if err != nil {
		ctl.Log.Error("dish list failed", "categoryId", categoryID, "error", err)
		resp.ServerError(c)
		return
	}
	resp.OK(c, list)
}
