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

type SetmealController struct {
	Service *services.SetmealService
	Log     *slog.Logger
}

func NewSetmealController(service *services.SetmealService, log *slog.Logger) *SetmealController {
	if log == nil {
		log = slog.Default()
	}
	return &SetmealController{Service: service, Log: log}
}

// POST /setmeal
func (ctl *SetmealController) Save(c *gin.Context) {
	var req services.SetmealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Service.SaveWithDishes(c.Request.Context(), &req); err != nil {
		ctl.Log.Error("save setmeal failed", "name", req.Name, "error", err)
		resp.ServerError(c)
		return
	}
	resp.OKMsg(c, "setmeal saved")
}

// GET /setmeal/page?page=&pageSize=&name=
func (ctl *SetmealController) Page(c *gin.Context) {
	page, pageSize := parsePaging(c)
	name := c.Query("name")

	result, err := ctl.Service.Page(page, pageSize, name)
	if err != nil {
		ctl.Log.Error("setmeal page failed", "error", err)
		resp.ServerError(c)
		return
	}
	resp.OK(c, result)
}

// GET /setmeal/:id
func (ctl *SetmealController) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	dto, err := ctl.Service.GetByIDWithDishes(id)
	if errors.Is(err, repository.ErrNotFound) {
		resp.NotFound(c, "setmeal not found")
		return
	}
	if err != nil {
		ctl.Log.Error("get setmeal failed", "id", id, "error", err)
		resp.ServerError(c)
		return
	}
	resp.OK(c, dto)
}

// PUT /setmeal
func (ctl *SetmealController) Update(c *gin.Context) {
	var req services.SetmealRequest
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

	err := ctl.Service.UpdateWithDishes(c.Request.Context(), &req)
	if errors.Is(err, repository.ErrNotFound) {
		resp.NotFound(c, "setmeal not found")
		return
	}
	if err != nil {
		ctl.Log.Error("update setmeal failed", "id", req.ID, "error", err)
		resp.ServerError(c)
		return
	}
	resp.OKMsg(c, "setmeal updated")
}

// POST /setmeal/status/:status?ids=1,2,3
func (ctl *SetmealController) UpdateStatus(c *gin.Context) {
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
		ctl.Log.Error("update setmeal status failed", "ids", ids, "status", status, "error", err)
		resp.ServerError(c)
		return
	}
	resp.OKMsg(c, "status updated")
}

// DELETE /setmeal?ids=1,2,3
func (ctl *SetmealController) Delete(c *gin.Context) {
	ids, err := parseIDs(c)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	err = ctl.Service.RemoveWithDishes(c.Request.Context(), ids)
	if errors.Is(err, services.ErrSetmealOnSale) {
		resp.Conflict(c, err.Error())
		return
	}
	if err != nil {
		ctl.Log.Error("delete setmeals failed", "ids", ids, "error", err)
		resp.ServerError(c)
		return
	}
	resp.OKMsg(c, "setmeals deleted")
}

// GET /setmeal/list?categoryId=&status=
func (ctl *SetmealController) List(c *gin.Context) {
	categoryID, _ := strconv.ParseUint(c.Query("categoryId"), 10, 64)
	status, err := strconv.Atoi(c.DefaultQuery("status", strconv.Itoa(entity.StatusOnSale)))
	if err != nil {
		resp.BadRequest(c, "invalid status")
		return
	}

	list, err := ctl.Service.List(c.Request.Context(), uint(categoryID), status)
	if err != nil {
		ctl.Log.Error("setmeal list failed", "categoryId", categoryID, "error", err)
		resp.ServerError(c)
		return
	}
	resp.OK(c, list)
}
