package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/linjialin0/reggie-take-out/cache"
	"github.com/linjialin0/reggie-take-out/entity"
	"github.com/linjialin0/reggie-take-out/pkg/resp"
	"github.com/linjialin0/reggie-take-out/repository"
	"github.com/linjialin0/reggie-take-out/services"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.Category{},
		&entity.Dish{}, &entity.DishFlavor{},
		&entity.Setmeal{}, &entity.SetmealDish{},
	))

	aside := cache.NewAside(cache.NewMemoryStore(), time.Hour, nil)
	dishRepo := repository.NewDishRepository(db)
	setmealRepo := repository.NewSetmealRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	dishSvc := services.NewDishService(db, dishRepo, setmealRepo, categoryRepo, aside, nil)
	ctl := NewDishController(dishSvc, nil)

	r := gin.New()
	d := r.Group("/dish")
	{
		d.POST("", ctl.Save)
		d.GET("/page", ctl.Page)
		d.GET("/list", ctl.List)
		d.GET("/:id", ctl.Get)
		d.PUT("", ctl.Update)
		d.POST("/status/:status", ctl.UpdateStatus)
		d.DELETE("", ctl.Delete)
	}
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, target, body string) (*httptest.ResponseRecorder, resp.Envelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env resp.Envelope
	require.NoError(t, json.NewDecoder(w.Body).Decode(&env))
	return w, env
}

func TestSaveDish_Valid(t *testing.T) {
	r, db := newTestRouter(t)
	require.NoError(t, db.Create(&entity.Category{ID: 7, Name: "Sichuan"}).Error)

	w, env := doJSON(t, r, http.MethodPost, "/dish", `{
		"name": "Kung Pao Chicken",
		"categoryId": 7,
		"price": 3800,
		"status": 1,
		"flavors": [{"name": "spice", "values": ["mild", "hot"]}]
	}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, resp.CodeSuccess, env.Code)

	var count int64
	require.NoError(t, db.Model(&entity.Dish{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSaveDish_MissingName(t *testing.T) {
	r, _ := newTestRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/dish", `{"categoryId": 7, "price": 100, "status": 1}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, resp.CodeFailure, env.Code)
	assert.NotEmpty(t, env.Message)
}

func TestGetDish_NotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	w, env := doJSON(t, r, http.MethodGet, "/dish/999", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, resp.CodeFailure, env.Code)
}

func TestGetDish_InvalidID(t *testing.T) {
	r, _ := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodGet, "/dish/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDishPage_Envelope(t *testing.T) {
	r, db := newTestRouter(t)
	require.NoError(t, db.Create(&entity.Category{ID: 1, Name: "Hot Dishes"}).Error)
	require.NoError(t, db.Create(&entity.Dish{Name: "Dish A", CategoryID: 1, Price: 1000, Status: 1}).Error)

	w, env := doJSON(t, r, http.MethodGet, "/dish/page?page=1&pageSize=10", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, resp.CodeSuccess, env.Code)

	data, ok := env.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(1), data["total"])
}

func TestDishStatus_BadStatusParam(t *testing.T) {
	r, _ := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodPost, "/dish/status/2?ids=1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteDish_MissingIDs(t *testing.T) {
	r, _ := newTestRouter(t)

	w, env := doJSON(t, r, http.MethodDelete, "/dish", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "ids is required", env.Message)
}

func TestDishList_UsesEnvelope(t *testing.T) {
	r, db := newTestRouter(t)
	require.NoError(t, db.Create(&entity.Category{ID: 1, Name: "Hot Dishes"}).Error)
	require.NoError(t, db.Create(&entity.Dish{Name: "Dish A", CategoryID: 1, Price: 1000, Status: 1}).Error)

	w, env := doJSON(t, r, http.MethodGet, "/dish/list?categoryId=1", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, resp.CodeSuccess, env.Code)

	items, ok := env.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, items, 1)
}
