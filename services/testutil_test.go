package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/linjialin0/reggie-take-out/cache"
	"github.com/linjialin0/reggie-take-out/entity"
	"github.com/linjialin0/reggie-take-out/repository"
)

type testEnv struct {
	db      *gorm.DB
	store   *cache.MemoryStore
	dish    *DishService
	setmeal *SetmealService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	// One named in-memory database per test so parallel tests don't
	// share state through sqlite's shared cache.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.Category{},
		&entity.Dish{}, &entity.DishFlavor{},
		&entity.Setmeal{}, &entity.SetmealDish{},
	))

	store := cache.NewMemoryStore()
	aside := cache.NewAside(store, time.Hour, nil)

	dishRepo := repository.NewDishRepository(db)
	setmealRepo := repository.NewSetmealRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)

	return &testEnv{
		db:      db,
		store:   store,
		dish:    NewDishService(db, dishRepo, setmealRepo, categoryRepo, aside, nil),
		setmeal: NewSetmealService(db, setmealRepo, categoryRepo, aside, nil),
	}
}

func (e *testEnv) seedCategory(t *testing.T, id uint, name string) {
	t.Helper()
	require.NoError(t, e.db.Create(&entity.Category{ID: id, Name: name}).Error)
}

func (e *testEnv) dishByName(t *testing.T, name string) *entity.Dish {
	t.Helper()
	var dish entity.Dish
	require.NoError(t, e.db.Where("name = ?", name).First(&dish).Error)
	return &dish
}

func (e *testEnv) setmealByName(t *testing.T, name string) *entity.Setmeal {
	t.Helper()
	var setmeal entity.Setmeal
	require.NoError(t, e.db.Where("name = ?", name).First(&setmeal).Error)
	return &setmeal
}
