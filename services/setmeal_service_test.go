package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linjialin0/reggie-take-out/entity"
	"github.com/linjialin0/reggie-take-out/repository"
)

func TestSaveWithDishes_RoundTrip(t *testing.T) {
	env := newTestEnv(t)
	env.seedCategory(t, 5, "Combos")
	ctx := context.Background()

	require.NoError(t, env.setmeal.SaveWithDishes(ctx, &SetmealRequest{
		Name:       "Family Feast",
		CategoryID: 5,
		Price:      9900,
		Status:     entity.StatusOnSale,
		Dishes: []SetmealDishRequest{
			{DishID: 11, Name: "Kung Pao Chicken", Price: 3800, Copies: 1},
			{DishID: 12, Name: "Mapo Tofu", Price: 2600, Copies: 2},
		},
	}))

	saved := env.setmealByName(t, "Family Feast")
	dto, err := env.setmeal.GetByIDWithDishes(saved.ID)
	require.NoError(t, err)

	assert.Equal(t, "Combos", dto.CategoryName)
	require.Len(t, dto.Dishes, 2)

	got := map[uint]int{}
	for _, d := range dto.Dishes {
		got[d.DishID] = d.Copies
	}
	assert.Equal(t, map[uint]int{11: 1, 12: 2}, got)
}

func TestUpdateWithDishes_ReplacesLinks(t *testing.T) {
	env := newTestEnv(t)
	env.seedCategory(t, 5, "Combos")
	ctx := context.Background()

	require.NoError(t, env.setmeal.SaveWithDishes(ctx, &SetmealRequest{
		Name: "Lunch Set", CategoryID: 5, Price: 4500, Status: entity.StatusOnSale,
		Dishes: []SetmealDishRequest{{DishID: 21, Name: "Soup", Price: 1000, Copies: 1}},
	}))
	saved := env.setmealByName(t, "Lunch Set")

	require.NoError(t, env.setmeal.UpdateWithDishes(ctx, &SetmealRequest{
		ID: saved.ID, Name: "Lunch Set", CategoryID: 5, Price: 4800, Status: entity.StatusOnSale,
		Dishes: []SetmealDishRequest{
			{DishID: 22, Name: "Fried Rice", Price: 1800, Copies: 1},
			{DishID: 23, Name: "Spring Rolls", Price: 1200, Copies: 2},
		},
	}))

	dto, err := env.setmeal.GetByIDWithDishes(saved.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(4800), dto.Price)
	require.Len(t, dto.Dishes, 2)
	for _, d := range dto.Dishes {
		assert.NotEqual(t, uint(21), d.DishID)
	}
}

func TestRemoveWithDishes_RejectsOnSale(t *testing.T) {
	env := newTestEnv(t)
	env.seedCategory(t, 5, "Combos")
	ctx := context.Background()

	require.NoError(t, env.setmeal.SaveWithDishes(ctx, &SetmealRequest{
		Name: "Active Combo", CategoryID: 5, Price: 6000, Status: entity.StatusOnSale,
		Dishes: []SetmealDishRequest{{DishID: 31, Name: "Dish", Price: 2000, Copies: 1}},
	}))
	saved := env.setmealByName(t, "Active Combo")

	err := env.setmeal.RemoveWithDishes(ctx, []uint{saved.ID})
	assert.ErrorIs(t, err, ErrSetmealOnSale)

	// Discontinue first, then the delete goes through with its links.
	require.NoError(t, env.setmeal.UpdateStatus(ctx, []uint{saved.ID}, entity.StatusDiscontinued))
	require.NoError(t, env.setmeal.RemoveWithDishes(ctx, []uint{saved.ID}))

	_, err = env.setmeal.Repo.FindByID(saved.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	links, err := env.setmeal.Repo.DishesBySetmealID(saved.ID)
	require.NoError(t, err)
	assert.Empty(t, links)
}

func TestSetmealList_CachedUntilWrite(t *testing.T) {
	env := newTestEnv(t)
	env.seedCategory(t, 5, "Combos")
	ctx := context.Background()

	require.NoError(t, env.setmeal.SaveWithDishes(ctx, &SetmealRequest{
		Name: "Combo A", CategoryID: 5, Price: 5000, Status: entity.StatusOnSale,
		Dishes: []SetmealDishRequest{{DishID: 41, Name: "Dish", Price: 2000, Copies: 1}},
	}))

	first, err := env.setmeal.List(ctx, 5, entity.StatusOnSale)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, "Combos", first[0].CategoryName)

	require.NoError(t, env.db.Create(&entity.Setmeal{
		Name: "Backdoor Combo", CategoryID: 5, Price: 100, Status: entity.StatusOnSale,
	}).Error)

	second, err := env.setmeal.List(ctx, 5, entity.StatusOnSale)
	require.NoError(t, err)
	assert.Len(t, second, 1)

	require.NoError(t, env.setmeal.SaveWithDishes(ctx, &SetmealRequest{
		Name: "Combo B", CategoryID: 5, Price: 7000, Status: entity.StatusOnSale,
		Dishes: []SetmealDishRequest{{DishID: 42, Name: "Dish", Price: 2000, Copies: 1}},
	}))

	third, err := env.setmeal.List(ctx, 5, entity.StatusOnSale)
	require.NoError(t, err)
	assert.Len(t, third, 3)
}

func TestDishAndSetmealCachesAreIndependent(t *testing.T) {
	env := newTestEnv(t)
	env.seedCategory(t, 1, "Hot Dishes")
	env.seedCategory(t, 5, "Combos")
	ctx := context.Background()

	require.NoError(t, env.dish.SaveWithFlavors(ctx, &DishRequest{
		Name: "Dish A", CategoryID: 1, Price: 1000, Status: entity.StatusOnSale,
	}))
	require.NoError(t, env.setmeal.SaveWithDishes(ctx, &SetmealRequest{
		Name: "Combo A", CategoryID: 5, Price: 5000, Status: entity.StatusOnSale,
		Dishes: []SetmealDishRequest{{DishID: 51, Name: "Dish", Price: 2000, Copies: 1}},
	}))

	// Warm both caches.
	_, err := env.dish.List(ctx, 1, entity.StatusOnSale)
	require.NoError(t, err)
	_, err = env.setmeal.List(ctx, 5, entity.StatusOnSale)
	require.NoError(t, err)

	// A setmeal write must not evict dish listings: the backdoor dish
	// stays invisible while the dish cache entry lives.
	require.NoError(t, env.db.Create(&entity.Dish{
		Name: "Backdoor Dish", CategoryID: 1, Price: 500, Status: entity.StatusOnSale,
	}).Error)
	require.NoError(t, env.setmeal.SaveWithDishes(ctx, &SetmealRequest{
		Name: "Combo B", CategoryID: 5, Price: 6000, Status: entity.StatusOnSale,
		Dishes: []SetmealDishRequest{{DishID: 52, Name: "Dish", Price: 2000, Copies: 1}},
	}))

	dishes, err := env.dish.List(ctx, 1, entity.StatusOnSale)
	require.NoError(t, err)
	assert.Len(t, dishes, 1)
}
