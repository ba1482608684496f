package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"

	"github.com/linjialin0/reggie-take-out/cache"
	"github.com/linjialin0/reggie-take-out/entity"
	"github.com/linjialin0/reggie-take-out/repository"
)

type DishService struct {
	DB           *gorm.DB
	Repo         *repository.DishRepository
	SetmealRepo  *repository.SetmealRepository
	CategoryRepo *repository.CategoryRepository
	Cache        *cache.Aside
	Log          *slog.Logger
}

func NewDishService(
	db *gorm.DB,
	repo *repository.DishRepository,
	setmealRepo *repository.SetmealRepository,
	categoryRepo *repository.CategoryRepository,
	aside *cache.Aside,
	log *slog.Logger,
) *DishService {
	if log == nil {
		log = slog.Default()
	}
	return &DishService{
		DB:           db,
		Repo:         repo,
		SetmealRepo:  setmealRepo,
		CategoryRepo: categoryRepo,
		Cache:        aside,
		Log:          log,
	}
}

// ----- DTOs -----

type FlavorRequest struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

func (f FlavorRequest) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Name, validation.Required, validation.Length(1, 64)),
	)
}

type DishRequest struct {
	ID         uint            `json:"id"`
	Name       string          `json:"name"`
	CategoryID uint            `json:"categoryId"`
	Price      int64           `json:"price"`
	Status     int             `json:"status"`
	Sort       int             `json:"sort"`
	Flavors    []FlavorRequest `json:"flavors"`
}

func (r DishRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 64)),
		validation.Field(&r.CategoryID, validation.Required),
		validation.Field(&r.Price, validation.Min(0)),
		validation.Field(&r.Status, validation.In(entity.StatusDiscontinued, entity.StatusOnSale)),
		validation.Field(&r.Flavors),
	)
}

// DishDTO is the read-only display projection: the dish row plus the
// resolved category name and flavor list. Never persisted.
type DishDTO struct {
	ID           uint                `json:"id"`
	Name         string              `json:"name"`
	CategoryID   uint                `json:"categoryId"`
	CategoryName string              `json:"categoryName,omitempty"`
	Price        int64               `json:"price"`
	Status       int                 `json:"status"`
	Sort         int                 `json:"sort"`
	UpdatedAt    time.Time           `json:"updatedAt"`
	Flavors      []entity.DishFlavor `json:"flavors"`
}

// ----- Reads -----

func (s *DishService) Page(page, pageSize int, name string) (*PageResult[DishDTO], error) {
	total, rows, err := s.Repo.Page(page, pageSize, name)
	if err != nil {
		return nil, err
	}
	records, err := s.assemble(rows, false)
	if err != nil {
		return nil, err
	}
	return &PageResult[DishDTO]{Total: total, Page: page, PageSize: pageSize, Records: records}, nil
}

func (s *DishService) GetByIDWithFlavors(id uint) (*DishDTO, error) {
	dish, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return s.display(dish, true)
}

// List serves the customer-facing listing through the cache-aside
// layer. A miss queries on-sale rows and assembles the full display
// objects, flavors included.
func (s *DishService) List(ctx context.Context, categoryID uint, status int) ([]DishDTO, error) {
	key := cache.ListKey(cache.TagDish, categoryID, status)
	return cache.GetOrLoad(ctx, s.Cache, key, func(ctx context.Context) ([]DishDTO, error) {
		rows, err := s.Repo.ListByCategoryStatus(categoryID, status)
		if err != nil {
			return nil, err
		}
		return s.assemble(rows, true)
	})
}

// ----- Writes -----

// SaveWithFlavors inserts the dish and its flavor rows as one
// transaction, then clears the dish listing cache before returning.
func (s *DishService) SaveWithFlavors(ctx context.Context, req *DishRequest) error {
	dish := entity.Dish{
		Name:       req.Name,
		CategoryID: req.CategoryID,
		Price:      req.Price,
		Status:     req.Status,
		Sort:       req.Sort,
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, &dish); err != nil {
			return err
		}
		return s.Repo.CreateFlavors(tx, flavorRows(dish.ID, req.Flavors))
	})
	if err != nil {
		return err
	}
	s.Cache.Invalidate(ctx, cache.TagDish)
	return nil
}

// UpdateWithFlavors updates the dish fields and replaces the whole
// flavor set. Replace-all beats diffing for child sets this small.
func (s *DishService) UpdateWithFlavors(ctx context.Context, req *DishRequest) error {
	if _, err := s.Repo.FindByID(req.ID); err != nil {
		return err
	}
	dish := entity.Dish{
		ID:         req.ID,
		Name:       req.Name,
		CategoryID: req.CategoryID,
		Price:      req.Price,
		Status:     req.Status,
		Sort:       req.Sort,
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Update(tx, &dish); err != nil {
			return err
		}
		if err := s.Repo.DeleteFlavorsByDishIDs(tx, []uint{req.ID}); err != nil {
			return err
		}
		return s.Repo.CreateFlavors(tx, flavorRows(req.ID, req.Flavors))
	})
	if err != nil {
		return err
	}
	s.Cache.Invalidate(ctx, cache.TagDish)
	return nil
}

// RemoveWithFlavors deletes the dishes and their flavors. The whole
// batch is rejected while any target dish is part of an on-sale
// setmeal; the check runs inside the delete transaction so a failure
// leaves every row intact.
func (s *DishService) RemoveWithFlavors(ctx context.Context, ids []uint) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		n, err := s.SetmealRepo.CountOnSaleByDishIDs(tx, ids)
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrDishInActiveSetmeal
		}
		if err := s.Repo.DeleteFlavorsByDishIDs(tx, ids); err != nil {
			return err
		}
		return s.Repo.DeleteByIDs(tx, ids)
	})
	if err != nil {
		return err
	}
	s.Cache.Invalidate(ctx, cache.TagDish)
	return nil
}

func (s *DishService) UpdateStatus(ctx context.Context, ids []uint, status int) error {
	if err := s.Repo.UpdateStatus(ids, status); err != nil {
		return err
	}
	s.Cache.Invalidate(ctx, cache.TagDish)
	return nil
}

// ----- Assembly -----

// assemble maps rows to display objects one to one, preserving order.
func (s *DishService) assemble(dishes []entity.Dish, withFlavors bool) ([]DishDTO, error) {
	out := make([]DishDTO, 0, len(dishes))
	for i := range dishes {
		dto, err := s.display(&dishes[i], withFlavors)
		if err != nil {
			return nil, err
		}
		out = append(out, *dto)
	}
	return out, nil
}

func (s *DishService) display(dish *entity.Dish, withFlavors bool) (*DishDTO, error) {
	var dto DishDTO
	if err := copier.Copy(&dto, dish); err != nil {
		return nil, err
	}

	// A vanished category leaves the name empty; the row still renders.
	cat, err := s.CategoryRepo.FindByID(dish.CategoryID)
	switch {
	case err == nil:
		dto.CategoryName = cat.Name
	case !errors.Is(err, repository.ErrNotFound):
		return nil, err
	}

	if withFlavors {
		flavors, err := s.Repo.FlavorsByDishID(dish.ID)
		if err != nil {
			return nil, err
		}
		dto.Flavors = flavors
	}
	return &dto, nil
}

func flavorRows(dishID uint, reqs []FlavorRequest) []entity.DishFlavor {
	flavors := make([]entity.DishFlavor, 0, len(reqs))
	for _, f := range reqs {
		flavors = append(flavors, entity.DishFlavor{
			DishID: dishID,
			Name:   f.Name,
			Values: f.Values,
		})
	}
	return flavors
}
