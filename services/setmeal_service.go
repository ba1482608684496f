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

type SetmealService struct {
	DB           *gorm.DB
	Repo         *repository.SetmealRepository
	CategoryRepo *repository.CategoryRepository
	Cache        *cache.Aside
	Log          *slog.Logger
}

func NewSetmealService(
	db *gorm.DB,
	repo *repository.SetmealRepository,
	categoryRepo *repository.CategoryRepository,
	aside *cache.Aside,
	log *slog.Logger,
) *SetmealService {
	if log == nil {
		log = slog.Default()
	}
	return &SetmealService{
		DB:           db,
		Repo:         repo,
		CategoryRepo: categoryRepo,
		Cache:        aside,
		Log:          log,
	}
}

// ----- DTOs -----

type SetmealDishRequest struct {
	DishID uint   `json:"dishId"`
	Name   string `json:"name"`
	Price  int64  `json:"price"`
	Copies int    `json:"copies"`
}

func (d SetmealDishRequest) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.DishID, validation.Required),
		validation.Field(&d.Copies, validation.Min(1)),
	)
}

type SetmealRequest struct {
	ID         uint                 `json:"id"`
	Name       string               `json:"name"`
	CategoryID uint                 `json:"categoryId"`
	Price      int64                `json:"price"`
	Status     int                  `json:"status"`
	Sort       int                  `json:"sort"`
	Dishes     []SetmealDishRequest `json:"setmealDishes"`
}

func (r SetmealRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 64)),
		validation.Field(&r.CategoryID, validation.Required),
		validation.Field(&r.Price, validation.Min(0)),
		validation.Field(&r.Status, validation.In(entity.StatusDiscontinued, entity.StatusOnSale)),
		validation.Field(&r.Dishes, validation.Required),
	)
}

type SetmealDTO struct {
	ID           uint                 `json:"id"`
	Name         string               `json:"name"`
	CategoryID   uint                 `json:"categoryId"`
	CategoryName string               `json:"categoryName,omitempty"`
	Price        int64                `json:"price"`
	Status       int                  `json:"status"`
	Sort         int                  `json:"sort"`
	UpdatedAt    time.Time            `json:"updatedAt"`
	Dishes       []entity.SetmealDish `json:"setmealDishes,omitempty"`
}

// ----- Reads -----

func (s *SetmealService) Page(page, pageSize int, name string) (*PageResult[SetmealDTO], error) {
	total, rows, err := s.Repo.Page(page, pageSize, name)
	if err != nil {
		return nil, err
	}
	records, err := s.assemble(rows, false)
	if err != nil {
		return nil, err
	}
	return &PageResult[SetmealDTO]{Total: total, Page: page, PageSize: pageSize, Records: records}, nil
}

func (s *SetmealService) GetByIDWithDishes(id uint) (*SetmealDTO, error) {
	setmeal, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return s.display(setmeal, true)
}

func (s *SetmealService) List(ctx context.Context, categoryID uint, status int) ([]SetmealDTO, error) {
	key := cache.ListKey(cache.TagSetmeal, categoryID, status)
	return cache.GetOrLoad(ctx, s.Cache, key, func(ctx context.Context) ([]SetmealDTO, error) {
		rows, err := s.Repo.ListByCategoryStatus(categoryID, status)
		if err != nil {
			return nil, err
		}
		return s.assemble(rows, false)
	})
}

// ----- Writes -----

func (s *SetmealService) SaveWithDishes(ctx context.Context, req *SetmealRequest) error {
	setmeal := entity.Setmeal{
		Name:       req.Name,
		CategoryID: req.CategoryID,
		Price:      req.Price,
		Status:     req.Status,
		Sort:       req.Sort,
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, &setmeal); err != nil {
			return err
		}
		return s.Repo.CreateDishes(tx, dishLinks(setmeal.ID, req.Dishes))
	})
	if err != nil {
		return err
	}
	s.Cache.Invalidate(ctx, cache.TagSetmeal)
	return nil
}

func (s *SetmealService) UpdateWithDishes(ctx context.Context, req *SetmealRequest) error {
	if _, err := s.Repo.FindByID(req.ID); err != nil {
		return err
	}
	setmeal := entity.Setmeal{
		ID:         req.ID,
		Name:       req.Name,
		CategoryID: req.CategoryID,
		Price:      req.Price,
		Status:     req.Status,
		Sort:       req.Sort,
	}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Update(tx, &setmeal); err != nil {
			return err
		}
		if err := s.Repo.DeleteDishesBySetmealIDs(tx, []uint{req.ID}); err != nil {
			return err
		}
		return s.Repo.CreateDishes(tx, dishLinks(req.ID, req.Dishes))
	})
	if err != nil {
		return err
	}
	s.Cache.Invalidate(ctx, cache.TagSetmeal)
	return nil
}

// RemoveWithDishes rejects the whole batch while any target setmeal is
// still on sale; discontinue first, then delete.
func (s *SetmealService) RemoveWithDishes(ctx context.Context, ids []uint) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		n, err := s.Repo.CountOnSaleByIDs(tx, ids)
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrSetmealOnSale
		}
		if err := s.Repo.DeleteDishesBySetmealIDs(tx, ids); err != nil {
			return err
		}
		return s.Repo.DeleteByIDs(tx, ids)
	})
	if err != nil {
		return err
	}
	s.Cache.Invalidate(ctx, cache.TagSetmeal)
	return nil
}

func (s *SetmealService) UpdateStatus(ctx context.Context, ids []uint, status int) error {
	if err := s.Repo.UpdateStatus(ids, status); err != nil {
		return err
	}
	s.Cache.Invalidate(ctx, cache.TagSetmeal)
	return nil
}

// ----- Assembly -----

func (s *SetmealService) assemble(setmeals []entity.Setmeal, withDishes bool) ([]SetmealDTO, error) {
	out := make([]SetmealDTO, 0, len(setmeals))
	for i := range setmeals {
		dto, err := s.display(&setmeals[i], withDishes)
		if err != nil {
			return nil, err
		}
		out = append(out, *dto)
	}
	return out, nil
}

func (s *SetmealService) display(setmeal *entity.Setmeal, withDishes bool) (*SetmealDTO, error) {
	var dto SetmealDTO
	if err := copier.Copy(&dto, setmeal); err != nil {
		return nil, err
	}

	cat, err := s.CategoryRepo.FindByID(setmeal.CategoryID)
	switch {
	case err == nil:
		dto.CategoryName = cat.Name
	case !errors.Is(err, repository.ErrNotFound):
		return nil, err
	}

	if withDishes {
		links, err := s.Repo.DishesBySetmealID(setmeal.ID)
		if err != nil {
			return nil, err
		}
		dto.Dishes = links
	}
	return &dto, nil
}

func dishLinks(setmealID uint, reqs []SetmealDishRequest) []entity.SetmealDish {
	links := make([]entity.SetmealDish, 0, len(reqs))
	for _, d := range reqs {
		links = append(links, entity.SetmealDish{
			SetmealID: setmealID,
			DishID:    d.DishID,
			Name:      d.Name,
			Price:     d.Price,
			Copies:    d.Copies,
		})
	}
	return links
}
