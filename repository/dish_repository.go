package repository

import (
	"errors"

	"github.com/linjialin0/reggie-take-out/entity"
	"gorm.io/gorm"
)

type DishRepository struct {
	DB *gorm.DB
}

func NewDishRepository(db *gorm.DB) *DishRepository {
	return &DishRepository{DB: db}
}

func (r *DishRepository) FindByID(id uint) (*entity.Dish, error) {
	var dish entity.Dish
	err := r.DB.First(&dish, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &dish, nil
}

// Page runs the admin listing query: optional name substring filter,
// newest-edited rows first, 1-indexed pages.
func (r *DishRepository) Page(page, pageSize int, name string) (int64, []entity.Dish, error) {
	q := r.DB.Model(&entity.Dish{})
	if name != "" {
		q = q.Where("name LIKE ?", "%"+name+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var dishes []entity.Dish
	err := q.Order("updated_at desc").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&dishes).Error
	return total, dishes, err
}

// ListByCategoryStatus serves the customer-facing listing. categoryID 0
// means all categories.
func (r *DishRepository) ListByCategoryStatus(categoryID uint, status int) ([]entity.Dish, error) {
	q := r.DB.Where("status = ?", status)
	if categoryID != 0 {
		q = q.Where("category_id = ?", categoryID)
	}
	var dishes []entity.Dish
	err := q.Order("sort asc").Order("updated_at desc").Find(&dishes).Error
	return dishes, err
}

func (r *DishRepository) Create(db *gorm.DB, dish *entity.Dish) error {
	return db.Create(dish).Error
}

func (r *DishRepository) Update(db *gorm.DB, dish *entity.Dish) error {
	fields := map[string]interface{}{
		"name":        dish.Name,
		"category_id": dish.CategoryID,
		"price":       dish.Price,
		"status":      dish.Status,
		"sort":        dish.Sort,
	}
	return db.Model(&entity.Dish{}).Where("id = ?", dish.ID).Updates(fields).Error
}

func (r *DishRepository) UpdateStatus(ids []uint, status int) error {
	return r.DB.Model(&entity.Dish{}).Where("id IN ?", ids).Update("status", status).Error
}

func (r *DishRepository) DeleteByIDs(db *gorm.DB, ids []uint) error {
	return db.Delete(&entity.Dish{}, ids).Error
}

func (r *DishRepository) FlavorsByDishID(dishID uint) ([]entity.DishFlavor, error) {
	var flavors []entity.DishFlavor
	err := r.DB.Where("dish_id = ?", dishID).Find(&flavors).Error
	return flavors, err
}

func (r *DishRepository) CreateFlavors(db *gorm.DB, flavors []entity.DishFlavor) error {
	if len(flavors) == 0 {
		return nil
	}
	return db.Create(&flavors).Error
}

func (r *DishRepository) DeleteFlavorsByDishIDs(db *gorm.DB, dishIDs []uint) error {
	return db.Where("dish_id IN ?", dishIDs).Delete(&entity.DishFlavor{}).Error
}
