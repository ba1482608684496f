package repository

import (
	"errors"

	"github.com/linjialin0/reggie-take-out/entity"
	"gorm.io/gorm"
)

type SetmealRepository struct {
	DB *gorm.DB
}

func NewSetmealRepository(db *gorm.DB) *SetmealRepository {
	return &SetmealRepository{DB: db}
}

func (r *SetmealRepository) FindByID(id uint) (*entity.Setmeal, error) {
	var setmeal entity.Setmeal
	err := r.DB.First(&setmeal, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &setmeal, nil
}

func (r *SetmealRepository) Page(page, pageSize int, name string) (int64, []entity.Setmeal, error) {
	q := r.DB.Model(&entity.Setmeal{})
	if name != "" {
		q = q.Where("name LIKE ?", "%"+name+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return 0, nil, err
	}

	var setmeals []entity.Setmeal
	err := q.Order("updated_at desc").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&setmeals).Error
	return total, setmeals, err
}

func (r *SetmealRepository) ListByCategoryStatus(categoryID uint, status int) ([]entity.Setmeal, error) {
	q := r.DB.Where("status = ?", status)
	if categoryID != 0 {
		q = q.Where("category_id = ?", categoryID)
	}
	var setmeals []entity.Setmeal
	err := q.Order("updated_at desc").Find(&setmeals).Error
	return setmeals, err
}

func (r *SetmealRepository) Create(db *gorm.DB, setmeal *entity.Setmeal) error {
	return db.Create(setmeal).Error
}

func (r *SetmealRepository) Update(db *gorm.DB, setmeal *entity.Setmeal) error {
	fields := map[string]interface{}{
		"name":        setmeal.Name,
		"category_id": setmeal.CategoryID,
		"price":       setmeal.Price,
		"status":      setmeal.Status,
		"sort":        setmeal.Sort,
	}
	return db.Model(&entity.Setmeal{}).Where("id = ?", setmeal.ID).Updates(fields).Error
}

func (r *SetmealRepository) UpdateStatus(ids []uint, status int) error {
	return r.DB.Model(&entity.Setmeal{}).Where("id IN ?", ids).Update("status", status).Error
}

func (r *SetmealRepository) DeleteByIDs(db *gorm.DB, ids []uint) error {
	return db.Delete(&entity.Setmeal{}, ids).Error
}

// CountOnSaleByIDs reports how many of the given setmeals are still on
// sale. Deletion is refused while this is non-zero.
func (r *SetmealRepository) CountOnSaleByIDs(db *gorm.DB, ids []uint) (int64, error) {
	var n int64
	err := db.Model(&entity.Setmeal{}).
		Where("id IN ? AND status = ?", ids, entity.StatusOnSale).
		Count(&n).Error
	return n, err
}

// CountOnSaleByDishIDs reports how many on-sale setmeals reference any
// of the given dishes. A dish delete is refused while this is non-zero.
func (r *SetmealRepository) CountOnSaleByDishIDs(db *gorm.DB, dishIDs []uint) (int64, error) {
	var n int64
	err := db.Model(&entity.Setmeal{}).
		Joins("JOIN setmeal_dishes ON setmeal_dishes.setmeal_id = setmeals.id").
		Where("setmeal_dishes.dish_id IN ?", dishIDs).
		Where("setmeals.status = ?", entity.StatusOnSale).
		Count(&n).Error
	return n, err
}

func (r *SetmealRepository) DishesBySetmealID(setmealID uint) ([]entity.SetmealDish, error) {
	var links []entity.SetmealDish
	err := r.DB.Where("setmeal_id = ?", setmealID).Find(&links).Error
	return links, err
}

func (r *SetmealRepository) CreateDishes(db *gorm.DB, links []entity.SetmealDish) error {
	if len(links) == 0 {
		return nil
	}
	return db.Create(&links).Error
}

func (r *SetmealRepository) DeleteDishesBySetmealIDs(db *gorm.DB, setmealIDs []uint) error {
	return db.Where("setmeal_id IN ?", setmealIDs).Delete(&entity.SetmealDish{}).Error
}
