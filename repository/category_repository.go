package repository

import (
	"errors"

	"github.com/linjialin0/reggie-take-out/entity"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) FindByID(id uint) (*entity.Category, error) {
	var category entity.Category
	err := r.DB.First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) List() ([]entity.Category, error) {
	var categories []entity.Category
	err := r.DB.Order("sort asc").Find(&categories).Error
	return categories, err
}
