package services

import (
	"github.com/linjialin0/reggie-take-out/entity"
	"github.com/linjialin0/reggie-take-out/repository"
)

type CategoryService struct {
	Repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{Repo: repo}
}

func (s *CategoryService) List() ([]entity.Category, error) {
	return s.Repo.List()
}
