package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Lapras/internal/dto"
	"github.com/lshigami/Lapras/internal/model"
	"github.com/lshigami/Lapras/internal/repository"
	"gorm.io/gorm"
)

type UniversityService interface {
	Create(req dto.CreateUniversityRequest) (*dto.UniversityResponse, error)
	GetByID(id uint) (*dto.UniversityResponse, error)
	List(offset, limit int) ([]dto.UniversityResponse, error)
	Count() (int64, error)
	Update(id uint, req dto.UpdateUniversityRequest) (*dto.UniversityResponse, error)
	Delete(id uint) error
}

type universityService struct {
	univRepo repository.UniversityRepository
}

func NewUniversityService(univRepo repository.UniversityRepository) UniversityService {
	return &universityService{univRepo: univRepo}
}

func (s *universityService) Create(req dto.CreateUniversityRequest) (*dto.UniversityResponse, error) {
	univ := model.University{
		Name:        req.Name,
		Location:    req.Location,
		Type:        req.Type,
		Description: req.Description,
	}
	if err := s.univRepo.Create(&univ); err != nil {
		return nil, err
	}
	var resp dto.UniversityResponse
	if err := copier.Copy(&resp, &univ); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *universityService) GetByID(id uint) (*dto.UniversityResponse, error) {
	univ, err := s.univRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: university %d", ErrNotFound, id)
		}
		return nil, err
	}
	var resp dto.UniversityResponse
	if err := copier.Copy(&resp, univ); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *universityService) List(offset, limit int) ([]dto.UniversityResponse, error) {
	univs, err := s.univRepo.FindAll(offset, limit)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UniversityResponse, 0, len(univs))
	if err := copier.Copy(&resp, &univs); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *universityService) Count() (int64, error) {
	return s.univRepo.Count()
}

func (s *universityService) Update(id uint, req dto.UpdateUniversityRequest) (*dto.UniversityResponse, error) {
	univ, err := s.univRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: university %d", ErrNotFound, id)
		}
		return nil, err
	}
	if req.Name != nil {
		univ.Name = *req.Name
	}
	if req.Location != nil {
		univ.Location = req.Location
	}
	if req.Type != nil {
		univ.Type = req.Type
	}
	if req.Description != nil {
		univ.Description = req.Description
	}
	if err := s.univRepo.Update(univ); err != nil {
		return nil, err
	}
	var resp dto.UniversityResponse
	if err := copier.Copy(&resp, univ); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *universityService) Delete(id uint) error {
	if _, err := s.univRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: university %d", ErrNotFound, id)
		}
		return err
	}
	return s.univRepo.Delete(id)
}
