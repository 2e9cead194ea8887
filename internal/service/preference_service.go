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

type PreferenceService interface {
	Create(req dto.CreatePreferenceRequest) (*dto.PreferenceResponse, error)
	GetByID(id uint) (*dto.PreferenceResponse, error)
	List(offset, limit int) ([]dto.PreferenceResponse, error)
	Update(id uint, req dto.UpdatePreferenceRequest) (*dto.PreferenceResponse, error)
	Delete(id uint) error
}

type preferenceService struct {
	prefRepo repository.PreferenceRepository
	userRepo repository.UserRepository
}

func NewPreferenceService(prefRepo repository.PreferenceRepository, userRepo repository.UserRepository) PreferenceService {
	return &preferenceService{prefRepo: prefRepo, userRepo: userRepo}
}

func (s *preferenceService) Create(req dto.CreatePreferenceRequest) (*dto.PreferenceResponse, error) {
	exists, err := s.userRepo.Exists(req.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: user %d does not exist", ErrValidation, req.UserID)
	}

	pref := model.UserPreferences{
		UserID:         req.UserID,
		PreferredMajor: req.PreferredMajor,
		CurrentScore:   req.CurrentScore,
		ExpectedScore:  req.ExpectedScore,
	}
	if err := s.prefRepo.Create(&pref); err != nil {
		return nil, err
	}
	var resp dto.PreferenceResponse
	if err := copier.Copy(&resp, &pref); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *preferenceService) GetByID(id uint) (*dto.PreferenceResponse, error) {
	pref, err := s.prefRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: preferences %d", ErrNotFound, id)
		}
		return nil, err
	}
	var resp dto.PreferenceResponse
	if err := copier.Copy(&resp, pref); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *preferenceService) List(offset, limit int) ([]dto.PreferenceResponse, error) {
	prefs, err := s.prefRepo.FindAll(offset, limit)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.PreferenceResponse, 0, len(prefs))
	if err := copier.Copy(&resp, &prefs); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *preferenceService) Update(id uint, req dto.UpdatePreferenceRequest) (*dto.PreferenceResponse, error) {
	pref, err := s.prefRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: preferences %d", ErrNotFound, id)
		}
		return nil, err
	}
	if req.PreferredMajor != nil {
		pref.PreferredMajor = req.PreferredMajor
	}
	if req.CurrentScore != nil {
		pref.CurrentScore = req.CurrentScore
	}
	if req.ExpectedScore != nil {
		pref.ExpectedScore = req.ExpectedScore
	}
	if err := s.prefRepo.Update(pref); err != nil {
		return nil, err
	}
	var resp dto.PreferenceResponse
	if err := copier.Copy(&resp, pref); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *preferenceService) Delete(id uint) error {
	if _, err := s.prefRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: preferences %d", ErrNotFound, id)
		}
		return err
	}
	return s.prefRepo.Delete(id)
}
