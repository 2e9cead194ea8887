package service

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Lapras/internal/dto"
	"github.com/lshigami/Lapras/internal/model"
	"github.com/lshigami/Lapras/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type UserService interface {
	Create(req dto.CreateUserRequest) (*dto.UserResponse, error)
	GetByID(id uint) (*dto.UserResponse, error)
	List(offset, limit int) ([]dto.UserResponse, error)
	Update(id uint, req dto.UpdateUserRequest) (*dto.UserResponse, error)
	Delete(id uint) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Create(req dto.CreateUserRequest) (*dto.UserResponse, error) {
	if existing, err := s.userRepo.FindByUsernameOrEmail(req.Username, req.Email); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: username or email already registered", ErrConflict)
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := model.User{
		Username: req.Username,
		Email:    req.Email,
		ImageURL: req.ImageURL,
	}
	if err := s.userRepo.Create(&user); err != nil {
		log.Error().Err(err).Str("username", req.Username).Msg("Failed to create user")
		return nil, err
	}

	var resp dto.UserResponse
	if err := copier.Copy(&resp, &user); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *userService) GetByID(id uint) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, id)
		}
		return nil, err
	}
	var resp dto.UserResponse
	if err := copier.Copy(&resp, user); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *userService) List(offset, limit int) ([]dto.UserResponse, error) {
	users, err := s.userRepo.FindAll(offset, limit)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UserResponse, 0, len(users))
	if err := copier.Copy(&resp, &users); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *userService) Update(id uint, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, id)
		}
		return nil, err
	}

	if req.Username != nil {
		taken, err := s.userRepo.ExistsOtherWithUsername(id, *req.Username)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("%w: username already taken", ErrConflict)
		}
		user.Username = *req.Username
	}
	if req.Email != nil {
		taken, err := s.userRepo.ExistsOtherWithEmail(id, *req.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("%w: email already taken", ErrConflict)
		}
		user.Email = *req.Email
	}
	if req.ImageURL != nil {
		user.ImageURL = req.ImageURL
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	var resp dto.UserResponse
	if err := copier.Copy(&resp, user); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *userService) Delete(id uint) error {
	if _, err := s.userRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: user %d", ErrNotFound, id)
		}
		return err
	}
	return s.userRepo.Delete(id)
}
