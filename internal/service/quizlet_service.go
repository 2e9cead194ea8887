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

type QuizletService interface {
	Create(req dto.CreateQuizletRequest) (*dto.QuizletResponse, error)
	GetByID(id uint) (*dto.QuizletResponse, error)
	List(offset, limit int) ([]dto.QuizletResponse, error)
	ListByLesson(lessonID uint) ([]dto.QuizletResponse, error)
	Update(id uint, req dto.UpdateQuizletRequest) (*dto.QuizletResponse, error)
	Delete(id uint) error
}

type quizletService struct {
	quizletRepo repository.QuizletRepository
	lessonRepo  repository.LessonRepository
}

func NewQuizletService(quizletRepo repository.QuizletRepository, lessonRepo repository.LessonRepository) QuizletService {
	return &quizletService{quizletRepo: quizletRepo, lessonRepo: lessonRepo}
}

func (s *quizletService) Create(req dto.CreateQuizletRequest) (*dto.QuizletResponse, error) {
	if _, err := s.lessonRepo.FindByID(req.LessonID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: lesson %d does not exist", ErrValidation, req.LessonID)
		}
		return nil, err
	}
	item := model.Quizlet{
		LessonID: req.LessonID,
		Question: req.Question,
		Answer:   req.Answer,
	}
	if err := s.quizletRepo.Create(&item); err != nil {
		return nil, err
	}
	var resp dto.QuizletResponse
	if err := copier.Copy(&resp, &item); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *quizletService) GetByID(id uint) (*dto.QuizletResponse, error) {
	item, err := s.quizletRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: quizlet %d", ErrNotFound, id)
		}
		return nil, err
	}
	var resp dto.QuizletResponse
	if err := copier.Copy(&resp, item); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *quizletService) List(offset, limit int) ([]dto.QuizletResponse, error) {
	items, err := s.quizletRepo.FindAll(offset, limit)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.QuizletResponse, 0, len(items))
	if err := copier.Copy(&resp, &items); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *quizletService) ListByLesson(lessonID uint) ([]dto.QuizletResponse, error) {
	items, err := s.quizletRepo.FindByLessonID(lessonID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.QuizletResponse, 0, len(items))
	if err := copier.Copy(&resp, &items); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *quizletService) Update(id uint, req dto.UpdateQuizletRequest) (*dto.QuizletResponse, error) {
	item, err := s.quizletRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: quizlet %d", ErrNotFound, id)
		}
		return nil, err
	}
	if req.Question != nil {
		item.Question = *req.Question
	}
	if req.Answer != nil {
		item.Answer = *req.Answer
	}
	if err := s.quizletRepo.Update(item); err != nil {
		return nil, err
	}
	var resp dto.QuizletResponse
	if err := copier.Copy(&resp, item); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *quizletService) Delete(id uint) error {
	if _, err := s.quizletRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: quizlet %d", ErrNotFound, id)
		}
		return err
	}
	return s.quizletRepo.Delete(id)
}
