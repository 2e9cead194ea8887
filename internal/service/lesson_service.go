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

// LessonService covers the lesson catalogue and per-user lesson tracking.
// A tracking row existing for (user, lesson) is what "learned" means; the
// IsFinished flag is extra state on top of that.
type LessonService interface {
	Create(req dto.CreateLessonRequest) (*dto.LessonResponse, error)
	GetByID(id uint) (*dto.LessonResponse, error)
	List(offset, limit int) ([]dto.LessonResponse, error)
	ListWithTracking(userID uint, offset, limit int) ([]dto.LessonWithTrackingResponse, error)
	Count() (int64, error)
	Update(id uint, req dto.UpdateLessonRequest) (*dto.LessonResponse, error)
	Delete(id uint) error

	Track(req dto.CreateTrackingRequest) (*dto.TrackingResponse, error)
	GetTracking(id uint) (*dto.TrackingResponse, error)
	ListTracking(userID *uint, offset, limit int) ([]dto.TrackingResponse, error)
	UpdateTracking(id uint, req dto.UpdateTrackingRequest) (*dto.TrackingResponse, error)
	DeleteTracking(id uint) error
	IsLearned(userID, lessonID uint) (*dto.IsLearnedResponse, error)
}

type lessonService struct {
	lessonRepo   repository.LessonRepository
	trackingRepo repository.TrackingRepository
	userRepo     repository.UserRepository
}

func NewLessonService(lessonRepo repository.LessonRepository, trackingRepo repository.TrackingRepository, userRepo repository.UserRepository) LessonService {
	return &lessonService{lessonRepo: lessonRepo, trackingRepo: trackingRepo, userRepo: userRepo}
}

func (s *lessonService) Create(req dto.CreateLessonRequest) (*dto.LessonResponse, error) {
	lesson := model.Lesson{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Subject:     req.Subject,
		ContentURL:  req.ContentURL,
		CreatedBy:   req.CreatedBy,
	}
	if err := s.lessonRepo.Create(&lesson); err != nil {
		return nil, err
	}
	var resp dto.LessonResponse
	if err := copier.Copy(&resp, &lesson); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *lessonService) GetByID(id uint) (*dto.LessonResponse, error) {
	lesson, err := s.lessonRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: lesson %d", ErrNotFound, id)
		}
		return nil, err
	}
	var resp dto.LessonResponse
	if err := copier.Copy(&resp, lesson); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *lessonService) List(offset, limit int) ([]dto.LessonResponse, error) {
	lessons, err := s.lessonRepo.FindAll(offset, limit)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.LessonResponse, 0, len(lessons))
	if err := copier.Copy(&resp, &lessons); err != nil {
		return nil, err
	}
	return resp, nil
}

// ListWithTracking decorates each lesson in the page with whether the given
// user has a tracking row for it.
func (s *lessonService) ListWithTracking(userID uint, offset, limit int) ([]dto.LessonWithTrackingResponse, error) {
	lessons, err := s.lessonRepo.FindAll(offset, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LessonWithTrackingResponse, 0, len(lessons))
	for i := range lessons {
		var base dto.LessonResponse
		if err := copier.Copy(&base, &lessons[i]); err != nil {
			return nil, err
		}
		learned := false
		if _, err := s.trackingRepo.FindByUserAndLesson(userID, lessons[i].ID); err == nil {
			learned = true
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		out = append(out, dto.LessonWithTrackingResponse{LessonResponse: base, IsLearned: learned})
	}
	return out, nil
}

func (s *lessonService) Count() (int64, error) {
	return s.lessonRepo.Count()
}

func (s *lessonService) Update(id uint, req dto.UpdateLessonRequest) (*dto.LessonResponse, error) {
	lesson, err := s.lessonRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: lesson %d", ErrNotFound, id)
		}
		return nil, err
	}
	if req.Title != nil {
		lesson.Title = *req.Title
	}
	if req.Description != nil {
		lesson.Description = *req.Description
	}
	if req.Content != nil {
		lesson.Content = *req.Content
	}
	if req.Subject != nil {
		lesson.Subject = *req.Subject
	}
	if req.ContentURL != nil {
		lesson.ContentURL = req.ContentURL
	}
	if err := s.lessonRepo.Update(lesson); err != nil {
		return nil, err
	}
	var resp dto.LessonResponse
	if err := copier.Copy(&resp, lesson); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *lessonService) Delete(id uint) error {
	if _, err := s.lessonRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: lesson %d", ErrNotFound, id)
		}
		return err
	}
	return s.lessonRepo.Delete(id)
}

func (s *lessonService) Track(req dto.CreateTrackingRequest) (*dto.TrackingResponse, error) {
	exists, err := s.userRepo.Exists(req.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: user %d does not exist", ErrValidation, req.UserID)
	}
	if _, err := s.lessonRepo.FindByID(req.LessonID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: lesson %d does not exist", ErrValidation, req.LessonID)
		}
		return nil, err
	}

	// One tracking row per (user, lesson); repeat calls update the flag.
	if existing, err := s.trackingRepo.FindByUserAndLesson(req.UserID, req.LessonID); err == nil {
		existing.IsFinished = req.IsFinished
		if err := s.trackingRepo.Update(existing); err != nil {
			return nil, err
		}
		return toTrackingResponse(existing), nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	entry := model.LessonTracking{
		UserID:     req.UserID,
		LessonID:   req.LessonID,
		IsFinished: req.IsFinished,
	}
	if err := s.trackingRepo.Create(&entry); err != nil {
		return nil, err
	}
	return toTrackingResponse(&entry), nil
}

func (s *lessonService) GetTracking(id uint) (*dto.TrackingResponse, error) {
	entry, err := s.trackingRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: tracking entry %d", ErrNotFound, id)
		}
		return nil, err
	}
	return toTrackingResponse(entry), nil
}

func (s *lessonService) ListTracking(userID *uint, offset, limit int) ([]dto.TrackingResponse, error) {
	var entries []model.LessonTracking
	var err error
	if userID != nil {
		entries, err = s.trackingRepo.FindByUser(*userID, offset, limit)
	} else {
		entries, err = s.trackingRepo.FindAll(offset, limit)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.TrackingResponse, len(entries))
	for i := range entries {
		out[i] = *toTrackingResponse(&entries[i])
	}
	return out, nil
}

func (s *lessonService) UpdateTracking(id uint, req dto.UpdateTrackingRequest) (*dto.TrackingResponse, error) {
	entry, err := s.trackingRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: tracking entry %d", ErrNotFound, id)
		}
		return nil, err
	}
	if req.IsFinished != nil {
		entry.IsFinished = *req.IsFinished
	}
	if err := s.trackingRepo.Update(entry); err != nil {
		return nil, err
	}
	return toTrackingResponse(entry), nil
}

func (s *lessonService) DeleteTracking(id uint) error {
	if _, err := s.trackingRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: tracking entry %d", ErrNotFound, id)
		}
		return err
	}
	return s.trackingRepo.Delete(id)
}

func (s *lessonService) IsLearned(userID, lessonID uint) (*dto.IsLearnedResponse, error) {
	_, err := s.trackingRepo.FindByUserAndLesson(userID, lessonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &dto.IsLearnedResponse{IsLearned: false}, nil
		}
		return nil, err
	}
	return &dto.IsLearnedResponse{IsLearned: true}, nil
}

func toTrackingResponse(entry *model.LessonTracking) *dto.TrackingResponse {
	return &dto.TrackingResponse{
		ID:         entry.ID,
		UserID:     entry.UserID,
		LessonID:   entry.LessonID,
		IsFinished: entry.IsFinished,
		CreatedAt:  entry.CreatedAt,
	}
}
