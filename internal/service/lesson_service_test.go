package service

import (
	"testing"

	"github.com/lshigami/Lapras/internal/dto"
	"github.com/lshigami/Lapras/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLessonFixture(t *testing.T) (LessonService, UserService) {
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	lessonSvc := NewLessonService(
		repository.NewLessonRepository(db),
		repository.NewTrackingRepository(db),
		userRepo,
	)
	return lessonSvc, NewUserService(userRepo)
}

func TestTrackingMarksLessonLearned(t *testing.T) {
	lessonSvc, userSvc := newLessonFixture(t)

	user, err := userSvc.Create(dto.CreateUserRequest{Username: "eve", Email: "eve@example.com"})
	require.NoError(t, err)
	lesson, err := lessonSvc.Create(dto.CreateLessonRequest{Title: "Algebra"})
	require.NoError(t, err)

	learned, err := lessonSvc.IsLearned(user.ID, lesson.ID)
	require.NoError(t, err)
	assert.False(t, learned.IsLearned)

	_, err = lessonSvc.Track(dto.CreateTrackingRequest{UserID: user.ID, LessonID: lesson.ID, IsFinished: true})
	require.NoError(t, err)

	learned, err = lessonSvc.IsLearned(user.ID, lesson.ID)
	require.NoError(t, err)
	assert.True(t, learned.IsLearned)
}

func TestTrackingRejectsUnknownUser(t *testing.T) {
	lessonSvc, _ := newLessonFixture(t)

	lesson, err := lessonSvc.Create(dto.CreateLessonRequest{Title: "Geometry"})
	require.NoError(t, err)

	_, err = lessonSvc.Track(dto.CreateTrackingRequest{UserID: 42, LessonID: lesson.ID})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestTrackingUpsertsPerPair(t *testing.T) {
	lessonSvc, userSvc := newLessonFixture(t)

	user, err := userSvc.Create(dto.CreateUserRequest{Username: "finn", Email: "finn@example.com"})
	require.NoError(t, err)
	lesson, err := lessonSvc.Create(dto.CreateLessonRequest{Title: "Calculus"})
	require.NoError(t, err)

	first, err := lessonSvc.Track(dto.CreateTrackingRequest{UserID: user.ID, LessonID: lesson.ID, IsFinished: false})
	require.NoError(t, err)
	second, err := lessonSvc.Track(dto.CreateTrackingRequest{UserID: user.ID, LessonID: lesson.ID, IsFinished: true})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.IsFinished)
}

func TestListWithTrackingFlags(t *testing.T) {
	lessonSvc, userSvc := newLessonFixture(t)

	user, err := userSvc.Create(dto.CreateUserRequest{Username: "gina", Email: "gina@example.com"})
	require.NoError(t, err)
	learned, err := lessonSvc.Create(dto.CreateLessonRequest{Title: "Learned"})
	require.NoError(t, err)
	_, err = lessonSvc.Create(dto.CreateLessonRequest{Title: "Not learned"})
	require.NoError(t, err)

	_, err = lessonSvc.Track(dto.CreateTrackingRequest{UserID: user.ID, LessonID: learned.ID})
	require.NoError(t, err)

	lessons, err := lessonSvc.ListWithTracking(user.ID, 0, 10)
	require.NoError(t, err)
	require.Len(t, lessons, 2)

	flags := map[string]bool{}
	for _, l := range lessons {
		flags[l.Title] = l.IsLearned
	}
	assert.True(t, flags["Learned"])
	assert.False(t, flags["Not learned"])
}

func TestLessonCount(t *testing.T) {
	lessonSvc, _ := newLessonFixture(t)

	for _, title := range []string{"a", "b", "c"} {
		_, err := lessonSvc.Create(dto.CreateLessonRequest{Title: title})
		require.NoError(t, err)
	}
	count, err := lessonSvc.Count()
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}
