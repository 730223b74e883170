package service_test

import (
	"context"
	"errors"
	"testing"

	"novelhub/internal/http-api/models"
	"novelhub/internal/http-api/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- MOCKS ---

type MockRatingRepo struct {
	mock.Mock
}

func (m *MockRatingRepo) Upsert(ctx context.Context, rating *models.Rating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

func (m *MockRatingRepo) Delete(ctx context.Context, userID string, novelID int64) error {
	args := m.Called(ctx, userID, novelID)
	return args.Error(0)
}

func (m *MockRatingRepo) GetByUserAndNovel(ctx context.Context, userID string, novelID int64) (*models.Rating, error) {
	args := m.Called(ctx, userID, novelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockRatingRepo) Aggregate(ctx context.Context, novelID int64) (int64, float64, error) {
	args := m.Called(ctx, novelID)
	return args.Get(0).(int64), args.Get(1).(float64), args.Error(2)
}

func (m *MockRatingRepo) ApplyAggregate(ctx context.Context, novelID, count int64, average float64) error {
	args := m.Called(ctx, novelID, count, average)
	return args.Error(0)
}

type MockNovelGetter struct {
	mock.Mock
}

func (m *MockNovelGetter) GetByID(ctx context.Context, id int64) (*models.Novel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Novel), args.Error(1)
}

// --- TESTS ---

func TestRatingService_Rate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := new(MockRatingRepo)
		novels := new(MockNovelGetter)
		svc := service.NewRatingService(repo, novels)

		novels.On("GetByID", mock.Anything, int64(1)).Return(&models.Novel{ID: 1}, nil).Once()
		repo.On("Upsert", mock.Anything, mock.MatchedBy(func(r *models.Rating) bool {
			return r.UserID == "u1" && r.NovelID == 1 && r.Score == 4
		})).Return(nil).Once()
		repo.On("Aggregate", mock.Anything, int64(1)).Return(int64(3), 4.33, nil).Once()
		repo.On("ApplyAggregate", mock.Anything, int64(1), int64(3), 4.33).Return(nil).Once()

		err := svc.Rate(context.Background(), "u1", 1, 4)

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("ScoreOutOfRange", func(t *testing.T) {
		repo := new(MockRatingRepo)
		novels := new(MockNovelGetter)
		svc := service.NewRatingService(repo, novels)

		assert.ErrorIs(t, svc.Rate(context.Background(), "u1", 1, 0), service.ErrInvalidScore)
		assert.ErrorIs(t, svc.Rate(context.Background(), "u1", 1, 6), service.ErrInvalidScore)
		repo.AssertNotCalled(t, "Upsert")
	})

	t.Run("NovelMissing", func(t *testing.T) {
		repo := new(MockRatingRepo)
		novels := new(MockNovelGetter)
		svc := service.NewRatingService(repo, novels)

		novels.On("GetByID", mock.Anything, int64(99)).Return(nil, errors.New("not found")).Once()

		err := svc.Rate(context.Background(), "u1", 99, 3)
		assert.ErrorIs(t, err, service.ErrNovelNotFound)
	})
}

func TestRatingService_Unrate(t *testing.T) {
	repo := new(MockRatingRepo)
	novels := new(MockNovelGetter)
	svc := service.NewRatingService(repo, novels)

	repo.On("Delete", mock.Anything, "u1", int64(1)).Return(nil).Once()
	// empty aggregate after the last rating is removed
	repo.On("Aggregate", mock.Anything, int64(1)).Return(int64(0), 0.0, nil).Once()
	repo.On("ApplyAggregate", mock.Anything, int64(1), int64(0), 0.0).Return(nil).Once()

	err := svc.Unrate(context.Background(), "u1", 1)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}
