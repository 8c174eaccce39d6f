package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/212121-ts/masters-tournament-app/internal/stats/model"
	"github.com/212121-ts/masters-tournament-app/internal/stats/service"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetTournamentStatistics(ctx context.Context) (*model.TournamentStatistics, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TournamentStatistics), args.Error(1)
}

var _ service.Service = (*mockService)(nil)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestHandler_GetStats(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.GET("/stats", handler.GetStats)

		stats := &model.TournamentStatistics{
			TotalYears:     5,
			UniqueWinners:  4,
			BestScore:      268,
			MostWins:       2,
			MostWinsGolfer: "Scottie Scheffler",
		}
		mockSvc.On("GetTournamentStatistics", mock.Anything).Return(stats, nil)

		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("GET", "/stats", nil)
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusOK, w.Code)
		var response model.TournamentStatistics
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Equal(t, 5, response.TotalYears)
		assert.Equal(t, 268, response.BestScore)
		assert.Equal(t, "Scottie Scheffler", response.MostWinsGolfer)
		mockSvc.AssertExpectations(t)
	})

	t.Run("service error", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.GET("/stats", handler.GetStats)

		mockSvc.On("GetTournamentStatistics", mock.Anything).Return(nil, assert.AnError)

		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("GET", "/stats", nil)
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var response ErrorResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Equal(t, "INTERNAL_ERROR", response.Error.Code)
	})
}
