package handler

import (
	"bytes"
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

	"github.com/212121-ts/masters-tournament-app/internal/admin/service"
	adminlogModel "github.com/212121-ts/masters-tournament-app/internal/adminlog/model"
	golferModel "github.com/212121-ts/masters-tournament-app/internal/golfer/model"
	"github.com/212121-ts/masters-tournament-app/internal/seed"
	tournamentModel "github.com/212121-ts/masters-tournament-app/internal/tournament/model"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) UpsertTournament(ctx context.Context, req *tournamentModel.UpsertTournamentRequest) (*tournamentModel.TournamentResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tournamentModel.TournamentResponse), args.Error(1)
}

func (m *mockService) UpsertGolfer(ctx context.Context, req *golferModel.UpsertGolferRequest) (*golferModel.GolferResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*golferModel.GolferResponse), args.Error(1)
}

func (m *mockService) DeleteTournament(ctx context.Context, year int) error {
	args := m.Called(ctx, year)
	return args.Error(0)
}

func (m *mockService) ReloadData(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *mockService) ExportData(ctx context.Context) (*seed.File, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*seed.File), args.Error(1)
}

func (m *mockService) RecentLogs(ctx context.Context) ([]adminlogModel.AdminLog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]adminlogModel.AdminLog), args.Error(1)
}

var _ service.Service = (*mockService)(nil)

func setupRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	admin := router.Group("/admin")
	admin.POST("/tournaments", h.UpsertTournament)
	admin.DELETE("/tournaments/:year", h.DeleteTournament)
	admin.POST("/golfers", h.UpsertGolfer)
	admin.POST("/reload-data", h.ReloadData)
	admin.GET("/export-data", h.ExportData)
	admin.GET("/logs", h.GetLogs)
	return router
}

func TestHandler_UpsertTournament(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		router := setupRouter(New(mockSvc, zap.NewNop().Sugar()))

		req := &tournamentModel.UpsertTournamentRequest{
			Year: 2024, Winner: "Scottie Scheffler", Score: 277, ToPar: -11, Nationality: "USA",
		}
		resp := &tournamentModel.TournamentResponse{
			ID: 1, Year: 2024, Winner: "Scottie Scheffler", Score: 277, ToPar: -11, Nationality: "USA",
		}
		mockSvc.On("UpsertTournament", mock.Anything, req).Return(resp, nil)

		body, _ := json.Marshal(req)
		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("POST", "/admin/tournaments", bytes.NewBuffer(body))
		httpReq.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusOK, w.Code)
		var response tournamentModel.TournamentResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Equal(t, 2024, response.Year)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing required fields", func(t *testing.T) {
		mockSvc := new(mockService)
		router := setupRouter(New(mockSvc, zap.NewNop().Sugar()))

		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("POST", "/admin/tournaments", bytes.NewBufferString(`{"score": 277}`))
		httpReq.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var response ErrorResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Equal(t, "INVALID_REQUEST", response.Error.Code)
		mockSvc.AssertNotCalled(t, "UpsertTournament", mock.Anything, mock.Anything)
	})
}

func TestHandler_DeleteTournament(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		router := setupRouter(New(mockSvc, zap.NewNop().Sugar()))

		mockSvc.On("DeleteTournament", mock.Anything, 2024).Return(nil)

		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("DELETE", "/admin/tournaments/2024", nil)
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Tournament deleted"}`, w.Body.String())
		mockSvc.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc := new(mockService)
		router := setupRouter(New(mockSvc, zap.NewNop().Sugar()))

		mockSvc.On("DeleteTournament", mock.Anything, 1800).Return(tournamentModel.ErrTournamentNotFound)

		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("DELETE", "/admin/tournaments/1800", nil)
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusNotFound, w.Code)
		var response ErrorResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Equal(t, "NOT_FOUND", response.Error.Code)
	})

	t.Run("non-integer year", func(t *testing.T) {
		mockSvc := new(mockService)
		router := setupRouter(New(mockSvc, zap.NewNop().Sugar()))

		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("DELETE", "/admin/tournaments/recent", nil)
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "DeleteTournament", mock.Anything, mock.Anything)
	})
}

func TestHandler_UpsertGolfer(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		router := setupRouter(New(mockSvc, zap.NewNop().Sugar()))

		req := &golferModel.UpsertGolferRequest{Name: "Jon Rahm", Bio: "Spanish star.", TotalMajors: 2}
		resp := &golferModel.GolferResponse{ID: 1, Name: "Jon Rahm", Bio: "Spanish star.", TotalMajors: 2, MastersWins: []int{2023}}
		mockSvc.On("UpsertGolfer", mock.Anything, req).Return(resp, nil)

		body, _ := json.Marshal(req)
		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("POST", "/admin/golfers", bytes.NewBuffer(body))
		httpReq.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusOK, w.Code)
		var response golferModel.GolferResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Equal(t, []int{2023}, response.MastersWins)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing name", func(t *testing.T) {
		mockSvc := new(mockService)
		router := setupRouter(New(mockSvc, zap.NewNop().Sugar()))

		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("POST", "/admin/golfers", bytes.NewBufferString(`{"bio": "no name"}`))
		httpReq.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "UpsertGolfer", mock.Anything, mock.Anything)
	})
}

func TestHandler_ReloadData(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		router := setupRouter(New(mockSvc, zap.NewNop().Sugar()))

		mockSvc.On("ReloadData", mock.Anything).Return("Data successfully reloaded from masters_data.json", nil)

		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("POST", "/admin/reload-data", nil)
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"Data successfully reloaded from masters_data.json"}`, w.Body.String())
	})

	t.Run("missing data file", func(t *testing.T) {
		mockSvc := new(mockService)
		router := setupRouter(New(mockSvc, zap.NewNop().Sugar()))

		mockSvc.On("ReloadData", mock.Anything).Return("", service.ErrDataFileNotFound)

		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("POST", "/admin/reload-data", nil)
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusNotFound, w.Code)
		var response ErrorResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Equal(t, "NOT_FOUND", response.Error.Code)
	})

	t.Run("reload failure surfaces the cause", func(t *testing.T) {
		mockSvc := new(mockService)
		router := setupRouter(New(mockSvc, zap.NewNop().Sugar()))

		mockSvc.On("ReloadData", mock.Anything).Return("", assert.AnError)

		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("POST", "/admin/reload-data", nil)
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		var response ErrorResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Equal(t, "INTERNAL_ERROR", response.Error.Code)
		assert.Equal(t, assert.AnError.Error(), response.Error.Message)
	})
}

func TestHandler_ExportData(t *testing.T) {
	mockSvc := new(mockService)
	router := setupRouter(New(mockSvc, zap.NewNop().Sugar()))

	out := &seed.File{
		Tournaments: []seed.TournamentRecord{
			{Year: 2024, Winner: "Scottie Scheffler", Score: 277, ToPar: -11, Nationality: "USA"},
		},
		Golfers: []seed.GolferRecord{},
	}
	mockSvc.On("ExportData", mock.Anything).Return(out, nil)

	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest("GET", "/admin/export-data", nil)
	router.ServeHTTP(w, httpReq)

	assert.Equal(t, http.StatusOK, w.Code)
	var response seed.File
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	require.Len(t, response.Tournaments, 1)
	assert.Equal(t, 2024, response.Tournaments[0].Year)
}

func TestHandler_GetLogs(t *testing.T) {
	mockSvc := new(mockService)
	router := setupRouter(New(mockSvc, zap.NewNop().Sugar()))

	entries := []adminlogModel.AdminLog{
		{ID: 2, Action: adminlogModel.ActionDelete, Details: "Tournament 2024: Scottie Scheffler removed"},
		{ID: 1, Action: adminlogModel.ActionInsert, Details: "Tournament 2024: Scottie Scheffler (277, -11)"},
	}
	mockSvc.On("RecentLogs", mock.Anything).Return(entries, nil)

	w := httptest.NewRecorder()
	httpReq, _ := http.NewRequest("GET", "/admin/logs", nil)
	router.ServeHTTP(w, httpReq)

	assert.Equal(t, http.StatusOK, w.Code)
	var response []adminlogModel.AdminLog
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	require.Len(t, response, 2)
	assert.Equal(t, adminlogModel.ActionDelete, response[0].Action)
}
