package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"pathfinders/internal/models/response_models"
	"pathfinders/internal/quiz"
	"pathfinders/internal/services"
	"pathfinders/pkg/utils"
)

type stubAnalysisService struct {
	result response_models.AnalysisResult
	err    error
}

func (s *stubAnalysisService) Analyze(_ context.Context, _ quiz.Answers) (response_models.AnalysisResult, error) {
	return s.result, s.err
}

func (s *stubAnalysisService) Variant() response_models.AnalysisVariant {
	return response_models.VariantCoach
}

func analyzeRouter(analysis services.AnalysisServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	controller := NewQuizController(nil, analysis)
	r.POST("/api/quiz/analyze", controller.Analyze)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAnalyzeEndpointServesFallbackWithoutCredential(t *testing.T) {
	// The real analysis service with no backend configured.
	r := analyzeRouter(services.NewAnalysisService(nil, response_models.VariantCoach))

	longGoal := strings.Repeat("x", 120)
	body := `{"answers":{` +
		`"0":"debug_console",` +
		`"1":"stuck_google_first",` +
		`"2":"codebase_dive_in",` +
		`"3":["habit_tests","habit_code_review"],` +
		`"4":"feedback_fix_move_on",` +
		`"5":"` + longGoal + `"}}`

	w := postJSON(t, r, "/api/quiz/analyze", body)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Status string `json:"status"`
		Data   struct {
			Analysis string `json:"analysis"`
			Plan     string `json:"plan"`
			Fallback bool   `json:"fallback"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Equal(t, "success", envelope.Status)
	require.True(t, envelope.Data.Fallback)
	require.Equal(t, quiz.FallbackAnalysis, envelope.Data.Analysis)
	require.Contains(t, envelope.Data.Plan, strings.Repeat("x", 80)+"…")
	require.NotContains(t, envelope.Data.Plan, strings.Repeat("x", 81))
}

func TestAnalyzeEndpointRejectsMalformedBodies(t *testing.T) {
	r := analyzeRouter(services.NewAnalysisService(nil, response_models.VariantCoach))

	tests := []struct {
		name string
		body string
	}{
		{"not json", "analyze me please"},
		{"answer with object value", `{"answers":{"0":{"code":"debug_console"}}}`},
		{"non numeric key", `{"answers":{"first":"debug_console"}}`},
		{"null answer", `{"answers":{"0":"debug_console","5":null}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, r, "/api/quiz/analyze", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var envelope struct {
				Status string `json:"status"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
			require.Equal(t, "error", envelope.Status)
		})
	}
}

func TestAnalyzeEndpointReportsBackendFailure(t *testing.T) {
	r := analyzeRouter(&stubAnalysisService{err: utils.ErrAIUnavailable})

	w := postJSON(t, r, "/api/quiz/analyze", `{"answers":{"0":"debug_console"}}`)
	require.Equal(t, http.StatusBadGateway, w.Code)
}
