package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/modelyard/reportdeck/pkg/models/api"
	"github.com/modelyard/reportdeck/pkg/models/domain"
	"github.com/modelyard/reportdeck/pkg/services/config"
)

type mockExplorer struct {
	mock.Mock
}

func (m *mockExplorer) ListProjects(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *mockExplorer) ListPeriods(ctx context.Context, project string) ([]domain.Period, error) {
	args := m.Called(ctx, project)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Period), args.Error(1)
}

func (m *mockExplorer) ListReports(ctx context.Context, project, period string) ([]domain.ReportRef, error) {
	args := m.Called(ctx, project, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReportRef), args.Error(1)
}

type mockLoader struct {
	mock.Mock
}

func (m *mockLoader) Load(ctx context.Context, ref domain.ReportRef) (*domain.Report, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

func TestWebAPI_Endpoints(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))

	mockExp := new(mockExplorer)
	mockLdr := new(mockLoader)

	cfg := Config{
		Addr:            ":8501",
		ShutdownTimeout: 10 * time.Second,
		Dependencies: Dependencies{
			Explorer: mockExp,
			Loader:   mockLdr,
			Links: config.LinksConfig{
				SourceCode: "https://example.com/source",
				Docs:       "https://example.com/docs",
			},
			Logger: logger,
		},
	}
	router := ConfigureRouter(cfg)
	testServer := httptest.NewServer(router)
	defer testServer.Close()

	ref := domain.ReportRef{
		Project: "bike_sharing",
		Period:  "2024-01-01_2024-01-31",
		Name:    "data_drift.html",
	}

	tests := []struct {
		name           string
		path           string
		setupMocks     func()
		expectedStatus int
		expected       interface{}
		parseResponse  func([]byte) (interface{}, error)
	}{
		{
			name: "ListProjects",
			path: "/api/v1/projects",
			setupMocks: func() {
				mockExp.On("ListProjects", mock.Anything).
					Return([]domain.Project{{Name: "bike_sharing"}}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expected:       []api.Project{{Name: "bike_sharing"}},
			parseResponse:  unmarshalResponse[[]api.Project](),
		},
		{
			name: "ListProjects_Empty",
			path: "/api/v1/projects",
			setupMocks: func() {
				mockExp.On("ListProjects", mock.Anything).
					Return(nil, domain.NewNotFoundError("projects", "")).Once()
			},
			expectedStatus: http.StatusNotFound,
			expected:       "projects not found\n",
			parseResponse: func(data []byte) (interface{}, error) {
				return string(data), nil
			},
		},
		{
			name: "ListPeriods",
			path: "/api/v1/projects/bike_sharing/periods",
			setupMocks: func() {
				mockExp.On("ListPeriods", mock.Anything, "bike_sharing").
					Return([]domain.Period{
						{Project: "bike_sharing", Name: "2024-01-01_2024-01-31"},
					}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expected: []api.Period{
				{Name: "2024-01-01_2024-01-31", DatesRange: "2024-01-01 - 2024-01-31"},
			},
			parseResponse: unmarshalResponse[[]api.Period](),
		},
		{
			name: "ListReports",
			path: "/api/v1/projects/bike_sharing/periods/2024-01-01_2024-01-31/reports",
			setupMocks: func() {
				mockExp.On("ListReports", mock.Anything, "bike_sharing", "2024-01-01_2024-01-31").
					Return([]domain.ReportRef{ref}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expected: []api.Report{
				{Name: "data_drift.html", DisplayName: "Data Drift"},
			},
			parseResponse: unmarshalResponse[[]api.Report](),
		},
		{
			name: "GetReport",
			path: "/api/v1/projects/bike_sharing/periods/2024-01-01_2024-01-31/reports/data_drift.html",
			setupMocks: func() {
				mockLdr.On("Load", mock.Anything, ref).
					Return(&domain.Report{
						Ref: ref,
						Parts: []domain.ReportPart{{
							Name:    "data_drift.html",
							Label:   "Data Drift",
							Content: "<html>drift</html>",
						}},
					}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expected: api.ReportView{
				Project:    "bike_sharing",
				Period:     "2024-01-01_2024-01-31",
				DatesRange: "2024-01-01 - 2024-01-31",
				Name:       "data_drift.html",
				Title:      "Data Drift",
				Composite:  false,
				Parts: []api.ReportPart{{
					Name:     "data_drift.html",
					Label:    "Data Drift",
					FrameURL: "/frames/bike_sharing/2024-01-01_2024-01-31/data_drift.html",
				}},
			},
			parseResponse: unmarshalResponse[api.ReportView](),
		},
		{
			name: "GetReport_Missing",
			path: "/api/v1/projects/bike_sharing/periods/2024-01-01_2024-01-31/reports/absent.html",
			setupMocks: func() {
				missing := ref
				missing.Name = "absent.html"
				mockLdr.On("Load", mock.Anything, missing).
					Return(nil, domain.NewNotFoundError("report", missing.Path())).Once()
			},
			expectedStatus: http.StatusNotFound,
			expected:       "report not found at \"bike_sharing/2024-01-01_2024-01-31/absent.html\"\n",
			parseResponse: func(data []byte) (interface{}, error) {
				return string(data), nil
			},
		},
		{
			name: "GetFrame",
			path: "/frames/bike_sharing/2024-01-01_2024-01-31/data_drift.html",
			setupMocks: func() {
				mockLdr.On("Load", mock.Anything, ref).
					Return(&domain.Report{
						Ref: ref,
						Parts: []domain.ReportPart{{
							Name:    "data_drift.html",
							Label:   "Data Drift",
							Content: "<html>drift</html>",
						}},
					}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expected:       "<html>drift</html>",
			parseResponse: func(data []byte) (interface{}, error) {
				return string(data), nil
			},
		},
		{
			name:           "Healthz",
			path:           "/healthz",
			setupMocks:     func() {},
			expectedStatus: http.StatusOK,
			expected:       "ok",
			parseResponse: func(data []byte) (interface{}, error) {
				return string(data), nil
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()
			resp, err := http.Get(testServer.URL + tc.path)
			require.NoError(t, err, "Failed to send request")
			defer resp.Body.Close()

			assert.Equal(t, tc.expectedStatus, resp.StatusCode, "Status code mismatch")

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err, "Failed to read response body")

			actual, err := tc.parseResponse(body)
			require.NoError(t, err, "Failed to parse response")

			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestWebAPI_DashboardPage(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))

	mockExp := new(mockExplorer)
	mockLdr := new(mockLoader)

	ref := domain.ReportRef{
		Project: "bike_sharing",
		Period:  "2024-01-01_2024-01-31",
		Name:    "data_drift.html",
	}

	mockExp.On("ListProjects", mock.Anything).
		Return([]domain.Project{{Name: "bike_sharing"}}, nil)
	mockExp.On("ListPeriods", mock.Anything, "bike_sharing").
		Return([]domain.Period{{Project: "bike_sharing", Name: "2024-01-01_2024-01-31"}}, nil)
	mockExp.On("ListReports", mock.Anything, "bike_sharing", "2024-01-01_2024-01-31").
		Return([]domain.ReportRef{ref}, nil)
	mockLdr.On("Load", mock.Anything, ref).
		Return(&domain.Report{
			Ref: ref,
			Parts: []domain.ReportPart{{
				Name:    "data_drift.html",
				Label:   "Data Drift",
				Content: "<html>drift</html>",
			}},
		}, nil)

	router := ConfigureRouter(Config{
		Dependencies: Dependencies{
			Explorer: mockExp,
			Loader:   mockLdr,
			Links: config.LinksConfig{
				SourceCode: "https://example.com/source",
				Docs:       "https://example.com/docs",
			},
			Logger: logger,
		},
	})
	testServer := httptest.NewServer(router)
	defer testServer.Close()

	resp, err := http.Get(testServer.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	page := string(body)

	assert.True(t, strings.Contains(page, `<option value="bike_sharing" selected>`))
	assert.True(t, strings.Contains(page, "2024-01-01 - 2024-01-31"))
	assert.True(t, strings.Contains(page, "Data Drift"))
	assert.True(t, strings.Contains(page, `src="/frames/bike_sharing/2024-01-01_2024-01-31/data_drift.html"`))
	assert.True(t, strings.Contains(page, "https://example.com/docs"))
}

func unmarshalResponse[T any]() func([]byte) (interface{}, error) {
	return func(data []byte) (interface{}, error) {
		var response T
		err := json.Unmarshal(data, &response)
		return response, err
	}
}
