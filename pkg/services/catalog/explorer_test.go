package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/modelyard/reportdeck/pkg/models/domain"
	"github.com/modelyard/reportdeck/pkg/store/artifact"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) List(ctx context.Context, path string) ([]artifact.Entry, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]artifact.Entry), args.Error(1)
}

func (m *mockStore) Stat(ctx context.Context, path string) (artifact.Info, error) {
	args := m.Called(ctx, path)
	return args.Get(0).(artifact.Info), args.Error(1)
}

func (m *mockStore) Read(ctx context.Context, path string) ([]byte, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func TestListProjects(t *testing.T) {
	tests := []struct {
		name        string
		setupMock   func(*mockStore)
		expected    []domain.Project
		expectError bool
	}{
		{
			name: "directories become projects, files are skipped",
			setupMock: func(m *mockStore) {
				m.On("List", mock.Anything, "").Return([]artifact.Entry{
					{Name: "bike_sharing", Dir: true},
					{Name: "readme.txt", Dir: false},
					{Name: "taxi_demand", Dir: true},
				}, nil)
			},
			expected: []domain.Project{{Name: "bike_sharing"}, {Name: "taxi_demand"}},
		},
		{
			name: "empty listing is a not found error",
			setupMock: func(m *mockStore) {
				m.On("List", mock.Anything, "").Return([]artifact.Entry{}, nil)
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(mockStore)
			tt.setupMock(store)
			explorer := NewExplorer(store)

			projects, err := explorer.ListProjects(context.Background())

			if tt.expectError {
				require.Error(t, err)
				assert.True(t, domain.IsNotFound(err))
				assert.NotEmpty(t, err.Error())
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, projects)
			}
			store.AssertExpectations(t)
		})
	}
}

func TestListPeriods(t *testing.T) {
	tests := []struct {
		name        string
		setupMock   func(*mockStore)
		expected    []domain.Period
		expectError bool
	}{
		{
			name: "periods for a project",
			setupMock: func(m *mockStore) {
				m.On("List", mock.Anything, "bike_sharing").Return([]artifact.Entry{
					{Name: "2024-01-01_2024-01-31", Dir: true},
					{Name: "2024-02-01_2024-02-29", Dir: true},
				}, nil)
			},
			expected: []domain.Period{
				{Project: "bike_sharing", Name: "2024-01-01_2024-01-31"},
				{Project: "bike_sharing", Name: "2024-02-01_2024-02-29"},
			},
		},
		{
			name: "missing project is a not found error",
			setupMock: func(m *mockStore) {
				m.On("List", mock.Anything, "bike_sharing").Return([]artifact.Entry(nil), nil)
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(mockStore)
			tt.setupMock(store)
			explorer := NewExplorer(store)

			periods, err := explorer.ListPeriods(context.Background(), "bike_sharing")

			if tt.expectError {
				require.Error(t, err)
				assert.True(t, domain.IsNotFound(err))
				assert.NotEmpty(t, err.Error())
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, periods)
			}
			store.AssertExpectations(t)
		})
	}
}

func TestListReports(t *testing.T) {
	tests := []struct {
		name        string
		setupMock   func(*mockStore)
		expected    []domain.ReportRef
		expectError bool
	}{
		{
			name: "files and directories are both reports",
			setupMock: func(m *mockStore) {
				m.On("List", mock.Anything, "bike_sharing/2024-01-01_2024-01-31").Return([]artifact.Entry{
					{Name: "data_drift.html", Dir: false},
					{Name: "model_performance", Dir: true},
				}, nil)
			},
			expected: []domain.ReportRef{
				{Project: "bike_sharing", Period: "2024-01-01_2024-01-31", Name: "data_drift.html"},
				{Project: "bike_sharing", Period: "2024-01-01_2024-01-31", Name: "model_performance"},
			},
		},
		{
			name: "empty period is a not found error",
			setupMock: func(m *mockStore) {
				m.On("List", mock.Anything, "bike_sharing/2024-01-01_2024-01-31").
					Return([]artifact.Entry{}, nil)
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(mockStore)
			tt.setupMock(store)
			explorer := NewExplorer(store)

			reports, err := explorer.ListReports(context.Background(), "bike_sharing", "2024-01-01_2024-01-31")

			if tt.expectError {
				require.Error(t, err)
				assert.True(t, domain.IsNotFound(err))
				assert.NotEmpty(t, err.Error())
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, reports)
			}
			store.AssertExpectations(t)
		})
	}
}
