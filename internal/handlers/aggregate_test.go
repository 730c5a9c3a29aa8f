package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/user-directory/internal/models"
)

func TestAggregateUsersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		target       string
		mockSetup    func(m *MockAggregator)
		expectedCode int
		expectedWay  string
	}{
		{
			name:   "average age by city",
			target: "/users/aggregated?way=age",
			mockSetup: func(m *MockAggregator) {
				m.EXPECT().
					AvgAgeByCity(gomock.Any()).
					Return([]models.CityAvgAge{{City: "Berlin", AvgAge: 31.5}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedWay:  models.AggregateByAge,
		},
		{
			name:   "count by city",
			target: "/users/aggregated?way=count",
			mockSetup: func(m *MockAggregator) {
				m.EXPECT().
					CountByCity(gomock.Any()).
					Return([]models.CityCount{{City: "Berlin", Count: 3}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedWay:  models.AggregateByCount,
		},
		{
			name:         "unknown way",
			target:       "/users/aggregated?way=salary",
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "missing way",
			target:       "/users/aggregated",
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "internal server error",
			target: "/users/aggregated?way=age",
			mockSetup: func(m *MockAggregator) {
				m.EXPECT().
					AvgAgeByCity(gomock.Any()).
					Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockAggregator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewAggregateUsersHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode != http.StatusOK {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.NotEmpty(t, resp.Error)
				return
			}

			var resp AggregateResponse
			assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedWay, resp.Way)
			assert.NotNil(t, resp.Result)
		})
	}
}
