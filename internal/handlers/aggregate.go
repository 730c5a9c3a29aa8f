package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/user-directory/internal/logger"
	"github.com/sbilibin2017/user-directory/internal/models"
)

// Aggregator defines the interface that the aggregation service must implement.
type Aggregator interface {
	AvgAgeByCity(ctx context.Context) ([]models.CityAvgAge, error)
	CountByCity(ctx context.Context) ([]models.CityCount, error)
}

// AggregateResponse represents a grouped aggregation result
// swagger:model AggregateResponse
type AggregateResponse struct {
	// Grouping mode, "age" or "count"
	// default: age
	Way string `json:"way"`

	// Aggregated rows grouped by city
	Result interface{} `json:"result"`
}

// NewAggregateUsersHandler returns an HTTP handler for per-city aggregations.
// @Summary Aggregate users by city
// @Description way=age returns the per-city average age, way=count the per-city user count
// @Tags users
// @Produce json
// @Param way query string true "Grouping mode: age or count"
// @Success 200 {object} handlers.AggregateResponse "Grouped aggregate"
// @Failure 400 {object} handlers.ErrorResponse "Unknown grouping mode"
// @Router /users/aggregated [get]
func NewAggregateUsersHandler(svc Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		way := r.URL.Query().Get("way")

		var (
			result interface{}
			err    error
		)
		switch way {
		case models.AggregateByAge:
			result, err = svc.AvgAgeByCity(r.Context())
		case models.AggregateByCount:
			result, err = svc.CountByCity(r.Context())
		default:
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error:  "Unknown aggregation mode",
				Fields: map[string]string{"way": "must be \"age\" or \"count\""},
			})
			return
		}

		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(AggregateResponse{
			Way:    way,
			Result: result,
		})
	}
}
