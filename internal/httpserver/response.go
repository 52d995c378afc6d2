package httpserver

import "residence-facilities/internal/domain"

type categoryResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

type listResponse[T any] struct {
	Count   int `json:"count"`
	Results []T `json:"results"`
}

type facilityListResponse struct {
	Category string            `json:"category"`
	Count    int               `json:"count"`
	Results  []domain.Facility `json:"results"`
}

type errorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

func toCategoryResponses(cats []domain.Category, counts map[string]int) []categoryResponse {
	out := make([]categoryResponse, 0, len(cats))
	for _, c := range cats {
		out = append(out, categoryResponse{ID: c.ID, Label: c.Label, Count: counts[c.ID]})
	}
	return out
}
