package api

import (
	"context"
)

type thresholdResponse struct {
	Threshold int `json:"threshold"`
}

func getThreshold(ctx context.Context) (*thresholdResponse, error) {
	s := GetServicer(ctx)
	return &thresholdResponse{
		Threshold: s.GetThreshold(),
	}, nil
}
