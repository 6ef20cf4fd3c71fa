package api

import (
	"context"
)

type setThresholdRequest struct {
	Threshold int `json:"threshold"`
}

func setThreshold(ctx context.Context, input *setThresholdRequest) (*thresholdResponse, error) {

	s := GetServicer(ctx)

	err := s.SetThreshold(input.Threshold)
	if err != nil {
		return nil, err
	}

	return &thresholdResponse{
		Threshold: s.GetThreshold(),
	}, nil
}
