package api

import (
	"context"

	"github.com/fulldump/arrayinit/service"
)

type allocateRequest struct {
	Length int  `json:"length"`
	Items  bool `json:"items"` // include the array itself in the response
}

func allocateArray(ctx context.Context, input *allocateRequest) (*service.Allocation, error) {

	s := GetServicer(ctx)

	allocation, err := s.Allocate(input.Length)
	if err != nil {
		return nil, err
	}

	if !input.Items {
		allocation.Items = nil
	}

	return allocation, nil
}
