package api

import (
	"context"

	"github.com/fulldump/arrayinit/calibrate"
)

type calibrateRequest struct {
	Lengths []int `json:"lengths"`
	Rounds  int   `json:"rounds"`
	Apply   bool  `json:"apply"`
}

type calibrateResponse struct {
	*calibrate.Report
	Applied bool `json:"applied"`
}

func calibrateThreshold(ctx context.Context, input *calibrateRequest) (*calibrateResponse, error) {

	s := GetServicer(ctx)

	c := calibrate.Config{
		Lengths: input.Lengths,
		Rounds:  input.Rounds,
	}
	if c.Lengths == nil {
		c.Lengths = calibrate.DefaultLengths
	}
	if c.Rounds == 0 {
		c.Rounds = calibrate.DefaultRounds
	}

	report, err := s.Calibrate(ctx, c, input.Apply)
	if err != nil {
		return nil, err
	}

	return &calibrateResponse{
		Report:  report,
		Applied: input.Apply,
	}, nil
}
