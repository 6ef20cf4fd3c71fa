package service

import (
	"context"
	"errors"

	"github.com/fulldump/arrayinit/calibrate"
)

var ErrInvalidThreshold = errors.New("invalid threshold")
var ErrLengthTooLarge = errors.New("length too large")

type Servicer interface { // todo: review naming
	GetThreshold() int
	SetThreshold(threshold int) error
	Allocate(length int) (*Allocation, error)
	Calibrate(ctx context.Context, c calibrate.Config, apply bool) (*calibrate.Report, error)
}
