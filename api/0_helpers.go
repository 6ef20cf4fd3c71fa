package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/fulldump/box"

	"github.com/fulldump/arrayinit/arrayinit"
	"github.com/fulldump/arrayinit/calibrate"
	"github.com/fulldump/arrayinit/service"
)

var ErrUnauthorized = errors.New("unauthorized")

type PrettyError struct {
	Message     string `json:"message"`
	Description string `json:"description"`
}

func (p PrettyError) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"error": struct {
			Message     string `json:"message"`
			Description string `json:"description"`
		}{
			p.Message,
			p.Description,
		},
	})
}

func (p PrettyError) MarshalTo(w io.Writer) error {
	return json.NewEncoder(w).Encode(p)
}

func PrettyErrorInterceptor(next box.H) box.H {
	return func(ctx context.Context) {

		next(ctx)

		err := box.GetError(ctx)
		if err == nil {
			return
		}

		status, description := describeError(ctx, err)

		w := box.GetResponse(ctx)
		w.WriteHeader(status)
		PrettyError{
			Message:     err.Error(),
			Description: description,
		}.MarshalTo(w)
	}
}

func describeError(ctx context.Context, err error) (int, string) {

	if err == ErrUnauthorized {
		return http.StatusUnauthorized, "user is not authenticated"
	}

	if err == box.ErrResourceNotFound {
		return http.StatusNotFound, fmt.Sprintf("resource '%s' not found", box.GetRequest(ctx).URL.String())
	}

	if err == box.ErrMethodNotAllowed {
		return http.StatusMethodNotAllowed, fmt.Sprintf("method '%s' not allowed", box.GetRequest(ctx).Method)
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) ||
		errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return http.StatusBadRequest, "Malformed JSON"
	}

	switch {
	case errors.Is(err, arrayinit.ErrInvalidLength),
		errors.Is(err, arrayinit.ErrLengthOutOfRange),
		errors.Is(err, service.ErrLengthTooLarge):
		return http.StatusBadRequest, "length must be a non negative integer within the allowed range"
	case errors.Is(err, service.ErrInvalidThreshold):
		return http.StatusBadRequest, "threshold must be a non negative integer"
	case errors.Is(err, calibrate.ErrInvalidConfig):
		return http.StatusBadRequest, "invalid calibration parameters"
	}

	return http.StatusInternalServerError, "Unexpected error"
}
