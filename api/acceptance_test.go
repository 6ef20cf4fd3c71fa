package api

import (
	"testing"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"

	"github.com/fulldump/arrayinit/arrayinit"
	"github.com/fulldump/arrayinit/service"
)

func TestAcceptance(t *testing.T) {

	biff.Alternative("Setup", func(a *biff.A) {

		s := service.NewService(&service.Config{
			Threshold: arrayinit.DefaultThreshold,
			MaxLength: 1000000,
		})

		b := Build(s, "test", "", "")
		b.WithInterceptors(
			PrettyErrorInterceptor,
			RecoverFromPanic,
		)

		api := apitest.NewWithHandler(b)

		service.Acceptance(a, func(method, path string) *apitest.Request {
			return api.Request(method, "/v1"+path)
		})

	})
}
