package api

import (
	"bytes"
	"compress/gzip"
	"io"
	"log"
	"net/http"
	"strings"
	"testing"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"
	"github.com/fulldump/box"
)

func TestInterceptors(t *testing.T) {

	biff.Alternative("Interceptors", func(a *biff.A) {

		b := box.NewBox()
		b.Resource("/panic").WithActions(box.Get(func() string {
			panic("boom")
		}))
		b.Resource("/payload").WithActions(box.Get(func() []string {
			return []string{"hello", "world"}
		}))

		logs := &bytes.Buffer{}
		b.WithInterceptors(
			AccessLog(log.New(logs, "ACCESS: ", 0)),
			Compression,
			PrettyErrorInterceptor,
			RecoverFromPanic,
		)

		api := apitest.NewWithHandler(b)

		a.Alternative("Panic becomes a 500", func(a *biff.A) {
			resp := api.Request("GET", "/panic").Do()
			biff.AssertEqual(resp.StatusCode, http.StatusInternalServerError)
			biff.AssertEqualJson(resp.BodyJson(), map[string]any{
				"error": map[string]any{
					"message":     "panic: boom",
					"description": "Unexpected error",
				},
			})
		})

		a.Alternative("Access log", func(a *biff.A) {
			api.Request("GET", "/payload").Do().BodyClose()
			biff.AssertTrue(strings.Contains(logs.String(), "GET /payload"))
		})

		a.Alternative("Gzip when accepted", func(a *biff.A) {
			transport := &http.Transport{DisableCompression: true}
			resp := api.Request("GET", "/payload").
				WithHeader("Accept-Encoding", "gzip").
				WithHttpClient(&http.Client{Transport: transport}).
				Do()
			biff.AssertEqual(resp.Header.Get("Content-Encoding"), "gzip")

			gz, err := gzip.NewReader(bytes.NewReader(resp.BodyBytes()))
			biff.AssertNil(err)
			body, err := io.ReadAll(gz)
			biff.AssertNil(err)
			biff.AssertEqual(strings.TrimSpace(string(body)), `["hello","world"]`)
		})
	})
}
