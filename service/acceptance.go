package service

import (
	"net/http"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"
)

type JSON = map[string]interface{}

// Acceptance expects a fresh service with the default threshold (65536) and
// a MaxLength of 1000000.
func Acceptance(a *biff.A, apiRequest func(method, path string) *apitest.Request) {

	a.Alternative("Get threshold", func(a *biff.A) {
		resp := apiRequest("GET", "/threshold").Do()
		Save(resp, "Get threshold", `
			Returns the length above which arrays are allocated pre-sized.
		`)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), JSON{"threshold": 65536})
	})

	a.Alternative("Set threshold", func(a *biff.A) {
		resp := apiRequest("POST", "/threshold").
			WithBodyJson(JSON{"threshold": 10}).Do()
		Save(resp, "Set threshold", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), JSON{"threshold": 10})

		a.Alternative("Allocate uses the new threshold", func(a *biff.A) {
			resp := apiRequest("POST", "/arrays:allocate").
				WithBodyJson(JSON{"length": 11}).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), JSON{
				"length":    11,
				"defined":   0,
				"strategy":  "pre-sized",
				"threshold": 10,
			})
		})
	})

	a.Alternative("Set negative threshold", func(a *biff.A) {
		resp := apiRequest("POST", "/threshold").
			WithBodyJson(JSON{"threshold": -1}).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"error": JSON{
				"message":     "invalid threshold: -1",
				"description": "threshold must be a non negative integer",
			},
		})

		a.Alternative("Threshold is unchanged", func(a *biff.A) {
			resp := apiRequest("GET", "/threshold").Do()
			biff.AssertEqualJson(resp.BodyJson(), JSON{"threshold": 65536})
		})
	})

	a.Alternative("Allocate at threshold", func(a *biff.A) {
		resp := apiRequest("POST", "/arrays:allocate").
			WithBodyJson(JSON{"length": 65536}).Do()
		Save(resp, "Allocate array", `
			Allocates an array where every position is empty and reports the
			strategy used.
		`)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"length":    65536,
			"defined":   0,
			"strategy":  "build-resize",
			"threshold": 65536,
		})
	})

	a.Alternative("Allocate above threshold", func(a *biff.A) {
		resp := apiRequest("POST", "/arrays:allocate").
			WithBodyJson(JSON{"length": 65537}).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"length":    65537,
			"defined":   0,
			"strategy":  "pre-sized",
			"threshold": 65536,
		})
	})

	a.Alternative("Allocate with items", func(a *biff.A) {
		resp := apiRequest("POST", "/arrays:allocate").
			WithBodyJson(JSON{"length": 3, "items": true}).Do()
		Save(resp, "Allocate array with items", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"length":    3,
			"defined":   0,
			"strategy":  "build-resize",
			"threshold": 65536,
			"items":     []interface{}{nil, nil, nil},
		})
	})

	a.Alternative("Allocate empty", func(a *biff.A) {
		resp := apiRequest("POST", "/arrays:allocate").
			WithBodyJson(JSON{"length": 0, "items": true}).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"length":    0,
			"defined":   0,
			"strategy":  "build-resize",
			"threshold": 65536,
			"items":     []interface{}{},
		})
	})

	a.Alternative("Allocate negative length", func(a *biff.A) {
		resp := apiRequest("POST", "/arrays:allocate").
			WithBodyJson(JSON{"length": -1}).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"error": JSON{
				"message":     "invalid length: -1",
				"description": "length must be a non negative integer within the allowed range",
			},
		})
	})

	a.Alternative("Allocate too large", func(a *biff.A) {
		resp := apiRequest("POST", "/arrays:allocate").
			WithBodyJson(JSON{"length": 1000001}).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
	})

	a.Alternative("Allocate malformed body", func(a *biff.A) {
		resp := apiRequest("POST", "/arrays:allocate").
			WithBodyString(`{"length": `).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
	})

	a.Alternative("Calibrate and apply", func(a *biff.A) {
		resp := apiRequest("POST", "/threshold:calibrate").
			WithBodyJson(JSON{
				"lengths": []int{16, 1024, 4096},
				"rounds":  1,
				"apply":   true,
			}).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusOK)

		body := resp.BodyJsonMap()
		biff.AssertEqual(body["applied"], true)
		biff.AssertEqual(len(body["samples"].([]interface{})), 3)
		biff.AssertNotNil(body["id"])

		a.Alternative("Threshold follows the report", func(a *biff.A) {
			resp := apiRequest("GET", "/threshold").Do()
			biff.AssertEqualJson(resp.BodyJson(), JSON{"threshold": body["threshold"]})
		})
	})

	a.Alternative("Calibrate without apply", func(a *biff.A) {
		resp := apiRequest("POST", "/threshold:calibrate").
			WithBodyJson(JSON{
				"lengths": []int{16},
				"rounds":  1,
			}).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqual(resp.BodyJsonMap()["applied"], false)

		resp = apiRequest("GET", "/threshold").Do()
		biff.AssertEqualJson(resp.BodyJson(), JSON{"threshold": 65536})
	})

	a.Alternative("Calibrate with invalid rounds", func(a *biff.A) {
		resp := apiRequest("POST", "/threshold:calibrate").
			WithBodyJson(JSON{
				"lengths": []int{16},
				"rounds":  -1,
			}).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
	})

	a.Alternative("Calibrate too large", func(a *biff.A) {
		resp := apiRequest("POST", "/threshold:calibrate").
			WithBodyJson(JSON{
				"lengths": []int{2000000},
				"rounds":  1,
			}).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
	})
}
