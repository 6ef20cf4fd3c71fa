package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"
)

func TestAllocate(c Config) {

	if c.Base == "" {
		start, stop := CreateServer(&c)
		defer stop()
		go start()
		time.Sleep(100 * time.Millisecond)
	}

	transport := &http.Transport{
		MaxConnsPerHost:     1024,
		MaxIdleConns:        1024,
		MaxIdleConnsPerHost: 1024,
	}
	defer transport.CloseIdleConnections()

	client := &http.Client{
		Transport: transport,
		Timeout:   10 * time.Second,
	}

	payload, _ := json.Marshal(JSON{"length": c.Length})
	url := c.Base + "/v1/arrays:allocate"

	items := c.N
	failed := int64(0)

	t0 := time.Now()
	Parallel(c.Workers, func() {
		for atomic.AddInt64(&items, -1) >= 0 {
			resp, err := client.Post(url, "application/json", bytes.NewReader(payload))
			if err != nil {
				fmt.Println("ERROR: do request:", err.Error())
				atomic.AddInt64(&failed, 1)
				continue
			}
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				fmt.Println("ERROR: bad status:", resp.Status)
				atomic.AddInt64(&failed, 1)
			}
		}
	})

	took := time.Since(t0)
	fmt.Println("allocations:", c.N, "failed:", failed)
	fmt.Println("took:", took)
	fmt.Printf("Throughput: %.2f allocations/sec\n", float64(c.N)/took.Seconds())
}
