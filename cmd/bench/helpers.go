package main

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/fulldump/arrayinit/bootstrap"
	"github.com/fulldump/arrayinit/configuration"
)

type JSON = map[string]any

func Parallel(workers int, f func()) {
	wg := &sync.WaitGroup{}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f()
		}()
	}
	wg.Wait()
}

func ParseLengths(s string) ([]int, error) {
	lengths := []int{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("bad length '%s': %w", part, err)
		}
		lengths = append(lengths, n)
	}
	return lengths, nil
}

func CreateServer(c *Config) (start, stop func()) {
	conf := configuration.Default()
	conf.HttpAddr = "127.0.0.1:8089"
	conf.EnableCompression = false
	c.Base = "http://" + conf.HttpAddr

	start, stop = bootstrap.Bootstrap(conf)
	cleanups = append(cleanups, stop)
	return
}
