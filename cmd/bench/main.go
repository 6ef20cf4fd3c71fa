package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/fulldump/goconfig"
)

type Config struct {
	Test    string `usage:"name of the test: ALL | CALIBRATE | ALLOCATE"`
	Base    string `usage:"base URL, empty starts a local server"`
	N       int64  `usage:"number of allocations"`
	Length  int    `usage:"length of every allocation"`
	Workers int    `usage:"number of workers"`
	Lengths string `usage:"comma separated lengths to calibrate"`
	Rounds  int    `usage:"calibration rounds per length"`
	Apply   bool   `usage:"apply the calibrated threshold on the server"`
}

var cleanups []func()

func main() {

	defer func() {
		fmt.Println("Cleaning up...")
		for _, cleanup := range cleanups {
			cleanup()
		}
	}()

	c := Config{
		Test:    "calibrate",
		Base:    "",
		N:       100_000,
		Length:  65537,
		Workers: 16,
		Lengths: "1024,4096,16384,32768,65536,131072,262144,1048576",
		Rounds:  20,
	}
	goconfig.Read(&c)

	switch strings.ToUpper(c.Test) {
	case "ALL":
		TestCalibrate(c)
		TestAllocate(c)
	case "CALIBRATE":
		TestCalibrate(c)
	case "ALLOCATE":
		TestAllocate(c)
	default:
		log.Fatalf("Unknown test %s", c.Test)
	}

}
