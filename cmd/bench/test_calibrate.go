package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fulldump/arrayinit/calibrate"
)

// TestCalibrate runs the calibration in process, or on the server at
// c.Base when it is set.
func TestCalibrate(c Config) {

	lengths, err := ParseLengths(c.Lengths)
	if err != nil {
		fmt.Println("ERROR:", err.Error())
		os.Exit(2)
	}

	e := json.NewEncoder(os.Stdout)
	e.SetIndent("", "    ")

	if c.Base == "" {
		report, err := calibrate.Run(context.Background(), calibrate.Config{
			Lengths: lengths,
			Rounds:  c.Rounds,
		})
		if err != nil {
			fmt.Println("ERROR: calibrate:", err.Error())
			os.Exit(3)
		}
		e.Encode(report)
		return
	}

	payload, _ := json.Marshal(JSON{
		"lengths": lengths,
		"rounds":  c.Rounds,
		"apply":   c.Apply,
	})
	resp, err := http.Post(c.Base+"/v1/threshold:calibrate", "application/json", bytes.NewReader(payload))
	if err != nil {
		fmt.Println("ERROR: do request:", err.Error())
		os.Exit(4)
	}
	defer resp.Body.Close()

	io.Copy(os.Stdout, resp.Body)
}
