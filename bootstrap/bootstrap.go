package bootstrap

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/fulldump/box"

	"github.com/fulldump/arrayinit/api"
	"github.com/fulldump/arrayinit/calibrate"
	"github.com/fulldump/arrayinit/configuration"
	"github.com/fulldump/arrayinit/service"
)

var VERSION = "dev"

func Bootstrap(c *configuration.Configuration) (start, stop func()) {

	s := service.NewService(&service.Config{
		Threshold: c.Threshold,
		MaxLength: c.MaxLength,
	})

	if c.Calibrate {
		report, err := s.Calibrate(context.Background(), calibrate.Config{
			Lengths: calibrate.DefaultLengths,
			Rounds:  calibrate.DefaultRounds,
		}, true)
		if err != nil {
			log.Println("ERROR: calibrate:", err.Error())
		} else {
			log.Println("calibrated threshold", report.Threshold, "run", report.ID)
		}
	}
	log.Println("threshold", s.GetThreshold())

	b := api.Build(s, VERSION, c.ApiKey, c.ApiSecret)
	if c.EnableCompression {
		b.WithInterceptors(api.Compression)
	}
	b.WithInterceptors(
		api.AccessLog(log.New(os.Stdout, "ACCESS: ", log.Lshortfile)),
		api.PrettyErrorInterceptor,
		api.RecoverFromPanic,
	)

	server := &http.Server{
		Addr:    c.HttpAddr,
		Handler: box.Box2Http(b),
	}

	ln, err := net.Listen("tcp", c.HttpAddr)
	if err != nil {
		log.Println("ERROR:", err.Error())
		os.Exit(-1)
	}
	log.Println("listening on", c.HttpAddr)

	stop = func() {
		server.Shutdown(context.Background())
	}

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		for {
			sig := <-signalChan
			fmt.Println("Signal received", sig.String())
			stop()
		}
	}()

	start = func() {
		err := server.Serve(ln)
		if err != nil && err != http.ErrServerClosed {
			fmt.Println(err.Error())
		}
	}

	return
}
