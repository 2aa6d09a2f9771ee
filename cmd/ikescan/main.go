package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/op/go-logging"
	"github.com/urfave/cli"

	"krypt.co/ikescan/engine"
)

func scanCommand(c *cli.Context) error {
	ip := net.ParseIP(c.String("ip"))
	if ip == nil {
		return fmt.Errorf("ikescan: %q is not a valid IP address", c.String("ip"))
	}

	cfg := engine.Config{
		IP:                    ip,
		Port:                  c.Int("port"),
		Interval:              time.Duration(c.Int("interval")) * time.Millisecond,
		TransformNo:           c.Int("transform-no"),
		SleepOnTransformFound: time.Duration(c.Int("sleep-on-transform-found")) * time.Second,
	}

	log := engine.SetupLogging(logging.NOTICE)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig, ok := <-stop
		if ok {
			log.Notice("stopping with signal", sig)
			cancel()
		}
	}()

	accepted, err := engine.Run(ctx, cfg)
	if err != nil {
		return err
	}

	for _, t := range accepted {
		log.Noticef("accepted transform: encryption=%d key_length=%d hash=%d auth=%d group=%d",
			t.Encryption, t.KeyLength, t.Hash, t.Auth, t.Group)
	}
	return nil
}

func main() {
	app := cli.NewApp()
	app.Name = "ikescan"
	app.Usage = "enumerate the ISAKMP Phase 1 transforms an IKE responder accepts"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "ip", Usage: "target IPv4 or IPv6 address"},
		cli.IntFlag{Name: "port", Value: 500, Usage: "target UDP port"},
		cli.IntFlag{Name: "interval", Value: 500, Usage: "milliseconds between send ticks"},
		cli.IntFlag{Name: "transform-no", Value: 20, Usage: "candidate transforms per probe"},
		cli.IntFlag{Name: "sleep-on-transform-found", Value: 45, Usage: "seconds to pause sending after a positive response"},
	}
	app.Action = scanCommand
	app.Run(os.Args)
}
