package engine

import (
	"net"
	"time"
)

// Config holds the five driver inputs a scan needs. Run does not validate
// it; cmd/ikescan checks only that the IP parses.
type Config struct {
	IP                    net.IP
	Port                  int
	Interval              time.Duration
	TransformNo           int
	SleepOnTransformFound time.Duration
}
