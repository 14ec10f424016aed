package constants

import (
	"os"
	"strconv"
	"strings"
)

// Staff defaults.
const (
	DefaultTempo           = 120
	DefaultBeatsPerMeasure = 4
	DefaultBeatNoteDenom   = 4
	DefaultQuantizerDenom  = 16
	DefaultOctave          = 4
	DefaultVelocity        = 100
	DefaultChannel         = 1
)

// Note-off fires at position + duration * gate.
const (
	DefaultGateNum   = 9
	DefaultGateDenom = 10
)

// Pulses per quarter note for the clock element, the MIDI sync rate.
const DefaultPPQN = 24

// Denominators are capped so long operation chains can't blow up precision.
const DenominatorLimit = 1_000_000

const defaultDevices = "Microsoft,FLUID,Apple"

func GetDevices() []string {
	devices := os.Getenv("JMK_DEVICES")
	if devices == "" {
		devices = defaultDevices
	}
	parts := strings.Split(devices, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			res = append(res, trimmed)
		}
	}
	return res
}

func GetTempo() int {
	bpm := os.Getenv("JMK_TEMPO")
	if bpm == "" {
		return DefaultTempo
	}
	n, err := strconv.Atoi(bpm)
	if err != nil || n < 1 {
		return DefaultTempo
	}
	return n
}

func GetPort() string {
	port := os.Getenv("JMK_PORT")
	if port != "" {
		return port
	}
	return "8080"
}
