package model

import "strings"

// Config is an On/Off command line switch.
type Config bool

const (
	On  Config = true
	Off Config = false
)

var configName = map[string]Config{
	"on":    On,
	"1":     On,
	"true":  On,
	"off":   Off,
	"0":     Off,
	"false": Off,
}

// NewConfig parses s case-insensitively. Unknown values are Off.
func NewConfig(s string) Config {
	return configName[strings.ToLower(strings.TrimSpace(s))]
}

func (c Config) String() string {
	if c {
		return "On"
	}
	return "Off"
}
