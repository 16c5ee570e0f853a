package model

import (
	"fmt"
	"strings"
)

// Config is an ON/OFF command line switch.
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

// NewConfig reads s case-insensitively; unknown values are Off.
func NewConfig(s string) Config {
	return configName[strings.ToLower(s)]
}

func ParseConfig(s string) (Config, error) {
	c, ok := configName[strings.ToLower(s)]
	if !ok {
		return Off, fmt.Errorf("model: %q is neither ON nor OFF", s)
	}
	return c, nil
}

func (c Config) String() string {
	if c {
		return "ON"
	}
	return "OFF"
}

// Set lets a Config be bound with flag.Var.
func (c *Config) Set(s string) (err error) {
	*c, err = ParseConfig(s)
	return
}
