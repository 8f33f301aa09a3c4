package lib

import "strings"

// Config is a flat map of dotted keys to arbitrary values, the settings
// idiom every tunable construction-time option in this module goes
// through (see malloc's applyConfig and log.SetLogger).
type Config map[string]interface{}

// Trim strips prefix off every key, used to turn a "malloc."-namespaced
// slice of the caller's Config into plain tunable names.
func (config Config) Trim(prefix string) Config {
	trimmed := make(Config)
	for key, value := range config {
		trimmed[strings.TrimPrefix(key, prefix)] = value
	}
	return trimmed
}

// Int64 returns the value at key as an int64. Every tunable this module
// builds a Config with is a Go int64 literal at the call site (arena
// size, list count, chunk ceiling — see malloc's applyConfig), so unlike
// a general-purpose settings accessor this does not also coerce
// float64/uint8/int32/... Panics if key is absent or not an int64.
func (c Config) Int64(key string) int64 {
	value, ok := c[key]
	if !ok {
		panicerr("missing config %q", key)
	}
	val, ok := value.(int64)
	if !ok {
		panicerr("config %q not an int64: %T", key, value)
	}
	return val
}
