package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	PORT        = "PORT"
	LOGLEVEL    = "LOG_LEVEL"
	MAINTENANCE = "MAINTENANCE"
	RESERVE     = "RESERVE"
	MAXITEMS    = "MAX_ITEMS"
	MAXRECORD   = "MAX_RECORD"

	defaultPort        = 9889
	defaultLogLevel    = LogLevelInfo
	defaultMaintenance = 10 * time.Minute
	defaultReserve     = 1024
	defaultMaxItems    = 1000000
	defaultMaxRecord   = 1 * 1024 * 1024
)

type LogLevel string

const (
	LogLevelDebug   LogLevel = "debug"
	LogLevelInfo    LogLevel = "info"
	LogLevelWarning LogLevel = "warning"
	LogLevelError   LogLevel = "error"
)

type Config interface {
	Port() int
	LogLevel() LogLevel
	Maintenance() time.Duration
	Reserve() int
	MaxItems() int
	MaxRecord() int
}

type EnvConfig struct {
	port        int
	logLevel    LogLevel
	maintenance time.Duration
	reserve     int
	maxItems    int
	maxRecord   int
}

func NewConfigFromEnv() (Config, error) {
	port, err := getIntOr(PORT, defaultPort)
	if err != nil {
		return nil, err
	}

	maintenance, err := getDurationOr(MAINTENANCE, defaultMaintenance)
	if err != nil {
		return nil, err
	}

	reserve, err := getIntOr(RESERVE, defaultReserve)
	if err != nil {
		return nil, err
	}

	maxItems, err := getIntOr(MAXITEMS, defaultMaxItems)
	if err != nil {
		return nil, err
	}

	maxRecord, err := getIntOr(MAXRECORD, defaultMaxRecord)
	if err != nil {
		return nil, err
	}

	return &EnvConfig{
		port:        port,
		logLevel:    getLogLevelOr(LOGLEVEL, defaultLogLevel),
		maintenance: maintenance,
		reserve:     reserve,
		maxItems:    maxItems,
		maxRecord:   maxRecord,
	}, nil
}

func (o *EnvConfig) Port() int {
	return o.port
}

func (o *EnvConfig) LogLevel() LogLevel {
	return o.logLevel
}

func (o *EnvConfig) Maintenance() time.Duration {
	return o.maintenance
}

func (o *EnvConfig) Reserve() int {
	return o.reserve
}

func (o *EnvConfig) MaxItems() int {
	return o.maxItems
}

func (o *EnvConfig) MaxRecord() int {
	return o.maxRecord
}

func getIntOr(key string, defV int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defV, nil
	}

	return strconv.Atoi(v)
}

func getDurationOr(key string, defV time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return defV, nil
	}

	return time.ParseDuration(v)
}

func getLogLevelOr(key string, defV LogLevel) LogLevel {
	v := os.Getenv(key)
	if v == "" {
		return defV
	}

	return LogLevel(strings.ToLower(v))
}
