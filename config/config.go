// Package config exposes the runtime configuration of the panel, read from
// environment variables with sensible defaults for a single-host deployment.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("POSEIDON_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("POSEIDON_DEBUG") == "true"
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("POSEIDON_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "/etc/poseidon"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("POSEIDON_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "/var/log"
	}
	return logFolderPath
}

func GetListen() string {
	return os.Getenv("POSEIDON_LISTEN")
}

func GetPort() int {
	port, err := strconv.Atoi(os.Getenv("POSEIDON_PORT"))
	if err != nil || port <= 0 || port > 65535 {
		return 8080
	}
	return port
}

// GetSessionSecret returns the cookie-store secret. Empty means the server
// generates a random one at startup, which invalidates sessions on restart.
func GetSessionSecret() string {
	return os.Getenv("POSEIDON_SESSION_SECRET")
}
