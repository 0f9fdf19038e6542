package logger

import (
	"fmt"
	"log/slog"
	"strings"
)

type Level int

const (
	InfoLevel Level = iota
	DebugLevel
	WarnLevel
	ErrorLevel
	DefaultLevel Level = InfoLevel
)

var levels = map[Level]slog.Level{
	DebugLevel: slog.LevelDebug,
	InfoLevel:  slog.LevelInfo,
	WarnLevel:  slog.LevelWarn,
	ErrorLevel: slog.LevelError,
}

var levelNames = map[string]Level{
	"debug": DebugLevel,
	"info":  InfoLevel,
	"warn":  WarnLevel,
	"error": ErrorLevel,
}

// ParseLevel maps "debug", "info", "warn" or "error" to a Level.
// The empty string is DefaultLevel.
func ParseLevel(s string) (Level, error) {
	if s == "" {
		return DefaultLevel, nil
	}
	l, ok := levelNames[strings.ToLower(s)]
	if !ok {
		return DefaultLevel, fmt.Errorf("unknown log level %q", s)
	}
	return l, nil
}

type Type int

const (
	TypeText Type = iota
	TypeJSON
)

// ParseType maps "text" or "json" to a Type. The empty string is TypeText.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return TypeText, nil
	case "json":
		return TypeJSON, nil
	}
	return TypeText, fmt.Errorf("unknown log format %q", s)
}
