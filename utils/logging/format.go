// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Format modes available
const (
	Plain Format = iota
	JSON
)

const (
	plainStr = "PLAIN"
	jsonStr  = "JSON"

	termTimeFormat = "[01-02|15:04:05.000]"
)

// Format modes available for log output
type Format int

// ToFormat chooses a format from its name
func ToFormat(f string) (Format, error) {
	switch strings.ToUpper(f) {
	case plainStr:
		return Plain, nil
	case jsonStr:
		return JSON, nil
	default:
		return Plain, fmt.Errorf("unknown log format: %q", f)
	}
}

func (f Format) String() string {
	switch f {
	case Plain:
		return plainStr
	case JSON:
		return jsonStr
	default:
		return unknownStr
	}
}

// Encoder returns the zap encoder that renders this format.
func (f Format) Encoder() zapcore.Encoder {
	config := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    levelEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	if f == JSON {
		config.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewJSONEncoder(config)
	}
	config.EncodeTime = zapcore.TimeEncoderOfLayout(termTimeFormat)
	config.ConsoleSeparator = " "
	return zapcore.NewConsoleEncoder(config)
}

func levelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(Level(l).String())
}
