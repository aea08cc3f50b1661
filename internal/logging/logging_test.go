package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewHonorsLevel(t *testing.T) {
	logger, err := New("error", false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if logger.Core().Enabled(zapcore.WarnLevel) {
		t.Fatalf("warn enabled at error level")
	}
	if !logger.Core().Enabled(zapcore.ErrorLevel) {
		t.Fatalf("error disabled at error level")
	}
}

func TestNewVerboseForcesDebug(t *testing.T) {
	logger, err := New("error", true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("debug disabled in verbose mode")
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New("chatty", false); err == nil {
		t.Fatalf("New expected error for unknown level")
	}
}

func TestNewDefaultsToWarn(t *testing.T) {
	logger, err := New("", false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if logger.Core().Enabled(zapcore.InfoLevel) || !logger.Core().Enabled(zapcore.WarnLevel) {
		t.Fatalf("default level is not warn")
	}
}
