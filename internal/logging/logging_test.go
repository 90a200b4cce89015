package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mliezun/lox/internal/config"
	"github.com/sirupsen/logrus"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(config.LogConfig{Level: "debug", Format: "json"}, &buf)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if logger.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v, want debug", logger.GetLevel())
	}

	logger.WithField("tokens", 6).Debug("scanned")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not json: %v\n%s", err, buf.String())
	}
	if entry["msg"] != "scanned" {
		t.Errorf("msg = %v, want scanned", entry["msg"])
	}
	if entry["tokens"] != float64(6) {
		t.Errorf("tokens = %v, want 6", entry["tokens"])
	}
}

func TestNew_TextFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(config.LogConfig{Level: "warn", Format: "text"}, &buf)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info entry should be filtered:\n%s", out)
	}
	if !strings.Contains(out, "msg=shown") {
		t.Errorf("warn entry missing:\n%s", out)
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	if _, err := New(config.LogConfig{Level: "loud", Format: "text"}, &bytes.Buffer{}); err == nil {
		t.Error("New() should fail for an unknown level")
	}
}
