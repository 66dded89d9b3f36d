package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNew(t *testing.T) {
	l, err := New("debug", "json")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if l.GetLevel() != logrus.DebugLevel {
		t.Errorf("Expected debug level, got %s", l.GetLevel())
	}
	if _, ok := l.Formatter.(*logrus.JSONFormatter); !ok {
		t.Errorf("Expected JSON formatter, got %T", l.Formatter)
	}

	var buf bytes.Buffer
	l.SetOutput(&buf)
	l.WithFields(Fields{"user": "alice"}).Info("profiled")
	if !strings.Contains(buf.String(), `"user":"alice"`) {
		t.Errorf("Expected structured field in output, got %s", buf.String())
	}
}

func TestNew_Errors(t *testing.T) {
	if _, err := New("loud", "text"); err == nil {
		t.Error("Expected error for unknown level")
	}
	if _, err := New("info", "xml"); err == nil {
		t.Error("Expected error for unknown format")
	}
}

func TestOrDiscard(t *testing.T) {
	if OrDiscard(nil) == nil {
		t.Fatal("Expected a logger for nil input")
	}
	l := logrus.New()
	if OrDiscard(l) != l {
		t.Error("Expected the given logger back")
	}
}
