package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: "debug", Output: &buf, Service: "legal-records-api", Env: "test"})
	log.Info().Str("client_id", "JUAN-PEREZ").Msg("client created")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%s)", err, buf.String())
	}
	if entry["service"] != "legal-records-api" || entry["env"] != "test" {
		t.Fatalf("missing static fields: %v", entry)
	}
	if entry["client_id"] != "JUAN-PEREZ" || entry["message"] != "client created" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if _, ok := entry["caller"]; !ok {
		t.Fatalf("missing caller: %v", entry)
	}
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: "warn", Output: &buf})
	log.Info().Msg("dropped")
	if buf.Len() != 0 {
		t.Fatalf("info entry written at warn level: %s", buf.String())
	}
	log.Warn().Msg("kept")
	if buf.Len() == 0 {
		t.Fatalf("warn entry not written")
	}
}

func TestNew_InstancesAreIndependent(t *testing.T) {
	var a, b bytes.Buffer
	la := New(Options{Output: &a})
	lb := New(Options{Output: &b, Level: "error"})
	la.Info().Msg("a")
	lb.Info().Msg("b")
	if a.Len() == 0 || b.Len() != 0 {
		t.Fatalf("unexpected output a=%q b=%q", a.String(), b.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		" DEBUG ": zerolog.DebugLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
