package middleware

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/pweiskircher/base-converter/internal/contracts"
	"github.com/pweiskircher/base-converter/internal/logging"
)

func TestWithCommandLogRecordsOutcome(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(logging.Options{Level: "debug", Format: "json", Writer: &buf})

	runner := WithCommandLog(contracts.CommandConvert, log, func(ctx context.Context) error {
		return nil
	})
	if err := runner(context.Background()); err != nil {
		t.Fatalf("runner failed: %v", err)
	}
	if !strings.Contains(buf.String(), `"command":"convert"`) || !strings.Contains(buf.String(), "command finished") {
		t.Fatalf("expected start/finish log lines, got %q", buf.String())
	}

	buf.Reset()
	boom := errors.New("boom")
	runner = WithCommandLog(contracts.CommandFormat, log, func(ctx context.Context) error {
		return boom
	})
	if err := runner(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected error to pass through, got %v", err)
	}
	if !strings.Contains(buf.String(), `"level":"debug"`) || !strings.Contains(buf.String(), `"error":"boom"`) {
		t.Fatalf("expected debug log line carrying the error, got %q", buf.String())
	}
}

func TestWithCommandLogStaysQuietAtWarn(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(logging.Options{Level: "warn", Format: "json", Writer: &buf})

	runner := WithCommandLog(contracts.CommandFormat, log, func(ctx context.Context) error {
		return errors.New("boom")
	})
	if err := runner(context.Background()); err == nil {
		t.Fatalf("expected error to pass through")
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no log output at warn, got %q", buf.String())
	}
}

func TestWithRecoverConvertsPanic(t *testing.T) {
	runner := WithRecover(contracts.CommandBases, func(ctx context.Context) error {
		panic("unexpected")
	})

	err := runner(context.Background())
	if err == nil || !strings.Contains(err.Error(), "command bases panicked: unexpected") {
		t.Fatalf("expected panic converted to error, got %v", err)
	}
}

func TestNilRunnerStaysNil(t *testing.T) {
	if WithCommandLog(contracts.CommandConvert, logging.Nop(), nil) != nil {
		t.Fatalf("expected nil runner")
	}
	if WithRecover(contracts.CommandConvert, nil) != nil {
		t.Fatalf("expected nil runner")
	}
}
