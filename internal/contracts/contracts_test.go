package contracts

import (
	"strings"
	"testing"
)

func TestExitCodeMeaningCoversEveryCode(t *testing.T) {
	for _, code := range []ExitCode{ExitCodeSuccess, ExitCodeInvalid, ExitCodeFatal} {
		if ExitCodeMeaning[code] == "" {
			t.Fatalf("exit code %d has no documented meaning", code)
		}
	}
}

func TestValidateEnvelopeBasics(t *testing.T) {
	value := int64(5)
	valid := CommandEnvelope{
		EnvelopeVersion: JSONEnvelopeVersionV1,
		Command:         CommandMeta{Name: "convert"},
		Conversion:      &ConversionResult{Input: "5", Base: "decimal", Valid: true, Value: &value},
	}
	if err := ValidateEnvelopeBasics(valid); err != nil {
		t.Fatalf("expected valid envelope, got %v", err)
	}

	missingValue := valid
	missingValue.Conversion = &ConversionResult{Input: "5", Base: "decimal", Valid: true}
	if err := ValidateEnvelopeBasics(missingValue); err == nil {
		t.Fatalf("expected error for valid conversion without value")
	}

	leakyInvalid := valid
	leakyInvalid.Conversion = &ConversionResult{Input: "z", Base: "decimal", Value: &value}
	if err := ValidateEnvelopeBasics(leakyInvalid); err == nil {
		t.Fatalf("expected error for invalid conversion carrying a value")
	}

	if err := ValidateEnvelopeBasics(CommandEnvelope{EnvelopeVersion: "9", Command: CommandMeta{Name: "x"}}); err == nil {
		t.Fatalf("expected unsupported version error")
	}
}

func TestResolveExitCode(t *testing.T) {
	if code := ResolveExitCode(nil, false); code != ExitCodeSuccess {
		t.Fatalf("expected success, got %d", code)
	}
	if code := ResolveExitCode(&ConversionResult{Input: "zz"}, false); code != ExitCodeInvalid {
		t.Fatalf("expected invalid, got %d", code)
	}
	if code := ResolveExitCode(&ConversionResult{Input: ""}, false); code != ExitCodeSuccess {
		t.Fatalf("empty input is not a failed conversion, got %d", code)
	}
	if code := ResolveExitCode(&ConversionResult{Input: " \t "}, false); code != ExitCodeSuccess {
		t.Fatalf("whitespace-only input is not a failed conversion, got %d", code)
	}
	if code := ResolveExitCode(nil, true); code != ExitCodeFatal {
		t.Fatalf("expected fatal, got %d", code)
	}
}

func TestValidateConfig(t *testing.T) {
	if err := ValidateConfig(DefaultConfig()); err != nil {
		t.Fatalf("default config must validate, got %v", err)
	}

	cfg := DefaultConfig()
	cfg.DefaultBase = "HEX"
	if err := ValidateConfig(cfg); err != nil {
		t.Fatalf("aliases are accepted case-insensitively, got %v", err)
	}

	cfg.DefaultBase = "base36"
	cfg.Output = "xml"
	err := ValidateConfig(cfg)
	if err == nil {
		t.Fatalf("expected validation failure")
	}
	if !strings.Contains(err.Error(), "default_base") || !strings.Contains(err.Error(), "output") {
		t.Fatalf("expected both fields reported, got %v", err)
	}

	if err := ValidateConfig(Config{}); err == nil || !strings.Contains(err.Error(), "config_version") {
		t.Fatalf("expected missing config_version to fail, got %v", err)
	}
}
