package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pweiskircher/base-converter/internal/contracts"
)

// pattern: Imperative Shell

func Write(mode contracts.OutputMode, stdout io.Writer, stderr io.Writer, report Report, duration time.Duration, fatalErr error) error {
	errorCount := 0
	if fatalErr != nil {
		errorCount = 1
	}

	switch mode {
	case contracts.OutputModeJSON:
		env, err := BuildEnvelope(report, duration, errorCount)
		if err != nil {
			return err
		}

		if err := json.NewEncoder(stdout).Encode(env); err != nil {
			return fmt.Errorf("failed to write JSON envelope: %w", err)
		}
		if fatalErr != nil {
			if _, err := fmt.Fprintln(stderr, FormatDiagnostic(fatalErr)); err != nil {
				return fmt.Errorf("failed to write diagnostics: %w", err)
			}
		}
		return nil
	case contracts.OutputModeHuman:
		if fatalErr != nil {
			if _, err := fmt.Fprintln(stderr, FormatDiagnostic(fatalErr)); err != nil {
				return fmt.Errorf("failed to write diagnostics: %w", err)
			}
			return nil
		}

		if err := writeHumanBases(stdout, report.Bases); err != nil {
			return fmt.Errorf("failed to write human output: %w", err)
		}
		if err := writeHumanConversion(stdout, report.Conversion); err != nil {
			return fmt.Errorf("failed to write human output: %w", err)
		}
		for _, message := range report.Messages {
			if _, err := fmt.Fprintln(stdout, message); err != nil {
				return fmt.Errorf("failed to write human output: %w", err)
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported output mode %q", mode)
	}
}

func writeHumanBases(w io.Writer, bases []contracts.BaseInfo) error {
	for _, base := range bases {
		prefix := base.Prefix
		if prefix == "" {
			prefix = "-"
		}
		if _, err := fmt.Fprintf(w, "%-12s radix=%-2d prefix=%s\n", base.Name, base.Radix, prefix); err != nil {
			return err
		}
	}
	return nil
}

func writeHumanConversion(w io.Writer, conversion *contracts.ConversionResult) error {
	if conversion == nil || strings.TrimSpace(conversion.Input) == "" {
		return nil
	}

	if !conversion.Valid {
		_, err := fmt.Fprintf(w, "%s: %q (%s)\n", contracts.InvalidInputMessage, strings.TrimSpace(conversion.Input), conversion.Base)
		return err
	}

	for _, rep := range conversion.Representations {
		marker := " "
		if rep.Base == conversion.Base {
			marker = "*"
		}
		if _, err := fmt.Fprintf(w, "%s %-12s %s\n", marker, rep.Base, rep.Digits); err != nil {
			return err
		}
	}
	return nil
}

func FormatDiagnostic(err error) string {
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		return "failed to execute command"
	}
	if strings.HasPrefix(msg, "failed to ") {
		return msg
	}
	return "failed to execute command: " + msg
}
