package converter

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestConvertConcreteScenarios(t *testing.T) {
	cases := []struct {
		input string
		base  Base
		want  Result
	}{
		{input: "255", base: Decimal, want: Valid(255)},
		{input: "0b1010", base: Binary, want: Valid(10)},
		{input: "0xFF", base: Hexadecimal, want: Valid(255)},
		{input: "FF", base: Hexadecimal, want: Valid(255)},
		{input: "ff", base: Hexadecimal, want: Valid(255)},
		{input: "0Xff", base: Hexadecimal, want: Valid(255)},
		{input: "0O17", base: Octal, want: Valid(15)},
		{input: "17", base: Octal, want: Valid(15)},
		{input: "-42", base: Decimal, want: Valid(-42)},
		{input: "+7", base: Decimal, want: Valid(7)},
		{input: "  1010\t", base: Binary, want: Valid(10)},
		{input: "0", base: Decimal, want: Valid(0)},
		{input: "", base: Decimal, want: Invalid},
		{input: "   ", base: Hexadecimal, want: Invalid},
		{input: "abc", base: Decimal, want: Invalid},
		{input: "12", base: Binary, want: Invalid},
		{input: "18", base: Octal, want: Invalid},
		{input: "0x", base: Hexadecimal, want: Invalid},
		{input: "0b", base: Binary, want: Invalid},
		{input: "0o", base: Octal, want: Invalid},
		{input: "0x10", base: Decimal, want: Invalid},
		{input: "--1", base: Decimal, want: Invalid},
		{input: "-", base: Decimal, want: Invalid},
		{input: "1_000", base: Decimal, want: Invalid},
		{input: "1.5", base: Decimal, want: Invalid},
		{input: "0x0xFF", base: Hexadecimal, want: Invalid},
		{input: "0x-FF", base: Hexadecimal, want: Valid(-255)},
		{input: "-0xFF", base: Hexadecimal, want: Invalid},
		{input: "-FF", base: Hexadecimal, want: Valid(-255)},
	}

	for _, tc := range cases {
		if got := Convert(tc.input, tc.base); got != tc.want {
			t.Fatalf("Convert(%q, %s) = %s, want %s", tc.input, tc.base, got, tc.want)
		}
	}
}

func TestConvertPrefixedAndUnprefixedAgree(t *testing.T) {
	for _, base := range Bases() {
		digits := Format(181, base)
		unprefixed := Convert(digits, base)
		prefixed := Convert(base.Prefix()+digits, base)
		if unprefixed != prefixed {
			t.Fatalf("%s: prefixed %s differs from unprefixed %s", base, prefixed, unprefixed)
		}
		if unprefixed != Valid(181) {
			t.Fatalf("%s: expected Valid(181), got %s", base, unprefixed)
		}
	}
}

func TestConvertRejectsOverflow(t *testing.T) {
	inputs := map[Base]string{
		Decimal:     "9223372036854775808",
		Binary:      "1" + strings.Repeat("0", 63),
		Octal:       "1000000000000000000000",
		Hexadecimal: "0x8000000000000000",
	}
	for base, input := range inputs {
		if got := Convert(input, base); got.IsValid() {
			t.Fatalf("expected overflow for %s %q, got %s", base, input, got)
		}
		if err := Explain(input, base); !IsErrorCode(err, ErrorCodeOutOfRange) {
			t.Fatalf("expected out_of_range for %s %q, got %v", base, input, err)
		}
	}

	if got := Convert("-9223372036854775808", Decimal); got != Valid(math.MinInt64) {
		t.Fatalf("expected min int64 to convert, got %s", got)
	}
}

func TestConvertIsIdempotent(t *testing.T) {
	for _, input := range []string{"0x1f", "zz", "", "777"} {
		first := Convert(input, Hexadecimal)
		second := Convert(input, Hexadecimal)
		if first != second {
			t.Fatalf("Convert(%q) not idempotent: %s then %s", input, first, second)
		}
	}
}

func TestExplainAgreesWithConvert(t *testing.T) {
	cases := []struct {
		input string
		base  Base
		code  ErrorCode
	}{
		{input: "", base: Decimal, code: ErrorCodeEmptyInput},
		{input: " \n", base: Octal, code: ErrorCodeEmptyInput},
		{input: "0x", base: Hexadecimal, code: ErrorCodeMissingDigits},
		{input: "12", base: Binary, code: ErrorCodeInvalidDigit},
		{input: "18", base: Octal, code: ErrorCodeInvalidDigit},
		{input: "abc", base: Decimal, code: ErrorCodeInvalidDigit},
		{input: "1", base: Base(9), code: ErrorCodeUnknownBase},
	}

	for _, tc := range cases {
		err := Explain(tc.input, tc.base)
		if !IsErrorCode(err, tc.code) {
			t.Fatalf("Explain(%q, %s) = %v, want code %s", tc.input, tc.base, err, tc.code)
		}
		if Convert(tc.input, tc.base).IsValid() {
			t.Fatalf("Convert(%q, %s) valid while Explain failed", tc.input, tc.base)
		}
	}

	if err := Explain("0b1", Binary); err != nil {
		t.Fatalf("expected nil explanation for valid input, got %v", err)
	}
}

func TestFormatScenarios(t *testing.T) {
	cases := []struct {
		value int64
		base  Base
		want  string
	}{
		{value: 255, base: Binary, want: "11111111"},
		{value: 255, base: Hexadecimal, want: "FF"},
		{value: 255, base: Octal, want: "377"},
		{value: 255, base: Decimal, want: "255"},
		{value: 10, base: Decimal, want: "10"},
		{value: -42, base: Decimal, want: "-42"},
		{value: -42, base: Hexadecimal, want: "-2A"},
		{value: 0, base: Binary, want: "0"},
		{value: math.MaxInt64, base: Hexadecimal, want: "7FFFFFFFFFFFFFFF"},
	}

	for _, tc := range cases {
		if got := Format(tc.value, tc.base); got != tc.want {
			t.Fatalf("Format(%d, %s) = %q, want %q", tc.value, tc.base, got, tc.want)
		}
	}
}

func TestFormatRoundTrips(t *testing.T) {
	values := []int64{0, 1, -1, 10, 255, -255, 4096, 1 << 53, -(1 << 53), math.MaxInt64, math.MinInt64}
	for _, value := range values {
		for _, base := range Bases() {
			formatted := Format(value, base)
			if got := Convert(formatted, base); got != Valid(value) {
				t.Fatalf("round trip of %d through %s (%q) gave %s", value, base, formatted, got)
			}
		}
	}
}

func TestRowsRenderEveryBaseInDisplayOrder(t *testing.T) {
	want := []Row{
		{Base: Decimal, Digits: "255"},
		{Base: Binary, Digits: "11111111"},
		{Base: Octal, Digits: "377"},
		{Base: Hexadecimal, Digits: "FF"},
	}
	if diff := cmp.Diff(want, Rows(255)); diff != "" {
		t.Fatalf("unexpected rows (-want +got):\n%s", diff)
	}
}
