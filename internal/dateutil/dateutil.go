// Package dateutil resolves "auto" date values in contract variables.
package dateutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length to prevent abuse.
const MaxDateFormatLength = 50

// DefaultDateFormat is used when "auto" is specified without a format.
const DefaultDateFormat = "DD/MM/YYYY"

// Locale selects month names.
type Locale string

const (
	LocaleArabic  Locale = "ar"
	LocaleEnglish Locale = "en"
)

// DatePresets provides named shortcuts for common date formats.
var DatePresets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "D MMMM YYYY",
}

var arabicMonths = [12]string{
	"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو",
	"يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر",
}

// tokens is ordered longest first for greedy matching.
var tokens = []string{"YYYY", "MMMM", "MMM", "YY", "MM", "DD", "M", "D"}

type segment struct {
	token   string // empty for literals
	literal string
}

// parse splits a user-friendly format into tokens and literals.
// Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D. Brackets escape literal text.
func parse(format string) ([]segment, error) {
	if format == "" {
		return nil, fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return nil, fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var segs []segment
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			segs = append(segs, segment{literal: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(format); {
		if format[i] == '[' {
			end := strings.IndexByte(format[i+1:], ']')
			if end == -1 {
				return nil, fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			lit.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}

		matched := false
		for _, tok := range tokens {
			if strings.HasPrefix(format[i:], tok) {
				flush()
				segs = append(segs, segment{token: tok})
				i += len(tok)
				matched = true
				break
			}
		}
		if !matched {
			lit.WriteByte(format[i])
			i++
		}
	}
	flush()
	return segs, nil
}

// Format renders t with a user-friendly format. Month names follow loc;
// digits are always Western.
func Format(t time.Time, format string, loc Locale) (string, error) {
	segs, err := parse(format)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, s := range segs {
		switch s.token {
		case "":
			b.WriteString(s.literal)
		case "YYYY":
			b.WriteString(strconv.Itoa(t.Year()))
		case "YY":
			fmt.Fprintf(&b, "%02d", t.Year()%100)
		case "MMMM":
			b.WriteString(monthName(t.Month(), loc, false))
		case "MMM":
			b.WriteString(monthName(t.Month(), loc, true))
		case "MM":
			fmt.Fprintf(&b, "%02d", int(t.Month()))
		case "M":
			b.WriteString(strconv.Itoa(int(t.Month())))
		case "DD":
			fmt.Fprintf(&b, "%02d", t.Day())
		case "D":
			b.WriteString(strconv.Itoa(t.Day()))
		}
	}
	return b.String(), nil
}

// monthName returns the localized month name. Arabic has no abbreviations.
func monthName(m time.Month, loc Locale, short bool) string {
	if loc == LocaleArabic {
		return arabicMonths[m-1]
	}
	if short {
		return m.String()[:3]
	}
	return m.String()
}

// IsAuto reports whether value requests a generated date: "auto" or
// "auto:FORMAT", case-insensitive.
func IsAuto(value string) bool {
	lower := strings.ToLower(strings.TrimSpace(value))
	return lower == "auto" || strings.HasPrefix(lower, "auto:")
}

// ResolveDate handles "auto" and "auto:FORMAT" values.
//   - "auto" gives t in DefaultDateFormat
//   - "auto:FORMAT" gives t in a custom format (e.g. "auto:YYYY-MM-DD")
//   - "auto:preset" uses a named preset (iso, european, us, long)
//   - any other value is returned unchanged
func ResolveDate(value string, t time.Time, loc Locale) (string, error) {
	if !IsAuto(value) {
		return value, nil
	}
	format, err := autoFormat(value)
	if err != nil {
		return "", err
	}
	return Format(t, format, loc)
}

// ValidateAuto reports whether an "auto" value would render. Values that
// are not "auto" are accepted unchanged.
func ValidateAuto(value string) error {
	if !IsAuto(value) {
		return nil
	}
	format, err := autoFormat(value)
	if err != nil {
		return err
	}
	_, err = parse(format)
	return err
}

func autoFormat(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) == len("auto") {
		return DefaultDateFormat, nil
	}

	formatPart := trimmed[len("auto:"):]
	if formatPart == "" {
		return "", fmt.Errorf("%w: format cannot be empty after \"auto:\"", ErrInvalidDateFormat)
	}
	if preset, ok := DatePresets[strings.ToLower(formatPart)]; ok {
		return preset, nil
	}
	return formatPart, nil
}
