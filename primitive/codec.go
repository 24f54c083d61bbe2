package primitive

import (
	"encoding/base64"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/sosodev/duration"
)

var (
	ErrInvalidKind   = errors.New("invalid primitive kind")
	ErrValueMismatch = errors.New("value does not match primitive kind")
	ErrOutOfRange    = errors.New("value outside the supported lexical range")
)

// localDateTime is the xs:dateTime lexical form without a timezone.
const localDateTime = "2006-01-02T15:04:05.999999999"

// Format renders v in the canonical lexical form of the kind's schema type.
// v must be of the kind's canonical Go type (see GoType).
func Format(k KindEnum, v any) (string, error) {
	if !k.IsValid() {
		return "", fmt.Errorf("%w: %s", ErrInvalidKind, k)
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Type() != k.GoType() {
		return "", fmt.Errorf("%w: %s expects %s, got %T", ErrValueMismatch, k, k.GoType(), v)
	}

	switch {
	case k.IsSigned():
		return strconv.FormatInt(rv.Int(), 10), nil
	case k.IsUnsigned():
		return strconv.FormatUint(rv.Uint(), 10), nil
	case k.IsFloat():
		return formatFloat(rv.Float(), k.Bits()), nil
	}

	switch k {
	case KindBool:
		return strconv.FormatBool(rv.Bool()), nil
	case KindString:
		return rv.String(), nil
	case KindTime:
		return v.(time.Time).Format(time.RFC3339Nano), nil
	case KindDuration:
		return formatDuration(v.(time.Duration)), nil
	case KindDecimal:
		return v.(decimal.Decimal).String(), nil
	case KindDate:
		return formatDate(v.(civil.Date))
	case KindBytes:
		return base64.StdEncoding.EncodeToString(v.([]byte)), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidKind, k)
	}
}

// Parse reads the lexical form s into a value of the kind's canonical Go type.
// Surrounding whitespace is collapsed for every kind except strings.
func Parse(k KindEnum, s string) (any, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidKind, k)
	}

	if !k.IsTextual() {
		s = strings.TrimSpace(s)
	}

	v, err := parse(k, s)
	if err != nil {
		return nil, fmt.Errorf("invalid xs:%s value %q: %w", k.XSDType(), s, err)
	}

	return v, nil
}

func parse(k KindEnum, s string) (any, error) {
	switch {
	case k.IsSigned():
		n, err := strconv.ParseInt(s, 10, k.Bits())
		if err != nil {
			return nil, err
		}
		return reflect.ValueOf(n).Convert(k.GoType()).Interface(), nil
	case k.IsUnsigned():
		n, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, k.Bits())
		if err != nil {
			return nil, err
		}
		return reflect.ValueOf(n).Convert(k.GoType()).Interface(), nil
	case k.IsFloat():
		f, err := parseFloat(s, k.Bits())
		if err != nil {
			return nil, err
		}
		return reflect.ValueOf(f).Convert(k.GoType()).Interface(), nil
	}

	switch k {
	case KindBool:
		switch s {
		case "true", "1":
			return true, nil
		case "false", "0":
			return false, nil
		}
		return nil, errors.New("expected true, false, 1 or 0")
	case KindString:
		return s, nil
	case KindTime:
		if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
			return t, nil
		}
		return time.Parse(localDateTime, s)
	case KindDuration:
		return parseDuration(s)
	case KindDecimal:
		return decimal.NewFromString(s)
	case KindDate:
		return parseDate(s)
	case KindBytes:
		return base64.StdEncoding.DecodeString(s)
	default:
		return nil, ErrInvalidKind
	}
}

func formatFloat(f float64, bits int) string {
	switch {
	case math.IsInf(f, 1):
		return "INF"
	case math.IsInf(f, -1):
		return "-INF"
	case math.IsNaN(f):
		return "NaN"
	}

	return strconv.FormatFloat(f, 'g', -1, bits)
}

func parseFloat(s string, bits int) (float64, error) {
	switch s {
	case "INF", "+INF":
		return math.Inf(1), nil
	case "-INF":
		return math.Inf(-1), nil
	case "NaN":
		return math.NaN(), nil
	}

	// Go also accepts "Inf", "infinity" and hex floats, none of which are xs:double
	if strings.ContainsAny(s, "iInNxX") {
		return 0, strconv.ErrSyntax
	}

	return strconv.ParseFloat(s, bits)
}

// formatDuration renders d as PnDTnHnMnS using only exact units.
// Years and months are never emitted since their length is not fixed.
func formatDuration(d time.Duration) string {
	if d == 0 {
		return "PT0S"
	}

	var b strings.Builder

	// magnitude in unsigned form so that math.MinInt64 does not overflow
	n := uint64(d)
	if d < 0 {
		b.WriteByte('-')
		n = uint64(-(d + 1)) + 1
	}

	b.WriteByte('P')

	const (
		day    = uint64(24 * time.Hour)
		hour   = uint64(time.Hour)
		minute = uint64(time.Minute)
	)

	if days := n / day; days > 0 {
		b.WriteString(strconv.FormatUint(days, 10))
		b.WriteByte('D')
		n %= day
	}

	if n == 0 {
		return b.String()
	}

	b.WriteByte('T')

	if hours := n / hour; hours > 0 {
		b.WriteString(strconv.FormatUint(hours, 10))
		b.WriteByte('H')
		n %= hour
	}

	if minutes := n / minute; minutes > 0 {
		b.WriteString(strconv.FormatUint(minutes, 10))
		b.WriteByte('M')
		n %= minute
	}

	if n > 0 {
		b.WriteString(strconv.FormatFloat(time.Duration(n).Seconds(), 'f', -1, 64))
		b.WriteByte('S')
	}

	return b.String()
}

// formatDate renders d as YYYY-MM-DD. Years outside 0000-9999 have no
// four digit form and are rejected.
func formatDate(d civil.Date) (string, error) {
	if d.Year < 0 || d.Year > 9999 {
		return "", fmt.Errorf("%w: year %d", ErrOutOfRange, d.Year)
	}

	return d.String(), nil
}

// parseDate reads YYYY-MM-DD with an optional timezone. The timezone has no
// civil representation and is dropped. Negative and five digit years are
// rejected.
func parseDate(s string) (civil.Date, error) {
	switch n := len(s); {
	case strings.HasSuffix(s, "Z"):
		s = s[:n-1]
	case n > 6 && (s[n-6] == '+' || s[n-6] == '-') && s[n-3] == ':':
		s = s[:n-6]
	}

	if len(s) != len("2006-01-02") || s[4] != '-' {
		return civil.Date{}, fmt.Errorf("%w: only four digit years are supported", ErrOutOfRange)
	}

	return civil.ParseDate(s)
}

func parseDuration(s string) (time.Duration, error) {
	d, err := duration.Parse(s)
	if err != nil {
		return 0, err
	}

	return d.ToTimeDuration(), nil
}
