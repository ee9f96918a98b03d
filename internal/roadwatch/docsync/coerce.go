package docsync

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/roadwatch/roadwatch/internal/roadwatch/domain"
	"github.com/shopspring/decimal"
)

var (
	// ErrUnrecognizedType is returned for a field whose dynamic type has no
	// mapping onto the local column.
	ErrUnrecognizedType = errors.New("sync: unrecognized field type")

	// ErrNotNumeric is returned for a string field that does not parse as a
	// number, or for a non-finite float.
	ErrNotNumeric = errors.New("sync: value is not numeric")
)

// fieldError names the field a coercion failed on.
type fieldError struct {
	field string
	err   error
}

func (e *fieldError) Error() string { return fmt.Sprintf("field %q: %v", e.field, e.err) }
func (e *fieldError) Unwrap() error { return e.err }

// decimalField reads fields[key] as a fixed-point number. An absent or nil
// field is a null value, not an error.
func decimalField(fields map[string]any, key string) (decimal.NullDecimal, error) {
	d, err := toDecimal(fields[key])
	if err != nil {
		return decimal.NullDecimal{}, &fieldError{key, err}
	}
	return d, nil
}

func toDecimal(v any) (decimal.NullDecimal, error) {
	var (
		d   decimal.Decimal
		err error
	)
	switch x := v.(type) {
	case nil:
		return decimal.NullDecimal{}, nil
	case decimal.Decimal:
		d = x
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return decimal.NullDecimal{}, ErrNotNumeric
		}
		d = decimal.NewFromFloat(x)
	case float32:
		if math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
			return decimal.NullDecimal{}, ErrNotNumeric
		}
		d = decimal.NewFromFloat32(x)
	case int:
		d = decimal.NewFromInt(int64(x))
	case int8:
		d = decimal.NewFromInt(int64(x))
	case int16:
		d = decimal.NewFromInt(int64(x))
	case int32:
		d = decimal.NewFromInt32(x)
	case int64:
		d = decimal.NewFromInt(x)
	case uint:
		d = decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(x)), 0)
	case uint8:
		d = decimal.NewFromInt(int64(x))
	case uint16:
		d = decimal.NewFromInt(int64(x))
	case uint32:
		d = decimal.NewFromInt(int64(x))
	case uint64:
		d = decimal.NewFromBigInt(new(big.Int).SetUint64(x), 0)
	case json.Number:
		if d, err = decimal.NewFromString(x.String()); err != nil {
			return decimal.NullDecimal{}, fmt.Errorf("%w: %q", ErrNotNumeric, x.String())
		}
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return decimal.NullDecimal{}, nil
		}
		if d, err = decimal.NewFromString(s); err != nil {
			return decimal.NullDecimal{}, fmt.Errorf("%w: %q", ErrNotNumeric, x)
		}
	default:
		return decimal.NullDecimal{}, fmt.Errorf("%w: %T", ErrUnrecognizedType, v)
	}
	return decimal.NewNullDecimal(d), nil
}

// stringField reads fields[key] as text. Integers are formatted so numeric
// identifiers survive.
func stringField(fields map[string]any, key string) (string, error) {
	switch x := fields[key].(type) {
	case nil:
		return "", nil
	case string:
		return strings.TrimSpace(x), nil
	case json.Number:
		return x.String(), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case int:
		return strconv.Itoa(x), nil
	case float64:
		if x == math.Trunc(x) && !math.IsInf(x, 0) {
			return strconv.FormatFloat(x, 'f', -1, 64), nil
		}
		return "", &fieldError{key, fmt.Errorf("%w: non-integral id %v", ErrUnrecognizedType, x)}
	default:
		return "", &fieldError{key, fmt.Errorf("%w: %T", ErrUnrecognizedType, x)}
	}
}

// timeField reads fields[key] as an instant. ok is false when the field is
// absent.
func timeField(fields map[string]any, key string) (t time.Time, ok bool, err error) {
	switch x := fields[key].(type) {
	case nil:
		return time.Time{}, false, nil
	case time.Time:
		return x, true, nil
	case *time.Time:
		if x == nil {
			return time.Time{}, false, nil
		}
		return *x, true, nil
	case string:
		t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(x))
		if err != nil {
			return time.Time{}, false, &fieldError{key, err}
		}
		return t, true, nil
	default:
		return time.Time{}, false, &fieldError{key, fmt.Errorf("%w: %T", ErrUnrecognizedType, x)}
	}
}

// dateField reads fields[key] as a calendar day. The day is taken in the
// local zone, unlike full timestamps which are kept in UTC.
func dateField(fields map[string]any, key string) (*time.Time, error) {
	t, ok, err := timeField(fields, key)
	if err != nil || !ok {
		return nil, err
	}
	d := domain.DateOnly(t)
	return &d, nil
}
