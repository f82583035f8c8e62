package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"
	"time"

	"github.com/alnah/go-lawdoc/internal/yamlutil"
)

// Sentinel errors for value files.
var (
	ErrValuesNotFound = errors.New("values file not found")
	ErrValuesParse    = errors.New("failed to parse values")
)

var valueKeyPattern = regexp.MustCompile(`^\w+$`)

// LoadValues reads a flat YAML mapping of placeholder keys to values.
// Scalars are stringified; nested mappings and lists are rejected.
func LoadValues(path string) (map[string]string, error) {
	var raw map[string]any
	if err := yamlutil.ReadFile(path, &raw); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrValuesNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrValuesParse, err)
	}
	return FlattenValues(raw)
}

// FlattenValues converts decoded YAML scalars to strings.
func FlattenValues(raw map[string]any) (map[string]string, error) {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := make(map[string]string, len(raw))
	for _, k := range keys {
		if !valueKeyPattern.MatchString(k) {
			return nil, fmt.Errorf("%w: key %q must contain only letters, digits and underscores", ErrValuesParse, k)
		}
		s, err := scalarString(raw[k])
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrValuesParse, k, err)
		}
		if err := validateFieldLength(k, s, MaxValueLength); err != nil {
			return nil, err
		}
		values[k] = s
	}
	return values, nil
}

func scalarString(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(x), nil
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case time.Time:
		return x.Format(time.DateOnly), nil
	default:
		return "", fmt.Errorf("expected a scalar, got %T", v)
	}
}
