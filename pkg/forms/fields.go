// Package forms decodes and validates the urlencoded form payloads accepted
// by the create endpoints. Every string is trimmed, absent optional values
// stay nil, and malformed numbers or dates are rejected rather than coerced.
package forms

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

var (
	ErrMissingField  = errors.New("missing required field")
	ErrInvalidNumber = errors.New("invalid numeric value")
	ErrInvalidDate   = errors.New("invalid date value")
)

func text(values url.Values, key string) string {
	return strings.TrimSpace(values.Get(key))
}

func required(values url.Values, key string) (string, error) {
	value := text(values, key)
	if value == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingField, key)
	}

	return value, nil
}

func requiredUint(values url.Values, key string) (uint, error) {
	raw, err := required(values, key)
	if err != nil {
		return 0, err
	}

	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidNumber, key)
	}

	return uint(value), nil
}

func intField(values url.Values, key string) (*int, error) {
	raw := text(values, key)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidNumber, key)
	}

	return &value, nil
}

func floatField(values url.Values, key string) (*float64, error) {
	raw := text(values, key)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidNumber, key)
	}

	return &value, nil
}

func dateField(values url.Values, key string) (*time.Time, error) {
	raw := text(values, key)
	if raw == "" {
		return nil, nil
	}

	value, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDate, key)
	}

	return &value, nil
}

// checkbox follows HTML form semantics: a checked box submits "on", an
// unchecked box submits nothing. Any other value counts as unchecked.
func checkbox(values url.Values, key string) bool {
	return values.Get(key) == "on"
}
