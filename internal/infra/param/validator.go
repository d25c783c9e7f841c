// Package param declares and validates startup configuration parameters.
package param

import (
	"encoding/hex"
	"net"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

// MinSecretLength is the minimum number of characters for signing secrets.
const MinSecretLength = 16

// Validator checks a named parameter value.
//
// Validate returns nil when value satisfies the rule and a *ValidationError
// otherwise. Validators must not mutate any state.
type Validator interface {
	Validate(key, value string) error
}

// ValidatorFunc adapts an ordinary function to the Validator interface.
type ValidatorFunc func(key, value string) error

// Validate calls f(key, value).
func (f ValidatorFunc) Validate(key, value string) error {
	return f(key, value)
}

// Chain runs validators in order and stops at the first failure.
func Chain(validators ...Validator) Validator {
	return ValidatorFunc(func(key, value string) error {
		for _, v := range validators {
			if err := v.Validate(key, value); err != nil {
				return err
			}
		}
		return nil
	})
}

// NotBlank rejects empty and whitespace-only values.
func NotBlank() Validator {
	return ValidatorFunc(func(key, value string) error {
		if isBlank(value) {
			return NewValidationError(key, "Parameter %s should not be blank", key)
		}
		return nil
	})
}

// MinLength rejects values shorter than n characters.
func MinLength(n int) Validator {
	return ValidatorFunc(func(key, value string) error {
		if utf8.RuneCountInString(value) < n {
			return NewValidationError(key, "The minimum length for \"%s\" is %d characters.", key, n)
		}
		return nil
	})
}

// NotBlankMinLength applies NotBlank and then MinLength(n).
// A blank value is always reported as blank, never as too short.
func NotBlankMinLength(n int) Validator {
	return Chain(NotBlank(), MinLength(n))
}

// OneOf accepts only the listed values (case-sensitive).
func OneOf(allowed ...string) Validator {
	return ValidatorFunc(func(key, value string) error {
		if !slices.Contains(allowed, value) {
			return NewValidationError(key, "Parameter %s must be one of %v", key, allowed)
		}
		return nil
	})
}

// HostPort accepts "host:port" addresses with a numeric port.
func HostPort() Validator {
	return ValidatorFunc(func(key, value string) error {
		_, port, err := net.SplitHostPort(value)
		if err == nil {
			_, err = strconv.ParseUint(port, 10, 16)
		}
		if err != nil {
			return NewValidationError(key, "Parameter %s is not a valid host:port address", key).WithCause(err)
		}
		return nil
	})
}

// SHA256Hex accepts a hex encoded SHA-256 digest (64 hex characters).
func SHA256Hex() Validator {
	return ValidatorFunc(func(key, value string) error {
		raw, err := hex.DecodeString(value)
		if err != nil || len(raw) != 32 {
			return NewValidationError(key, "Parameter %s should be a hex encoded SHA-256 digest", key)
		}
		return nil
	})
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
