package param

import (
	"fmt"
	"strings"
	"testing"
	"unicode"

	"pgregory.net/rapid"
)

func TestProperty_ShortSecretsReportLength(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		key := rapid.StringMatching(`[a-z][a-z_]{0,20}`).Draw(t, "key")
		value := rapid.StringN(1, MinSecretLength-1, -1).
			Filter(func(s string) bool { return strings.TrimSpace(s) != "" }).
			Draw(t, "value")

		err := NotBlankMinLength(MinSecretLength).Validate(key, value)
		if err == nil {
			t.Fatalf("Validate(%q) should fail", value)
		}
		want := fmt.Sprintf("The minimum length for \"%s\" is 16 characters.", key)
		if err.Error() != want {
			t.Fatalf("error = %q, want %q", err.Error(), want)
		}
	})
}

func TestProperty_BlankSecretsReportBlank(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		value := rapid.StringOfN(rapid.RuneFrom([]rune{' ', '\t', '\n', '\r'}), 0, 40, -1).Draw(t, "value")

		err := NotBlankMinLength(MinSecretLength).Validate("password_secret", value)
		if err == nil || err.Error() != "Parameter password_secret should not be blank" {
			t.Fatalf("Validate(%q) = %v, want blank error", value, err)
		}
	})
}

func TestProperty_LongSecretsRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		value := rapid.StringOfN(rapid.RuneFrom(nil, unicode.Letter, unicode.Digit), MinSecretLength, 128, -1).Draw(t, "value")

		values, err := Process([]Spec{Required("password_secret", NotBlankMinLength(MinSecretLength))},
			MapSource{"password_secret": value})
		if err != nil {
			t.Fatalf("Process(%q) error = %v", value, err)
		}
		if values.Get("password_secret") != value {
			t.Fatalf("value changed: %q -> %q", value, values.Get("password_secret"))
		}
	})
}

func TestProperty_ValidatorsAreIdempotent(t *testing.T) {
	validators := []Validator{
		NotBlankMinLength(MinSecretLength),
		OneOf("json", "text"),
		HostPort(),
		SHA256Hex(),
	}

	rapid.Check(t, func(t *rapid.T) {
		v := validators[rapid.IntRange(0, len(validators)-1).Draw(t, "validator")]
		value := rapid.String().Draw(t, "value")

		first := v.Validate("k", value)
		second := v.Validate("k", value)
		if (first == nil) != (second == nil) {
			t.Fatalf("outcomes differ: %v vs %v", first, second)
		}
		if first != nil && first.Error() != second.Error() {
			t.Fatalf("messages differ: %q vs %q", first.Error(), second.Error())
		}
	})
}
