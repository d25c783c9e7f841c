package param

import (
	"errors"
	"strings"
	"testing"
)

func secretSpecs() []Spec {
	return []Spec{
		Required("password_secret", NotBlankMinLength(MinSecretLength)),
		Optional("log_format", OneOf("json", "text")),
	}
}

func TestProcess_PasswordSecret(t *testing.T) {
	tests := []struct {
		name      string
		source    MapSource
		wantParam bool
		wantMsg   string
	}{
		{
			name:      "unset",
			source:    MapSource{},
			wantParam: true,
			wantMsg:   `Required parameter "password_secret" not found.`,
		},
		{
			name:    "too short",
			source:  MapSource{"password_secret": "too short"},
			wantMsg: `The minimum length for "password_secret" is 16 characters.`,
		},
		{
			name:    "empty",
			source:  MapSource{"password_secret": ""},
			wantMsg: "Parameter password_secret should not be blank",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := Process(secretSpecs(), tt.source)
			if err == nil {
				t.Fatal("expected error")
			}
			if values != nil {
				t.Error("values should be nil on failure")
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("error = %q, want %q", err.Error(), tt.wantMsg)
			}
			if IsParameterError(err) != tt.wantParam {
				t.Errorf("IsParameterError = %v, want %v", IsParameterError(err), tt.wantParam)
			}
			if IsValidationError(err) == tt.wantParam {
				t.Errorf("IsValidationError = %v, want %v", IsValidationError(err), !tt.wantParam)
			}
			if ErrorKey(err) != "password_secret" {
				t.Errorf("ErrorKey = %q", ErrorKey(err))
			}
		})
	}
}

func TestProcess_ValidSecret(t *testing.T) {
	const secret = "abcdefghijklmnopqrstuvwxyz"

	values, err := Process(secretSpecs(), MapSource{"password_secret": secret})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if got := values.Get("password_secret"); got != secret {
		t.Errorf("password_secret = %q, want %q", got, secret)
	}
	if _, ok := values.Lookup("log_format"); ok {
		t.Error("unset optional parameter should be absent")
	}
}

func TestProcess_PreservesValue(t *testing.T) {
	const secret = "  Mixed Case Secret With Spaces  "

	values, err := Process(secretSpecs(), MapSource{"password_secret": secret})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if values.Get("password_secret") != secret {
		t.Errorf("value was modified: %q", values.Get("password_secret"))
	}
}

func TestProcess_MissingRequiredSkipsValidators(t *testing.T) {
	called := false
	specs := []Spec{
		Required("password_secret", ValidatorFunc(func(key, value string) error {
			called = true
			return nil
		})),
	}

	_, err := Process(specs, MapSource{})
	if !IsParameterError(err) {
		t.Fatalf("error = %v, want ParameterError", err)
	}
	if called {
		t.Error("validator should not run for a missing parameter")
	}
}

func TestProcess_FirstErrorWins(t *testing.T) {
	specs := []Spec{
		Required("a"),
		Required("b"),
	}

	_, err := Process(specs, MapSource{})
	if got, want := err.Error(), `Required parameter "a" not found.`; got != want {
		t.Errorf("error = %q, want %q", got, want)
	}
}

func TestProcess_CollectAll(t *testing.T) {
	specs := []Spec{
		Required("a"),
		Required("password_secret", NotBlankMinLength(MinSecretLength)),
		Optional("log_format", OneOf("json", "text")),
	}
	src := MapSource{"password_secret": "short", "log_format": "xml"}

	_, err := Process(specs, src, WithCollectAll())
	if err == nil {
		t.Fatal("expected error")
	}

	msg := err.Error()
	for _, want := range []string{
		`Required parameter "a" not found.`,
		`The minimum length for "password_secret" is 16 characters.`,
		"Parameter log_format must be one of [json text]",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("joined error missing %q:\n%s", want, msg)
		}
	}
	if !IsParameterError(err) || !IsValidationError(err) {
		t.Error("joined error should expose both error kinds")
	}
}

func TestProcess_WrapsPlainValidatorErrors(t *testing.T) {
	cause := errors.New("boom")
	specs := []Spec{
		Optional("x", ValidatorFunc(func(string, string) error { return cause })),
	}

	_, err := Process(specs, MapSource{"x": "1"})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("error = %T, want *ValidationError", err)
	}
	if ve.Key != "x" || ve.Message != "boom" {
		t.Errorf("ValidationError = %+v", ve)
	}
	if !errors.Is(err, cause) {
		t.Error("cause should be reachable via errors.Is")
	}
}

type recordingObserver struct {
	outcomes map[string]Outcome
}

func (r *recordingObserver) ObserveParameter(key string, outcome Outcome) {
	r.outcomes[key] = outcome
}

func TestCheck_ReportsEveryParameter(t *testing.T) {
	specs := []Spec{
		Required("password_secret", NotBlankMinLength(MinSecretLength)),
		Required("root_password_sha2"),
		Optional("log_format", OneOf("json", "text")),
		Optional("log_level", OneOf("info")),
	}
	src := MapSource{"password_secret": "abcdefghijklmnopqrstuvwxyz", "log_format": "xml"}
	obs := &recordingObserver{outcomes: make(map[string]Outcome)}

	results := Check(specs, src, WithObserver(obs))
	if len(results) != len(specs) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(specs))
	}

	want := []Outcome{OutcomeValid, OutcomeMissing, OutcomeInvalid, OutcomeUnset}
	for i, res := range results {
		if res.Key != specs[i].Key {
			t.Errorf("results[%d].Key = %q, want %q", i, res.Key, specs[i].Key)
		}
		if res.Outcome != want[i] {
			t.Errorf("results[%d].Outcome = %v, want %v", i, res.Outcome, want[i])
		}
		if (res.Err != nil) != (want[i] == OutcomeMissing || want[i] == OutcomeInvalid) {
			t.Errorf("results[%d].Err = %v", i, res.Err)
		}
		if obs.outcomes[res.Key] != res.Outcome {
			t.Errorf("observer saw %v for %s, want %v", obs.outcomes[res.Key], res.Key, res.Outcome)
		}
	}
}

func TestOutcome_String(t *testing.T) {
	tests := map[Outcome]string{
		OutcomeValid:   "valid",
		OutcomeUnset:   "unset",
		OutcomeMissing: "missing",
		OutcomeInvalid: "invalid",
		Outcome(42):    "unknown",
	}
	for o, want := range tests {
		if o.String() != want {
			t.Errorf("Outcome(%d).String() = %q, want %q", int(o), o.String(), want)
		}
	}
}
