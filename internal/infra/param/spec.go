// Package param declares and validates startup configuration parameters.
package param

// Spec declares a single configuration parameter.
type Spec struct {
	// Key is the external parameter name (e.g. "password_secret").
	Key string
	// Required parameters must be present in the source.
	Required bool
	// Validators run in declaration order against a present value.
	Validators []Validator
}

// Required declares a parameter that must be supplied.
func Required(key string, validators ...Validator) Spec {
	return Spec{Key: key, Required: true, Validators: validators}
}

// Optional declares a parameter that may be omitted.
func Optional(key string, validators ...Validator) Spec {
	return Spec{Key: key, Validators: validators}
}

// Validate runs the spec's validators against value, returning the first failure.
func (s Spec) Validate(value string) error {
	for _, v := range s.Validators {
		if err := v.Validate(s.Key, value); err != nil {
			return err
		}
	}
	return nil
}
