package cpd

import "fmt"

// ConfigurationError reports an invalid strategy or engine parameter.
// It is always raised at construction time, never mid-run.
type ConfigurationError struct {
	Param  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s %s", e.Param, e.Reason)
}

// NewConfigurationError creates a ConfigurationError for a parameter.
func NewConfigurationError(param, reason string) *ConfigurationError {
	return &ConfigurationError{Param: param, Reason: reason}
}

// NumericDegeneracyError reports a posterior normalization that collapsed
// to zero mass. The run cannot continue: substituting a default posterior
// would fabricate a change point location.
type NumericDegeneracyError struct {
	Time int
}

func (e *NumericDegeneracyError) Error() string {
	return fmt.Sprintf("run length posterior collapsed to zero mass at t=%d", e.Time)
}
