package art

import "errors"

// Domain errors shared across packages.
var (
	// ErrUnknownModule indicates a module name with no registered factory.
	ErrUnknownModule = errors.New("art: unknown module")

	// ErrUnknownParam indicates a parameter name the module does not expose.
	ErrUnknownParam = errors.New("art: unknown parameter")

	// ErrInvalidValue indicates a NaN or infinite parameter value.
	ErrInvalidValue = errors.New("art: invalid parameter value")

	// ErrUnknownPreset indicates a preset name not defined for a module.
	ErrUnknownPreset = errors.New("art: unknown preset")

	// ErrInvalidSize indicates a non-positive viewport or image size.
	ErrInvalidSize = errors.New("art: invalid size")
)

// ParamError wraps a parameter failure with the module and parameter involved.
type ParamError struct {
	Module  string
	Param   string
	Wrapped error
}

func (e *ParamError) Error() string {
	return e.Module + ": " + e.Param + ": " + e.Wrapped.Error()
}

func (e *ParamError) Unwrap() error {
	return e.Wrapped
}
