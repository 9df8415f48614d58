package cfenv

import (
	"errors"
	"fmt"
)

// NotSetError reports that an environment variable is not set at all.
type NotSetError struct {
	Variable string
}

// Error implements the error interface.
func (e *NotSetError) Error() string {
	return fmt.Sprintf("environment variable %q is not set", e.Variable)
}

// MalformedError reports that an environment variable is set but its
// value does not have the shape the accessor expects. Reason is a
// stable, documented description of the expected shape, never the
// underlying parser's message.
type MalformedError struct {
	Variable string
	Reason   string
}

// Error implements the error interface.
func (e *MalformedError) Error() string {
	return fmt.Sprintf("the env variable %q does not match the required criteria: %s", e.Variable, e.Reason)
}

// JSONError reports that a JSON document did not decode. Source names
// the input that failed: a variable such as VCAP_SERVICES for a
// top-level decode, or "<name>.credentials" when only one binding's
// credential payload failed its second, typed decode pass.
type JSONError struct {
	Source string
}

// Error implements the error interface.
func (e *JSONError) Error() string {
	return fmt.Sprintf("the json from %q could not be parsed", e.Source)
}

// ServiceNotFoundError reports that no binding in any VCAP_SERVICES
// type bucket carries the requested name.
type ServiceNotFoundError struct {
	Name string
}

// Error implements the error interface.
func (e *ServiceNotFoundError) Error() string {
	return fmt.Sprintf("service %q is not present in VCAP_SERVICES", e.Name)
}

// ServiceTypeNotFoundError reports that VCAP_SERVICES has no bucket for
// the requested service type. An existing bucket with zero bindings is
// not this error; it is an empty success.
type ServiceTypeNotFoundError struct {
	Type string
}

// Error implements the error interface.
func (e *ServiceTypeNotFoundError) Error() string {
	return fmt.Sprintf("service type %q is not present in VCAP_SERVICES", e.Type)
}

// ErrUnknownMemoryUnit reports a memory size string whose trailing unit
// character is not one of G, g, M, m.
var ErrUnknownMemoryUnit = errors.New("memory unit unknown")

// IsNotSet checks if the error reports an unset environment variable.
func IsNotSet(err error) bool {
	var notSet *NotSetError

	return errors.As(err, &notSet)
}

// IsMalformed checks if the error reports a present-but-malformed
// environment variable.
func IsMalformed(err error) bool {
	var malformed *MalformedError

	return errors.As(err, &malformed)
}

// IsJSONMalformed checks if the error reports a failed JSON decode.
func IsJSONMalformed(err error) bool {
	var jsonErr *JSONError

	return errors.As(err, &jsonErr)
}

// IsServiceNotFound checks if the error reports a missing service name.
func IsServiceNotFound(err error) bool {
	var notFound *ServiceNotFoundError

	return errors.As(err, &notFound)
}

// IsServiceTypeNotFound checks if the error reports a missing service
// type bucket.
func IsServiceTypeNotFound(err error) bool {
	var notFound *ServiceTypeNotFoundError

	return errors.As(err, &notFound)
}
