package cfenv

import "encoding/json"

// ParseApplication decodes a raw VCAP_APPLICATION document. Failure
// means invalid JSON or a type-mismatched field (e.g. a non-GUID
// application_id); fields absent from the document are left at their
// zero values.
func ParseApplication(raw string) (*Application, error) {
	var app Application
	if err := json.Unmarshal([]byte(raw), &app); err != nil {
		return nil, &JSONError{Source: EnvVCAPApplication}
	}

	return &app, nil
}

// ApplicationInfo returns the decoded VCAP_APPLICATION document.
func (e *Env) ApplicationInfo() (*Application, error) {
	raw, err := e.get(EnvVCAPApplication)
	if err != nil {
		return nil, err
	}

	return ParseApplication(raw)
}

// ParseServices decodes a raw VCAP_SERVICES document, leaving each
// binding's credentials as opaque JSON.
func ParseServices(raw string) (ServiceMap, error) {
	var services ServiceMap
	if err := json.Unmarshal([]byte(raw), &services); err != nil {
		return nil, &JSONError{Source: EnvVCAPServices}
	}

	return services, nil
}

// Services returns every binding from VCAP_SERVICES keyed by service
// type. Credentials stay opaque at this layer; use ServiceByName or
// ServicesByType for typed access.
func (e *Env) Services() (ServiceMap, error) {
	raw, err := e.get(EnvVCAPServices)
	if err != nil {
		return nil, err
	}

	return ParseServices(raw)
}

// ServiceByName finds the binding named name in any type bucket of
// VCAP_SERVICES and re-decodes its credentials into T. A binding whose
// credentials do not match T is reported as a JSONError with the source
// "<name>.credentials", distinct from the whole document failing to
// decode.
//
// When several bindings share a name across buckets, which one is
// returned is implementation-defined: buckets are visited in Go map
// order, which varies between runs. Within a bucket, document order
// wins.
func ServiceByName[T any](env *Env, name string) (*Service[T], error) {
	services, err := env.Services()
	if err != nil {
		return nil, err
	}

	for _, bucket := range services {
		for _, svc := range bucket {
			if svc.Name != name {
				continue
			}

			typed, err := retype[T](svc)
			if err != nil {
				return nil, &JSONError{Source: svc.Name + ".credentials"}
			}

			return typed, nil
		}
	}

	return nil, &ServiceNotFoundError{Name: name}
}

// ServicesByType re-decodes the whole VCAP_SERVICES bucket for typeName
// against the credential type T. A bucket that exists but is empty is a
// success with an empty slice; a missing bucket key is a
// ServiceTypeNotFoundError.
func ServicesByType[T any](env *Env, typeName string) ([]Service[T], error) {
	services, err := env.Services()
	if err != nil {
		return nil, err
	}

	bucket, ok := services[typeName]
	if !ok {
		return nil, &ServiceTypeNotFoundError{Type: typeName}
	}

	data, err := json.Marshal(bucket)
	if err != nil {
		return nil, &JSONError{Source: typeName + ".credentials"}
	}

	typed := make([]Service[T], 0, len(bucket))
	if err := json.Unmarshal(data, &typed); err != nil {
		return nil, &JSONError{Source: typeName + ".credentials"}
	}

	return typed, nil
}

// retype runs the second deserialization pass: the generically decoded
// binding is re-encoded and decoded against the caller's credential
// schema. The envelope fields survive unchanged; only the credentials
// payload gains (or fails) its stronger type.
func retype[T any](svc Service[json.RawMessage]) (*Service[T], error) {
	data, err := json.Marshal(svc)
	if err != nil {
		return nil, err
	}

	var typed Service[T]
	if err := json.Unmarshal(data, &typed); err != nil {
		return nil, err
	}

	return &typed, nil
}
