package cfenv

import (
	"encoding/json"
	"strconv"

	"github.com/google/uuid"
)

// ByteUnit is the unit suffix of a platform memory size.
type ByteUnit string

// Units the platform uses in MEMORY_LIMIT.
const (
	Gigabyte ByteUnit = "G"
	Megabyte ByteUnit = "M"
)

// ParseByteUnit derives the unit from the final character of a size
// string. Only single-character G and M suffixes are recognized,
// case-insensitively; anything else is ErrUnknownMemoryUnit.
func ParseByteUnit(s string) (ByteUnit, error) {
	if s == "" {
		return "", ErrUnknownMemoryUnit
	}

	switch s[len(s)-1] {
	case 'G', 'g':
		return Gigabyte, nil
	case 'M', 'm':
		return Megabyte, nil
	default:
		return "", ErrUnknownMemoryUnit
	}
}

// MemoryLimit is the decoded form of MEMORY_LIMIT, e.g. "512M" or "4G".
type MemoryLimit struct {
	Size uint64   `json:"size" yaml:"size"`
	Unit ByteUnit `json:"unit" yaml:"unit"`
}

// ParseMemoryLimit decodes a "<size><unit>" string. The variable name is
// threaded through so a bad numeric part is reported against the right
// environment variable. An unrecognized unit character is
// ErrUnknownMemoryUnit; a recognized unit with a non-integer size is a
// MalformedError.
func ParseMemoryLimit(raw, variable string) (MemoryLimit, error) {
	unit, err := ParseByteUnit(raw)
	if err != nil {
		return MemoryLimit{}, err
	}

	size, err := strconv.ParseUint(raw[:len(raw)-1], 10, 64)
	if err != nil {
		return MemoryLimit{}, &MalformedError{Variable: variable, Reason: "not a valid unsigned integer"}
	}

	return MemoryLimit{Size: size, Unit: unit}, nil
}

// String renders the limit back to the platform's "<size><unit>" form.
func (m MemoryLimit) String() string {
	return strconv.FormatUint(m.Size, 10) + string(m.Unit)
}

// Bytes returns the limit in bytes.
func (m MemoryLimit) Bytes() uint64 {
	if m.Unit == Gigabyte {
		return m.Size << 30
	}

	return m.Size << 20
}

// ApplicationLimits holds the resource quotas granted to the app.
type ApplicationLimits struct {
	Disk uint64 `json:"disk" yaml:"disk"`
	FDs  uint64 `json:"fds"  yaml:"fds"`
	Mem  uint64 `json:"mem"  yaml:"mem"`
}

// Application is the decoded form of the VCAP_APPLICATION document.
// The lifecycle timestamps are optional in the source document and are
// empty when absent.
type Application struct {
	ApplicationID      uuid.UUID         `json:"application_id"                 yaml:"application_id"`
	ApplicationName    string            `json:"application_name"               yaml:"application_name"`
	ApplicationURIs    []string          `json:"application_uris"               yaml:"application_uris"`
	ApplicationVersion uuid.UUID         `json:"application_version"            yaml:"application_version"`
	CFAPI              string            `json:"cf_api"                         yaml:"cf_api"`
	Limits             ApplicationLimits `json:"limits"                         yaml:"limits"`
	Name               string            `json:"name"                           yaml:"name"`
	ProcessID          string            `json:"process_id"                     yaml:"process_id"`
	ProcessType        string            `json:"process_type"                   yaml:"process_type"`
	OrganizationID     uuid.UUID         `json:"organization_id"                yaml:"organization_id"`
	OrganizationName   string            `json:"organization_name"              yaml:"organization_name"`
	SpaceID            uuid.UUID         `json:"space_id"                       yaml:"space_id"`
	SpaceName          string            `json:"space_name"                     yaml:"space_name"`
	Start              string            `json:"start,omitempty"                yaml:"start,omitempty"`
	StartedAt          string            `json:"started_at,omitempty"           yaml:"started_at,omitempty"`
	StartedAtTimestamp string            `json:"started_at_timestamp,omitempty" yaml:"started_at_timestamp,omitempty"`
	StateTimestamp     string            `json:"state_timestamp,omitempty"      yaml:"state_timestamp,omitempty"`
	URIs               []string          `json:"uris"                           yaml:"uris"`
	Version            uuid.UUID         `json:"version"                        yaml:"version"`
}

// VolumeMount describes one volume attached through a service binding.
type VolumeMount struct {
	ContainerDir string `json:"container_dir" yaml:"container_dir"`
	DeviceType   string `json:"device_type"   yaml:"device_type"`
	Mode         string `json:"mode"          yaml:"mode"`
}

// Service is one binding from VCAP_SERVICES. The envelope fields are
// fixed by the platform; Credentials is provider-defined, so it is a
// type parameter. Use json.RawMessage (the ServiceMap default) to keep
// the payload opaque and byte-preserving, or any JSON-decodable struct
// for typed access via ServiceByName or ServicesByType.
type Service[C any] struct {
	BindingGUID    uuid.UUID     `json:"binding_guid"               yaml:"binding_guid"`
	BindingName    string        `json:"binding_name,omitempty"     yaml:"binding_name,omitempty"`
	InstanceGUID   uuid.UUID     `json:"instance_guid"              yaml:"instance_guid"`
	InstanceName   string        `json:"instance_name"              yaml:"instance_name"`
	Name           string        `json:"name"                       yaml:"name"`
	Label          string        `json:"label"                      yaml:"label"`
	Tags           []string      `json:"tags"                       yaml:"tags"`
	Plan           string        `json:"plan"                       yaml:"plan"`
	Credentials    C             `json:"credentials"                yaml:"credentials"`
	SyslogDrainURL string        `json:"syslog_drain_url,omitempty" yaml:"syslog_drain_url,omitempty"`
	VolumeMounts   []VolumeMount `json:"volume_mounts"              yaml:"volume_mounts"`
}

// ServiceMap mirrors the literal shape of VCAP_SERVICES: service type
// name to the bindings of that type, credentials left opaque.
type ServiceMap map[string][]Service[json.RawMessage]
