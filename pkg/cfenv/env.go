package cfenv

import (
	"fmt"
	"net/netip"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/language"
)

// Lookup resolves one environment variable and reports whether it is
// set. It is the only seam between the library and the process
// environment; tests and snapshot-minded callers substitute their own.
type Lookup func(key string) (string, bool)

// Env converts Cloud Foundry runtime variables to typed values. Every
// accessor reads through the Lookup fresh; nothing is cached, so two
// calls may observe different environments if the host process mutates
// them in between. Construct with New or NewWithLookup.
type Env struct {
	lookup Lookup
}

// New returns an Env backed by the process environment.
func New() *Env {
	return &Env{lookup: os.LookupEnv}
}

// NewWithLookup returns an Env backed by the given lookup function.
func NewWithLookup(lookup Lookup) *Env {
	return &Env{lookup: lookup}
}

func (e *Env) get(key string) (string, error) {
	value, ok := e.lookup(key)
	if !ok {
		return "", &NotSetError{Variable: key}
	}

	return value, nil
}

// IsRunningOnCF reports whether VCAP_APPLICATION is set. The content is
// not inspected; a malformed value still counts as running on the
// platform.
func (e *Env) IsRunningOnCF() bool {
	_, ok := e.lookup(EnvVCAPApplication)

	return ok
}

// InstanceAddress returns CF_INSTANCE_ADDR as a socket address.
func (e *Env) InstanceAddress() (netip.AddrPort, error) {
	raw, err := e.get(EnvInstanceAddr)
	if err != nil {
		return netip.AddrPort{}, err
	}

	addr, err := netip.ParseAddrPort(raw)
	if err != nil {
		return netip.AddrPort{}, &MalformedError{Variable: EnvInstanceAddr, Reason: "does not match the format ip:port"}
	}

	return addr, nil
}

// InstanceGUID returns CF_INSTANCE_GUID as a typed GUID.
func (e *Env) InstanceGUID() (uuid.UUID, error) {
	raw, err := e.get(EnvInstanceGUID)
	if err != nil {
		return uuid.Nil, err
	}

	guid, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &MalformedError{Variable: EnvInstanceGUID, Reason: "not a valid GUID"}
	}

	return guid, nil
}

// InstanceIndex returns CF_INSTANCE_INDEX as an unsigned integer.
func (e *Env) InstanceIndex() (uint64, error) {
	raw, err := e.get(EnvInstanceIndex)
	if err != nil {
		return 0, err
	}

	index, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, &MalformedError{Variable: EnvInstanceIndex, Reason: "not a valid unsigned integer"}
	}

	return index, nil
}

// InstanceIP returns CF_INSTANCE_IP as a typed IP address.
func (e *Env) InstanceIP() (netip.Addr, error) {
	return e.ipVar(EnvInstanceIP)
}

// InstanceInternalIP returns CF_INSTANCE_INTERNAL_IP as a typed IP
// address.
func (e *Env) InstanceInternalIP() (netip.Addr, error) {
	return e.ipVar(EnvInstanceInternalIP)
}

func (e *Env) ipVar(key string) (netip.Addr, error) {
	raw, err := e.get(key)
	if err != nil {
		return netip.Addr{}, err
	}

	addr, err := netip.ParseAddr(raw)
	if err != nil {
		return netip.Addr{}, &MalformedError{Variable: key, Reason: "not a valid IP address"}
	}

	return addr, nil
}

// InstancePort returns CF_INSTANCE_PORT as a port number.
func (e *Env) InstancePort() (uint16, error) {
	return e.portVar(EnvInstancePort)
}

// Port returns PORT, the port the app is expected to listen on.
func (e *Env) Port() (uint16, error) {
	return e.portVar(EnvPort)
}

func (e *Env) portVar(key string) (uint16, error) {
	raw, err := e.get(key)
	if err != nil {
		return 0, err
	}

	port, err := strconv.ParseUint(raw, 10, 16)
	if err != nil {
		return 0, &MalformedError{Variable: key, Reason: "not a valid port number (0-65535)"}
	}

	return uint16(port), nil
}

// DatabaseURL returns DATABASE_URL as a parsed URI.
func (e *Env) DatabaseURL() (*url.URL, error) {
	raw, err := e.get(EnvDatabaseURL)
	if err != nil {
		return nil, err
	}

	uri, err := url.Parse(raw)
	if err != nil {
		return nil, &MalformedError{Variable: EnvDatabaseURL, Reason: "not a valid URI"}
	}

	return uri, nil
}

// Home returns HOME, the root directory of the deployed app. Any string
// is a valid path, so the only possible failure is the variable being
// unset.
func (e *Env) Home() (string, error) {
	return e.get(EnvHome)
}

// Pwd returns PWD, the working directory of the app process.
func (e *Env) Pwd() (string, error) {
	return e.get(EnvPwd)
}

// TmpDir returns TMPDIR, the directory for temporary and staging files.
func (e *Env) TmpDir() (string, error) {
	return e.get(EnvTmpDir)
}

// User returns USER, the account the app process runs as.
func (e *Env) User() (string, error) {
	return e.get(EnvUser)
}

// Lang returns LANG as a BCP 47 language tag. The locale parser is
// isolated behind a recover, so a catastrophic failure on garbage input
// surfaces as a MalformedError instead of taking the process down.
func (e *Env) Lang() (language.Tag, error) {
	raw, err := e.get(EnvLang)
	if err != nil {
		return language.Und, err
	}

	tag, err := parseLocale(raw)
	if err != nil {
		return language.Und, &MalformedError{Variable: EnvLang, Reason: "not a valid locale"}
	}

	return tag, nil
}

func parseLocale(raw string) (tag language.Tag, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("locale parser panicked: %v", r)
		}
	}()

	// Platform LANG values usually carry an encoding suffix
	// ("en_US.UTF-8") that the tag grammar does not allow.
	raw, _, _ = strings.Cut(raw, ".")

	return language.Parse(raw)
}

// MemoryLimit returns MEMORY_LIMIT as a typed size and unit.
func (e *Env) MemoryLimit() (MemoryLimit, error) {
	raw, err := e.get(EnvMemoryLimit)
	if err != nil {
		return MemoryLimit{}, err
	}

	return ParseMemoryLimit(raw, EnvMemoryLimit)
}
