// Package cfenv provides typed access to the environment variables Cloud
// Foundry sets for a running application instance: instance networking,
// identifiers, resource limits, the VCAP_APPLICATION document, and the
// service bindings in VCAP_SERVICES.
//
// # Overview
//
// Every accessor reads the environment fresh, converts the raw string to
// a typed value, and reports failure as one of a small set of error
// values: the variable is unset (NotSetError), set but the wrong shape
// (MalformedError), or carries JSON that does not decode (JSONError).
// Helpers such as IsNotSet and IsMalformed make it easy to branch on the
// failure kind.
//
// Getting started
//
//	env := cfenv.New()
//
//	if !env.IsRunningOnCF() {
//	  log.Fatal("not running on Cloud Foundry")
//	}
//
//	app, err := env.ApplicationInfo()
//	if err != nil { log.Fatal(err) }
//	_ = app.SpaceName
//
// # Service bindings
//
// Services returns the full VCAP_SERVICES document with each binding's
// credentials left as opaque JSON. Because credential schemas are
// provider-defined, strongly typing them is opt-in: ServiceByName and
// ServicesByType take a credential type parameter and run a second
// decode pass against just that payload.
//
//	type dbCredentials struct {
//	  URI      string `json:"uri"`
//	  Username string `json:"username"`
//	  Password string `json:"password"`
//	}
//
//	svc, err := cfenv.ServiceByName[dbCredentials](env, "my-db")
//	if err != nil { log.Fatal(err) }
//	_ = svc.Credentials.URI
//
// # Testing
//
// Accessors read through a Lookup function, so tests substitute a
// deterministic source instead of mutating the process environment:
//
//	env := cfenv.NewWithLookup(func(key string) (string, bool) {
//	  v, ok := fixture[key]
//	  return v, ok
//	})
//
// The same seam gives callers a consistent snapshot: capture the raw
// values once, then feed them to the exported parse helpers
// (ParseMemoryLimit, ParseApplication, ParseServices) without going back
// to the live environment.
package cfenv
