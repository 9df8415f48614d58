package cfenv

// Environment variables set by the Cloud Foundry runtime for every
// application instance. Names are case-sensitive and match the platform
// exactly.
const (
	// EnvInstanceAddr holds the instance address as "<ip>:<port>".
	EnvInstanceAddr = "CF_INSTANCE_ADDR"

	// EnvInstanceGUID holds the GUID of this app instance.
	EnvInstanceGUID = "CF_INSTANCE_GUID"

	// EnvInstanceIndex holds the zero-based index of this instance.
	EnvInstanceIndex = "CF_INSTANCE_INDEX"

	// EnvInstanceIP holds the externally visible IP of the host cell.
	EnvInstanceIP = "CF_INSTANCE_IP"

	// EnvInstanceInternalIP holds the container-internal IP.
	EnvInstanceInternalIP = "CF_INSTANCE_INTERNAL_IP"

	// EnvInstancePort holds the externally visible port of the instance.
	EnvInstancePort = "CF_INSTANCE_PORT"

	// EnvPort holds the port the app should listen on.
	EnvPort = "PORT"
)

// Variables describing the app's runtime container and limits.
const (
	// EnvDatabaseURL holds the URI of a bound database, if the platform
	// or a buildpack exposes one.
	EnvDatabaseURL = "DATABASE_URL"

	// EnvHome holds the root directory of the deployed app.
	EnvHome = "HOME"

	// EnvLang holds the locale the container runs under.
	EnvLang = "LANG"

	// EnvMemoryLimit holds the memory quota as "<size><G|M>".
	EnvMemoryLimit = "MEMORY_LIMIT"

	// EnvPwd holds the working directory of the app process.
	EnvPwd = "PWD"

	// EnvTmpDir holds the directory for temporary and staging files.
	EnvTmpDir = "TMPDIR"

	// EnvUser holds the account the app process runs as.
	EnvUser = "USER"
)

// JSON-bearing variables.
const (
	// EnvVCAPApplication holds the application metadata document.
	EnvVCAPApplication = "VCAP_APPLICATION"

	// EnvVCAPServices holds the bound service credentials document.
	EnvVCAPServices = "VCAP_SERVICES"
)
