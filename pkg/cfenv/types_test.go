package cfenv_test

import (
	"encoding/json"
	"testing"

	"github.com/fivetwenty-io/cfenv/pkg/cfenv"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseByteUnit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected cfenv.ByteUnit
	}{
		{"2G", cfenv.Gigabyte},
		{"2g", cfenv.Gigabyte},
		{"512M", cfenv.Megabyte},
		{"512m", cfenv.Megabyte},
		{"G", cfenv.Gigabyte},
	}

	for _, testCase := range tests {
		testCase := testCase

		t.Run(testCase.input, func(t *testing.T) {
			t.Parallel()

			unit, err := cfenv.ParseByteUnit(testCase.input)
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, unit)
		})
	}
}

func TestParseByteUnitUnknown(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"2T", "2K", "512", ""} {
		input := input

		t.Run("input "+input, func(t *testing.T) {
			t.Parallel()

			_, err := cfenv.ParseByteUnit(input)
			require.ErrorIs(t, err, cfenv.ErrUnknownMemoryUnit)
		})
	}
}

func TestParseMemoryLimit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected cfenv.MemoryLimit
	}{
		{"512M", cfenv.MemoryLimit{Size: 512, Unit: cfenv.Megabyte}},
		{"1024m", cfenv.MemoryLimit{Size: 1024, Unit: cfenv.Megabyte}},
		{"4G", cfenv.MemoryLimit{Size: 4, Unit: cfenv.Gigabyte}},
		{"0g", cfenv.MemoryLimit{Size: 0, Unit: cfenv.Gigabyte}},
	}

	for _, testCase := range tests {
		testCase := testCase

		t.Run(testCase.input, func(t *testing.T) {
			t.Parallel()

			limit, err := cfenv.ParseMemoryLimit(testCase.input, cfenv.EnvMemoryLimit)
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, limit)
		})
	}
}

func TestParseMemoryLimitBadSize(t *testing.T) {
	t.Parallel()

	// A recognized unit with a bad numeric part is a MalformedError
	// against the named variable, not an unknown-unit error.
	for _, input := range []string{"-512M", "1.5G", "G", "twoG"} {
		input := input

		t.Run("input "+input, func(t *testing.T) {
			t.Parallel()

			_, err := cfenv.ParseMemoryLimit(input, cfenv.EnvMemoryLimit)

			var malformed *cfenv.MalformedError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, cfenv.EnvMemoryLimit, malformed.Variable)
			assert.Equal(t, "not a valid unsigned integer", malformed.Reason)
		})
	}
}

func TestParseMemoryLimitUnknownUnit(t *testing.T) {
	t.Parallel()

	_, err := cfenv.ParseMemoryLimit("512T", cfenv.EnvMemoryLimit)
	require.ErrorIs(t, err, cfenv.ErrUnknownMemoryUnit)
}

func TestMemoryLimitString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "512M", cfenv.MemoryLimit{Size: 512, Unit: cfenv.Megabyte}.String())
	assert.Equal(t, "4G", cfenv.MemoryLimit{Size: 4, Unit: cfenv.Gigabyte}.String())
}

func TestMemoryLimitBytes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint64(512)<<20, cfenv.MemoryLimit{Size: 512, Unit: cfenv.Megabyte}.Bytes())
	assert.Equal(t, uint64(4)<<30, cfenv.MemoryLimit{Size: 4, Unit: cfenv.Gigabyte}.Bytes())
}

const applicationJSON = `{
	"application_id": "e3a2f5a6-4f0f-4e62-9a1c-9f3b3a9d5a10",
	"application_name": "my-app",
	"application_uris": ["my-app.example.com"],
	"application_version": "9f3cdf9b-5de6-47ff-b3b3-01e3d5a1c6cb",
	"cf_api": "https://api.example.com",
	"limits": {"disk": 1024, "fds": 16384, "mem": 512},
	"name": "my-app",
	"process_id": "f4f2d6e8-9e9a-4c4f-b0a1-2226dcb2f9b3",
	"process_type": "web",
	"organization_id": "c0c8988d-2f97-4768-832a-677557f22322",
	"organization_name": "my-org",
	"space_id": "37d61955-5921-4325-a0a6-3abd1b3e1ae4",
	"space_name": "staging",
	"started_at": "2024-05-02 10:21:14 +0000",
	"uris": ["my-app.example.com"],
	"version": "9f3cdf9b-5de6-47ff-b3b3-01e3d5a1c6cb"
}`

func TestApplicationDecode(t *testing.T) {
	t.Parallel()

	app, err := cfenv.ParseApplication(applicationJSON)
	require.NoError(t, err)

	assert.Equal(t, uuid.MustParse("e3a2f5a6-4f0f-4e62-9a1c-9f3b3a9d5a10"), app.ApplicationID)
	assert.Equal(t, "my-app", app.ApplicationName)
	assert.Equal(t, []string{"my-app.example.com"}, app.ApplicationURIs)
	assert.Equal(t, "https://api.example.com", app.CFAPI)
	assert.Equal(t, cfenv.ApplicationLimits{Disk: 1024, FDs: 16384, Mem: 512}, app.Limits)
	assert.Equal(t, "web", app.ProcessType)
	assert.Equal(t, "my-org", app.OrganizationName)
	assert.Equal(t, uuid.MustParse("37d61955-5921-4325-a0a6-3abd1b3e1ae4"), app.SpaceID)
	assert.Equal(t, "2024-05-02 10:21:14 +0000", app.StartedAt)

	// Optional lifecycle timestamps absent from the document stay empty.
	assert.Empty(t, app.Start)
	assert.Empty(t, app.StateTimestamp)
}

func TestApplicationEquality(t *testing.T) {
	t.Parallel()

	first, err := cfenv.ParseApplication(applicationJSON)
	require.NoError(t, err)

	second, err := cfenv.ParseApplication(applicationJSON)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestServiceRoundTrip(t *testing.T) {
	t.Parallel()

	credentials := `{"uri":"postgres://u:p@db.example.com:5432/app","nested":{"weird":[1,2,{"deep":true}]}}`
	svc := cfenv.Service[json.RawMessage]{
		BindingGUID:  uuid.MustParse("8d2b186f-22a6-4ab1-9e68-b3bd9786e432"),
		InstanceGUID: uuid.MustParse("02c288a2-7e8b-4f1a-b22f-0c0161b4a9ba"),
		InstanceName: "app-db",
		Name:         "app-db",
		Label:        "postgres",
		Tags:         []string{"relational", "sql"},
		Plan:         "standard",
		Credentials:  json.RawMessage(credentials),
		VolumeMounts: []cfenv.VolumeMount{{ContainerDir: "/data", DeviceType: "shared", Mode: "rw"}},
	}

	data, err := json.Marshal(svc)
	require.NoError(t, err)

	var decoded cfenv.Service[json.RawMessage]

	err = json.Unmarshal(data, &decoded)
	require.NoError(t, err)

	assert.Equal(t, svc.BindingGUID, decoded.BindingGUID)
	assert.Equal(t, svc.Name, decoded.Name)
	assert.Equal(t, svc.Tags, decoded.Tags)
	assert.Equal(t, svc.VolumeMounts, decoded.VolumeMounts)

	// The opaque credential payload survives byte-for-byte.
	assert.Equal(t, credentials, string(decoded.Credentials))
}
