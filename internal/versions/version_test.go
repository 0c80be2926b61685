package versions

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetVersionInfoWithValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		version       string
		commit        string
		buildDate     string
		wantVersion   string
		wantBuildDate string
	}{
		{
			name:          "release build",
			version:       "v1.2.0",
			commit:        "0123456789abcdef",
			buildDate:     "2026-03-01T10:00:00Z",
			wantVersion:   "v1.2.0",
			wantBuildDate: "2026-03-01 10:00:00 UTC",
		},
		{
			name:          "dev build uses short commit",
			version:       "dev",
			commit:        "0123456789abcdef",
			buildDate:     "not-a-timestamp",
			wantVersion:   "build-01234567",
			wantBuildDate: "not-a-timestamp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			info := getVersionInfoWithValues(tt.version, tt.commit, tt.buildDate)
			assert.Equal(t, tt.wantVersion, info.Version)
			assert.Equal(t, tt.commit, info.Commit)
			assert.Equal(t, tt.wantBuildDate, info.BuildDate)
			assert.Equal(t, runtime.Version(), info.GoVersion)
			assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
		})
	}
}

func TestUserAgent(t *testing.T) {
	t.Parallel()

	assert.True(t, strings.HasPrefix(UserAgent(), "egeria-client-go/"))
}

func TestParsePlatformVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		origin  string
		want    string
		wantErr bool
	}{
		{origin: "Egeria OMAG Server Platform (version 5.4-SNAPSHOT)", want: "5.4.0-SNAPSHOT"},
		{origin: "Egeria OMAG Server Platform (version 5.3)", want: "5.3.0"},
		{origin: "Egeria OMAG Server Platform (version 4.3.1)", want: "4.3.1"},
		{origin: "Egeria OMAG Server Platform", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			t.Parallel()

			v, err := ParsePlatformVersion(tt.origin)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.String())
		})
	}
}

func TestCheckPlatformVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		origin     string
		constraint string
		want       bool
		wantErr    bool
	}{
		{origin: "(version 5.4-SNAPSHOT)", want: true},
		{origin: "(version 5.0)", want: true},
		{origin: "(version 4.3)", want: false},
		{origin: "(version 5.2)", constraint: ">= 5.3", want: false},
		{origin: "(version 5.2)", constraint: "not a constraint", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.origin+tt.constraint, func(t *testing.T) {
			t.Parallel()

			v, err := ParsePlatformVersion(tt.origin)
			require.NoError(t, err)

			ok, err := CheckPlatformVersion(v, tt.constraint)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}
