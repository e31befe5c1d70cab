package cli

import (
	"bytes"
	"context"
	"net/http"
	"path/filepath"
	"strings"
	"testing"

	"github.com/anmicius0/nexus-cli/internal/client"
	"github.com/anmicius0/nexus-cli/internal/config"
	"github.com/anmicius0/nexus-cli/internal/nexustest"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	*App
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	srv    *nexustest.Server
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	app := &App{
		Stdout:  stdout,
		Stderr:  stderr,
		Stdin:   strings.NewReader(""),
		FS:      afero.NewMemMapFs(),
		HomeDir: t.TempDir(),
		flags:   viper.New(),
	}
	return &testApp{App: app, stdout: stdout, stderr: stderr, srv: nexustest.New(t)}
}

// run executes args with credentials pointing at the fake server.
func (ta *testApp) run(args ...string) int {
	overrides := "--overrides=url=" + ta.srv.URL + ",username=admin,password=admin123"
	return Run(context.Background(), ta.App, append([]string{overrides}, args...))
}

func TestRun_CapabilityCreate(t *testing.T) {
	ta := newTestApp(t)
	ta.srv.On(http.MethodPost, "/service/siesta/capabilities", http.StatusOK, `{"capability":{"id":"42"}}`)

	code := ta.run("capability", "create", "foo", "--properties", "a=1,b=2")
	require.Equal(t, 0, code, ta.stderr.String())
	assert.Equal(t, "Created capability 42\n", ta.stdout.String())

	rec, ok := ta.srv.Last(http.MethodPost, "/service/siesta/capabilities")
	require.True(t, ok)
	assert.JSONEq(t, `{"typeId":"foo","enabled":true,"properties":[{"key":"a","value":"1"},{"key":"b","value":"2"}]}`, rec.Body)
}

func TestRun_ExitCodesFollowErrorKind(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		status int
		args   []string
		want   int
	}{
		{"not found", http.MethodDelete, "/service/siesta/capabilities/42", http.StatusNotFound, []string{"capability", "delete", "42"}, 104},
		{"rejected", http.MethodPut, "/service/siesta/capabilities/7", http.StatusBadRequest, []string{"capability", "update", "7", "--type", "x"}, 102},
		{"unavailable", http.MethodGet, "/service/local/users", http.StatusServiceUnavailable, []string{"user", "list"}, 105},
		{"unexpected", http.MethodGet, "/service/local/repositories/r", http.StatusForbidden, []string{"repository", "get", "r"}, 106},
		{"invalid settings", http.MethodPut, "/service/local/global_settings/current", http.StatusBadRequest, []string{"global-settings", "upload", "--json", `{}`}, 103},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t)
			ta.srv.On(tt.method, tt.path, tt.status, "nope")

			assert.Equal(t, tt.want, ta.run(tt.args...))
			assert.Contains(t, ta.stderr.String(), "Error:")
		})
	}
}

func TestRun_ConfigErrorIssuesNoRequest(t *testing.T) {
	ta := newTestApp(t)

	code := Run(context.Background(), ta.App, []string{"--overrides=url=" + ta.srv.URL, "user", "list"})
	assert.Equal(t, ExitConfig, code)
	assert.Empty(t, ta.srv.Requests())

	code = Run(context.Background(), newTestApp(t).App, []string{"--overrides=colour=blue", "user", "list"})
	assert.Equal(t, ExitConfig, code)
}

func TestRun_ConfigMasksPassword(t *testing.T) {
	ta := newTestApp(t)

	require.Equal(t, 0, ta.run("config", "-o", "json"))
	assert.Contains(t, ta.stdout.String(), `"password": "***"`)
	assert.NotContains(t, ta.stdout.String(), "admin123")
	assert.Contains(t, ta.stdout.String(), filepath.Join(ta.HomeDir, config.DefaultSettingsDirName))
}

func TestRun_Status(t *testing.T) {
	ta := newTestApp(t)
	ta.srv.On(http.MethodGet, "/service/local/status", http.StatusOK,
		`{"data":{"appName":"Nexus Repository Manager","version":"2.15.1","editionShort":"PRO","editionLong":"Professional"}}`)

	require.Equal(t, 0, ta.run("status", "-o", "yaml"))
	assert.Contains(t, ta.stdout.String(), "version: 2.15.1")
}

func TestRun_ProCommandOnBaseServer(t *testing.T) {
	ta := newTestApp(t)
	ta.srv.On(http.MethodGet, "/service/local/status", http.StatusOK, `{"data":{"editionShort":"OSS"}}`)

	assert.Equal(t, client.KindNotSupported.ExitCode(), ta.run("trusted-key", "list"))
	assert.Contains(t, ta.stderr.String(), "requires Nexus Pro")

	reqs := ta.srv.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/service/local/status", reqs[0].Path)
}

func TestRun_SmartProxyEnableOnPro(t *testing.T) {
	ta := newTestApp(t)
	ta.srv.On(http.MethodGet, "/service/local/status", http.StatusOK, `{"data":{"editionShort":"PRO"}}`)
	ta.srv.On(http.MethodPut, "/service/local/smartproxy/settings", http.StatusOK, `{"data":{}}`)

	require.Equal(t, 0, ta.run("smart-proxy", "enable", "--host", "nexus.local", "--port", "8083"), ta.stderr.String())
	rec, _ := ta.srv.Last(http.MethodPut, "/service/local/smartproxy/settings")
	assert.JSONEq(t, `{"data":{"enabled":true,"host":"nexus.local","port":8083}}`, rec.Body)
}

func TestRun_LicenseInstallReadsFile(t *testing.T) {
	ta := newTestApp(t)
	ta.srv.On(http.MethodGet, "/service/local/status", http.StatusOK, `{"data":{"editionShort":"PRO"}}`)
	ta.srv.On(http.MethodPost, "/service/local/licensing/upload", http.StatusCreated, "")
	require.NoError(t, afero.WriteFile(ta.FS, "/tmp/nexus.lic", []byte("LICENSE"), 0o600))

	require.Equal(t, 0, ta.run("license", "install", "/tmp/nexus.lic"), ta.stderr.String())
	rec, _ := ta.srv.Last(http.MethodPost, "/service/local/licensing/upload")
	assert.Equal(t, "LICENSE", rec.Body)
}

func TestRun_PubSubToggle(t *testing.T) {
	ta := newTestApp(t)
	ta.srv.On(http.MethodGet, "/service/local/status", http.StatusOK, `{"data":{"editionShort":"PRO"}}`)
	ta.srv.On(http.MethodGet, "/service/local/smartproxy/pub-sub/releases", http.StatusOK, `{"data":{"repositoryId":"releases","subscribe":true}}`)
	ta.srv.On(http.MethodPut, "/service/local/smartproxy/pub-sub/releases", http.StatusOK, `{"data":{}}`)

	require.Equal(t, 0, ta.run("pub-sub", "enable-publish", "releases"), ta.stderr.String())
	rec, _ := ta.srv.Last(http.MethodPut, "/service/local/smartproxy/pub-sub/releases")
	assert.JSONEq(t, `{"data":{"repositoryId":"releases","publish":true,"subscribe":true,"preemptiveFetch":false}}`, rec.Body)
}
