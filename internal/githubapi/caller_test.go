package githubapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thep200/github-collector/cfg"
	"github.com/thep200/github-collector/internal/errs"
	"github.com/thep200/github-collector/pkg/log"
)

// setupTestCaller tạo một Caller trỏ vào mock HTTP server
func setupTestCaller(t *testing.T, handler http.Handler) (*Caller, *cfg.Config, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	loader, err := cfg.NewMockLoader()
	require.NoError(t, err)
	config, err := loader.Load()
	require.NoError(t, err)

	config.GithubApi.SearchApiUrl = server.URL + "/search/repositories?q=stars:>1&sort=stars&order=desc"
	config.GithubApi.LicenseApiUrl = server.URL + "/repos/{user}/{repo}/license"
	config.GithubApi.SiteUrl = server.URL + "/"
	config.GithubApi.RequestsPerSecond = 1000

	logger, err := log.NewCslLogger()
	require.NoError(t, err)

	return NewCaller(logger, config, nil), config, server
}

func TestCaller_Search(t *testing.T) {
	testCases := []struct {
		name        string
		token       string
		handlerFunc func(t *testing.T, w http.ResponseWriter, r *http.Request)
		wantItems   int
		wantErr     bool
		wantErrType interface{}
	}{
		{
			name: "happy path - decodes items in order",
			handlerFunc: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				assert.Contains(t, r.URL.String(), "/search/repositories")
				assert.Equal(t, "100", r.URL.Query().Get("per_page"))
				assert.Equal(t, "1", r.URL.Query().Get("page"))
				fmt.Fprint(w, `{"total_count": 2, "items": [{"name":"x","full_name":"o/x","owner":{"login":"o"}},{"name":"y","full_name":"o/y","owner":{"login":"o"}}]}`)
			},
			wantItems: 2,
		},
		{
			name:  "token is attached when configured",
			token: "testtoken",
			handlerFunc: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "token testtoken", r.Header.Get("Authorization"))
				fmt.Fprint(w, `{"total_count": 0, "items": []}`)
			},
			wantItems: 0,
		},
		{
			name: "unauthorized response is an auth error",
			handlerFunc: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
			wantErr:     true,
			wantErrType: &errs.AuthError{},
		},
		{
			name: "unparseable body is a transport error",
			handlerFunc: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"items": not-json`)
			},
			wantErr:     true,
			wantErrType: &errs.TransportError{},
		},
		{
			name: "server error is a transport error",
			handlerFunc: func(t *testing.T, w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantErr:     true,
			wantErrType: &errs.TransportError{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			caller, config, _ := setupTestCaller(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				tc.handlerFunc(t, w, r)
			}))
			config.GithubApi.AccessToken = tc.token

			items, err := caller.Search(context.Background(), 1, 100)
			if tc.wantErr {
				require.Error(t, err)
				switch tc.wantErrType.(type) {
				case *errs.AuthError:
					var authErr *errs.AuthError
					assert.True(t, errors.As(err, &authErr))
				case *errs.TransportError:
					var transportErr *errs.TransportError
					assert.True(t, errors.As(err, &transportErr))
				}
				return
			}
			require.NoError(t, err)
			assert.Len(t, items, tc.wantItems)
			if tc.wantItems == 2 {
				assert.Equal(t, "o/x", items[0].FullName)
				assert.Equal(t, "o/y", items[1].FullName)
			}
		})
	}
}

func TestCaller_FetchLicense(t *testing.T) {
	testCases := []struct {
		name        string
		handlerFunc func(w http.ResponseWriter, r *http.Request)
		wantNil     bool
		wantName    string
		wantErr     bool
	}{
		{
			name: "license present",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"license":{"key":"mit","name":"MIT License"}}`)
			},
			wantName: "MIT License",
		},
		{
			name: "missing resource is not an error",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			wantNil: true,
		},
		{
			name: "empty body is not an error",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
			},
			wantNil: true,
		},
		{
			name: "malformed body is not an error",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `<html>not json</html>`)
			},
			wantNil: true,
		},
		{
			name: "server error is a transport error",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			caller, _, _ := setupTestCaller(t, http.HandlerFunc(tc.handlerFunc))

			resp, err := caller.FetchLicense(context.Background(), "o", "x")
			if tc.wantErr {
				var transportErr *errs.TransportError
				require.Error(t, err)
				assert.True(t, errors.As(err, &transportErr))
				return
			}
			require.NoError(t, err)
			if tc.wantNil {
				assert.Nil(t, resp)
				return
			}
			require.NotNil(t, resp)
			require.NotNil(t, resp.License)
			assert.Equal(t, tc.wantName, resp.License.Name)
		})
	}
}

func TestCaller_FetchPage(t *testing.T) {
	caller, _, _ := setupTestCaller(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/o/x", r.URL.Path)
		fmt.Fprint(w, "<html><body>repository page</body></html>")
	}))

	page, err := caller.FetchPage(context.Background(), "o", "x")
	require.NoError(t, err)
	assert.Contains(t, page, "repository page")
}
