package aws

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spotadvisor/pkg/models"
)

const advisorJSON = `{
  "ranges": [
    {"index": 0, "label": "<5%", "dots": 0, "max": 5},
    {"index": 1, "label": "5-10%", "dots": 1, "max": 11}
  ],
  "instance_types": {
    "m5a.xlarge": {"emr": true, "cores": 4, "ram_gb": 16.0},
    "c5.large": {"emr": false, "cores": 2, "ram_gb": 4.0}
  },
  "spot_advisor": {
    "eu-west-1": {"Linux": {"m5a.xlarge": {"s": 70, "r": 1}, "c5.large": {"s": 60, "r": 0}}}
  }
}`

func newTestSource(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchHTTP(t *testing.T) {
	srv := newTestSource(t, http.StatusOK, advisorJSON)

	data, err := Fetch(context.Background(), srv.URL, 5*time.Second)
	require.NoError(t, err)
	assert.Len(t, data.Ranges, 2)
	assert.Equal(t, 4, data.InstanceTypes["m5a.xlarge"].Cores)
	assert.Equal(t, models.SpotInfo{Range: 0, Savings: 60}, data.Regions["eu-west-1"][models.Linux]["c5.large"])
}

func TestFetchNon200(t *testing.T) {
	srv := newTestSource(t, http.StatusForbidden, `<Error>AccessDenied</Error>`)

	data, err := Fetch(context.Background(), srv.URL, 5*time.Second)
	assert.Nil(t, data)
	assert.True(t, errors.Is(err, ErrTransport))
	assert.Contains(t, err.Error(), "403")
}

func TestFetchUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := Fetch(context.Background(), url, time.Second)
	assert.True(t, errors.Is(err, ErrTransport))

	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, url, fetchErr.Source)
}

func TestFetchMalformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `callback({});`},
		{"wrong shape", `{"ranges": {"a": 1}}`},
		{"missing section", `{"ranges": [], "instance_types": {}}`},
		{"code out of range", `{"ranges": [], "instance_types": {}, "spot_advisor": {"eu-west-1": {"Linux": {"c5.large": {"r": 0}}}}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestSource(t, http.StatusOK, tt.body)
			_, err := Fetch(context.Background(), srv.URL, 5*time.Second)
			assert.True(t, errors.Is(err, ErrMalformed), "got %v", err)
			assert.False(t, errors.Is(err, ErrTransport))
		})
	}
}

func TestFetchFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spot-advisor-data.json")
	require.NoError(t, os.WriteFile(path, []byte(advisorJSON), 0o600))

	for _, source := range []string{path, "file://" + path} {
		data, err := Fetch(context.Background(), source, time.Second)
		require.NoError(t, err, source)
		assert.Equal(t, []string{"c5.large", "m5a.xlarge"}, data.InstanceNames())
	}

	_, err := Fetch(context.Background(), filepath.Join(t.TempDir(), "missing.json"), time.Second)
	assert.True(t, errors.Is(err, ErrTransport))
}
