package stringdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredScore(t *testing.T) {
	tests := []struct {
		threshold float64
		want      int
	}{
		{0.4, 400},
		{0.0, 0},
		{1.0, 1000},
		{0.05, 50},
		{0.666, 666},
		{0.9995, 1000}, // rounds, not truncates
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RequiredScore(tt.threshold), "threshold %v", tt.threshold)
	}
}

func TestNetwork(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/json/network", r.URL.Path)
		assert.Equal(t, "P04637", r.PostForm.Get("identifiers"))
		assert.Equal(t, "9606", r.PostForm.Get("species"))
		assert.Equal(t, "prothub", r.PostForm.Get("caller_identity"))
		assert.Equal(t, "400", r.PostForm.Get("required_score"))

		w.Write([]byte(`[
			{"preferredName_A":"TP53","preferredName_B":"MDM2","score":0.999},
			{"preferredName_A":"TP53","preferredName_B":"EP300","score":0.987}
		]`))
	}))
	defer srv.Close()

	c := NewClient()
	c.BaseURL = srv.URL

	records, err := c.Network(context.Background(), "P04637", 9606, 0.4)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "TP53", records[0].PreferredNameA)
	assert.Equal(t, "MDM2", records[0].PreferredNameB)
	assert.Equal(t, 0.999, records[0].Score)
}

func TestNetworkNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewClient()
	c.BaseURL = srv.URL

	_, err := c.Network(context.Background(), "P04637", 9606, 0.4)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestNetworkEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient()
	c.BaseURL = srv.URL

	_, err := c.Network(context.Background(), "P04637", 9606, 0.4)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestNetworkRecordMissingNameIsDecodeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"preferredName_A":"TP53","score":0.9}]`))
	}))
	defer srv.Close()

	c := NewClient()
	c.BaseURL = srv.URL

	_, err := c.Network(context.Background(), "P04637", 9606, 0.4)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoData)
	assert.Contains(t, err.Error(), "missing endpoint name")
}

func TestNetworkRecordMissingScoreIsDecodeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"preferredName_A":"TP53","preferredName_B":"MDM2"}]`))
	}))
	defer srv.Close()

	c := NewClient()
	c.BaseURL = srv.URL

	_, err := c.Network(context.Background(), "P04637", 9606, 0.4)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoData)
	assert.Contains(t, err.Error(), "missing score")
}

func TestNetworkRecordZeroScoreIsValid(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"preferredName_A":"TP53","preferredName_B":"MDM2","score":0}]`))
	}))
	defer srv.Close()

	c := NewClient()
	c.BaseURL = srv.URL

	records, err := c.Network(context.Background(), "P04637", 9606, 0.0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 0.0, records[0].Score)
}
