package optimizer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnavshah/roster-feasibility/internal/wire"
)

func TestConfiguredReflectsWhetherABaseURLWasSet(t *testing.T) {
	assert.False(t, New("", 0).Configured())
	assert.True(t, New("http://localhost:9000", 0).Configured())
}

func TestGeneratePostsToTheGenerateEndpointAndDecodesTheResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/generate", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req wire.GenerateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "2024-01-01", req.StartDate)

		json.NewEncoder(w).Encode(wire.GenerateResponse{Success: true})
	}))
	defer server.Close()

	client := New(server.URL, time.Second)
	resp, err := client.Generate(context.Background(), wire.GenerateRequest{StartDate: "2024-01-01"})

	require.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestCheckFeasibilityPostsToTheCheckFeasibilityEndpoint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/check-feasibility", r.URL.Path)
		json.NewEncoder(w).Encode(wire.CheckFeasibilityResponse{Feasible: true})
	}))
	defer server.Close()

	client := New(server.URL, time.Second)
	resp, err := client.CheckFeasibility(context.Background(), wire.GenerateRequest{})

	require.NoError(t, err)
	assert.True(t, resp.Feasible)
}

func TestGeneratePropagatesServerErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := New(server.URL, time.Second)
	_, err := client.Generate(context.Background(), wire.GenerateRequest{})

	assert.Error(t, err)
}

func TestGenerateFailsFastWhenContextIsAlreadyCanceled(t *testing.T) {
	client := New("http://example.invalid", time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Generate(ctx, wire.GenerateRequest{})
	assert.Error(t, err)
}
