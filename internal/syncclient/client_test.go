package syncclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/quran-companion/internal/stats"
)

func TestPush_SendsFlatPayload(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/sync", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)

	surah := uint(2)
	verse := 255
	snap := stats.Snapshot{
		TotalVersesRead: 120,
		SurahsVisited:   5,
		FavoritesCount:  3,
		ReadingStreak:   4,
		TodayVersesRead: 10,
		WeekVersesRead:  40,
		ProgressPercent: 2,
	}

	err := client.Push(context.Background(), "device-1", snap, &surah, &verse)
	require.NoError(t, err)

	assert.Equal(t, "device-1", got["device_id"])
	assert.Equal(t, float64(120), got["total_verses_read"])
	assert.Equal(t, float64(4), got["reading_streak"])
	assert.Equal(t, float64(2), got["last_read_surah"])
	assert.Equal(t, float64(255), got["last_read_verse"])
}

func TestPush_NullLastReadWhenUnset(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	err := client.Push(context.Background(), "device-1", stats.Snapshot{}, nil, nil)
	require.NoError(t, err)

	assert.Nil(t, got["last_read_surah"])
	assert.Nil(t, got["last_read_verse"])
}

func TestPush_ErrorStatusSurfaced(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"device_id required"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	err := client.Push(context.Background(), "", stats.Snapshot{}, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}

func TestPull_Found(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/stats/device-1", r.URL.Path)
		w.Write([]byte(`{"found":true,"stats":{"device_id":"device-1","total_verses_read":99,"reading_streak":7}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	remote, err := client.Pull(context.Background(), "device-1")
	require.NoError(t, err)
	require.NotNil(t, remote)
	assert.Equal(t, "device-1", remote.DeviceID)
	assert.Equal(t, 99, remote.TotalVersesRead)
	assert.Equal(t, 7, remote.ReadingStreak)
}

func TestPull_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"found":false}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	remote, err := client.Pull(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Nil(t, remote)
}

func TestPush_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(server.URL, 50*time.Millisecond)
	err := client.Push(context.Background(), "device-1", stats.Snapshot{}, nil, nil)
	assert.Error(t, err)
}
