package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoiceMemoService_TranscribeMemo(t *testing.T) {
	// No client configured; the service falls back to the mock
	// transcription path.
	service := &VoiceMemoService{}

	send := func(t *testing.T, body []byte, memberID string) *httptest.ResponseRecorder {
		t.Helper()
		req := httptest.NewRequest("POST", "/api/v1/proposals/voice-memo", bytes.NewReader(body))
		if memberID != "" {
			req = req.WithContext(context.WithValue(req.Context(), "memberID", memberID))
		}
		w := httptest.NewRecorder()
		service.TranscribeMemo(w, req)
		return w
	}

	t.Run("requires a session", func(t *testing.T) {
		w := send(t, []byte(`{"audio":"aGVsbG8="}`), "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("transcribes a memo", func(t *testing.T) {
		audio := base64.StdEncoding.EncodeToString([]byte("fake audio bytes"))
		body, _ := json.Marshal(TranscribeRequest{Audio: audio})
		w := send(t, body, "tm-treas")

		assert.Equal(t, http.StatusOK, w.Code)
		var resp TranscribeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.Transcript)
		assert.InDelta(t, 0.95, resp.Confidence, 0.001)
	})

	t.Run("rejects missing audio", func(t *testing.T) {
		w := send(t, []byte(`{}`), "tm-treas")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects invalid base64", func(t *testing.T) {
		w := send(t, []byte(`{"audio":"%%%not-base64%%%"}`), "tm-treas")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestVoiceMemoService_Transcribe(t *testing.T) {
	service := &VoiceMemoService{}

	t.Run("empty audio is rejected", func(t *testing.T) {
		_, _, err := service.Transcribe(context.Background(), TranscribeRequest{Audio: ""})
		assert.Error(t, err)
	})

	t.Run("mock path returns a transcript", func(t *testing.T) {
		audio := base64.StdEncoding.EncodeToString([]byte("fake audio"))
		transcript, confidence, err := service.Transcribe(context.Background(), TranscribeRequest{Audio: audio})
		require.NoError(t, err)
		assert.NotEmpty(t, transcript)
		assert.Greater(t, confidence, float32(0))
	})
}

func TestParseEncoding(t *testing.T) {
	for _, name := range []string{"LINEAR16", "flac", "MULAW", "ogg_opus", "WEBM_OPUS"} {
		_, err := parseEncoding(name)
		assert.NoError(t, err, name)
	}

	_, err := parseEncoding("MP3")
	assert.Error(t, err)
}

func TestVoiceMemoService_Close(t *testing.T) {
	service := &VoiceMemoService{}
	assert.NoError(t, service.Close())
}
