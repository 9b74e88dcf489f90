package bot

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GetMe(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bottest-token/getMe", r.URL.Path)
		fmt.Fprint(w, `{"ok":true,"result":{"id":7,"username":"frazabot"}}`)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "test-token", 30*time.Second)
	me, err := c.GetMe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), me.ID)
	assert.Equal(t, "frazabot", me.UserName)
}

func TestClient_GetMe_APIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"ok":false,"description":"Unauthorized"}`)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "bad-token", 30*time.Second)
	_, err := c.GetMe(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unauthorized")
}

func TestClient_GetUpdates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bottest-token/getUpdates", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "41", r.Form.Get("offset"))
		assert.Equal(t, "30", r.Form.Get("timeout"))
		assert.Equal(t, `["message"]`, r.Form.Get("allowed_updates"))
		fmt.Fprint(w, `{"ok":true,"result":[
			{"update_id":41,"message":{"message_id":1,"from":{"id":42},"chat":{"id":42},"text":"/get"}},
			{"update_id":42,"message":{"message_id":2,"from":{"id":43},"chat":{"id":43},"text":"hello"}}
		]}`)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "test-token", 30*time.Second)
	updates, err := c.GetUpdates(context.Background(), 41, 30*time.Second)
	require.NoError(t, err)
	require.Len(t, updates, 2)
	assert.Equal(t, int64(41), updates[0].UpdateID)
	assert.Equal(t, "/get", updates[0].Message.Text)
	assert.Equal(t, int64(42), updates[0].Message.From.ID)
}

func TestClient_SendText(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bottest-token/sendMessage", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "100", r.Form.Get("chat_id"))
		assert.Equal(t, "hello there", r.Form.Get("text"))
		fmt.Fprint(w, `{"ok":true,"result":{"message_id":5}}`)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "test-token", 30*time.Second)
	require.NoError(t, c.SendText(context.Background(), 100, "hello there"))
}

func TestClient_SendAudio(t *testing.T) {
	audioPath := filepath.Join(t.TempDir(), "fraza-abc.mp3")
	require.NoError(t, os.WriteFile(audioPath, []byte("fake mp3 bytes"), 0o600))

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bottest-token/sendDocument", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "100", r.FormValue("chat_id"))
		assert.Equal(t, "HTML", r.FormValue("parse_mode"))
		assert.Contains(t, r.FormValue("caption"), "<b>")

		file, header, err := r.FormFile("document")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "audio.mp3", header.Filename)

		fmt.Fprint(w, `{"ok":true,"result":{"message_id":6}}`)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, "test-token", 30*time.Second)
	err := c.SendAudio(context.Background(), 100, audioPath, "caption with <b>bold</b>")
	require.NoError(t, err)
}

func TestClient_SendAudio_MissingFile(t *testing.T) {
	c := NewClient("http://localhost:1", "test-token", 30*time.Second)
	err := c.SendAudio(context.Background(), 100, "/nonexistent/fraza-gone.mp3", "caption")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read audio file")
}
