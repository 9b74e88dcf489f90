package speech

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frazabot/fraza/pkg/config"
)

func TestNew(t *testing.T) {
	t.Run("openai requires api key", func(t *testing.T) {
		_, err := New(config.SpeechConfig{Provider: "openai"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "api_key")
	})

	t.Run("openai", func(t *testing.T) {
		cfg := config.SpeechConfig{Provider: "openai"}
		cfg.OpenAI.APIKey = "k"
		s, err := New(cfg)
		require.NoError(t, err)
		assert.Equal(t, "openai", s.Name())
		assert.Equal(t, ".mp3", s.FileSuffix())
	})

	t.Run("xtts", func(t *testing.T) {
		cfg := config.SpeechConfig{Provider: "xtts"}
		cfg.XTTS.URL = "http://localhost:5002"
		s, err := New(cfg)
		require.NoError(t, err)
		assert.Equal(t, "xtts", s.Name())
		assert.Equal(t, ".wav", s.FileSuffix())
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := New(config.SpeechConfig{Provider: "festival"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown speech provider")
	})
}

func TestOpenAI_Synthesize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/audio/speech", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "audio/mpeg")
		_, err := w.Write([]byte("fake-mp3-bytes"))
		require.NoError(t, err)
	}))
	defer server.Close()

	cfg := config.SpeechConfig{Provider: "openai"}
	cfg.OpenAI.APIKey = "test-key"
	cfg.OpenAI.Endpoint = server.URL + "/v1"
	cfg.OpenAI.Model = "tts-1"
	cfg.OpenAI.Voice = "alloy"
	cfg.OpenAI.Speed = 1.0

	p := NewOpenAI(cfg)
	outFile := filepath.Join(t.TempDir(), "out.mp3")

	require.NoError(t, p.Synthesize(context.Background(), "The cat sleeps.", "en", outFile))

	data, err := os.ReadFile(outFile) //nolint:gosec // test file
	require.NoError(t, err)
	assert.Equal(t, "fake-mp3-bytes", string(data))
}

func TestOpenAI_Synthesize_BackendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	cfg := config.SpeechConfig{Provider: "openai"}
	cfg.OpenAI.APIKey = "k"
	cfg.OpenAI.Endpoint = server.URL + "/v1"
	cfg.OpenAI.Model = "tts-1"
	cfg.OpenAI.Voice = "alloy"
	cfg.OpenAI.Speed = 1.0

	p := NewOpenAI(cfg)
	err := p.Synthesize(context.Background(), "text", "en", filepath.Join(t.TempDir(), "out.mp3"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tts request")
}

func TestOpenAI_PickVoice_Random(t *testing.T) {
	cfg := config.SpeechConfig{Provider: "openai"}
	cfg.OpenAI.APIKey = "k"
	p := NewOpenAI(cfg)

	// no configured voice - random pick from the offered set
	for i := 0; i < 10; i++ {
		voice, err := p.pickVoice()
		require.NoError(t, err)
		assert.Contains(t, openAIVoices, voice)
	}
}

func xttsHandler(t *testing.T, wantSpeakerID, wantSpeakerWav string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.WriteHeader(http.StatusOK)
			return
		}

		assert.Equal(t, "/api/tts", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Спи, котик.", r.FormValue("text"))
		assert.Equal(t, "ru", r.FormValue("language_id"))

		if wantSpeakerID != "" {
			assert.Equal(t, wantSpeakerID, r.FormValue("speaker_id"))
		}
		if wantSpeakerWav != "" {
			_, hdr, err := r.FormFile("speaker_wav")
			require.NoError(t, err)
			assert.Equal(t, wantSpeakerWav, hdr.Filename)
		}

		w.Header().Set("Content-Type", "audio/wav")
		_, err := w.Write([]byte("fake-wav-bytes"))
		require.NoError(t, err)
	}
}

func TestXTTS_Synthesize_WithSpeaker(t *testing.T) {
	server := httptest.NewServer(xttsHandler(t, "ana", ""))
	defer server.Close()

	cfg := config.SpeechConfig{Provider: "xtts"}
	cfg.XTTS.URL = server.URL
	cfg.XTTS.Speakers = []string{"ana"}

	p := NewXTTS(cfg)
	outFile := filepath.Join(t.TempDir(), "out.wav")

	require.NoError(t, p.Synthesize(context.Background(), "Спи, котик.", "ru", outFile))

	data, err := os.ReadFile(outFile) //nolint:gosec // test file
	require.NoError(t, err)
	assert.Equal(t, "fake-wav-bytes", string(data))
}

func TestXTTS_Synthesize_WithReferenceVoice(t *testing.T) {
	server := httptest.NewServer(xttsHandler(t, "", "voice.wav"))
	defer server.Close()

	refPath := filepath.Join(t.TempDir(), "voice.wav")
	require.NoError(t, os.WriteFile(refPath, []byte("ref-sample"), 0o600))

	cfg := config.SpeechConfig{Provider: "xtts"}
	cfg.XTTS.URL = server.URL
	cfg.XTTS.ReferenceVoice = refPath

	p := NewXTTS(cfg)
	outFile := filepath.Join(t.TempDir(), "out.wav")
	require.NoError(t, p.Synthesize(context.Background(), "Спи, котик.", "ru", outFile))
}

func TestXTTS_Synthesize_MissingReferenceFallsBack(t *testing.T) {
	server := httptest.NewServer(xttsHandler(t, "boris", ""))
	defer server.Close()

	cfg := config.SpeechConfig{Provider: "xtts"}
	cfg.XTTS.URL = server.URL
	cfg.XTTS.ReferenceVoice = "/nonexistent/voice.wav"
	cfg.XTTS.Speakers = []string{"boris"}

	p := NewXTTS(cfg)
	outFile := filepath.Join(t.TempDir(), "out.wav")
	require.NoError(t, p.Synthesize(context.Background(), "Спи, котик.", "ru", outFile))
}

func TestXTTS_Synthesize_NoVoiceAtAll(t *testing.T) {
	server := httptest.NewServer(xttsHandler(t, "", ""))
	defer server.Close()

	cfg := config.SpeechConfig{Provider: "xtts"}
	cfg.XTTS.URL = server.URL

	p := NewXTTS(cfg)
	err := p.Synthesize(context.Background(), "Спи, котик.", "ru", filepath.Join(t.TempDir(), "out.wav"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no reference voice and no speaker available")
}

func TestXTTS_Synthesize_ServerDown(t *testing.T) {
	cfg := config.SpeechConfig{Provider: "xtts"}
	cfg.XTTS.URL = "http://127.0.0.1:1"
	cfg.XTTS.Speakers = []string{"ana"}

	p := NewXTTS(cfg)
	err := p.Synthesize(context.Background(), "text", "ru", filepath.Join(t.TempDir(), "out.wav"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xtts server unavailable")

	// probe runs once, second call fails the same way without re-probing
	err = p.Synthesize(context.Background(), "text", "ru", filepath.Join(t.TempDir(), "out2.wav"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xtts server unavailable")
}
