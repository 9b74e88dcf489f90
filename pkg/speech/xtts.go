package speech

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/frazabot/fraza/pkg/config"
)

// XTTS synthesizes speech through a local XTTS server, producing wav.
// If a reference voice sample is configured and readable it conditions the
// voice; otherwise a random speaker from the configured set is used.
type XTTS struct {
	url            string
	referenceVoice string
	speakers       []string
	client         *http.Client

	probeOnce sync.Once
	probeErr  error
}

// NewXTTS creates an XTTS server synthesizer
func NewXTTS(cfg config.SpeechConfig) *XTTS {
	timeout := cfg.XTTS.Timeout
	if timeout == 0 {
		timeout = 120 * time.Second
	}
	return &XTTS{
		url:            strings.TrimSuffix(cfg.XTTS.URL, "/"),
		referenceVoice: cfg.XTTS.ReferenceVoice,
		speakers:       cfg.XTTS.Speakers,
		client:         &http.Client{Timeout: timeout},
	}
}

// Synthesize posts the text to the server and writes the returned wav to
// outFile. The server loads its model on first use, so availability is
// probed once per process lifetime.
func (p *XTTS) Synthesize(ctx context.Context, text, speechCode, outFile string) error {
	p.probeOnce.Do(func() { p.probeErr = p.probe(ctx) })
	if p.probeErr != nil {
		return fmt.Errorf("xtts server unavailable: %w", p.probeErr)
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	if err := mw.WriteField("text", text); err != nil {
		return fmt.Errorf("write text field: %w", err)
	}
	if err := mw.WriteField("language_id", speechCode); err != nil {
		return fmt.Errorf("write language field: %w", err)
	}

	if ref := p.readableReference(); ref != "" {
		if err := attachFile(mw, "speaker_wav", ref); err != nil {
			return err
		}
	} else {
		speaker, err := p.pickSpeaker()
		if err != nil {
			return err
		}
		if err := mw.WriteField("speaker_id", speaker); err != nil {
			return fmt.Errorf("write speaker field: %w", err)
		}
	}

	if err := mw.Close(); err != nil {
		return fmt.Errorf("finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url+"/api/tts", &body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("tts request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("tts request failed: status %d, %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	out, err := os.Create(outFile) //nolint:gosec // path created by the pipeline
	if err != nil {
		return fmt.Errorf("create audio file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return fmt.Errorf("write audio file: %w", err)
	}
	return nil
}

// probe checks the server answers at all before the first synthesis
func (p *XTTS) probe(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url+"/health", http.NoBody)
	if err != nil {
		return err
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("health check status %d", resp.StatusCode)
	}
	return nil
}

// readableReference returns the reference voice path if it points to a
// readable regular file, empty string otherwise
func (p *XTTS) readableReference() string {
	if p.referenceVoice == "" {
		return ""
	}
	info, err := os.Stat(p.referenceVoice)
	if err != nil || info.IsDir() {
		return ""
	}
	return p.referenceVoice
}

// pickSpeaker returns a random speaker from the configured set
func (p *XTTS) pickSpeaker() (string, error) {
	if len(p.speakers) == 0 {
		return "", fmt.Errorf("no reference voice and no speaker available")
	}
	return p.speakers[rand.Intn(len(p.speakers))], nil //nolint:gosec // speaker pick needs no crypto rand
}

// attachFile adds a local file to the multipart form
func attachFile(mw *multipart.Writer, field, path string) error {
	f, err := os.Open(path) //nolint:gosec // path comes from config and was stat-checked
	if err != nil {
		return fmt.Errorf("open reference voice: %w", err)
	}
	defer f.Close()

	part, err := mw.CreateFormFile(field, filepath.Base(path))
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("copy reference voice: %w", err)
	}
	return nil
}

// Name returns the backend name
func (p *XTTS) Name() string { return "xtts" }

// FileSuffix returns the produced audio extension
func (p *XTTS) FileSuffix() string { return ".wav" }
