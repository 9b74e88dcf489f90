package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frazabot/fraza/pkg/pipeline/mocks"
)

func testRequest() Request {
	return Request{SourceLangName: "Russian", TargetTranslateCode: "en", TargetSpeechCode: "en"}
}

func okGenerator(sentence string) *mocks.GeneratorMock {
	return &mocks.GeneratorMock{
		GenerateFunc: func(_ context.Context, _ string) (string, error) { return sentence, nil },
	}
}

func okTranslator(translated string) *mocks.TranslatorMock {
	return &mocks.TranslatorMock{
		TranslateFunc: func(_ context.Context, _, _ string) (string, error) { return translated, nil },
	}
}

func okSynthesizer() *mocks.SynthesizerMock {
	return &mocks.SynthesizerMock{
		FileSuffixFunc: func() string { return ".mp3" },
		SynthesizeFunc: func(_ context.Context, _, _, outFile string) error {
			return os.WriteFile(outFile, []byte("audio"), 0o600)
		},
	}
}

func TestPipeline_Run_Success(t *testing.T) {
	gen := okGenerator("Кошка спит")
	tr := okTranslator("The cat sleeps.")
	synth := okSynthesizer()

	p := New(gen, tr, synth, t.TempDir())
	res, err := p.Run(context.Background(), testRequest())
	require.NoError(t, err)
	defer res.Cleanup()

	assert.Equal(t, "Кошка спит.", res.Original, "missing terminal punctuation appended")
	assert.Equal(t, "The cat sleeps.", res.Translated)
	assert.FileExists(t, res.AudioPath)

	// the translation stage received the punctuated stage-1 output
	require.Len(t, tr.TranslateCalls(), 1)
	assert.Equal(t, "Кошка спит.", tr.TranslateCalls()[0].Text)
	assert.Equal(t, "en", tr.TranslateCalls()[0].TargetCode)

	// the synthesis stage received the stage-2 output and speech code
	require.Len(t, synth.SynthesizeCalls(), 1)
	assert.Equal(t, "The cat sleeps.", synth.SynthesizeCalls()[0].Text)
	assert.Equal(t, "en", synth.SynthesizeCalls()[0].SpeechCode)
}

func TestPipeline_Run_KeepsExistingPunctuation(t *testing.T) {
	for _, sentence := range []string{"Really?", "Stop!", "Done."} {
		p := New(okGenerator(sentence), okTranslator("x."), okSynthesizer(), t.TempDir())
		res, err := p.Run(context.Background(), testRequest())
		require.NoError(t, err)
		assert.Equal(t, sentence, res.Original)
		res.Cleanup()
	}
}

func TestPipeline_Run_GenerationFailure(t *testing.T) {
	gen := &mocks.GeneratorMock{
		GenerateFunc: func(_ context.Context, _ string) (string, error) { return "", errors.New("model down") },
	}
	tr := okTranslator("x")
	synth := okSynthesizer()

	p := New(gen, tr, synth, t.TempDir())
	_, err := p.Run(context.Background(), testRequest())
	require.Error(t, err)

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, StageGeneration, stageErr.Stage)

	// later stages never ran
	assert.Empty(t, tr.TranslateCalls())
	assert.Empty(t, synth.SynthesizeCalls())
}

func TestPipeline_Run_EmptyGeneration(t *testing.T) {
	p := New(okGenerator("   "), okTranslator("x"), okSynthesizer(), t.TempDir())
	_, err := p.Run(context.Background(), testRequest())
	require.Error(t, err)

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, StageGeneration, stageErr.Stage)
}

func TestPipeline_Run_TranslationFailure(t *testing.T) {
	tr := &mocks.TranslatorMock{
		TranslateFunc: func(_ context.Context, _, _ string) (string, error) { return "", errors.New("quota exceeded") },
	}
	synth := okSynthesizer()

	dir := t.TempDir()
	p := New(okGenerator("Кошка спит."), tr, synth, dir)
	_, err := p.Run(context.Background(), testRequest())
	require.Error(t, err)

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, StageTranslation, stageErr.Stage)

	// synthesis never ran and no audio file was created
	assert.Empty(t, synth.SynthesizeCalls())
	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestPipeline_Run_SynthesisFailure(t *testing.T) {
	synth := &mocks.SynthesizerMock{
		FileSuffixFunc: func() string { return ".mp3" },
		SynthesizeFunc: func(_ context.Context, _, _, outFile string) error {
			// simulate a partial write before the failure
			require.NoError(t, os.WriteFile(outFile, []byte("partial"), 0o600))
			return errors.New("tts server gone")
		},
	}

	dir := t.TempDir()
	p := New(okGenerator("Кошка спит."), okTranslator("The cat sleeps."), synth, dir)
	_, err := p.Run(context.Background(), testRequest())
	require.Error(t, err)

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, StageSynthesis, stageErr.Stage)

	// the partial file was removed
	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestPipeline_Run_StageIdentityPreserved(t *testing.T) {
	backendErr := errors.New("upstream 503")
	tr := &mocks.TranslatorMock{
		TranslateFunc: func(_ context.Context, _, _ string) (string, error) { return "", backendErr },
	}

	p := New(okGenerator("Кошка спит."), tr, okSynthesizer(), t.TempDir())
	_, err := p.Run(context.Background(), testRequest())

	var stageErr *StageError
	require.ErrorAs(t, err, &stageErr)
	assert.Equal(t, StageTranslation, stageErr.Stage, "a translation error must never surface as another stage")
	assert.ErrorIs(t, err, backendErr, "underlying backend error stays reachable")
	assert.Contains(t, err.Error(), "translation failed")
}

func TestResult_Cleanup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audio.mp3")
	require.NoError(t, os.WriteFile(path, []byte("audio"), 0o600))

	res := &Result{Original: "a.", Translated: "b.", AudioPath: path}
	res.Cleanup()
	assert.NoFileExists(t, path)

	// second call is a no-op
	res.Cleanup()
}

func TestStage_String(t *testing.T) {
	assert.Equal(t, "generation", StageGeneration.String())
	assert.Equal(t, "translation", StageTranslation.String())
	assert.Equal(t, "synthesis", StageSynthesis.String())
	assert.Equal(t, "stage(9)", Stage(9).String())
}
