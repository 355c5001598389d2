package stations

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/brandonbryant12/content-studio-sub011/internal/models"
)

type fakeChat struct {
	reply string
	err   error
	gotSystem,
	gotPrompt string
}

func (f *fakeChat) Complete(_ context.Context, system, prompt string) (string, decimal.Decimal, error) {
	f.gotSystem = system
	f.gotPrompt = prompt
	return f.reply, decimal.RequireFromString("0.001"), f.err
}

type fakeTTS struct {
	mu    sync.Mutex
	calls []string
	fail  string // line text that should error
}

func (f *fakeTTS) Synthesize(_ context.Context, voice, text string) ([]byte, decimal.Decimal, error) {
	f.mu.Lock()
	f.calls = append(f.calls, text)
	f.mu.Unlock()
	if text == f.fail {
		return nil, decimal.Zero, errors.New("synth boom")
	}
	// segment content encodes the line so ordering is checkable
	return []byte(voice + ":" + text), decimal.RequireFromString("0.0001"), nil
}

type memBlob struct {
	mu   sync.Mutex
	data map[string][]byte
	seq  int
}

func newMemBlob() *memBlob { return &memBlob{data: map[string][]byte{}} }

func (m *memBlob) Put(_ context.Context, kind, ext string, data []byte) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	path := fmt.Sprintf("%s/obj-%d.%s", kind, m.seq, ext)
	m.data[path] = data
	return path, nil
}

func (m *memBlob) Get(_ context.Context, path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.data[path]
	if !ok {
		return nil, errors.New("not found")
	}
	return d, nil
}

func (m *memBlob) Remove(_ context.Context, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, path)
	return nil
}

func testLogger() *zap.SugaredLogger { return zap.NewNop().Sugar() }

func TestS1BriefIncludesAllSections(t *testing.T) {
	s1 := NewS1ComposeBrief()

	doc := &models.Document{Title: "Q3 Report", Text: "Revenue grew 12%."}
	brand := &models.Brand{Name: "Acme", Tone: "confident, plain", Palette: []string{"#102030", "#aabbcc"}}
	seg := &models.AudienceSegment{Name: "Founders", Demographics: "25-45", Interests: []string{"startups", "finance"}}

	brief := s1.Run(doc, brand, seg)

	assert.Contains(t, brief, "Q3 Report")
	assert.Contains(t, brief, "Revenue grew 12%.")
	assert.Contains(t, brief, "Acme")
	assert.Contains(t, brief, "confident, plain")
	assert.Contains(t, brief, "#102030, #aabbcc")
	assert.Contains(t, brief, "Founders")
	assert.Contains(t, brief, "startups, finance")
}

func TestS1BriefOptionalSections(t *testing.T) {
	s1 := NewS1ComposeBrief()
	brief := s1.Run(&models.Document{Title: "Doc", Text: "Body"}, nil, nil)

	assert.NotContains(t, brief, "BRAND:")
	assert.NotContains(t, brief, "TARGET AUDIENCE:")
}

func TestS1BriefTruncatesLongDocuments(t *testing.T) {
	s1 := NewS1ComposeBrief()
	long := strings.Repeat("x", maxBriefSourceChars+5000)
	brief := s1.Run(&models.Document{Title: "Doc", Text: long}, nil, nil)

	assert.Less(t, len(brief), maxBriefSourceChars+1000)
}

func TestS2DialogueParsesFencedJSON(t *testing.T) {
	chat := &fakeChat{reply: "```json\n[{\"speaker\":\"Ana\",\"text\":\"Welcome.\"},{\"speaker\":\"Ben\",\"text\":\"Thanks.\"}]\n```"}
	s2 := NewS2WriteScript(chat, testLogger())

	host := &models.Persona{Name: "Ana", VoiceID: "alloy"}
	guest := &models.Persona{Name: "Ben", VoiceID: "onyx"}

	lines, cost, err := s2.RunDialogue(context.Background(), "brief", host, guest)
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, "alloy", lines[0].Voice)
	assert.Equal(t, "onyx", lines[1].Voice)
	assert.True(t, cost.IsPositive())
	assert.Contains(t, chat.gotPrompt, "Ana")
}

func TestS2DialogueUnknownSpeakerGetsHostVoice(t *testing.T) {
	chat := &fakeChat{reply: `[{"speaker":"Sfx","text":"hm"}]`}
	s2 := NewS2WriteScript(chat, testLogger())

	lines, _, err := s2.RunDialogue(context.Background(), "brief",
		&models.Persona{Name: "Ana", VoiceID: "alloy"},
		&models.Persona{Name: "Ben", VoiceID: "onyx"},
	)
	require.NoError(t, err)
	assert.Equal(t, "alloy", lines[0].Voice)
}

func TestS2DialogueRejectsGarbage(t *testing.T) {
	chat := &fakeChat{reply: "Sorry, I cannot help with that."}
	s2 := NewS2WriteScript(chat, testLogger())

	_, _, err := s2.RunDialogue(context.Background(), "brief",
		&models.Persona{Name: "A"}, &models.Persona{Name: "B"})
	assert.Error(t, err)
}

func TestS2NarrationStripsFence(t *testing.T) {
	chat := &fakeChat{reply: "```\nHello world.\n```"}
	s2 := NewS2WriteScript(chat, testLogger())

	text, _, err := s2.RunNarration(context.Background(), "brief", &models.Persona{Name: "Nia", VoiceID: "nova"})
	require.NoError(t, err)
	assert.Equal(t, "Hello world.", text)
}

func TestExtractJSONArray(t *testing.T) {
	cases := map[string]string{
		`[1,2]`:                          `[1,2]`,
		"Here you go: [1,2] enjoy":       `[1,2]`,
		"```json\n[1,2]\n```":            `[1,2]`,
		"no brackets at all":             "no brackets at all",
		"nested [ {\"a\": [1] } ] trail": `[ {"a": [1] } ]`,
	}
	for in, want := range cases {
		assert.Equal(t, want, extractJSONArray(in), "input %q", in)
	}
}

func TestS3KeepsScriptOrder(t *testing.T) {
	tts := &fakeTTS{}
	s3 := NewS3Synthesize(tts, 3, testLogger())

	lines := []models.ScriptLine{
		{Voice: "alloy", Text: "one"},
		{Voice: "onyx", Text: "two"},
		{Voice: "alloy", Text: "three"},
	}

	segs, cost, err := s3.Run(context.Background(), lines)
	require.NoError(t, err)
	require.Len(t, segs, 3)

	assert.Equal(t, "alloy:one", string(segs[0]))
	assert.Equal(t, "onyx:two", string(segs[1]))
	assert.Equal(t, "alloy:three", string(segs[2]))
	assert.Equal(t, "0.0003", cost.String())
}

func TestS3PropagatesLineFailure(t *testing.T) {
	tts := &fakeTTS{fail: "two"}
	s3 := NewS3Synthesize(tts, 2, testLogger())

	_, _, err := s3.Run(context.Background(), []models.ScriptLine{
		{Text: "one"}, {Text: "two"}, {Text: "three"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestS3RejectsEmptyScript(t *testing.T) {
	s3 := NewS3Synthesize(&fakeTTS{}, 2, testLogger())
	_, _, err := s3.Run(context.Background(), nil)
	assert.Error(t, err)
}

func TestS4WavHeaderAndDuration(t *testing.T) {
	store := newMemBlob()
	s4 := NewS4AssembleAudio(store, 0)

	// one second of silence at the configured format
	pcm := make([]byte, sampleRate*bytesPerSample)
	path, dur, err := s4.Run(context.Background(), [][]byte{pcm})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, dur, 0.001)

	wav, err := store.Get(context.Background(), path)
	require.NoError(t, err)

	require.Greater(t, len(wav), 44)
	assert.Equal(t, "RIFF", string(wav[0:4]))
	assert.Equal(t, "WAVE", string(wav[8:12]))
	assert.Equal(t, uint32(sampleRate), binary.LittleEndian.Uint32(wav[24:28]))
	assert.Equal(t, uint32(len(pcm)), binary.LittleEndian.Uint32(wav[40:44]))
	assert.Len(t, wav, 44+len(pcm))
}

func TestS4InsertsGaps(t *testing.T) {
	store := newMemBlob()
	s4 := NewS4AssembleAudio(store, 500*time.Millisecond)

	seg := make([]byte, 1000)
	_, dur, err := s4.Run(context.Background(), [][]byte{seg, seg})
	require.NoError(t, err)

	segSec := float64(len(seg)) / float64(sampleRate*bytesPerSample)
	assert.InDelta(t, 2*segSec+0.5, dur, 0.01)
}
