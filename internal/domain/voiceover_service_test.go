package domain

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandonbryant12/content-studio-sub011/internal/apperr"
	"github.com/brandonbryant12/content-studio-sub011/internal/domain/stations"
	"github.com/brandonbryant12/content-studio-sub011/internal/models"
)

func TestVoiceoverGenerate(t *testing.T) {
	log := testLogger()
	ctx := context.Background()

	docs := newMemDocs()
	personas := newMemPersonas()
	rows := newMemVoiceovers()
	jobs := newMemJobs()
	blobs := newMemBlobs()
	runner := NewJobRunner(jobs, time.Minute, log)

	doc, err := docs.InsertDocument(ctx, &models.Document{OwnerID: 1, Title: "Doc", Text: "Body text."})
	require.NoError(t, err)
	narrator, err := personas.InsertPersona(ctx, &models.Persona{OwnerID: 1, Name: "Nora", Role: models.PersonaNarrator, VoiceID: "nova"})
	require.NoError(t, err)

	svc := NewVoiceoverService(VoiceoverServiceDeps{
		Voiceovers: rows,
		Docs:       docs,
		Brands:     newMemBrands(),
		Personas:   personas,
		Collabs:    newMemCollabs(),
		Blobs:      blobs,
		Runner:     runner,
		Brief:      stations.NewS1ComposeBrief(),
		Script:     stations.NewS2WriteScript(stubChat{reply: "A short narration.\n\nIn two paragraphs."}, log),
		Synthesize: stations.NewS3Synthesize(stubSpeech{}, 2, log),
		Assemble:   stations.NewS4AssembleAudio(blobs, 100*time.Millisecond),
		Log:        log,
	})

	v, err := svc.Create(ctx, 1, VoiceoverInput{Title: "Intro read", DocumentID: doc.ID, PersonaID: narrator.ID})
	require.NoError(t, err)

	job, err := svc.Generate(ctx, 1, v.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobVoiceover, job.Kind)
	runner.Wait()

	got, _ := rows.GetVoiceoverByID(ctx, v.ID)
	assert.Equal(t, models.StatusReady, got.Status)
	assert.Contains(t, got.Script, "A short narration.")
	require.NotNil(t, got.AudioPath)
	assert.Greater(t, got.DurationSec, 0.0)

	row, _ := jobs.GetJobByID(ctx, job.ID)
	assert.Equal(t, models.JobDone, row.Status)
	assert.Equal(t, string(models.StatusReady), row.Step)
}

func TestNarrationLinesSplitsParagraphs(t *testing.T) {
	narrator := &models.Persona{Name: "Nora", VoiceID: "nova"}

	lines := narrationLines("First paragraph.\n\nSecond one.\n\n\n\nThird.", narrator)
	require.Len(t, lines, 3)
	assert.Equal(t, "First paragraph.", lines[0].Text)
	assert.Equal(t, "Third.", lines[2].Text)
	for _, l := range lines {
		assert.Equal(t, "nova", l.Voice)
		assert.Equal(t, "Nora", l.Speaker)
	}

	// single paragraph still yields one line
	lines = narrationLines("Just one block of text.", narrator)
	require.Len(t, lines, 1)
	assert.Equal(t, "Just one block of text.", lines[0].Text)
}

func TestVoiceoverCreateValidatesPersona(t *testing.T) {
	ctx := context.Background()
	docs := newMemDocs()
	doc, err := docs.InsertDocument(ctx, &models.Document{OwnerID: 1, Title: "Doc", Text: "x"})
	require.NoError(t, err)

	svc := NewVoiceoverService(VoiceoverServiceDeps{
		Voiceovers: newMemVoiceovers(),
		Docs:       docs,
		Brands:     newMemBrands(),
		Personas:   newMemPersonas(),
		Collabs:    newMemCollabs(),
		Blobs:      newMemBlobs(),
		Log:        testLogger(),
	})

	_, err = svc.Create(ctx, 1, VoiceoverInput{Title: "x", DocumentID: doc.ID, PersonaID: 7})
	assert.Equal(t, apperr.CodeInvalid, apperr.From(err).Code)
}
