package domain

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandonbryant12/content-studio-sub011/internal/apperr"
	"github.com/brandonbryant12/content-studio-sub011/internal/domain/stations"
	"github.com/brandonbryant12/content-studio-sub011/internal/models"
)

type infographicFixture struct {
	svc    *InfographicService
	runner *JobRunner
	rows   *memInfographics
	jobs   *memJobs
	blobs  *memBlobs
	docID  int
}

func newInfographicFixture(t *testing.T, chat stubChat, img stubImage) *infographicFixture {
	t.Helper()
	log := testLogger()

	docs := newMemDocs()
	f := &infographicFixture{
		rows:  newMemInfographics(),
		jobs:  newMemJobs(),
		blobs: newMemBlobs(),
	}
	f.runner = NewJobRunner(f.jobs, time.Minute, log)

	doc, err := docs.InsertDocument(context.Background(), &models.Document{OwnerID: 1, Title: "Doc", Text: "Quarterly results."})
	require.NoError(t, err)
	f.docID = doc.ID

	f.svc = NewInfographicService(InfographicServiceDeps{
		Infographics: f.rows,
		Docs:         docs,
		Brands:       newMemBrands(),
		Collabs:      newMemCollabs(),
		Blobs:        f.blobs,
		Runner:       f.runner,
		Brief:        stations.NewS1ComposeBrief(),
		ArtPrompt:    stations.NewS5ArtPrompt(chat),
		Render:       stations.NewS6RenderImage(img, f.blobs),
		Log:          log,
	})
	return f
}

func TestInfographicGenerate(t *testing.T) {
	f := newInfographicFixture(t, stubChat{reply: "A clean layout of the key figures."}, stubImage{})
	ctx := context.Background()

	g, err := f.svc.Create(ctx, 1, InfographicInput{Title: "Q2", DocumentID: f.docID})
	require.NoError(t, err)

	job, err := f.svc.Generate(ctx, 1, g.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobInfographic, job.Kind)
	f.runner.Wait()

	got, _ := f.rows.GetInfographicByID(ctx, g.ID)
	assert.Equal(t, models.InfographicReady, got.Status)
	assert.NotEmpty(t, got.Prompt)
	require.NotNil(t, got.ImagePath)

	png, err := f.blobs.Get(ctx, *got.ImagePath)
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	row, _ := f.jobs.GetJobByID(ctx, job.ID)
	assert.Equal(t, models.JobDone, row.Status)
	assert.True(t, row.Cost.IsPositive())
}

func TestInfographicGenerateRenderFailure(t *testing.T) {
	f := newInfographicFixture(t, stubChat{reply: "prompt"}, stubImage{err: errors.New("quota exceeded")})
	ctx := context.Background()

	g, err := f.svc.Create(ctx, 1, InfographicInput{Title: "Q2", DocumentID: f.docID})
	require.NoError(t, err)

	_, err = f.svc.Generate(ctx, 1, g.ID)
	require.NoError(t, err)
	f.runner.Wait()

	got, _ := f.rows.GetInfographicByID(ctx, g.ID)
	assert.Equal(t, models.InfographicFailed, got.Status)
	require.NotNil(t, got.ErrorMessage)
}

func TestInfographicCreateValidation(t *testing.T) {
	f := newInfographicFixture(t, stubChat{reply: "prompt"}, stubImage{})
	ctx := context.Background()

	_, err := f.svc.Create(ctx, 1, InfographicInput{Title: "", DocumentID: f.docID})
	assert.Equal(t, apperr.CodeInvalid, apperr.From(err).Code)

	_, err = f.svc.Create(ctx, 1, InfographicInput{Title: "x", DocumentID: 42})
	assert.Equal(t, apperr.CodeInvalid, apperr.From(err).Code)
}
