package domain

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/brandonbryant12/content-studio-sub011/internal/models"
	"github.com/brandonbryant12/content-studio-sub011/internal/ports"
)

const janitorSchedule = "@every 5m"
const staleJobError = "job exceeded its deadline"

// Janitor periodically deletes expired sessions and fails jobs that
// outlived their deadline, for example after a crash mid-generation.
// Content rows stuck in a generating state are failed along with their job.
type Janitor struct {
	sessions     ports.SessionRepository
	jobs         ports.JobRepository
	podcasts     ports.PodcastRepository
	voiceovers   ports.VoiceoverRepository
	infographics ports.InfographicRepository

	jobDeadline time.Duration
	cron        *cron.Cron
	log         *zap.SugaredLogger
}

func NewJanitor(
	sessions ports.SessionRepository,
	jobs ports.JobRepository,
	podcasts ports.PodcastRepository,
	voiceovers ports.VoiceoverRepository,
	infographics ports.InfographicRepository,
	jobDeadline time.Duration,
	log *zap.SugaredLogger,
) *Janitor {
	return &Janitor{
		sessions:     sessions,
		jobs:         jobs,
		podcasts:     podcasts,
		voiceovers:   voiceovers,
		infographics: infographics,
		jobDeadline:  jobDeadline,
		cron:         cron.New(),
		log:          log,
	}
}

func (j *Janitor) Start() error {
	if _, err := j.cron.AddFunc(janitorSchedule, j.Sweep); err != nil {
		return err
	}
	j.cron.Start()
	return nil
}

func (j *Janitor) Stop() {
	<-j.cron.Stop().Done()
}

func (j *Janitor) Sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	removed, err := j.sessions.DeleteExpiredSessions(ctx, time.Now())
	if err != nil {
		j.log.Errorw("sweep sessions", "err", err)
	} else if removed > 0 {
		j.log.Infow("expired sessions removed", "count", removed)
	}

	stale, err := j.jobs.FailStaleJobs(ctx, time.Now().Add(-j.jobDeadline))
	if err != nil {
		j.log.Errorw("sweep jobs", "err", err)
		return
	}
	for _, job := range stale {
		j.log.Warnw("stale job failed", "job", job.ID, "kind", job.Kind, "target", job.TargetID)
		j.failContent(ctx, job)
	}
}

func (j *Janitor) failContent(ctx context.Context, job models.Job) {
	var err error
	switch job.Kind {
	case models.JobPodcast, models.JobPodcastAudio:
		err = j.podcasts.SetPodcastFailed(ctx, job.TargetID, staleJobError)
	case models.JobVoiceover:
		err = j.voiceovers.SetVoiceoverFailed(ctx, job.TargetID, staleJobError)
	case models.JobInfographic:
		err = j.infographics.SetInfographicFailed(ctx, job.TargetID, staleJobError)
	}
	if err != nil {
		j.log.Errorw("fail stale content", "job", job.ID, "err", err)
	}
}
