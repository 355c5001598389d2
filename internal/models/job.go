package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type JobKind string

const (
	JobPodcast      JobKind = "podcast"
	JobPodcastAudio JobKind = "podcast_audio"
	JobVoiceover    JobKind = "voiceover"
	JobInfographic  JobKind = "infographic"
)

type JobStatus string

const (
	JobQueued  JobStatus = "queued"
	JobRunning JobStatus = "running"
	JobDone    JobStatus = "done"
	JobFailed  JobStatus = "failed"
)

// Job tracks one asynchronous generation request. Step mirrors the content
// row's status so a polling client gets phase detail from a single fetch.
type Job struct {
	ID         string          `db:"id" json:"id"` // uuid
	OwnerID    int             `db:"owner_id" json:"-"`
	Kind       JobKind         `db:"kind" json:"kind"`
	TargetID   int             `db:"target_id" json:"targetId"`
	Status     JobStatus       `db:"status" json:"status"`
	Step       string          `db:"step" json:"step"`
	Error      *string         `db:"error" json:"error"`
	Cost       decimal.Decimal `db:"cost" json:"cost"` // accumulated provider spend, USD
	CreatedAt  time.Time       `db:"created_at" json:"createdAt"`
	StartedAt  *time.Time      `db:"started_at" json:"startedAt"`
	FinishedAt *time.Time      `db:"finished_at" json:"finishedAt"`
}
