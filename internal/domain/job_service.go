package domain

import (
	"context"
	"fmt"

	"github.com/brandonbryant12/content-studio-sub011/internal/apperr"
	"github.com/brandonbryant12/content-studio-sub011/internal/models"
	"github.com/brandonbryant12/content-studio-sub011/internal/ports"
)

const defaultJobListLimit = 50

// JobService answers polling queries. Jobs are only visible to their owner.
type JobService struct {
	jobs ports.JobRepository
}

func NewJobService(jobs ports.JobRepository) *JobService {
	return &JobService{jobs: jobs}
}

func (s *JobService) Get(ctx context.Context, userID int, id string) (*models.Job, error) {
	job, err := s.jobs.GetJobByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}
	if job == nil || job.OwnerID != userID {
		return nil, apperr.NotFound("job")
	}
	return job, nil
}

func (s *JobService) List(ctx context.Context, userID, limit int) ([]models.Job, error) {
	if limit <= 0 || limit > defaultJobListLimit {
		limit = defaultJobListLimit
	}
	list, err := s.jobs.ListJobs(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	return list, nil
}
