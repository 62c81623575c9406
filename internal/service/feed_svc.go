package service

import (
	"context"
	"time"

	"github.com/bustedglowsticks/quantum-yield-empire-sub002/internal/model"
	"github.com/bustedglowsticks/quantum-yield-empire-sub002/internal/repository"
)

// FeedService serves tallied results to dashboard collaborators that
// poll for changes. Reads come from the archive so a feed consumer sees
// only results that have actually been recorded.
type FeedService struct {
	archive *repository.ArchiveRepo
}

func NewFeedService(archive *repository.ArchiveRepo) *FeedService {
	return &FeedService{archive: archive}
}

// Delta returns all tally results recorded after the given timestamp.
func (s *FeedService) Delta(ctx context.Context, since time.Time) (*model.ResultsDeltaResponse, error) {
	entries := []model.ResultsDeltaEntry{}
	if s.archive != nil {
		var err error
		entries, err = s.archive.TalliedSince(ctx, since)
		if err != nil {
			return nil, err
		}
		if entries == nil {
			entries = []model.ResultsDeltaEntry{}
		}
	}

	return &model.ResultsDeltaResponse{
		Results:       entries,
		FeedTimestamp: time.Now().UTC().Format(time.RFC3339),
	}, nil
}
