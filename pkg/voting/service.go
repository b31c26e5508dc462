package voting

//go:generate mockgen -source=service.go -destination=mock_service.go -package=voting

import (
	"context"
	"fmt"

	"forum/pkg/common"
	"forum/pkg/logger"
	"forum/pkg/metrics"
	"forum/pkg/user"
)

type VoteStore interface {
	Apply(ctx context.Context, postId, userId int64, requested Direction) (int, Outcome, error)
}

// Service applies up/down votes. Any authenticated user may vote on any post,
// their own included.
type Service struct {
	Votes VoteStore
}

func NewService(votes VoteStore) *Service {
	return &Service{Votes: votes}
}

// Vote applies d for voter on the post and returns the post's new counter.
// Repeating a vote toggles it off; voting the other way switches it.
func (s *Service) Vote(ctx context.Context, postId int64, voter *user.User, d Direction) (int, error) {
	if voter == nil || voter.Id == 0 {
		return 0, common.NotFoundf("voter not found")
	}
	if !d.Valid() {
		return 0, &common.ValidationError{Field: "direction", Message: "direction must be UP or DOWN"}
	}

	votes, out, err := s.Votes.Apply(ctx, postId, voter.Id, d)
	if err != nil {
		return 0, fmt.Errorf("voting: vote %s on post %d: %w", d, postId, err)
	}

	metrics.VoteTransitions.WithLabelValues(out.Kind.String()).Inc()
	logger.Log(ctx).Debugw("vote applied",
		"post", postId, "user", voter.Id, "requested", d.String(), "transition", out.Kind.String(), "votes", votes)
	return votes, nil
}
