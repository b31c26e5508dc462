package voting

import (
	"context"
	"fmt"
	"testing"

	gomock "github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"forum/pkg/common"
	"forum/pkg/metrics"
	"forum/pkg/user"
)

func TestServiceVote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	store := NewMockVoteStore(ctrl)
	svc := NewService(store)
	voter := &user.User{Id: userId, Username: "pike"}

	t.Run("returns the new counter", func(t *testing.T) {
		switches := metrics.VoteTransitions.WithLabelValues("switch")
		before := testutil.ToFloat64(switches)

		store.EXPECT().Apply(ctx, postId, userId, Down).
			Return(-1, Outcome{Next: Down, Delta: -2, Kind: Switched}, nil)

		votes, err := svc.Vote(ctx, postId, voter, Down)
		assert.NoError(t, err)
		assert.Equal(t, -1, votes)
		assert.Equal(t, before+1, testutil.ToFloat64(switches))
	})

	t.Run("unresolved voter is not found", func(t *testing.T) {
		_, err := svc.Vote(ctx, postId, nil, Up)
		assert.ErrorIs(t, err, common.ErrNotFound)
		_, err = svc.Vote(ctx, postId, &user.User{}, Up)
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("direction must be up or down", func(t *testing.T) {
		_, err := svc.Vote(ctx, postId, voter, None)
		assert.ErrorIs(t, err, common.ErrValidation)
	})

	t.Run("store errors propagate", func(t *testing.T) {
		store.EXPECT().Apply(ctx, postId, userId, Up).
			Return(0, Outcome{}, fmt.Errorf("wrapped: %w", common.NotFoundf("post %d not found", postId)))

		_, err := svc.Vote(ctx, postId, voter, Up)
		assert.ErrorIs(t, err, common.ErrNotFound)
	})
}
