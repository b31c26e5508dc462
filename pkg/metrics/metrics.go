package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// VoteTransitions counts applied votes by transition: create, switch, toggle_off.
	VoteTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "forum_vote_transitions_total",
		Help: "Applied post votes by transition kind",
	}, []string{"transition"})

	// CommentOps counts successful comment mutations by operation.
	CommentOps = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "forum_comment_ops_total",
		Help: "Comment mutations by operation",
	}, []string{"op"})

	CommentsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "forum_comments_deleted_total",
		Help: "Comment rows removed, descendants included",
	})

	NotificationsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "forum_notifications_failed_total",
		Help: "Notifications that could not be stored",
	})
)

func Handler() http.Handler {
	return promhttp.Handler()
}
