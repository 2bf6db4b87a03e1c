// Package observability provides logging, metrics, and tracing.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RegistrationsTotal counts successful user registrations.
	RegistrationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "devconnect_registrations_total",
		Help: "Total number of successful user registrations",
	})

	// PostsCreatedTotal counts posts created.
	PostsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "devconnect_posts_created_total",
		Help: "Total number of posts created",
	})

	// CommentsCreatedTotal counts comments created.
	CommentsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "devconnect_comments_created_total",
		Help: "Total number of comments created",
	})

	// LikeTogglesTotal counts like toggles by direction and outcome.
	LikeTogglesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devconnect_like_toggles_total",
		Help: "Total number of like/unlike operations by outcome",
	}, []string{"action", "outcome"})

	// GithubProxyTotal counts GitHub repo lookups by result.
	GithubProxyTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devconnect_github_proxy_total",
		Help: "Total number of GitHub repository proxy requests by result",
	}, []string{"result"})

	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "devconnect_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})
)
