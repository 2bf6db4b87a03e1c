package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	profileKeyPrefix = "profile:%d"
	githubKeyPrefix  = "github:%s"

	ProfilesListKey = "profiles:all"
)

const (
	ProfileTTL      = 5 * time.Minute
	ProfilesListTTL = 1 * time.Minute
	GithubTTL       = 10 * time.Minute
)

func ProfileKey(userID uint) string {
	return fmt.Sprintf(profileKeyPrefix, userID)
}

func GithubKey(username string) string {
	return fmt.Sprintf(githubKeyPrefix, username)
}

func Invalidate(ctx context.Context, keys ...string) {
	if client != nil && len(keys) > 0 {
		client.Del(ctx, keys...)
	}
}

// InvalidateProfile drops a user's cached profile and the public list.
func InvalidateProfile(ctx context.Context, userID uint) {
	Invalidate(ctx, ProfileKey(userID), ProfilesListKey)
}
