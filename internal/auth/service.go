package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/2beens/fittrack/pkg"

	"github.com/coocood/freecache"
	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultTTL       = 24 * time.Hour
	TokenHeader      = "X-FT-Token"
	sessionKeyPrefix = "fittrack-session||"
	tokensSetKey     = "fittrack-sessions"

	tokenLength            = 35
	sessionCacheSize       = 1024 * 1024 // bytes
	sessionCacheTTLSeconds = 5
)

var ErrSessionNotFound = errors.New("session not found")

type Service struct {
	redisClient *redis.Client
	ttl         time.Duration
	// token -> user id, in front of redis
	cache *freecache.Cache
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

func NewAuthService(
	ttl time.Duration,
	redisClient *redis.Client,
) *Service {
	return &Service{
		ttl:            ttl,
		redisClient:    redisClient,
		cache:          freecache.NewCache(sessionCacheSize),
		RandStringFunc: pkg.GenerateRandomString,
	}
}

// Login opens a session for the user and returns its token.
func (as *Service) Login(ctx context.Context, userID int) (string, error) {
	token, err := as.RandStringFunc(tokenLength)
	if err != nil {
		return "", err
	}

	sessionKey := sessionKeyPrefix + token
	cmdSet := as.redisClient.Set(ctx, sessionKey, userID, as.ttl)
	if err := cmdSet.Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}

	// add token to list of sessions
	cmdSAdd := as.redisClient.SAdd(ctx, tokensSetKey, token)
	if err := cmdSAdd.Err(); err != nil {
		return "", fmt.Errorf("add session token: %w", err)
	}

	return token, nil
}

func (as *Service) Logout(ctx context.Context, token string) error {
	as.cache.Del([]byte(token))

	sessionKey := sessionKeyPrefix + token
	cmdDel := as.redisClient.Del(ctx, sessionKey)
	if err := cmdDel.Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	// remove token from the list of sessions
	cmdSRem := as.redisClient.SRem(ctx, tokensSetKey, token)
	if err := cmdSRem.Err(); err != nil {
		return fmt.Errorf("remove session token: %w", err)
	}

	return nil
}

// UserID resolves the user logged in with the given token.
func (as *Service) UserID(ctx context.Context, token string) (int, error) {
	if token == "" {
		return 0, ErrSessionNotFound
	}

	if cached, err := as.cache.Get([]byte(token)); err == nil {
		if userID, err := strconv.Atoi(string(cached)); err == nil {
			return userID, nil
		}
	}

	cmd := as.redisClient.Get(ctx, sessionKeyPrefix+token)
	if err := cmd.Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrSessionNotFound
		}
		return 0, fmt.Errorf("get session: %w", err)
	}

	userID, err := strconv.Atoi(cmd.Val())
	if err != nil {
		return 0, fmt.Errorf("parse session user id: %w", err)
	}

	if err := as.cache.Set([]byte(token), []byte(cmd.Val()), sessionCacheTTLSeconds); err != nil {
		log.Debugf("cache session %s: %s", token, err)
	}

	return userID, nil
}

// ScanAndClean drops tokens from the sessions set whose session key has expired.
func (as *Service) ScanAndClean(ctx context.Context) {
	cmd := as.redisClient.SMembers(ctx, tokensSetKey)
	if err := cmd.Err(); err != nil {
		log.Errorf("!!! auth service, scan and clean, get sessions: %s", err)
		return
	}

	sessionTokens := cmd.Val()
	if len(sessionTokens) == 0 {
		log.Debugln("=> auth service, scan and clean abort, no sessions")
		return
	}

	log.Debugf("=> auth service, scan and clean [%d sessions] start ...", len(sessionTokens))
	for _, token := range sessionTokens {
		existsCmd := as.redisClient.Exists(ctx, sessionKeyPrefix+token)
		if err := existsCmd.Err(); err != nil {
			log.Errorf("=> auth service, scan and clean token %s: %s", token, err)
			continue
		}
		if existsCmd.Val() > 0 {
			continue
		}

		as.cache.Del([]byte(token))
		cmdSRem := as.redisClient.SRem(ctx, tokensSetKey, token)
		if err := cmdSRem.Err(); err != nil {
			log.Errorf("=> auth service, clean token %s: %s", token, err)
		}
	}
}
