// Package redis provides a Redis-backed word-list store. Each list lives
// in one set keyed by the list name; an admin tool edits the sets and the
// reloader picks up the change on its next cycle.
package redis

import (
	"context"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	contentfilter "github.com/carnote/contentfilter"
	"github.com/carnote/contentfilter/dict"
	"github.com/carnote/contentfilter/store"
)

// Config holds the configuration for the Redis store.
type Config struct {
	Addr     string
	Password string
	DB       int

	// KeyPrefix prefixes every list key. Empty means "contentfilter:".
	KeyPrefix string

	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DefaultConfig returns the default Redis store configuration.
func DefaultConfig() Config {
	return Config{
		Addr:         "localhost:6379",
		KeyPrefix:    "contentfilter:",
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}
}

// Store implements store.Store backed by Redis sets.
type Store struct {
	client *redis.Client
	prefix string
}

// New creates a new Redis store.
func New(cfg Config) (*Store, error) {
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "contentfilter:"
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, contentfilter.NewStoreError("ping", "redis", contentfilter.WrapNetworkError(err))
	}

	return &Store{client: client, prefix: cfg.KeyPrefix}, nil
}

// NewWithClient creates a Redis store with an existing client.
func NewWithClient(client *redis.Client, keyPrefix string) *Store {
	if keyPrefix == "" {
		keyPrefix = "contentfilter:"
	}
	return &Store{client: client, prefix: keyPrefix}
}

// Name returns "redis".
func (s *Store) Name() string { return "redis" }

// listKeys returns the set key for every list, in load order.
var listNames = []string{
	"profanity_high", "profanity_medium", "profanity", "threats",
	"harassment", "discrimination", "scam_keywords", "money_keywords",
}

// LoadWordlists reads every list set.
func (s *Store) LoadWordlists(ctx context.Context) (dict.Wordlists, error) {
	var lists dict.Wordlists
	targets := map[string]*[]string{
		"profanity_high":   &lists.ProfanityHigh,
		"profanity_medium": &lists.ProfanityMedium,
		"profanity":        &lists.Profanity,
		"threats":          &lists.Threats,
		"harassment":       &lists.Harassment,
		"discrimination":   &lists.Discrimination,
		"scam_keywords":    &lists.ScamKeywords,
		"money_keywords":   &lists.MoneyKeywords,
	}

	pipe := s.client.Pipeline()
	cmds := make(map[string]*redis.StringSliceCmd, len(listNames))
	for _, name := range listNames {
		cmds[name] = pipe.SMembers(ctx, s.prefix+name)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return dict.Wordlists{}, contentfilter.NewStoreError("load", "redis", contentfilter.WrapNetworkError(err))
	}

	for name, cmd := range cmds {
		words, err := cmd.Result()
		if err != nil {
			return dict.Wordlists{}, contentfilter.NewStoreError("load", "redis", contentfilter.WrapNetworkError(err))
		}
		// SMembers order is unspecified; sort so identical content always
		// hashes to the same snapshot version.
		sort.Strings(words)
		*targets[name] = words
	}

	return lists, nil
}

// Ping checks Redis connectivity.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return contentfilter.NewStoreError("ping", "redis", contentfilter.WrapNetworkError(err))
	}
	return nil
}

// Close closes the Redis client.
func (s *Store) Close() error {
	return s.client.Close()
}

// Ensure Store implements store.Store.
var _ store.Store = (*Store)(nil)
