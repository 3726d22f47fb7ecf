package config

import (
	"fmt"
	"regexp"
	"strings"
)

var tableNameRe = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Curation.validate(); err != nil {
		return fmt.Errorf("curation: %w", err)
	}

	if !tableNameRe.MatchString(c.Catalog.Table) {
		return fmt.Errorf("catalog.table %q is not a valid table name", c.Catalog.Table)
	}

	if c.Server.RateLimitPerMinute < 0 {
		return fmt.Errorf("server.rate_limit_per_minute must be >= 0 (got %d)", c.Server.RateLimitPerMinute)
	}

	if c.CORS.AllowCredentials && strings.Contains(c.CORS.AllowedOrigins, "*") {
		return fmt.Errorf("cors: allow_credentials cannot be combined with a wildcard origin")
	}

	if c.Cache.Records <= 0 || c.Cache.EntriesPerRecord <= 0 {
		return fmt.Errorf("cache.records and cache.entries_per_record must be > 0")
	}

	return nil
}

func (c *CurationConfig) validate() error {
	for name, v := range map[string]float64{
		"triage_approve_threshold": c.TriageApproveThreshold,
		"triage_review_threshold":  c.TriageReviewThreshold,
		"triage_hold_threshold":    c.TriageHoldThreshold,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s must be within [0,1] (got %v)", name, v)
		}
	}
	if !(c.TriageApproveThreshold > c.TriageReviewThreshold && c.TriageReviewThreshold > c.TriageHoldThreshold) {
		return fmt.Errorf("triage thresholds must be strictly descending: approve %v > review %v > hold %v",
			c.TriageApproveThreshold, c.TriageReviewThreshold, c.TriageHoldThreshold)
	}
	if c.DuplicateThreshold <= 0 || c.DuplicateThreshold > 1 {
		return fmt.Errorf("duplicate_threshold must be within (0,1] (got %v)", c.DuplicateThreshold)
	}
	if c.DuplicateMaxMatches <= 0 {
		return fmt.Errorf("duplicate_max_matches must be > 0 (got %d)", c.DuplicateMaxMatches)
	}
	if c.DuplicateMaxPairwise < 2 {
		return fmt.Errorf("duplicate_max_pairwise must be >= 2 (got %d)", c.DuplicateMaxPairwise)
	}
	if c.SearchDefaultLimit <= 0 || c.SearchMaxLimit < c.SearchDefaultLimit {
		return fmt.Errorf("search limits invalid: default %d, max %d", c.SearchDefaultLimit, c.SearchMaxLimit)
	}
	if c.AnalyticsTopSources <= 0 {
		return fmt.Errorf("analytics_top_sources must be > 0 (got %d)", c.AnalyticsTopSources)
	}
	if c.DefaultDeadline <= 0 {
		return fmt.Errorf("default_deadline must be > 0 (got %s)", c.DefaultDeadline)
	}
	return nil
}
