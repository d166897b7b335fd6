package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/scholium-io/linnaeus/internal/pipeline"
)

const (
	EnvPipelineHintFloor        = "LINNAEUS_PIPELINE_HINT_FLOOR"
	EnvPipelineMinCandidates    = "LINNAEUS_PIPELINE_MIN_CANDIDATES"
	EnvPipelinePublishThreshold = "LINNAEUS_PIPELINE_PUBLISH_THRESHOLD"
	EnvPipelineMaxAssignments   = "LINNAEUS_PIPELINE_MAX_ASSIGNMENTS"
	EnvPipelineTimeout          = "LINNAEUS_PIPELINE_TIMEOUT"
	EnvPipelineRetryBackoff     = "LINNAEUS_PIPELINE_RETRY_BACKOFF"
)

// PipelineConfig holds the classification pipeline thresholds as TOML-facing
// values; Settings converts them to the runtime pipeline.Config.
type PipelineConfig struct {
	HintFloor        float64 `toml:"hint_floor"`
	MinCandidates    int     `toml:"min_candidates"`
	PublishThreshold float64 `toml:"publish_threshold"`
	MaxAssignments   int     `toml:"max_assignments"`
	ExcerptSections  int     `toml:"excerpt_sections"`
	ExcerptRunes     int     `toml:"excerpt_runes"`
	RetryBackoff     string  `toml:"retry_backoff"`
	Timeout          string  `toml:"timeout"`
}

// Settings converts the finalized config into the runtime pipeline settings.
func (c *PipelineConfig) Settings() pipeline.Config {
	cfg := pipeline.Config{
		HintFloor:        c.HintFloor,
		MinCandidates:    c.MinCandidates,
		PublishThreshold: c.PublishThreshold,
		MaxAssignments:   c.MaxAssignments,
		ExcerptSections:  c.ExcerptSections,
		ExcerptRunes:     c.ExcerptRunes,
	}
	cfg.RetryBackoff, _ = time.ParseDuration(c.RetryBackoff)
	cfg.Timeout, _ = time.ParseDuration(c.Timeout)
	return cfg
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *PipelineConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *PipelineConfig) Merge(overlay *PipelineConfig) {
	if overlay.HintFloor != 0 {
		c.HintFloor = overlay.HintFloor
	}
	if overlay.MinCandidates != 0 {
		c.MinCandidates = overlay.MinCandidates
	}
	if overlay.PublishThreshold != 0 {
		c.PublishThreshold = overlay.PublishThreshold
	}
	if overlay.MaxAssignments != 0 {
		c.MaxAssignments = overlay.MaxAssignments
	}
	if overlay.ExcerptSections != 0 {
		c.ExcerptSections = overlay.ExcerptSections
	}
	if overlay.ExcerptRunes != 0 {
		c.ExcerptRunes = overlay.ExcerptRunes
	}
	if overlay.RetryBackoff != "" {
		c.RetryBackoff = overlay.RetryBackoff
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
}

func (c *PipelineConfig) loadDefaults() {
	defaults := pipeline.DefaultConfig()

	if c.HintFloor == 0 {
		c.HintFloor = defaults.HintFloor
	}
	if c.MinCandidates == 0 {
		c.MinCandidates = defaults.MinCandidates
	}
	if c.PublishThreshold == 0 {
		c.PublishThreshold = defaults.PublishThreshold
	}
	if c.MaxAssignments == 0 {
		c.MaxAssignments = defaults.MaxAssignments
	}
	if c.ExcerptSections == 0 {
		c.ExcerptSections = defaults.ExcerptSections
	}
	if c.ExcerptRunes == 0 {
		c.ExcerptRunes = defaults.ExcerptRunes
	}
	if c.RetryBackoff == "" {
		c.RetryBackoff = defaults.RetryBackoff.String()
	}
	if c.Timeout == "" {
		c.Timeout = defaults.Timeout.String()
	}
}

func (c *PipelineConfig) loadEnv() {
	if v := os.Getenv(EnvPipelineHintFloor); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.HintFloor = f
		}
	}
	if v := os.Getenv(EnvPipelineMinCandidates); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MinCandidates = n
		}
	}
	if v := os.Getenv(EnvPipelinePublishThreshold); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.PublishThreshold = f
		}
	}
	if v := os.Getenv(EnvPipelineMaxAssignments); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxAssignments = n
		}
	}
	if v := os.Getenv(EnvPipelineTimeout); v != "" {
		c.Timeout = v
	}
	if v := os.Getenv(EnvPipelineRetryBackoff); v != "" {
		c.RetryBackoff = v
	}
}

func (c *PipelineConfig) validate() error {
	if c.HintFloor < 0 || c.HintFloor >= 1 {
		return fmt.Errorf("invalid hint_floor: %f", c.HintFloor)
	}
	if c.PublishThreshold < 0 || c.PublishThreshold >= 1 {
		return fmt.Errorf("invalid publish_threshold: %f", c.PublishThreshold)
	}
	if c.MinCandidates < 1 {
		return fmt.Errorf("invalid min_candidates: %d", c.MinCandidates)
	}
	if c.MaxAssignments < 1 {
		return fmt.Errorf("invalid max_assignments: %d", c.MaxAssignments)
	}
	if _, err := time.ParseDuration(c.RetryBackoff); err != nil {
		return fmt.Errorf("invalid retry_backoff: %w", err)
	}
	if _, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	return nil
}
