package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required")
	}
	if err := c.NLP.validate(); err != nil {
		return fmt.Errorf("nlp: %w", err)
	}
	if err := c.Recommend.validate(); err != nil {
		return fmt.Errorf("recommend: %w", err)
	}
	if err := c.Batch.validate(); err != nil {
		return fmt.Errorf("batch: %w", err)
	}
	if c.Auth.JWTSecret != "" && len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	return nil
}

func (c *NLPConfig) validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", c.Timeout)
	}
	if c.LiveThreshold < 0 || c.LiveThreshold > 1 {
		return fmt.Errorf("live_threshold must be in [0,1] (got %v)", c.LiveThreshold)
	}
	if c.BatchThreshold < 0 || c.BatchThreshold > 1 {
		return fmt.Errorf("batch_threshold must be in [0,1] (got %v)", c.BatchThreshold)
	}
	return nil
}

func (c *RecommendConfig) validate() error {
	if c.PoolSize <= 0 {
		return fmt.Errorf("pool_size must be > 0 (got %d)", c.PoolSize)
	}
	if c.DirectLimit <= 0 {
		return fmt.Errorf("direct_limit must be > 0 (got %d)", c.DirectLimit)
	}
	if c.TopK <= 0 {
		return fmt.Errorf("top_k must be > 0 (got %d)", c.TopK)
	}
	if c.RecencyDays < 0 {
		return fmt.Errorf("recency_days must be >= 0 (got %d)", c.RecencyDays)
	}
	return nil
}

func (c *BatchConfig) validate() error {
	if c.PageSize <= 0 {
		return fmt.Errorf("page_size must be > 0 (got %d)", c.PageSize)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be > 0 (got %d)", c.BatchSize)
	}
	if c.BatchSize > c.PageSize {
		return fmt.Errorf("batch_size (%d) cannot exceed page_size (%d)", c.BatchSize, c.PageSize)
	}
	if c.MaxRetries < 1 {
		return fmt.Errorf("max_retries must be >= 1 (got %d)", c.MaxRetries)
	}
	if c.RetryBaseDelay < 0 {
		return fmt.Errorf("retry_base_delay must be >= 0 (got %v)", c.RetryBaseDelay)
	}
	return nil
}
