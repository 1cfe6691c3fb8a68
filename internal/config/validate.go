package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("auth.session_ttl must be positive (got %v)", c.Auth.SessionTTL)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Reports.VisitsPerPage < 1 {
		return fmt.Errorf("reports.visits_per_page must be >= 1 (got %d)", c.Reports.VisitsPerPage)
	}
	if c.Reports.ReviewsPerPage < 1 {
		return fmt.Errorf("reports.reviews_per_page must be >= 1 (got %d)", c.Reports.ReviewsPerPage)
	}
	return nil
}
