// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App      AppConfig               `mapstructure:"app"`
	Camunda  CamundaConfig           `mapstructure:"camunda"`
	Database DatabaseConfig          `mapstructure:"database"`
	Matching MatchingConfig          `mapstructure:"matching"`
	Workers  map[string]WorkerConfig `mapstructure:"workers"`
	Logging  LoggingConfig           `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type CamundaConfig struct {
	BrokerAddress  string `mapstructure:"broker_address"`
	MaxJobsActive  int    `mapstructure:"max_jobs_active"`
	Timeout        int    `mapstructure:"timeout"`         // milliseconds
	RequestTimeout int    `mapstructure:"request_timeout"` // milliseconds
}

type DatabaseConfig struct {
	Postgres      PostgresConfig      `mapstructure:"postgres"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
	Redis         RedisConfig         `mapstructure:"redis"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the PostgreSQL connection string
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type ElasticsearchConfig struct {
	Addresses  []string `mapstructure:"addresses"`
	Username   string   `mapstructure:"username"`
	Password   string   `mapstructure:"password"`
	SSLEnabled bool     `mapstructure:"ssl_enabled"`
	URL        string   `mapstructure:"url"` // Single URL for backwards compatibility
}

// GetURL returns the first address or the URL field
func (e ElasticsearchConfig) GetURL() string {
	if e.URL != "" {
		return e.URL
	}
	if len(e.Addresses) > 0 {
		return e.Addresses[0]
	}
	return ""
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// WorkerConfig holds the core settings applicable to every worker.
type WorkerConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	MaxJobsActive int  `mapstructure:"max_jobs_active"`
	Timeout       int  `mapstructure:"timeout"`     // milliseconds
	MaxRetries    int  `mapstructure:"max_retries"` // For error handling
}

// --- Matching Configuration ---

// MatchingConfig holds the tunables of the scoring engine and its
// workers. Weights, deltas and caps are deployment knobs, not code.
type MatchingConfig struct {
	RegistryPath         string              `mapstructure:"registry_path"`
	JobIndex             string              `mapstructure:"job_index"`
	ProfileCacheTTL      int                 `mapstructure:"profile_cache_ttl"` // seconds
	MaxConcurrency       int                 `mapstructure:"max_concurrency"`
	Weights              WeightsConfig       `mapstructure:"weights"`
	PreferenceDimensions []string            `mapstructure:"preference_dimensions"`
	Activity             ActivityConfig      `mapstructure:"activity"`
	Categories           CategoriesConfig    `mapstructure:"categories"`
	FreshnessWindowDays  int                 `mapstructure:"freshness_window_days"`
	Synonyms             map[string][]string `mapstructure:"synonyms"`
}

type WeightsConfig struct {
	SkillCoverage  float64 `mapstructure:"skill_coverage"`
	TextSimilarity float64 `mapstructure:"text_similarity"`
	Preferences    float64 `mapstructure:"preferences"`
}

type ActivityConfig struct {
	WindowDays       int     `mapstructure:"window_days"`
	AppliedBoost     float64 `mapstructure:"applied_boost"`
	SavedBoost       float64 `mapstructure:"saved_boost"`
	DismissedPenalty float64 `mapstructure:"dismissed_penalty"`
}

type CategoriesConfig struct {
	ForYou         int `mapstructure:"for_you"`
	CareerGrowth   int `mapstructure:"career_growth"`
	SkillMatch     int `mapstructure:"skill_match"`
	NewOpportunity int `mapstructure:"new_opportunity"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
