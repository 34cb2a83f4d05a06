// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App          AppConfig               `mapstructure:"app"`
	Camunda      CamundaConfig           `mapstructure:"camunda"`
	Database     DatabaseConfig          `mapstructure:"database"`
	AWS          AWSConfig               `mapstructure:"aws"`
	Integrations IntegrationConfig       `mapstructure:"integrations"`
	Workers      map[string]WorkerConfig `mapstructure:"workers"`
	Routing      RoutingConfig           `mapstructure:"routing"`
	FollowUp     FollowUpConfig          `mapstructure:"followup"`
	Logging      LoggingConfig           `mapstructure:"logging"`
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

// GetDSN returns the PostgreSQL connection string.
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
	AuditIndex string   `mapstructure:"audit_index"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// AWSConfig holds the settings for the SES/SNS delivery collaborators.
type AWSConfig struct {
	Region      string `mapstructure:"region"`
	EmailFrom   string `mapstructure:"email_from"`
	SMSSenderID string `mapstructure:"sms_sender_id"`
}

type IntegrationConfig struct {
	Odoo OdooConfig `mapstructure:"odoo"`
}

type OdooConfig struct {
	BaseURL  string `mapstructure:"base_url"`
	Database string `mapstructure:"database"`
	APIKey   string `mapstructure:"api_key"`
}

// WorkerConfig holds the core settings applicable to every worker.
type WorkerConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	MaxJobsActive int  `mapstructure:"max_jobs_active"`
	Timeout       int  `mapstructure:"timeout"`     // milliseconds
	MaxRetries    int  `mapstructure:"max_retries"` // For error handling
}

// RoutingConfig carries the lead routing tables so assignee lists and the
// high-value threshold can be tuned without a deploy.
type RoutingConfig struct {
	HighValueThreshold   float64  `mapstructure:"high_value_threshold"`
	HighValueAssignees   []string `mapstructure:"high_value_assignees"`
	CommercialAssignees  []string `mapstructure:"commercial_assignees"`
	ResidentialAssignees []string `mapstructure:"residential_assignees"`
}

// FollowUpConfig carries the static metadata attached to follow-up messages.
type FollowUpConfig struct {
	FinancingPartner string `mapstructure:"financing_partner"`
	SchedulingLink   string `mapstructure:"scheduling_link"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
