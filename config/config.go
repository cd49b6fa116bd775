package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"assistant-trigger/internal/model"
	"assistant-trigger/internal/prompt"
)

var (
	ErrMissingGitLabToken   = errors.New("gitlab token is required (gitlab.token or GITLAB_TOKEN)")
	ErrMissingTriggerPhrase = errors.New("trigger phrase is required (action.trigger_phrase or TRIGGER_PHRASE)")
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// GitLab
	GitLab   GitLabConfig
	Webhook  WebhookConfig
	Pipeline PipelineConfig

	// Assistant
	Action     model.ActionConfig
	Dispatcher DispatcherConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type GitLabConfig struct {
	URL     string
	Token   string
	Timeout time.Duration
}

type WebhookConfig struct {
	Secret          string
	AllowedIPs      []string
	RateLimitPerMin int
	DedupTTL        time.Duration
	NgrokAPI        string // local ngrok API used to discover the public webhook URL
}

type PipelineConfig struct {
	TriggerToken string
	Ref          string
	PromptPath   string
	OutputsPath  string
	JobURL       string
}

type DispatcherConfig struct {
	Workers    int
	QueueSize  int
	JobTimeout time.Duration
}

// Load loads configuration using Viper.
// A .env file in the working directory is loaded first when present.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("error loading .env: %w", err)
		}
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)
	if err := bindCIEnv(v); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = v.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// GitLab
	cfg.GitLab.URL = v.GetString("gitlab.url")
	cfg.GitLab.Token = v.GetString("gitlab.token")
	cfg.GitLab.Timeout = v.GetDuration("gitlab.timeout")

	// Webhooks
	cfg.Webhook.Secret = v.GetString("webhook.secret")
	cfg.Webhook.AllowedIPs = stringList(v, "webhook.allowed_ips")
	cfg.Webhook.RateLimitPerMin = v.GetInt("webhook.rate_limit_per_min")
	cfg.Webhook.DedupTTL = v.GetDuration("webhook.dedup_ttl")
	cfg.Webhook.NgrokAPI = v.GetString("webhook.ngrok_api")

	// Pipeline
	cfg.Pipeline.TriggerToken = v.GetString("pipeline.trigger_token")
	cfg.Pipeline.Ref = v.GetString("pipeline.ref")
	cfg.Pipeline.PromptPath = v.GetString("pipeline.prompt_path")
	cfg.Pipeline.OutputsPath = v.GetString("pipeline.outputs_path")
	cfg.Pipeline.JobURL = v.GetString("pipeline.job_url")

	// Assistant
	cfg.Action = model.ActionConfig{
		TriggerPhrase:      v.GetString("action.trigger_phrase"),
		AssigneeTrigger:    v.GetString("action.assignee_trigger"),
		LabelTrigger:       v.GetString("action.label_trigger"),
		BaseBranch:         v.GetString("action.base_branch"),
		BranchPrefix:       v.GetString("action.branch_prefix"),
		MaxTurns:           v.GetInt("action.max_turns"),
		TimeoutMinutes:     v.GetInt("action.timeout_minutes"),
		Model:              v.GetString("action.model"),
		CustomInstructions: v.GetString("action.custom_instructions"),
		AllowedTools:       stringList(v, "action.allowed_tools"),
		DisallowedTools:    stringList(v, "action.disallowed_tools"),
		UseBedrock:         v.GetBool("action.use_bedrock"),
		UseVertex:          v.GetBool("action.use_vertex"),
	}

	cfg.Dispatcher.Workers = v.GetInt("dispatcher.workers")
	cfg.Dispatcher.QueueSize = v.GetInt("dispatcher.queue_size")
	cfg.Dispatcher.JobTimeout = v.GetDuration("dispatcher.job_timeout")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.GitLab.Token == "" {
		return ErrMissingGitLabToken
	}
	if strings.TrimSpace(cfg.Action.TriggerPhrase) == "" {
		return ErrMissingTriggerPhrase
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.shutdown_timeout", "10s")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("gitlab.url", "https://gitlab.com")
	v.SetDefault("gitlab.timeout", "30s")

	v.SetDefault("webhook.rate_limit_per_min", 60)
	v.SetDefault("webhook.dedup_ttl", "10m")

	v.SetDefault("pipeline.prompt_path", prompt.DefaultPromptPath)
	v.SetDefault("pipeline.outputs_path", "assistant.env")

	v.SetDefault("action.trigger_phrase", "@claude")
	v.SetDefault("action.branch_prefix", "claude/")
	v.SetDefault("action.timeout_minutes", 30)

	v.SetDefault("dispatcher.workers", 4)
	v.SetDefault("dispatcher.queue_size", 100)
	v.SetDefault("dispatcher.job_timeout", "10m")
}

// bindCIEnv binds the flat variable names used inside CI jobs. The nested
// form (ACTION_TRIGGER_PHRASE) still wins when both are set.
func bindCIEnv(v *viper.Viper) error {
	bindings := map[string][]string{
		"gitlab.url":                 {"GITLAB_URL", "CI_SERVER_URL"},
		"gitlab.token":               {"GITLAB_TOKEN"},
		"webhook.secret":             {"WEBHOOK_SECRET"},
		"pipeline.trigger_token":     {"PIPELINE_TRIGGER_TOKEN"},
		"pipeline.job_url":           {"PIPELINE_JOB_URL", "CI_JOB_URL"},
		"action.trigger_phrase":      {"ACTION_TRIGGER_PHRASE", model.VarTriggerPhrase},
		"action.assignee_trigger":    {"ACTION_ASSIGNEE_TRIGGER", model.VarAssigneeTrigger},
		"action.label_trigger":       {"ACTION_LABEL_TRIGGER", model.VarLabelTrigger},
		"action.base_branch":         {"ACTION_BASE_BRANCH", model.VarBaseBranch},
		"action.branch_prefix":       {"ACTION_BRANCH_PREFIX", model.VarBranchPrefix},
		"action.max_turns":           {"ACTION_MAX_TURNS", model.VarMaxTurns},
		"action.timeout_minutes":     {"ACTION_TIMEOUT_MINUTES", model.VarTimeoutMinutes},
		"action.model":               {"ACTION_MODEL", model.VarModel},
		"action.custom_instructions": {"ACTION_CUSTOM_INSTRUCTIONS", model.VarCustomInstructions},
		"action.allowed_tools":       {"ACTION_ALLOWED_TOOLS", model.VarAllowedTools},
		"action.disallowed_tools":    {"ACTION_DISALLOWED_TOOLS", model.VarDisallowedTools},
		"action.use_bedrock":         {"ACTION_USE_BEDROCK", model.VarUseBedrock},
		"action.use_vertex":          {"ACTION_USE_VERTEX", model.VarUseVertex},
	}
	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return fmt.Errorf("bind env %s: %w", key, err)
		}
	}
	return nil
}

// stringList reads a list given either as a YAML sequence or as a comma
// separated string from the environment.
func stringList(v *viper.Viper, key string) []string {
	raw, ok := v.Get(key).(string)
	if !ok {
		return v.GetStringSlice(key)
	}
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
