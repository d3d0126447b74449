package config

import (
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// LogAdapterConfig configures one logging output adapter
type LogAdapterConfig struct {
	Name    string                 `yaml:"name"`
	Type    string                 `yaml:"type"`
	Enabled bool                   `yaml:"enabled"`
	Options map[string]interface{} `yaml:"options"`
}

// ProviderConfig holds credentials and model selection for one AI provider
type ProviderConfig struct {
	APIKey string `yaml:"api_key"`
	Model  string `yaml:"model"`
}

// Config represents the application configuration
type Config struct {
	Server struct {
		Port         int           `yaml:"port" default:"3001"`
		Host         string        `yaml:"host" default:"0.0.0.0"`
		ReadTimeout  time.Duration `yaml:"read_timeout" default:"30s"`
		WriteTimeout time.Duration `yaml:"write_timeout" default:"30s"`
		IdleTimeout  time.Duration `yaml:"idle_timeout" default:"60s"`
	} `yaml:"server"`

	LLM struct {
		// Priority is the ordered list of provider identifiers to try.
		// Providers without credentials are skipped at startup.
		Priority    []string       `yaml:"priority"`
		OpenAI      ProviderConfig `yaml:"openai"`
		Gemini      ProviderConfig `yaml:"gemini"`
		Claude      ProviderConfig `yaml:"claude"`
		MaxTokens   int            `yaml:"max_tokens" default:"2000"`
		Temperature float32        `yaml:"temperature" default:"0.7"`
		Timeout     time.Duration  `yaml:"timeout" default:"90s"`
	} `yaml:"llm"`

	Session struct {
		Store      string        `yaml:"store" default:"memory"` // memory or redis
		Secret     string        `yaml:"secret"`
		CookieName string        `yaml:"cookie_name" default:"hiremind_session"`
		TTL        time.Duration `yaml:"ttl" default:"24h"`
	} `yaml:"session"`

	Redis struct {
		URL      string        `yaml:"url" default:"redis://localhost:6379"`
		Password string        `yaml:"password"`
		DB       int           `yaml:"db" default:"0"`
		Timeout  time.Duration `yaml:"timeout" default:"5s"`
	} `yaml:"redis"`

	Upload struct {
		MaxFileSize int64 `yaml:"max_file_size" default:"5242880"` // 5MB
	} `yaml:"upload"`

	CORS struct {
		FrontendOrigin string `yaml:"frontend_origin" default:"http://localhost:5173"`
	} `yaml:"cors"`

	RateLimit struct {
		RequestsPerMinute int  `yaml:"requests_per_minute" default:"60"`
		Enabled           bool `yaml:"enabled" default:"true"`
	} `yaml:"rate_limit"`

	Logging struct {
		Level    string             `yaml:"level" default:"info"`
		Format   string             `yaml:"format" default:"json"`
		Adapters []LogAdapterConfig `yaml:"adapters"`
	} `yaml:"logging"`
}

// expandEnvVars expands environment variables in a string using ${VAR} or $VAR syntax
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	return s
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	config := &Config{}

	// Set defaults
	config.Server.Port = 3001
	config.Server.Host = "0.0.0.0"
	config.Server.ReadTimeout = 30 * time.Second
	config.Server.WriteTimeout = 30 * time.Second
	config.Server.IdleTimeout = 60 * time.Second

	config.LLM.Priority = []string{"openai", "gemini"}
	config.LLM.OpenAI.Model = "gpt-3.5-turbo"
	config.LLM.Gemini.Model = "gemini-1.5-flash"
	config.LLM.Claude.Model = "claude-3-haiku-20240307"
	config.LLM.MaxTokens = 2000
	config.LLM.Temperature = 0.7
	config.LLM.Timeout = 90 * time.Second

	config.Session.Store = "memory"
	config.Session.CookieName = "hiremind_session"
	config.Session.TTL = 24 * time.Hour

	config.Redis.URL = "redis://localhost:6379"
	config.Redis.DB = 0
	config.Redis.Timeout = 5 * time.Second

	config.Upload.MaxFileSize = 5 * 1024 * 1024

	config.CORS.FrontendOrigin = "http://localhost:5173"

	config.RateLimit.RequestsPerMinute = 60
	config.RateLimit.Enabled = true

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	// Load from YAML file if it exists
	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			// Expand environment variables in the YAML content
			yamlContent := expandEnvVars(string(data))

			if err := yaml.Unmarshal([]byte(yamlContent), config); err != nil {
				return nil, err
			}
		}
	}

	// Unset variables survive expansion as literal "${VAR}" text; clear them
	// so a missing API key reads as not configured rather than as a garbage
	// credential.
	config.LLM.OpenAI.APIKey = scrubPlaceholder(config.LLM.OpenAI.APIKey)
	config.LLM.Gemini.APIKey = scrubPlaceholder(config.LLM.Gemini.APIKey)
	config.LLM.Claude.APIKey = scrubPlaceholder(config.LLM.Claude.APIKey)
	config.Session.Secret = scrubPlaceholder(config.Session.Secret)
	config.Redis.Password = scrubPlaceholder(config.Redis.Password)
	if scrubPlaceholder(config.Redis.URL) == "" {
		config.Redis.URL = "redis://localhost:6379"
	}
	if scrubPlaceholder(config.CORS.FrontendOrigin) == "" {
		config.CORS.FrontendOrigin = "http://localhost:5173"
	}

	// Override with environment variables
	config.loadFromEnv()

	return config, nil
}

func scrubPlaceholder(s string) string {
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		return ""
	}
	return s
}

// loadFromEnv loads configuration from environment variables
func (c *Config) loadFromEnv() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	if host := os.Getenv("HOST"); host != "" {
		c.Server.Host = host
	}

	if priority := os.Getenv("AI_PROVIDER_PRIORITY"); priority != "" {
		parts := strings.Split(priority, ",")
		providers := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				providers = append(providers, trimmed)
			}
		}
		if len(providers) > 0 {
			c.LLM.Priority = providers
		}
	}

	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		c.LLM.OpenAI.APIKey = apiKey
	}
	if model := os.Getenv("OPENAI_MODEL"); model != "" {
		c.LLM.OpenAI.Model = model
	}

	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		c.LLM.Gemini.APIKey = apiKey
	}
	if model := os.Getenv("GEMINI_MODEL"); model != "" {
		c.LLM.Gemini.Model = model
	}

	if apiKey := os.Getenv("ANTHROPIC_API_KEY"); apiKey != "" {
		c.LLM.Claude.APIKey = apiKey
	}
	if model := os.Getenv("CLAUDE_MODEL"); model != "" {
		c.LLM.Claude.Model = model
	}

	if timeout := os.Getenv("LLM_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.LLM.Timeout = d
		}
	}

	if maxTokens := os.Getenv("LLM_MAX_TOKENS"); maxTokens != "" {
		if n, err := strconv.Atoi(maxTokens); err == nil {
			c.LLM.MaxTokens = n
		}
	}

	if store := os.Getenv("SESSION_STORE"); store != "" {
		c.Session.Store = store
	}

	if secret := os.Getenv("SESSION_SECRET"); secret != "" {
		c.Session.Secret = secret
	}

	if ttl := os.Getenv("SESSION_TTL"); ttl != "" {
		if d, err := time.ParseDuration(ttl); err == nil {
			c.Session.TTL = d
		}
	}

	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		c.Redis.URL = redisURL
	}

	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		c.Redis.Password = redisPassword
	}

	if redisDB := os.Getenv("REDIS_DB"); redisDB != "" {
		if db, err := strconv.Atoi(redisDB); err == nil {
			c.Redis.DB = db
		}
	}

	if origin := os.Getenv("FRONTEND_ORIGIN"); origin != "" {
		c.CORS.FrontendOrigin = origin
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	if logFormat := os.Getenv("LOG_FORMAT"); logFormat != "" {
		c.Logging.Format = logFormat
	}
}

// ProviderConfigured reports whether the named provider has a credential
func (c *Config) ProviderConfigured(name string) bool {
	switch name {
	case "openai":
		return c.LLM.OpenAI.APIKey != ""
	case "gemini":
		return c.LLM.Gemini.APIKey != ""
	case "claude":
		return c.LLM.Claude.APIKey != ""
	default:
		return false
	}
}
