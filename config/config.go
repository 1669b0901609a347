package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Duration wraps time.Duration so it can be written as "30s" in the toml
// configuration file.
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}

	*d = Duration(v)
	return nil
}

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

type Configs struct {
	Env           string `toml:"env"`
	LogLevel      int    `toml:"log_level"`
	SnowFlakeNode int64  `toml:"snowflake_node"`

	Database  DatabaseConfigs  `toml:"database"`
	ApiServer APIServerConfigs `toml:"api_server"`
	WsServer  ServerConfigs    `toml:"ws_server"`
	Auth      AuthConfigs      `toml:"auth"`
	Redis     RedisConfigs     `toml:"redis"`
	Mail      MailConfigs      `toml:"mail"`
	Realtime  RealtimeConfigs  `toml:"realtime"`
}

type DatabaseConfigs struct {
	Host     string `toml:"host"`
	Port     string `toml:"port"`
	Database string `toml:"database"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

func (d *DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type ServerConfigs struct {
	Host string `toml:"host"`
	Port string `toml:"port"`
}

func (s *ServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

type APIServerConfigs struct {
	ServerConfigs

	DefaultLimit int `toml:"default_limit"`
	MaxLimit     int `toml:"max_limit"`
}

type AuthConfigs struct {
	TokenSecret string       `toml:"token_secret"`
	AccessToken TokenConfigs `toml:"access_token"`
}

type TokenConfigs struct {
	Name       string   `toml:"name"`
	Expiration Duration `toml:"expiration"`
}

type RedisConfigs struct {
	Addr         string   `toml:"addr"`
	PoolSize     int      `toml:"pool_size"`
	MaxRetries   int      `toml:"max_retries"`
	DialTimeout  Duration `toml:"dial_timeout"`
	ReadTimeout  Duration `toml:"read_timeout"`
	WriteTimeout Duration `toml:"write_timeout"`
}

type MailConfigs struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	From     string `toml:"from"`
}

type RealtimeConfigs struct {
	ProbeInterval      Duration `toml:"probe_interval"`
	ReconnectBaseDelay Duration `toml:"reconnect_base_delay"`
	PresenceTTL        Duration `toml:"presence_ttl"`
}

// Load reads the toml configuration at path and applies environment
// overrides for secrets. A missing path keeps the defaults.
func Load(path string) (Configs, error) {
	// The .env file is optional, environment variables win either way.
	_ = godotenv.Load()

	cfg := defaultConfigs()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, err
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func defaultConfigs() Configs {
	return Configs{
		Env:      "local",
		LogLevel: 1,
		ApiServer: APIServerConfigs{
			ServerConfigs: ServerConfigs{Port: "8080"},
			DefaultLimit:  20,
			MaxLimit:      50,
		},
		WsServer: ServerConfigs{Port: "8081"},
		Auth: AuthConfigs{
			AccessToken: TokenConfigs{
				Name:       "access_token",
				Expiration: Duration(time.Hour),
			},
		},
		Redis: RedisConfigs{
			PoolSize:     5,
			MaxRetries:   5,
			DialTimeout:  Duration(5 * time.Second),
			ReadTimeout:  Duration(5 * time.Second),
			WriteTimeout: Duration(5 * time.Second),
		},
		Realtime: RealtimeConfigs{
			ProbeInterval:      Duration(30 * time.Second),
			ReconnectBaseDelay: Duration(time.Second),
			PresenceTTL:        Duration(5 * time.Minute),
		},
	}
}

func applyEnv(cfg *Configs) {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}

	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}

	if v := os.Getenv("TOKEN_SECRET"); v != "" {
		cfg.Auth.TokenSecret = v
	}

	if v := os.Getenv("MAIL_PASSWORD"); v != "" {
		cfg.Mail.Password = v
	}
}
