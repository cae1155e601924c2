package config

import (
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 服务端配置
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Redis    RedisConfig    `yaml:"redis"`
	Game     GameConfig     `yaml:"game"`
	Security SecurityConfig `yaml:"security"`
}

// ServerConfig WebSocket 服务器配置
type ServerConfig struct {
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	MaxConnections int    `yaml:"max_connections"`
}

// RedisConfig Redis 配置
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// GameConfig 游戏配置
type GameConfig struct {
	RoomIdleTimeout int `yaml:"room_idle_timeout"` // 空房间过期（分钟）
}

// SecurityConfig 安全配置
type SecurityConfig struct {
	AllowedOrigins      []string `yaml:"allowed_origins"`
	MessageMaxPerSecond int      `yaml:"message_max_per_second"`
	ChatMaxPerSecond    int      `yaml:"chat_max_per_second"`
	ChatCooldown        int      `yaml:"chat_cooldown"` // 超速后的冷却（秒）
}

// RoomIdleTimeoutDuration 返回空房间过期时长
func (c *GameConfig) RoomIdleTimeoutDuration() time.Duration {
	return time.Duration(c.RoomIdleTimeout) * time.Minute
}

// ChatCooldownDuration 返回聊天冷却时长
func (c *SecurityConfig) ChatCooldownDuration() time.Duration {
	return time.Duration(c.ChatCooldown) * time.Second
}

// Load 加载配置文件，PORT 环境变量优先于文件里的端口
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	cfg.applyEnv()

	return &cfg, nil
}

// Default 返回默认配置
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	cfg.applyEnv()
	return cfg
}

func (cfg *Config) applyDefaults() {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.MaxConnections == 0 {
		cfg.Server.MaxConnections = 1000
	}
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = "localhost:6379"
	}
	if cfg.Game.RoomIdleTimeout == 0 {
		cfg.Game.RoomIdleTimeout = 30
	}
	if len(cfg.Security.AllowedOrigins) == 0 {
		cfg.Security.AllowedOrigins = []string{"*"}
	}
	if cfg.Security.MessageMaxPerSecond == 0 {
		cfg.Security.MessageMaxPerSecond = 20
	}
	if cfg.Security.ChatMaxPerSecond == 0 {
		cfg.Security.ChatMaxPerSecond = 2
	}
	if cfg.Security.ChatCooldown == 0 {
		cfg.Security.ChatCooldown = 3
	}
}

func (cfg *Config) applyEnv() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}
}
