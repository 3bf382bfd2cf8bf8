package config

// Config 配置主体
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	DB       DBConfig       `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Logstash LogstashConfig `mapstructure:"logstash"`
	Arena    ArenaConfig    `mapstructure:"arena"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// LogstashConfig 远程日志上报配置
type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

// ArenaConfig 评审引擎参数
type ArenaConfig struct {
	// DailyReviewCap 单用户每日评审上限
	DailyReviewCap int64 `mapstructure:"daily_review_cap"`
	// CandidatePoolSize 配对候选池大小
	CandidatePoolSize int `mapstructure:"candidate_pool_size"`
	// LeaderboardTTLMinutes 榜单缓存有效期（分钟）
	LeaderboardTTLMinutes int `mapstructure:"leaderboard_ttl_minutes"`
	// LeaderboardCron 榜单缓存预热表达式（含秒）
	LeaderboardCron string `mapstructure:"leaderboard_cron"`
}
