package config

type App struct {
	Port            string `env:"APP_PORT" default:"8080"`
	DatabaseURL     string `env:"DATABASE_URL,required"`
	JWTSecret       string `env:"JWT_SECRET" default:"local_dev_secret"`
	RedisAddr       string `env:"REDIS_ADDR" default:"localhost:6379"`
	SchemaPath      string `env:"DB_SCHEMA_PATH" default:"migrations/0001_init.sql"`
	SeedSampleBikes bool   `env:"SEED_SAMPLE_BIKES" default:"true"`
	ReportCacheTTL  int    `env:"REPORT_CACHE_TTL_SECONDS" default:"30"`
	Env             string `env:"APP_ENV" default:"dev"`
}
