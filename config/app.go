package config

type App struct {
	Port      string `env:"PORT" default:"3750"`
	DBHost    string `env:"DB_HOST" default:"localhost"`
	DBPort    string `env:"DB_PORT" default:"5432"`
	DBName    string `env:"DB_NAME,required"`
	DBUser    string `env:"DB_USER,required"`
	DBPass    string `env:"DB_PASS,required"`
	JWTSecret string `env:"JWT_SECRET" default:"local_dev_secret"`
	Env       string `env:"APP_ENV" default:"dev"`
}
