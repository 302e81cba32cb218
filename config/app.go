package config

type App struct {
	Port    string `env:"APP_PORT" default:"3001"`
	DataDir string `env:"DATA_DIR" default:"data"`
	Env     string `env:"APP_ENV" default:"dev"`
}
