package config

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/viper"
)

type Server struct {
	Port int `mapstructure:"port"`
}

type Snapshot struct {
	Source          string `mapstructure:"source"` // file | postgres
	RestaurantsPath string `mapstructure:"restaurants_path"`
	OrdersPath      string `mapstructure:"orders_path"`
}

type DB struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	User string `mapstructure:"user"`
	Pass string `mapstructure:"password"`
	Name string `mapstructure:"database"`
}

type MQ struct {
	Enabled bool   `mapstructure:"enabled"`
	Host    string `mapstructure:"host"`
	Port    int    `mapstructure:"port"`
	User    string `mapstructure:"user"`
	Pass    string `mapstructure:"password"`
}

type App struct {
	Server   Server   `mapstructure:"server"`
	Snapshot Snapshot `mapstructure:"snapshot"`
	Database DB       `mapstructure:"database"`
	Rabbit   MQ       `mapstructure:"rabbitmq"`
}

// Load reads the YAML config at path and unmarshals it over the defaults.
func Load(path string) (App, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("server.port", 8000)
	v.SetDefault("snapshot.source", "file")
	v.SetDefault("snapshot.restaurants_path", "data/restaurants.json")
	v.SetDefault("snapshot.orders_path", "data/orders.json")
	v.SetDefault("rabbitmq.enabled", false)
	v.SetDefault("rabbitmq.port", 5672)
	v.SetDefault("database.port", 5432)

	if err := v.ReadInConfig(); err != nil {
		return App{}, fmt.Errorf("read config %s: %w", path, err)
	}
	var a App
	if err := v.Unmarshal(&a); err != nil {
		return App{}, fmt.Errorf("unmarshal config %s: %w", path, err)
	}
	if a.Snapshot.Source != "file" && a.Snapshot.Source != "postgres" {
		return App{}, fmt.Errorf("invalid snapshot.source %q", a.Snapshot.Source)
	}
	return a, nil
}

// FindConfig probes the conventional config locations.
func FindConfig() (string, error) {
	candidates := []string{"config.yaml", "deploy/config.example.yaml"}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fs.ErrNotExist
}
