package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

var Cfg *AppConfig

type AppConfig struct {
	Server   ServerConfig   `yaml:"server"`
	Upstream UpstreamConfig `yaml:"upstream"`
	Log      LogConfig      `yaml:"log"`
	Dev      bool           `yaml:"dev"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type UpstreamConfig struct {
	Endpoint string `yaml:"endpoint"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Output string `yaml:"output"`
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Addr: ":3001",
		},
		Upstream: UpstreamConfig{
			Endpoint: "https://transmart.qq.com/api/imt",
		},
		Log: LogConfig{
			Level:  "info",
			Output: "stdout",
		},
	}
}

// config.yml is optional; a missing file keeps the defaults so the
// binary and tests run with zero setup.
func init() {
	Cfg = defaultConfig()

	file, err := os.Open("config.yml")
	if err != nil {
		if os.IsNotExist(err) {
			return
		}
		log.Fatalf("Error opening config file: %v", err)
	}
	defer func() {
		err := file.Close()
		if err != nil {
			log.Printf("Error close config file: %v", err)
		}
	}()

	if err := yaml.NewDecoder(file).Decode(Cfg); err != nil {
		log.Fatalf("Error decoding config file: %v", err)
	}
}
