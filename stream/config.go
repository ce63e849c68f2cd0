package stream

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config describes the MQTT broker a Streamer publishes frames to.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		ClientID string `yaml:"clientID"`
		Topic    string `yaml:"topic"`
	} `yaml:"mqtt"`
}

// LoadConfig reads a yaml Config from disk.
func LoadConfig(path string) (Config, error) {
	var c Config
	f, err := os.Open(path)
	if err != nil {
		return c, err
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&c); err != nil {
		return c, fmt.Errorf("parse %s: %w", path, err)
	}
	if c.Mqtt.ClientID == "" {
		c.Mqtt.ClientID = "animatic"
	}
	return c, nil
}
