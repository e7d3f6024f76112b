package stream

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

// Config is the YAML configuration of the showcase runner.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		ClientID string `yaml:"clientID"`
		QoS      byte   `yaml:"qos"`
		Topics   struct {
			Prefix string `yaml:"prefix"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	Animation struct {
		FrameRate float64 `yaml:"frameRate"`
		Orbit     struct {
			Center    []float64     `yaml:"center"`
			Radius    float64       `yaml:"radius"`
			Altitude  float64       `yaml:"altitude"`
			Duration  time.Duration `yaml:"duration"`
			Direction float64       `yaml:"direction"`
		} `yaml:"orbit"`
		Path struct {
			Coordinates [][]float64   `yaml:"coordinates"`
			Duration    time.Duration `yaml:"duration"`
			Altitude    float64       `yaml:"altitude"`
			Pitch       float64       `yaml:"pitch"`
			Easing      string        `yaml:"easing"`
		} `yaml:"path"`
		Fog struct {
			PresetsFile string        `yaml:"presetsFile"`
			Cycle       []string      `yaml:"cycle"`
			Duration    time.Duration `yaml:"duration"`
			Easing      string        `yaml:"easing"`
			BlendColors bool          `yaml:"blendColors"`
		} `yaml:"fog"`
	} `yaml:"animation"`
}

// ReadConfig decodes a Config and fills in defaults.
func ReadConfig(r io.Reader) (Config, error) {
	var c Config
	if err := yaml.NewDecoder(r).Decode(&c); err != nil && err != io.EOF {
		return c, fmt.Errorf("config: %w", err)
	}
	if c.Mqtt.ClientID == "" {
		c.Mqtt.ClientID = "glide"
	}
	if c.Mqtt.Topics.Prefix == "" {
		c.Mqtt.Topics.Prefix = "glide"
	}
	if c.Mqtt.QoS > 2 {
		return c, fmt.Errorf("config: qos %d out of range", c.Mqtt.QoS)
	}
	if c.Animation.FrameRate <= 0 {
		c.Animation.FrameRate = 60
	}
	if n := len(c.Animation.Orbit.Center); n != 0 && n != 2 {
		return c, fmt.Errorf("config: orbit center needs two values, got %d", n)
	}
	for i, p := range c.Animation.Path.Coordinates {
		if len(p) != 2 {
			return c, fmt.Errorf("config: path coordinate %d needs two values, got %d", i, len(p))
		}
	}
	if len(c.Animation.Fog.Cycle) == 0 {
		c.Animation.Fog.Cycle = []string{"day", "dusk", "night", "dawn"}
	}
	return c, nil
}

// LoadConfig reads the Config from a YAML file.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	return ReadConfig(f)
}
