package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	YTDLP   YTDLPConfig   `yaml:"ytdlp"`
	Gemini  GeminiConfig  `yaml:"gemini"`
	Paths   PathsConfig   `yaml:"paths"`
	Logging LoggingConfig `yaml:"logging"`
}

type YTDLPConfig struct {
	BinaryPath             string `yaml:"binary_path"`
	SubtitleLangs          string `yaml:"subtitle_langs"`
	SubtitleTimeoutSeconds int    `yaml:"subtitle_timeout_seconds"`
	AudioFormat            string `yaml:"audio_format"`
	AudioTimeoutSeconds    int    `yaml:"audio_timeout_seconds"`
}

type GeminiConfig struct {
	TranscribeModel string `yaml:"transcribe_model"`
	CaptionModel    string `yaml:"caption_model"`
}

type PathsConfig struct {
	Temp   string `yaml:"temp"`
	Output string `yaml:"output"`
	Watch  string `yaml:"watch"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// SubtitleTimeout is the bounded wait for the caption fetch invocation
func (y YTDLPConfig) SubtitleTimeout() time.Duration {
	return time.Duration(y.SubtitleTimeoutSeconds) * time.Second
}

// AudioTimeout is the bounded wait for the audio download invocation
func (y YTDLPConfig) AudioTimeout() time.Duration {
	return time.Duration(y.AudioTimeoutSeconds) * time.Second
}

// Load reads a YAML config file and applies defaults via Validate
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Default returns a config with every field at its default value
func Default() *Config {
	cfg := &Config{}
	_ = cfg.Validate()
	return cfg
}

func (c *Config) Validate() error {
	if c.YTDLP.SubtitleTimeoutSeconds < 0 {
		return fmt.Errorf("ytdlp.subtitle_timeout_seconds must not be negative")
	}
	if c.YTDLP.AudioTimeoutSeconds < 0 {
		return fmt.Errorf("ytdlp.audio_timeout_seconds must not be negative")
	}

	switch c.YTDLP.AudioFormat {
	case "", "mp3", "m4a", "opus":
	default:
		return fmt.Errorf("ytdlp.audio_format %q is not supported (mp3, m4a, opus)", c.YTDLP.AudioFormat)
	}

	if c.YTDLP.BinaryPath == "" {
		c.YTDLP.BinaryPath = "yt-dlp"
	}
	if c.YTDLP.SubtitleLangs == "" {
		c.YTDLP.SubtitleLangs = "en"
	}
	if c.YTDLP.SubtitleTimeoutSeconds == 0 {
		c.YTDLP.SubtitleTimeoutSeconds = 60
	}
	if c.YTDLP.AudioFormat == "" {
		c.YTDLP.AudioFormat = "mp3"
	}
	if c.YTDLP.AudioTimeoutSeconds == 0 {
		c.YTDLP.AudioTimeoutSeconds = 120
	}
	if c.Gemini.TranscribeModel == "" {
		c.Gemini.TranscribeModel = "gemini-2.5-flash"
	}
	if c.Gemini.CaptionModel == "" {
		c.Gemini.CaptionModel = "gemini-2.5-flash"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = os.TempDir()
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "data/output"
	}
	if c.Paths.Watch == "" {
		c.Paths.Watch = "data/urls"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
