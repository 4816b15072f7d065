package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DriverMinio      = "minio"
	DriverCloudinary = "cloudinary"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Storage struct {
		Driver string `yaml:"driver"` // minio | cloudinary

		Minio struct {
			Endpoint   string `yaml:"endpoint"`
			AccessKey  string `yaml:"accessKey"`
			SecretKey  string `yaml:"secretKey"`
			BucketName string `yaml:"bucketName"`
			Region     string `yaml:"region"`
			UseSSL     bool   `yaml:"useSSL"`
			PublicBase string `yaml:"publicBase"`
		} `yaml:"minio"`

		Cloudinary struct {
			CloudName string `yaml:"cloudName"`
			APIKey    string `yaml:"apiKey"`
			APISecret string `yaml:"apiSecret"`
		} `yaml:"cloudinary"`
	} `yaml:"storage"`

	Vision struct {
		MaxTokens   int     `yaml:"maxTokens"`
		Temperature float32 `yaml:"temperature"`

		Nebius struct {
			APIKey  string `yaml:"apiKey"`
			BaseURL string `yaml:"baseURL"`
			Model   string `yaml:"model"`
		} `yaml:"nebius"`

		Gemini struct {
			APIKey  string `yaml:"apiKey"`
			BaseURL string `yaml:"baseURL"`
			Model   string `yaml:"model"`
		} `yaml:"gemini"`
	} `yaml:"vision"`
}

// Load reads the yaml config file, applies env overrides and defaults, and
// validates credentials so misconfiguration fails at startup, not on the
// first request.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyEnv()
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyEnv lets secrets come from the environment instead of the config file.
func (c *Config) applyEnv() {
	override := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	override(&c.Storage.Minio.AccessKey, "MINIO_ACCESS_KEY")
	override(&c.Storage.Minio.SecretKey, "MINIO_SECRET_KEY")
	override(&c.Storage.Cloudinary.CloudName, "CLOUDINARY_CLOUD_NAME")
	override(&c.Storage.Cloudinary.APIKey, "CLOUDINARY_API_KEY")
	override(&c.Storage.Cloudinary.APISecret, "CLOUDINARY_API_SECRET")
	override(&c.Vision.Nebius.APIKey, "NEBIUS_API_KEY")
	override(&c.Vision.Gemini.APIKey, "GEMINI_API_KEY")
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8000
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = DriverMinio
	}
	if c.Vision.MaxTokens == 0 {
		c.Vision.MaxTokens = 300
	}
	if c.Vision.Temperature == 0 {
		c.Vision.Temperature = 0.3
	}
	if c.Vision.Nebius.Model == "" {
		c.Vision.Nebius.Model = "Qwen/Qwen2-VL-7B-Instruct"
	}
	if c.Vision.Gemini.Model == "" {
		c.Vision.Gemini.Model = "gemini-1.5-flash"
	}
}

// Validate checks that credentials for the selected storage driver and both
// vision backends are present.
func (c *Config) Validate() error {
	var missing []string

	switch c.Storage.Driver {
	case DriverMinio:
		if c.Storage.Minio.Endpoint == "" {
			missing = append(missing, "storage.minio.endpoint")
		}
		if c.Storage.Minio.AccessKey == "" {
			missing = append(missing, "storage.minio.accessKey")
		}
		if c.Storage.Minio.SecretKey == "" {
			missing = append(missing, "storage.minio.secretKey")
		}
		if c.Storage.Minio.BucketName == "" {
			missing = append(missing, "storage.minio.bucketName")
		}
	case DriverCloudinary:
		if c.Storage.Cloudinary.CloudName == "" {
			missing = append(missing, "storage.cloudinary.cloudName")
		}
		if c.Storage.Cloudinary.APIKey == "" {
			missing = append(missing, "storage.cloudinary.apiKey")
		}
		if c.Storage.Cloudinary.APISecret == "" {
			missing = append(missing, "storage.cloudinary.apiSecret")
		}
	default:
		return fmt.Errorf("unknown storage driver: %q (allowed: minio, cloudinary)", c.Storage.Driver)
	}

	if c.Vision.Nebius.APIKey == "" {
		missing = append(missing, "vision.nebius.apiKey")
	}
	if c.Vision.Gemini.APIKey == "" {
		missing = append(missing, "vision.gemini.apiKey")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required config: %v", missing)
	}
	return nil
}
