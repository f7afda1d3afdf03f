package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the optional JSON config.
type StructuredJSONConfig struct {
	App struct {
		AdminIDs          []int64 `json:"admin_ids"`
		ChunkSize         int     `json:"chunk_size"`
		CategoryPrefix    string  `json:"category_prefix"`
		CategorySeparator string  `json:"category_separator"`
		Version           string  `json:"version"`
		LogLevel          string  `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		Roster struct {
			Path string `json:"path"`
		} `json:"roster,omitempty"`

		UserLog struct {
			Path   string `json:"path"`
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"user_log,omitempty"`

		Archive struct {
			Endpoint  string `json:"endpoint"`
			AccessKey string `json:"access_key"`
			SecretKey string `json:"secret_key"`
			Bucket    string `json:"bucket"`
			UseSSL    bool   `json:"use_ssl"`
		} `json:"archive,omitempty"`
	} `json:"storage,omitempty"`

	Telegram struct {
		Token          string   `json:"token"`
		BaseURL        string   `json:"base_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"telegram,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		WebhookURL     string   `json:"webhook_url"`
		WebhookSecret  string   `json:"webhook_secret"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		PollTimeout   Duration `json:"poll_timeout"`
		RetryInterval Duration `json:"retry_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			AdminIDs:          jsonCfg.App.AdminIDs,
			ChunkSize:         jsonCfg.App.ChunkSize,
			CategoryPrefix:    jsonCfg.App.CategoryPrefix,
			CategorySeparator: jsonCfg.App.CategorySeparator,
			Version:           jsonCfg.App.Version,
			LogLevel:          jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			Roster: Roster{Path: jsonCfg.Storage.Roster.Path},
			UserLog: UserLog{
				Path:   jsonCfg.Storage.UserLog.Path,
				Driver: jsonCfg.Storage.UserLog.Driver,
				DSN:    jsonCfg.Storage.UserLog.DSN,
			},
			Archive: Archive{
				Endpoint:  jsonCfg.Storage.Archive.Endpoint,
				AccessKey: jsonCfg.Storage.Archive.AccessKey,
				SecretKey: jsonCfg.Storage.Archive.SecretKey,
				Bucket:    jsonCfg.Storage.Archive.Bucket,
				UseSSL:    jsonCfg.Storage.Archive.UseSSL,
			},
		},
		Adapter: Adapter{
			Token:          jsonCfg.Telegram.Token,
			BaseURL:        jsonCfg.Telegram.BaseURL,
			RequestTimeout: time.Duration(jsonCfg.Telegram.RequestTimeout),
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			WebhookURL:     jsonCfg.Server.WebhookURL,
			WebhookSecret:  jsonCfg.Server.WebhookSecret,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Workers: Workers{
			PollTimeout:   time.Duration(jsonCfg.Workers.PollTimeout),
			RetryInterval: time.Duration(jsonCfg.Workers.RetryInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as raw nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
