package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON field tags and
// string-friendly duration parsing. It exists so that the JSON file format
// can evolve independently from the env/flag field layout.
type StructuredJSONConfig struct {
	Auth struct {
		SecretKey                string `json:"secret_key"`
		Algorithm                string `json:"algorithm"`
		TokenIssuer              string `json:"token_issuer"`
		AccessTokenExpireMinutes int    `json:"access_token_expire_minutes"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Mailer struct {
		BaseURL string   `json:"base_url"`
		Timeout Duration `json:"timeout"`
	} `json:"mailer,omitempty"`

	Workers struct {
		HashWorkers   int `json:"hash_workers"`
		MailQueueSize int `json:"mail_queue_size"`
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
		Auth: Auth{
			SecretKey:                jsonCfg.Auth.SecretKey,
			Algorithm:                jsonCfg.Auth.Algorithm,
			TokenIssuer:              jsonCfg.Auth.TokenIssuer,
			AccessTokenExpireMinutes: jsonCfg.Auth.AccessTokenExpireMinutes,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Mailer: Mailer{
			BaseURL: jsonCfg.Mailer.BaseURL,
			Timeout: time.Duration(jsonCfg.Mailer.Timeout),
		},
		Workers: Workers{
			HashWorkers:   jsonCfg.Workers.HashWorkers,
			MailQueueSize: jsonCfg.Workers.MailQueueSize,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
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
