// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] as it appears in the JSON
// configuration file.
type StructuredJSONConfig struct {
	App struct {
		ServerSecret     string   `json:"server_secret"`
		TokenIssuer      string   `json:"token_issuer"`
		TokenAudience    string   `json:"token_audience"`
		TokenDuration    Duration `json:"token_duration"`
		CookieName       string   `json:"cookie_name"`
		CookieInsecure   bool     `json:"cookie_insecure"`
		TOTPIssuer       string   `json:"totp_issuer"`
		MinPasswordScore int      `json:"min_password_score"`
		LogLevel         string   `json:"log_level"`
		Version          string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		KDFConcurrency int `json:"kdf_concurrency"`
		KDFQueueSize   int `json:"kdf_queue_size"`
	} `json:"workers,omitempty"`

	Crypto struct {
		HashTime      uint32 `json:"hash_time"`
		HashMemoryKiB uint32 `json:"hash_memory_kib"`
		HashThreads   uint8  `json:"hash_threads"`
		WrapTime      uint32 `json:"wrap_time"`
		WrapMemoryKiB uint32 `json:"wrap_memory_kib"`
		WrapThreads   uint8  `json:"wrap_threads"`
	} `json:"crypto,omitempty"`
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
			ServerSecret:     jsonCfg.App.ServerSecret,
			TokenIssuer:      jsonCfg.App.TokenIssuer,
			TokenAudience:    jsonCfg.App.TokenAudience,
			TokenDuration:    time.Duration(jsonCfg.App.TokenDuration),
			CookieName:       jsonCfg.App.CookieName,
			CookieInsecure:   jsonCfg.App.CookieInsecure,
			TOTPIssuer:       jsonCfg.App.TOTPIssuer,
			MinPasswordScore: jsonCfg.App.MinPasswordScore,
			LogLevel:         jsonCfg.App.LogLevel,
			Version:          jsonCfg.App.Version,
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
		Workers: Workers{
			KDFConcurrency: jsonCfg.Workers.KDFConcurrency,
			KDFQueueSize:   jsonCfg.Workers.KDFQueueSize,
		},
		Crypto: Crypto{
			HashTime:      jsonCfg.Crypto.HashTime,
			HashMemoryKiB: jsonCfg.Crypto.HashMemoryKiB,
			HashThreads:   jsonCfg.Crypto.HashThreads,
			WrapTime:      jsonCfg.Crypto.WrapTime,
			WrapMemoryKiB: jsonCfg.Crypto.WrapMemoryKiB,
			WrapThreads:   jsonCfg.Crypto.WrapThreads,
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
