package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Backend struct {
		Endpoint          string   `json:"endpoint"`
		ProjectID         string   `json:"project_id"`
		Platform          string   `json:"platform"`
		DatabaseID        string   `json:"database_id"`
		UserCollectionID  string   `json:"user_collection_id"`
		VideoCollectionID string   `json:"video_collection_id"`
		StorageBucketID   string   `json:"storage_bucket_id"`
		RequestTimeout    Duration `json:"request_timeout"`
	} `json:"backend,omitempty"`

	Storage struct {
		DB struct {
			Path string `json:"path"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		RefreshInterval Duration `json:"refresh_interval"`
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
		Backend: Backend{
			Endpoint:          jsonCfg.Backend.Endpoint,
			ProjectID:         jsonCfg.Backend.ProjectID,
			Platform:          jsonCfg.Backend.Platform,
			DatabaseID:        jsonCfg.Backend.DatabaseID,
			UserCollectionID:  jsonCfg.Backend.UserCollectionID,
			VideoCollectionID: jsonCfg.Backend.VideoCollectionID,
			StorageBucketID:   jsonCfg.Backend.StorageBucketID,
			RequestTimeout:    time.Duration(jsonCfg.Backend.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				Path: jsonCfg.Storage.DB.Path,
			},
		},
		Workers: Workers{
			RefreshInterval: time.Duration(jsonCfg.Workers.RefreshInterval),
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
