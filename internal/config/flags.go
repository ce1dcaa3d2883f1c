package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-endpoint backend platform base URL
//	-project backend project identifier
//	-platform client platform identifier
//	-database-id document database identifier
//	-user-collection-id User profile collection identifier
//	-video-collection-id video Post collection identifier
//	-bucket-id storage bucket identifier
//	-request-timeout backend request timeout (e.g., "15s", "1m")
//	-local-db local cache database file path
//	-refresh-interval background feed refresh interval (e.g., "5m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var endpoint string
	var projectID string
	var platform string
	var databaseID string
	var userCollectionID string
	var videoCollectionID string
	var bucketID string
	var requestTimeout time.Duration
	var localDBPath string
	var refreshInterval time.Duration
	var jsonConfigPath string

	flag.StringVar(&endpoint, "endpoint", "", "Backend platform base URL")
	flag.StringVar(&projectID, "project", "", "Backend project identifier")
	flag.StringVar(&platform, "platform", "", "Client platform identifier")
	flag.StringVar(&databaseID, "database-id", "", "Document database identifier")
	flag.StringVar(&userCollectionID, "user-collection-id", "", "User profile collection identifier")
	flag.StringVar(&videoCollectionID, "video-collection-id", "", "Video post collection identifier")
	flag.StringVar(&bucketID, "bucket-id", "", "Storage bucket identifier")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Backend request timeout (e.g., 15s, 1m)")
	flag.StringVar(&localDBPath, "local-db", "", "Local cache database file path")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Feed refresh interval (e.g., 5m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Backend: Backend{
			Endpoint:          endpoint,
			ProjectID:         projectID,
			Platform:          platform,
			DatabaseID:        databaseID,
			UserCollectionID:  userCollectionID,
			VideoCollectionID: videoCollectionID,
			StorageBucketID:   bucketID,
			RequestTimeout:    requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				Path: localDBPath,
			},
		},
		Workers: Workers{
			RefreshInterval: refreshInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
