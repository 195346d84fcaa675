package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	TMDB       TMDB       `json:"tmdb" yaml:"tmdb" mapstructure:"tmdb"`
	Emby       Emby       `json:"emby" yaml:"emby" mapstructure:"emby"`
	Downloader Downloader `json:"downloader" yaml:"downloader" mapstructure:"downloader"`
	Storage    Storage    `json:"storage" yaml:"storage" mapstructure:"storage"`
	Server     Server     `json:"server" yaml:"server" mapstructure:"server"`
	Jobs       Jobs       `json:"jobs" yaml:"jobs" mapstructure:"jobs"`
	ListImport ListImport `json:"listImport" yaml:"listImport" mapstructure:"listImport"`
}

type TMDB struct {
	Scheme string `json:"scheme" yaml:"scheme" mapstructure:"scheme"`
	Host   string `json:"host" yaml:"host" mapstructure:"host"`
	APIKey string `json:"apiKey" yaml:"apiKey" mapstructure:"apiKey"`
}

// Emby configuration points at a Jellyfin/Emby compatible media server.
type Emby struct {
	Scheme string `json:"scheme" yaml:"scheme" mapstructure:"scheme"`
	Host   string `json:"host" yaml:"host" mapstructure:"host"`
	APIKey string `json:"apiKey" yaml:"apiKey" mapstructure:"apiKey"`
}

// Downloader configuration points at a MoviePilot-compatible subscription service.
type Downloader struct {
	Scheme string `json:"scheme" yaml:"scheme" mapstructure:"scheme"`
	Host   string `json:"host" yaml:"host" mapstructure:"host"`
	APIKey string `json:"apiKey" yaml:"apiKey" mapstructure:"apiKey"`
}

type Server struct {
	Port int `json:"port" yaml:"port" mapstructure:"port"`
}

// Storage configuration is assumed to be for sqlite database only currently
type Storage struct {
	FilePath string `json:"filePath" yaml:"filePath" mapstructure:"filePath"`
}

// Jobs configures the scheduling interval and concurrency caps the task orchestrator uses.
type Jobs struct {
	LibraryIndex        time.Duration `json:"libraryIndex" yaml:"libraryIndex" mapstructure:"libraryIndex"`
	CollectionReconcile time.Duration `json:"collectionReconcile" yaml:"collectionReconcile" mapstructure:"collectionReconcile"`
	ActorTracking       time.Duration `json:"actorTracking" yaml:"actorTracking" mapstructure:"actorTracking"`
	AutoSubscribe       time.Duration `json:"autoSubscribe" yaml:"autoSubscribe" mapstructure:"autoSubscribe"`
	CleanupPeriod       time.Duration `json:"cleanupPeriod" yaml:"cleanupPeriod" mapstructure:"cleanupPeriod"`
	MinJobsToKeep       int           `json:"minJobsToKeep" yaml:"minJobsToKeep" mapstructure:"minJobsToKeep"`
	WorkerCap           int           `json:"workerCap" yaml:"workerCap" mapstructure:"workerCap"`
	ActorSubscribeDelay time.Duration `json:"actorSubscribeDelay" yaml:"actorSubscribeDelay" mapstructure:"actorSubscribeDelay"`
}

// ListImport configures the maoyan:// platform fetcher cache and the fetcher's HTTP client timeout.
type ListImport struct {
	CacheDir     string        `json:"cacheDir" yaml:"cacheDir" mapstructure:"cacheDir"`
	CacheTTL     time.Duration `json:"cacheTTL" yaml:"cacheTTL" mapstructure:"cacheTTL"`
	FetchTimeout time.Duration `json:"fetchTimeout" yaml:"fetchTimeout" mapstructure:"fetchTimeout"`
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

// New reads a new configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	err := cu.Unmarshal(&c)
	return c, err
}
