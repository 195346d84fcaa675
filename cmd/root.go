package cmd

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "curatord",
	Short: "curatord cli",
	Long:  `curatord reconciles a media library's collections and subscriptions against TMDb and a downloader backend`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
}

// initConfig sets viper configurations and default values
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}

	viper.SetEnvPrefix("CURATORD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	viper.SetDefault("tmdb.scheme", "https")
	viper.SetDefault("tmdb.host", "api.themoviedb.org")
	viper.SetDefault("tmdb.apikey", "")

	viper.SetDefault("emby.scheme", "http")
	viper.SetDefault("emby.host", "localhost:8096")
	viper.SetDefault("emby.apikey", "")

	viper.SetDefault("downloader.scheme", "http")
	viper.SetDefault("downloader.host", "localhost:3000")
	viper.SetDefault("downloader.apikey", "")

	viper.SetDefault("storage.filepath", "curatord.db")

	viper.SetDefault("server.port", 8080)

	viper.SetDefault("jobs.libraryindex", "1h")
	viper.SetDefault("jobs.collectionreconcile", "30m")
	viper.SetDefault("jobs.actortracking", "6h")
	viper.SetDefault("jobs.autosubscribe", "15m")
	viper.SetDefault("jobs.cleanupperiod", "24h")
	viper.SetDefault("jobs.minjobstokeep", 50)
	viper.SetDefault("jobs.workercap", 5)
	viper.SetDefault("jobs.actorsubscribedelay", "2s")

	viper.SetDefault("listimport.cachedir", "./cache/maoyan")
	viper.SetDefault("listimport.cachettl", "12h")
	viper.SetDefault("listimport.fetchtimeout", "30s")

	if cfgFile != "" {
		if err := viper.ReadInConfig(); err != nil {
			log.Println("no config file found, relying on env vars and defaults:", err)
		}
	}
}
