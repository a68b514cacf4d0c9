package cmd

import (
	"errors"
	"log"

	"github.com/spigell/internmatch/internal/filtering"
	"github.com/spigell/internmatch/internal/ranking"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "internmatch"
)

type Config struct {
	Catalog    string              `mapstructure:"catalog"`
	Resume     string              `mapstructure:"resume"`
	Profile    *ProfileConfig      `mapstructure:"profile"`
	Vocabulary *VocabularyConfig   `mapstructure:"vocabulary"`
	Weights    *ranking.Weights    `mapstructure:"weights"`
	Recommend  *RecommendConfig    `mapstructure:"recommend"`
	Filters    *filtering.Criteria `mapstructure:"filters"`
	Page       *PageConfig         `mapstructure:"page"`
}

// ProfileConfig overrides fields of the extracted profile. A non-zero value
// replaces the extracted one; the override never mutates the extracted
// profile, it produces a new one.
type ProfileConfig struct {
	Skills            []string `mapstructure:"skills"`
	Location          string   `mapstructure:"location"`
	ExperienceYears   int      `mapstructure:"experience-years"`
	EducationLevel    string   `mapstructure:"education-level"`
	PreferredCategory string   `mapstructure:"preferred-category"`
}

// VocabularyConfig replaces the built-in extraction vocabularies.
type VocabularyConfig struct {
	Skills    []string `mapstructure:"skills"`
	Locations []string `mapstructure:"locations"`
	Degrees   []string `mapstructure:"degrees"`
}

type RecommendConfig struct {
	TopLocal   int `mapstructure:"top-local"`
	TopOverall int `mapstructure:"top-overall"`
	Limit      int `mapstructure:"limit"`
}

type PageConfig struct {
	Size   int `mapstructure:"size"`
	Number int `mapstructure:"number"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "internmatch is a simple cli for matching a resume against an internship catalog",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("catalog", "INTERNMATCH_CATALOG"); err != nil {
		log.Fatalf("binding INTERNMATCH_CATALOG environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is internmatch.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Config needed only for run command now. If there is no config, we can skip initialization
	if runCmd.CalledAs() == "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// We can't proceed if the config file parsed with error. A missing
	// default config is fine: flags and environment can carry the setup.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
