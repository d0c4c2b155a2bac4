package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/hiring-portal/internal/hiring"
	"github.com/spigell/hiring-portal/internal/session"
)

const (
	app = "hiring-portal"

	outputText = "text"
	outputJSON = "json"
)

type Config struct {
	APIURL      string          `mapstructure:"api-url" validate:"required,url"`
	UserAgent   string          `mapstructure:"user-agent"`
	Timeout     time.Duration   `mapstructure:"timeout" validate:"gt=0"`
	SessionFile string          `mapstructure:"session-file"`
	Output      string          `mapstructure:"output" validate:"oneof=text json"`
	Progress    *ProgressConfig `mapstructure:"progress" validate:"required"`
	Metrics     *MetricsConfig  `mapstructure:"metrics"`
}

type ProgressConfig struct {
	Interval time.Duration `mapstructure:"interval" validate:"gt=0"`
	Cap      float64       `mapstructure:"cap" validate:"gt=0,lt=100"`
}

type MetricsConfig struct {
	// Textfile is written after every command when set.
	Textfile string `mapstructure:"textfile"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:           app,
		Short:         "hiring-portal is a cli for matching resumes against jobs and ranking candidates",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute executes the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	for key, env := range map[string]string{
		"api-url":          "HIRING_API_URL",
		"session-file":     "HIRING_SESSION_FILE",
		"metrics.textfile": "HIRING_METRICS_TEXTFILE",
	} {
		if err := viper.BindEnv(key, env); err != nil {
			log.Fatalf("binding %s environment variable: %v", env, err)
		}
	}

	viper.SetDefault("api-url", hiring.DefaultAPIURL)
	viper.SetDefault("timeout", 60*time.Second)
	viper.SetDefault("output", outputText)
	viper.SetDefault("progress.interval", 300*time.Millisecond)
	viper.SetDefault("progress.cap", 90)

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is hiring-portal.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().StringP("output", "o", outputText, "result format: text or json")
	rootCmd.PersistentFlags().String("api-url", "", "base url of the hiring service")
	rootCmd.PersistentFlags().Bool("guest", false, "browse a candidate or recruiter area as a guest without submitting")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("api-url", rootCmd.PersistentFlags().Lookup("api-url"))
	viper.BindPFlag("guest", rootCmd.PersistentFlags().Lookup("guest"))
}

// initConfig reads the config file. Unlike an explicit --config, the default
// file is optional.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		// We can't proceed if the config file parsed with error.
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if config == nil {
		return nil, errors.New("config is empty")
	}

	if config.SessionFile == "" {
		path, err := session.DefaultPath()
		if err != nil {
			return nil, err
		}
		config.SessionFile = path
	}

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}
