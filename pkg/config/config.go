package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path"
	"portfolio/pkg/constants"
	"strings"
	"sync"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// PortfolioConfigurations global configurations
type PortfolioConfigurations struct {
	LogLevel            string `json:"logLevel" yaml:"LogLevel" mapstructure:"LogLevel"`
	Host                string `json:"host" yaml:"Host" mapstructure:"Host"`
	Port                string `json:"port" yaml:"Port" mapstructure:"Port"`
	DbFilePath          string `json:"dbFilePath" yaml:"DbFilePath" mapstructure:"DbFilePath"`
	SiteDir             string `json:"siteDir" yaml:"SiteDir" mapstructure:"SiteDir"`
	TemplateDir         string `json:"templateDir,omitempty" yaml:"TemplateDir,omitempty" mapstructure:"TemplateDir"`
	SessionSecret       string `json:"-" yaml:"SessionSecret,omitempty" mapstructure:"SessionSecret"`
	ReadTimeoutSeconds  uint64 `json:"readTimeoutSeconds" yaml:"ReadTimeoutSeconds" mapstructure:"ReadTimeoutSeconds"`
	WriteTimeoutSeconds uint64 `json:"writeTimeoutSeconds" yaml:"WriteTimeoutSeconds" mapstructure:"WriteTimeoutSeconds"`
}

type PortfolioConfig interface {
	GetConfigurations() *PortfolioConfigurations
}

type portfolioConfig struct{}

func NewPortfolioConfig() PortfolioConfig {
	return &portfolioConfig{}
}

var cachedConfig *PortfolioConfigurations
var once sync.Once

// envKeys maps every configuration key to the suffix of its environment variable.
var envKeys = map[string]string{
	"LogLevel":            "LOG_LEVEL",
	"Host":                "HOST",
	"Port":                "PORT",
	"DbFilePath":          "DB_FILE_PATH",
	"SiteDir":             "SITE_DIR",
	"TemplateDir":         "TEMPLATE_DIR",
	"SessionSecret":       "SESSION_SECRET",
	"ReadTimeoutSeconds":  "READ_TIMEOUT_SECONDS",
	"WriteTimeoutSeconds": "WRITE_TIMEOUT_SECONDS",
}

// GetConfigurations returns the process wide configuration, loading it on first use
// from the working directory and the binary directory.
func (c *portfolioConfig) GetConfigurations() *PortfolioConfigurations {
	once.Do(func() {
		wd, err := os.Getwd()
		if err != nil {
			log.Fatalln(fmt.Errorf("fatal error getting working dir: %s", err))
		}

		configs, err := LoadConfigurations(afero.NewOsFs(), wd, GetBinPath())
		if err != nil {
			log.Fatalln(err)
		}
		cachedConfig = configs
	})

	return cachedConfig
}

// LoadConfigurations reads defaults, then the first config.yml found in searchPaths,
// then PORTFOLIO_* environment variables.
func LoadConfigurations(fs afero.Fs, searchPaths ...string) (*PortfolioConfigurations, error) {
	v := viper.New()
	v.SetFs(fs)
	setDefaults(v)

	for key, env := range envKeys {
		if err := v.BindEnv(key, fmt.Sprintf("%s_%s", constants.EnvPrefix, env)); err != nil {
			return nil, err
		}
	}

	v.SetConfigName(strings.TrimSuffix(constants.ConfigFileName, path.Ext(constants.ConfigFileName)))
	v.SetConfigType("yaml")
	for _, p := range searchPaths {
		v.AddConfigPath(p)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read %s: %w", constants.ConfigFileName, err)
		}
	}

	configs := PortfolioConfigurations{}
	if err := v.Unmarshal(&configs); err != nil {
		return nil, fmt.Errorf("failed to decode configurations: %w", err)
	}

	return &configs, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("LogLevel", "INFO")
	v.SetDefault("Host", "127.0.0.1")
	v.SetDefault("Port", "8000")
	v.SetDefault("DbFilePath", constants.DefaultSqliteDbFileName)
	v.SetDefault("SiteDir", ".")
	v.SetDefault("TemplateDir", "")
	v.SetDefault("SessionSecret", "")
	v.SetDefault("ReadTimeoutSeconds", 15)
	v.SetDefault("WriteTimeoutSeconds", 15)
}

func GetBinPath() string {
	e, err := os.Executable()
	if err != nil {
		log.Fatalln(err)
	}
	return path.Dir(e)
}
