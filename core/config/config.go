package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

var (
	//go:embed default/config.yaml
	defaultConfigData []byte
)

const (
	ConfigurationName = "config.yaml"

	// CdDefaultHome makes cd without arguments go to the user's home.
	CdDefaultHome = "home"

	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)

type Configuration struct {
	configFs  afero.Fs
	configDir string

	Welcome  string `json:"welcome"`
	Farewell string `json:"farewell"`

	Color       string `json:"color" validate:"oneof=always auto never"`
	PromptDepth int    `json:"prompt_depth" validate:"gte=1,lte=16"`

	CdDefault string `json:"cd_default" validate:"required,cd_default"`
	DebugLog  string `json:"debug_log"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})
	if err := validate.RegisterValidation("cd_default", validateCdDefault); err != nil {
		return err
	}

	return validate.Struct(c)
}

func validateCdDefault(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == CdDefaultHome || filepath.IsAbs(value)
}

func (c *Configuration) fs() afero.Fs {
	if c.configFs == nil {
		return afero.NewOsFs()
	}
	return c.configFs
}

// HomeDir returns the directory cd uses when called without arguments.
func (c *Configuration) HomeDir() (string, error) {
	if c.CdDefault == "" || c.CdDefault == CdDefaultHome {
		return os.UserHomeDir()
	}
	return c.CdDefault, nil
}

// UseColor reports whether output should be colored. isTerminal tells if
// the destination is a terminal and is only consulted in auto mode.
func (c *Configuration) UseColor(isTerminal bool) bool {
	switch c.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTerminal
	}
}

// OpenDebugLog opens the debug log in an append only state.
func (c *Configuration) OpenDebugLog() (afero.File, error) {
	path := c.DebugLog
	if !filepath.IsAbs(path) {
		path = filepath.Join(c.configDir, path)
	}
	return c.fs().OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

// Default returns the built-in configuration.
func Default() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
