// Package config registers every setting with its default and loads overrides from
// the TOML file in the config directory and from TTYGIF_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/ttygif/ttygif/constant"
	"github.com/ttygif/ttygif/filesystem"
	"github.com/ttygif/ttygif/key"
	"github.com/ttygif/ttygif/where"
)

// EnvKeyReplacer maps a key such as capture.font_size to the CAPTURE_FONT_SIZE suffix of its variable.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup applies defaults, binds the environment and reads the config file if there is one.
func Setup() error {
	viper.SetConfigName(constant.App)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	bindEnv()
	setDefaults()

	var notFound viper.ConfigFileNotFoundError
	if err := viper.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
		return fmt.Errorf("read config: %w", err)
	}

	return nil
}

func bindEnv() {
	viper.SetEnvPrefix(constant.App)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}
}

func setDefaults() {
	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}
}

// Validate checks the settings that cannot be corrected later, once files and flags are merged.
func Validate() error {
	var errs []error

	if factor := viper.GetInt(key.PlayerFactor); factor < 1 {
		errs = append(errs, fmt.Errorf("%s must be a positive integer, got %d", key.PlayerFactor, factor))
	}

	if order := strings.ToLower(viper.GetString(key.TtyrecByteOrder)); !lo.Contains([]string{"little", "le", "big", "be", ""}, order) {
		errs = append(errs, fmt.Errorf("%s must be little or big, got %q", key.TtyrecByteOrder, order))
	}

	if factor := viper.GetInt(key.EncoderPTSFactor); factor < 1 {
		errs = append(errs, fmt.Errorf("%s must be a positive integer, got %d", key.EncoderPTSFactor, factor))
	}

	if viper.GetInt(key.CaptureCols) < 0 || viper.GetInt(key.CaptureRows) < 0 {
		errs = append(errs, fmt.Errorf("%s and %s cannot be negative", key.CaptureCols, key.CaptureRows))
	}

	return errors.Join(errs...)
}
