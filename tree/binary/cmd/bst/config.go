package main

import (
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"

	"go.lepak.sg/ordtree/tree/binary"
)

// EnvPrefix is the prefix of environment variables overriding the
// configuration, e.g. BST_LOG_LEVEL=debug or BST_QUERIES=1,2,3.
const EnvPrefix = "BST_"

var ErrConfiguration = errors.New("invalid configuration")

type LogConfig struct {
	Level  string `koanf:"level"  validate:"oneof=trace debug info warn error fatal panic disabled"`
	Format string `koanf:"format" validate:"oneof=text json"`
}

type Config struct {
	Log LogConfig `koanf:"log"`
	// Queries are looked up after loading
	Queries []int `koanf:"queries"`
	// Workers bounds how many input files are parsed at once
	Workers int    `koanf:"workers" validate:"min=1,max=64"`
	Indent  string `koanf:"indent"`
}

func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		Queries: []int{42, 19},
		Workers: 4,
		Indent:  binary.DefaultIndent,
	}
}

// LoadConfig layers the defaults, the YAML file (if configFile is
// not empty) and BST_* environment variables, in that order.
func LoadConfig(configFile string) (Config, error) {
	parser := koanf.New(".")

	if err := parser.Load(structs.Provider(DefaultConfig(), "koanf"), nil); err != nil {
		return Config{}, errors.Wrap(err, "loading defaults")
	}

	if len(configFile) != 0 {
		raw, err := os.ReadFile(configFile)
		if err != nil {
			return Config{}, errors.Wrapf(err, "reading config file %s", configFile)
		}

		if err := parser.Load(rawbytes.Provider(raw), yaml.Parser()); err != nil {
			return Config{}, errors.Wrapf(ErrConfiguration, "parsing %s: %v", configFile, err)
		}
	}

	if err := parser.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key, val string) (string, any) {
			key = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(key, EnvPrefix)), "_", ".")
			if key == "queries" {
				return key, strings.FieldsFunc(val, func(r rune) bool {
					return r == ',' || r == ' '
				})
			}

			return key, val
		},
	}), nil); err != nil {
		return Config{}, errors.Wrap(err, "loading environment")
	}

	// decode into a zero value: mapstructure would otherwise keep the
	// tail of a default slice that is longer than the configured one
	var cfg Config
	if err := parser.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}); err != nil {
		return Config{}, errors.Wrapf(ErrConfiguration, "decoding: %v", err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := validate.Struct(c); err != nil {
		return errors.Wrapf(ErrConfiguration, "%v", err)
	}

	return nil
}
