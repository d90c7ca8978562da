package stripscheduler

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"
	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
)

// Config holds run settings read from a TOML file. Zero StripWidth means the
// width has to come from the command line. Algorithm, when set, lets the task
// file be given without a mode.
type Config struct {
	Algorithm    string `toml:"algorithm"`
	ScheduleFile string `toml:"schedule_file" valid:"required"`
	OutputDir    string `toml:"output_dir" valid:"required"`

	StripWidth int    `toml:"strip_width"`
	Seed       uint64 `toml:"seed"`
}

func DefaultConfig() *Config {
	return &Config{
		ScheduleFile: DefaultScheduleFile,
		OutputDir:    ".",
	}
}

func (c *Config) IsValid() error {
	if _, errValidation := govalidator.ValidateStruct(c); errValidation != nil {
		return goerrors.ErrServiceValidation{
			ServiceName: "Config",
			Caller:      "IsValid",
			Issue:       errValidation,
		}
	}

	if c.StripWidth < 0 {
		return goerrors.ErrServiceValidation{
			ServiceName: "Config",
			Caller:      "IsValid",
			Issue: goerrors.ErrNegativeInput{
				InputName: "strip_width",
			},
		}
	}

	if len(c.Algorithm) > 0 {
		switch ParseMode(c.Algorithm) {
		case ModeNFDH, ModeFFDH, ModeCompare:

		default:
			return goerrors.ErrServiceValidation{
				ServiceName: "Config",
				Caller:      "IsValid",
				Issue: goerrors.ErrInvalidInput{
					InputName:  "algorithm",
					InputValue: c.Algorithm,
					Issue: errors.New(
						"expected one of NFDH, FFDH, COMPARE",
					),
				},
			}
		}
	}

	return nil
}

// LoadConfig overlays the file at path on DefaultConfig. Unknown keys are rejected.
func LoadConfig(path string) (*Config, error) {
	result := DefaultConfig()

	meta, errDecode := toml.DecodeFile(path, result)
	if errDecode != nil {
		var errPath *fs.PathError
		if errors.As(errDecode, &errPath) {
			return nil,
				&ErrIOFailure{
					Operation: "read",
					Path:      path,
					Issue:     errDecode,
				}
		}

		return nil,
			fmt.Errorf("config %s: %w", path, errDecode)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))

		for ix, key := range undecoded {
			keys[ix] = key.String()
		}

		return nil,
			fmt.Errorf(
				"config %s: unknown keys: %s",

				path,
				strings.Join(keys, ", "),
			)
	}

	if errValidation := result.IsValid(); errValidation != nil {
		return nil,
			errValidation
	}

	return result,
		nil
}
