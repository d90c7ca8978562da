package stripscheduler

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
)

// ParamsGenerate bounds are exclusive: widths fall in [1, MaxWidth),
// durations in [1, MaxDuration).
type ParamsGenerate struct {
	Count       int `valid:"required"`
	MaxWidth    int `valid:"required"`
	MaxDuration int `valid:"required"`
}

func (params *ParamsGenerate) IsValid() error {
	if _, errValidation := govalidator.ValidateStruct(params); errValidation != nil {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsGenerate",
			Issue:  errValidation,
		}
	}

	if params.Count < 0 {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsGenerate",
			Issue: goerrors.ErrNegativeInput{
				InputName: "Count",
			},
		}
	}

	if params.MaxWidth < 2 {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsGenerate",
			Issue: goerrors.ErrInvalidInput{
				InputName:  "MaxWidth",
				InputValue: params.MaxWidth,
			},
		}
	}

	if params.MaxDuration < 2 {
		return goerrors.ErrValidation{
			Caller: "IsValid - ParamsGenerate",
			Issue: goerrors.ErrInvalidInput{
				InputName:  "MaxDuration",
				InputValue: params.MaxDuration,
			},
		}
	}

	return nil
}

func GenerateRecords(params *ParamsGenerate, rng *rand.Rand) ([]TaskRecord, error) {
	if errValidation := params.IsValid(); errValidation != nil {
		return nil,
			errValidation
	}

	result := make([]TaskRecord, params.Count)

	for ix := range result {
		result[ix] = TaskRecord{
			Width:    rng.IntN(params.MaxWidth-1) + 1,
			Duration: rng.IntN(params.MaxDuration-1) + 1,
		}
	}

	return result,
		nil
}

func GeneratedFileName(count int) string {
	return fmt.Sprintf("tasks%d.txt", count)
}

// GenerateFile writes generated records to GeneratedFileName in dir
// and returns the path written.
func GenerateFile(dir string, params *ParamsGenerate, rng *rand.Rand) (string, error) {
	records, errGenerate := GenerateRecords(params, rng)
	if errGenerate != nil {
		return "",
			errGenerate
	}

	path := filepath.Join(dir, GeneratedFileName(params.Count))

	f, errCr := os.Create(path)
	if errCr != nil {
		return "",
			&ErrIOFailure{
				Operation: "create",
				Path:      path,
				Issue:     errCr,
			}
	}

	if errWrite := WriteTaskRecords(f, records); errWrite != nil {
		_ = f.Close()

		return "",
			&ErrIOFailure{
				Operation: "write",
				Path:      path,
				Issue:     errWrite,
			}
	}

	if errClose := f.Close(); errClose != nil {
		return "",
			&ErrIOFailure{
				Operation: "close",
				Path:      path,
				Issue:     errClose,
			}
	}

	return path,
		nil
}

// NewRand seeds a generator; a zero seed draws one at random.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}

	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
