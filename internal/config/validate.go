package config

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/backmassage/splitmux/internal/errors"
)

var validate = validator.New()

// Validate checks struct-level constraints (mode, color mode, tool names,
// extension shape) and the mode-specific rules. Call it after Resolve.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	if c.Mode == ModeEpisodes {
		if c.OnlyChapters != "" {
			return apperrors.Validationf("--only-chapters is only valid for chapter splitting")
		}
		if err := c.ValidatePaths(c.Input, c.OutputDir); err != nil {
			return err
		}
	}
	return nil
}

// ValidatePaths ensures the output directory is not inside (or equal to)
// the input directory, which would make discovery pick up its own output
// and let ffmpeg overwrite its inputs. Both arguments must be absolute.
func (c *Config) ValidatePaths(inputAbs, outputAbs string) error {
	sep := string(filepath.Separator)
	if outputAbs == inputAbs || strings.HasPrefix(outputAbs+sep, inputAbs+sep) {
		return apperrors.Validationf("output directory %s must not be inside input directory %s", outputAbs, inputAbs)
	}
	return nil
}

func formatValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !apperrors.As(err, &fieldErrs) {
		return apperrors.Validationf("invalid configuration").WithCause(err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, friendlyMessage(fe))
	}
	sort.Strings(msgs)
	return apperrors.Validationf("invalid configuration: %s", strings.Join(msgs, "; "))
}

func friendlyMessage(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return field + " must be one of: " + fe.Param()
	case "excludesall":
		return field + " must not contain path separators"
	default:
		return field + " failed " + fe.Tag()
	}
}
