package config

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	vlerrors "github.com/alexisbeaulieu97/vlightbox/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	versionPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return versionPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("image_src", func(fl validator.FieldLevel) bool {
			return isImageSource(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateManifest performs schema and cross-field validation.
func ValidateManifest(m *Manifest) error {
	if m == nil {
		return vlerrors.NewValidationError("manifest", "manifest is nil", nil)
	}

	if err := validatorInstance().Struct(m); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(m.Images))
	for i, entry := range m.Images {
		id := strings.TrimSpace(string(entry.ID))
		if id == "" {
			continue
		}
		if first, exists := seen[id]; exists {
			return vlerrors.NewValidationError(
				fmt.Sprintf("images[%d].id", i),
				fmt.Sprintf("duplicate image id %q (first used by images[%d])", id, first),
				nil,
			)
		}
		seen[id] = i
	}

	return nil
}

// isImageSource accepts http(s) URLs with a host, archive entries
// ("archive.zip!entry.jpg") and plain filesystem paths.
func isImageSource(src string) bool {
	if strings.TrimSpace(src) == "" || strings.Contains(src, "\x00") {
		return false
	}
	if parsed, err := url.Parse(src); err == nil && parsed.Scheme != "" && len(parsed.Scheme) > 1 {
		scheme := strings.ToLower(parsed.Scheme)
		switch scheme {
		case "http", "https":
			return parsed.Host != ""
		case "file":
			return parsed.Path != ""
		default:
			return false
		}
	}
	return true
}

func convertValidationError(err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		fe := ves[0]
		field := fieldName(fe)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag())
		return vlerrors.NewValidationError(field, msg, err)
	}
	return vlerrors.NewValidationError("manifest", err.Error(), err)
}

// fieldName turns "Manifest.Images[1].Src" into "images[1].src".
func fieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}
