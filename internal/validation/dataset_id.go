// Package validation provides input validation for the dataset API.
package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// A dataset id is a bare file name, optionally with the .zip suffix.
	v.RegisterValidation("dataset_id", func(fl validator.FieldLevel) bool {
		id := fl.Field().String()
		if id == "" || len(id) > 255 {
			return false
		}
		if strings.ContainsAny(id, "/\\") || strings.Contains(id, "..") {
			return false
		}
		return true
	})
	return v
}

// DatasetID validates a dataset identifier as supplied in the download URL.
func DatasetID(id string) error {
	if err := validate.Var(id, "dataset_id"); err != nil {
		return fmt.Errorf("invalid dataset id %q", id)
	}
	return nil
}

// NormalizeDatasetID maps a dataset id onto its archive file name, appending
// the .zip suffix when absent.
func NormalizeDatasetID(id string) string {
	if strings.HasSuffix(strings.ToLower(id), ".zip") {
		return id
	}
	return id + ".zip"
}
