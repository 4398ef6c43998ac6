package storage

import (
	"fmt"
	"strings"

	dErrors "uxstudy/pkg/domain-errors"
)

// schemaMismatch builds the conflict error returned when an append would
// violate a file's established header. Appending anyway would silently
// corrupt the tabular shape, so the store fails fast and names the
// disagreement instead.
func schemaMismatch(target string, have, got []string) error {
	return dErrors.New(dErrors.CodeConflict, fmt.Sprintf(
		"schema mismatch for %s: file header is [%s], record fields are [%s]",
		target, strings.Join(have, ", "), strings.Join(got, ", ")))
}
