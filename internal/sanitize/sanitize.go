// Package sanitize implements the deterministic identifier sanitizer that
// the datamodel access layer uses to turn user-authored model, field, and
// enum names into valid SQL identifiers.
//
// The rule (spec.md invariant 8): strip all leading non-letters, then
// replace every remaining character outside [_A-Za-z0-9] with an
// underscore. A name that was already valid is returned unchanged, with a
// nil database name override — the caller is expected to leave
// database_name unset in that case, matching the original
// sanitize_datamodel_names logic this package is grounded on.
package sanitize

import "regexp"

var (
	reLeadingNonLetters = regexp.MustCompile(`^[^a-zA-Z]+`)
	reInvalidChars      = regexp.MustCompile(`[^_a-zA-Z0-9]`)
)

// Name sanitizes a single declarative name and reports whether the
// original differed from the sanitized form.
//
// Example:
//
//	sanitized, dbName := sanitize.Name("2user!name")
//	// sanitized == "user_name", dbName == "2user!name"
func Name(name string) (sanitized string, databaseName *string) {
	needsSanitizing := reLeadingNonLetters.MatchString(name) || reInvalidChars.MatchString(name)
	if !needsSanitizing {
		return name, nil
	}

	stripped := reLeadingNonLetters.ReplaceAllString(name, "")
	cleaned := reInvalidChars.ReplaceAllString(stripped, "_")

	original := name
	return cleaned, &original
}
