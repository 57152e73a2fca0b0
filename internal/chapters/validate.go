package chapters

import (
	"fmt"
	"strings"
)

// validateChapters performs all structural checks on the catalogue.
// Returns a combined error describing all problems found, or nil if valid.
func validateChapters(chs []Chapter) error {
	var errs []string

	if len(chs) == 0 {
		errs = append(errs, "catalogue is empty")
	}

	ids := make(map[string]bool, len(chs))
	for i, c := range chs {
		if c.ID == "" {
			errs = append(errs, fmt.Sprintf("chapter #%d has no ID", i+1))
		}
		if ids[c.ID] {
			errs = append(errs, fmt.Sprintf("duplicate chapter ID: %q", c.ID))
		}
		ids[c.ID] = true

		if c.Number != i+1 {
			errs = append(errs, fmt.Sprintf("chapter %q: number %d, want %d", c.ID, c.Number, i+1))
		}
		if !c.Title.Complete() {
			errs = append(errs, fmt.Sprintf("chapter %q: title not translated", c.ID))
		}
		if !c.Summary.Complete() {
			errs = append(errs, fmt.Sprintf("chapter %q: summary not translated", c.ID))
		}
		if len(c.Sections) == 0 {
			errs = append(errs, fmt.Sprintf("chapter %q: no sections", c.ID))
		}
		for j, s := range c.Sections {
			if !s.Heading.Complete() || !s.Body.Complete() {
				errs = append(errs, fmt.Sprintf("chapter %q section %d: not translated", c.ID, j+1))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("chapter catalogue validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// Validate checks the built-in catalogue.
func Validate() error {
	return validateChapters(catalogue)
}
