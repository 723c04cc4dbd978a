package workspace

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)
	percentEscape   = regexp.MustCompile(`%[0-9A-Fa-f]{2}`)
)

// displayName derives an index display name from a file path: the file
// name without its extension.
func displayName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// fileNameForSave turns a user-provided request name into a filename stem,
// replacing each non-alphanumeric character with "-". Runs are not
// collapsed and dashes are not trimmed, so a non-empty name always yields
// a non-empty, non-hidden stem. Synthesized default names ("New Request
// N") bypass this and are used verbatim.
func fileNameForSave(name string) string {
	return nonAlphanumeric.ReplaceAllString(name, "-")
}

// defaultRequestName synthesizes the name used when the user saved with an
// empty one.
func defaultRequestName(existingEntries int) string {
	return fmt.Sprintf("New Request %d", existingEntries+1)
}

// sanitizeRename strips percent-escape artifacts and path separators from
// a rename target. An empty result means the rename must be refused.
func sanitizeRename(name string) string {
	name = percentEscape.ReplaceAllString(name, "")
	name = strings.NewReplacer("/", "", "\\", "", "%", "").Replace(name)
	return strings.TrimSpace(name)
}
