package airtable

import (
	"fmt"
	"strings"
)

// Eq matches a text or single-select field exactly.
func Eq(field, value string) string {
	return fmt.Sprintf(`{%s} = "%s"`, field, escape(value))
}

// IsTrue matches a checkbox field that is ticked.
func IsTrue(field string) string {
	return fmt.Sprintf("{%s} = TRUE()", field)
}

// LinkContains matches records whose link field includes id.
func LinkContains(field, id string) string {
	return fmt.Sprintf(`FIND("%s", ARRAYJOIN({%s}))`, escape(id), field)
}

// And conjoins conditions, skipping empty ones. It returns "" for no
// conditions and the bare condition when there is only one.
func And(conditions ...string) string {
	var kept []string
	for _, c := range conditions {
		if c != "" {
			kept = append(kept, c)
		}
	}
	switch len(kept) {
	case 0:
		return ""
	case 1:
		return kept[0]
	}
	return "AND(" + strings.Join(kept, ", ") + ")"
}

func escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
