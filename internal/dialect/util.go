package dialect

import "strings"

// DefaultNormalizeExtra folds the vendor auto-increment spellings
// (auto_increment, identity, nextval sequences) onto the model's single
// AUTO_INCREMENT marker.
func DefaultNormalizeExtra(extra string) string {
	e := strings.ToLower(extra)
	if strings.Contains(e, "auto_increment") ||
		strings.Contains(e, "identity") ||
		strings.Contains(e, "nextval") {
		return "AUTO_INCREMENT"
	}
	return ""
}
