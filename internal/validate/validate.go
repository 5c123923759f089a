package validate

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

var reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 254 {
		return s, false
	}
	return s, reEmail.MatchString(s)
}

// Name trims a display name and caps it at 64 bytes.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) > 64 {
		return s[:64], false
	}
	return s, true
}

// ItemID accepts a JSON number or numeric string naming a cart slot (>= 0).
func ItemID(n json.Number) (int, bool) {
	s := strings.TrimSpace(n.String())
	if s == "" {
		return 0, false
	}
	id, err := strconv.Atoi(s)
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}

// ProductID parses a catalog id, which starts at 1.
func ProductID(n json.Number) (int, bool) {
	id, ok := ItemID(n)
	return id, ok && id > 0
}
