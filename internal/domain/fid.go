package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Fid is a Farcaster identifier. Older records and clients serialize it as a
// JSON string, newer ones as a number, so it accepts both on the way in and
// always marshals as a number.
type Fid int64

func (f Fid) String() string {
	return strconv.FormatInt(int64(f), 10)
}

// ParseFid parses a decimal fid from its string form.
func ParseFid(s string) (Fid, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid fid %q: %w", s, err)
	}

	return Fid(n), nil
}

func (f *Fid) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}

		parsed, err := ParseFid(str)
		if err != nil {
			return err
		}

		*f = parsed
		return nil
	}

	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid fid %s: %w", s, err)
	}

	*f = Fid(n)
	return nil
}
