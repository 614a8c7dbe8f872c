package backend

import (
	"fmt"
	"strconv"
	"strings"
)

// Millis is a milliseconds-since-epoch column. The table API returns bigint
// columns as JSON numbers or as quoted strings depending on the driver, so
// unmarshalling accepts both.
type Millis int64

func (m *Millis) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*m = 0
		return nil
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		*m = Millis(v)
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("backend: timestamp %q is not numeric", s)
	}
	*m = Millis(int64(f))
	return nil
}

func (m Millis) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(m), 10)), nil
}
