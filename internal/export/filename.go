package export

import (
	"fmt"
	"time"
)

const filenameBase = "films_cdi"

// Filename builds a timestamped export filename such as
// "films_cdi_20260826_153000.csv".
func Filename(extension string, now time.Time) string {
	return fmt.Sprintf("%s_%s.%s", filenameBase, now.Format("20060102_150405"), extension)
}
