package upload

import (
	"path"
	"strings"
	"time"
)

// timestampLayout is ISO-8601 in UTC with millisecond precision.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// StoredName returns the on-disk name of an upload: the UTC timestamp t with
// every ':' replaced by '-', a dash, and the base name of original.
//
//	StoredName("cat.png", t) == "2026-03-04T10-20-30.123Z-cat.png"
func StoredName(original string, t time.Time) string {
	ts := strings.ReplaceAll(t.UTC().Format(timestampLayout), ":", "-")
	return ts + "-" + baseName(original)
}

// baseName strips any client-supplied directory, including Windows-style
// paths, so that the stored file always lands in the upload directory.
func baseName(original string) string {
	name := path.Base(strings.ReplaceAll(original, `\`, "/"))
	if name == "." || name == "/" || name == ".." {
		return "upload"
	}
	return name
}
