package naming

import (
	"fmt"
	"strconv"
)

// SequentialName returns prefix + index + ext, e.g. ("walking", 3, ".avi")
// gives "walking3.avi". ext is used verbatim and should carry its dot.
func SequentialName(prefix string, index int, ext string) string {
	return prefix + strconv.Itoa(index) + ext
}

// RangeName formats a single-%d pattern with n, e.g. ("video_%d.mp4", 7)
// gives "video_7.mp4".
func RangeName(pattern string, n int) string {
	return fmt.Sprintf(pattern, n)
}
