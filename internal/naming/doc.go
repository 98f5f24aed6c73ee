// Package naming builds target filenames, orders directory listings before
// indices are assigned, and detects planned renames that would replace an
// existing entry.
//
// Nothing here touches the filesystem: callers pass plain base names.
package naming
