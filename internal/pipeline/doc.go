// Package pipeline lists a folder, plans renames, and executes them one file
// at a time, writing a progress line per rename.
//
// Types:
//   - Rename (one planned move: index, old path, new path, size)
//   - RunStats (Total, Current, Renamed, Missing, Bytes)
//
// Functions:
//   - List(folder) → entries in directory enumeration order (unsorted)
//   - Match(entries, ext) → names ending with ext, same order
//   - Plan(cfg) / PlanRange(cfg) → []Rename
//   - Execute(ctx, cfg, log, out, plan) → RunStats, error
//   - Run(ctx, cfg, log, out) / RunRange(...) → Plan + Execute
//
// The list is computed once; nothing is re-listed while renames proceed.
// Any rename failure aborts the run and leaves earlier renames in place.
package pipeline
