package pipeline

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/backmassage/reseq/internal/config"
	"github.com/backmassage/reseq/internal/naming"
)

// Rename is one planned move inside the folder.
type Rename struct {
	Index   int
	OldPath string
	NewPath string
	Size    int64
	Missing bool // Range mode only: the source does not exist.
}

// Moves converts the existing sources of plan to base-name moves for
// [naming.FindCollisions].
func Moves(plan []Rename) []naming.Move {
	moves := make([]naming.Move, 0, len(plan))
	for _, r := range plan {
		if r.Missing {
			continue
		}
		moves = append(moves, naming.Move{From: filepath.Base(r.OldPath), To: filepath.Base(r.NewPath)})
	}
	return moves
}

// Plan lists cfg.Folder once and assigns cfg.Start, cfg.Start+1, ... to the
// entries ending with cfg.Extension, in cfg.Order.
func Plan(cfg *config.Config) ([]Rename, error) {
	entries, err := List(cfg.Folder)
	if err != nil {
		return nil, err
	}
	return planEntries(cfg, entries), nil
}

func planEntries(cfg *config.Config, entries []fs.DirEntry) []Rename {
	sizes := make(map[string]int64, len(entries))
	for _, e := range entries {
		if info, err := e.Info(); err == nil {
			sizes[e.Name()] = info.Size()
		}
	}

	names := Match(entries, cfg.Extension)
	naming.Sort(names, cfg.Order)

	plan := make([]Rename, 0, len(names))
	for i, name := range names {
		index := cfg.Start + i
		plan = append(plan, Rename{
			Index:   index,
			OldPath: entryPath(cfg.Folder, name),
			NewPath: entryPath(cfg.Folder, naming.SequentialName(cfg.Prefix, index, cfg.Extension)),
			Size:    sizes[name],
		})
	}
	return plan
}

// entryPath joins folder and name without cleaning folder, so a relative
// "./Walking" stays "./Walking/a.avi" in progress lines.
func entryPath(folder, name string) string {
	sep := string(filepath.Separator)
	if strings.HasSuffix(folder, sep) {
		return folder + name
	}
	return folder + sep + name
}

// PlanRange builds one rename per number in [cfg.Range.From, cfg.Range.To),
// marking sources that do not exist as Missing. The folder itself must exist.
func PlanRange(cfg *config.Config) ([]Rename, error) {
	if err := checkFolder(cfg.Folder); err != nil {
		return nil, err
	}

	var plan []Rename
	for i := cfg.Range.From; i < cfg.Range.To; i++ {
		r := Rename{
			Index:   i,
			OldPath: entryPath(cfg.Folder, naming.RangeName(cfg.Range.Source, i)),
			NewPath: entryPath(cfg.Folder, naming.RangeName(cfg.Range.Target, i)),
		}
		fi, err := os.Stat(r.OldPath)
		switch {
		case err == nil:
			r.Size = fi.Size()
		case errors.Is(err, fs.ErrNotExist):
			r.Missing = true
		default:
			return nil, err
		}
		plan = append(plan, r)
	}
	return plan, nil
}
