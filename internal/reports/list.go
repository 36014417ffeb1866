package reports

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	// ReportPattern matches individual report file names.
	ReportPattern = "sub-*.html"

	Condition1 = "condition1"
	Condition2 = "condition2"
)

// Report is a listed report: the name carried through ordering and the file
// it was found at.
type Report struct {
	Name string
	Path string
}

// Scan finds report files under root and returns them in canonical order.
//
// In single-folder mode the whole tree is searched and names are base names.
// In two-folder mode only root/condition1 and root/condition2 are read and
// names carry a "/condition1/" or "/condition2/" prefix.
func Scan(ctx context.Context, root string, twoFolders bool) ([]Report, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("report root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("report root %q is not a directory", root)
	}

	var found []Report
	if twoFolders {
		for _, condition := range []string{Condition1, Condition2} {
			reports, err := scanCondition(root, condition)
			if err != nil {
				return nil, err
			}
			found = append(found, reports...)
		}
	} else {
		found, err = scanTree(ctx, root)
		if err != nil {
			return nil, err
		}
	}

	return sortByKey(found, func(r Report) string { return r.Name })
}

// List is Scan reduced to report names.
func List(ctx context.Context, root string, twoFolders bool) ([]string, error) {
	reports, err := Scan(ctx, root, twoFolders)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(reports))
	for i, r := range reports {
		names[i] = r.Name
	}
	return names, nil
}

func scanCondition(root, condition string) ([]Report, error) {
	matches, err := filepath.Glob(filepath.Join(root, condition, ReportPattern))
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", condition, err)
	}
	out := make([]Report, 0, len(matches))
	for _, path := range matches {
		out = append(out, Report{
			Name: "/" + condition + "/" + filepath.Base(path),
			Path: path,
		})
	}
	return out, nil
}

func scanTree(ctx context.Context, root string) ([]Report, error) {
	var out []Report
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			// Hidden directories are skipped, as shell globbing does.
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if ok, _ := filepath.Match(ReportPattern, d.Name()); ok {
			out = append(out, Report{Name: d.Name(), Path: path})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return out, nil
}
