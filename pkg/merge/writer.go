// Package merge streams collected files into the single output document.
//
// Output layout, with the banner written once before the first file that has
// content:
//
//	<banner>
//
//	File: <absolute-path>
//
//	<raw file bytes>
//
//	-------------------------- End of <absolute-path> --------------------------
package merge

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"

	"github.com/arthur-debert/codemerge/pkg/errors"
	"github.com/arthur-debert/codemerge/pkg/logging"
	"github.com/arthur-debert/codemerge/pkg/progress"
	"github.com/arthur-debert/codemerge/pkg/types"
	"github.com/rs/zerolog"
)

// BufferSize bounds the bytes held in memory while copying a file
const BufferSize = 8 * 1024

const (
	headerFormat = "\nFile: %s\n\n"
	footerFormat = "\n-------------------------- End of %s --------------------------\n"
)

// Options configures a Writer
type Options struct {
	// Banner is written once before the first merged file, followed by a
	// blank line. Empty disables it.
	Banner string

	// Reporter receives progress after every path; nil discards it.
	Reporter progress.Reporter
}

// Stats counts what a merge did. Processed includes skipped paths.
type Stats struct {
	Processed int
	Written   int
	Skipped   int
}

// Writer merges files into out. A Writer is single-use and not safe for
// concurrent use.
type Writer struct {
	fs           types.FS
	out          io.Writer
	banner       string
	reporter     progress.Reporter
	firstWritten bool
	buf          []byte
	logger       zerolog.Logger
}

// NewWriter creates a writer streaming into out
func NewWriter(fsys types.FS, out io.Writer, opts Options) *Writer {
	reporter := opts.Reporter
	if reporter == nil {
		reporter = progress.Nop{}
	}
	return &Writer{
		fs:       fsys,
		out:      out,
		banner:   opts.Banner,
		reporter: reporter,
		buf:      make([]byte, BufferSize),
		logger:   logging.GetLogger("merge"),
	}
}

// CreateOutput creates or truncates the destination file
func CreateOutput(path string) (*os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrOutputCreate, "cannot create %s", path).
			WithDetail("path", path)
	}
	return f, nil
}

// Write merges the collections, indexed by category, in category order and
// byte-sorted path order within each category. The first copy failure aborts
// the merge; whatever was already written stays in out.
func (w *Writer) Write(ctx context.Context, collections [][]string) (Stats, error) {
	var stats Stats
	defer w.reporter.Done()

	total := 0
	sorted := make([][]string, len(collections))
	for i, paths := range collections {
		sorted[i] = make([]string, len(paths))
		copy(sorted[i], paths)
		sort.Strings(sorted[i])
		total += len(paths)
	}

	for i, paths := range sorted {
		for _, path := range paths {
			if err := ctx.Err(); err != nil {
				return stats, err
			}

			written, err := w.WriteFile(path)
			if err != nil {
				return stats, err
			}

			stats.Processed++
			if written {
				stats.Written++
			} else {
				stats.Skipped++
			}
			w.reporter.Report(stats.Processed, total)

			w.logger.Trace().
				Str("path", path).
				Str("category", types.Category(i).String()).
				Bool("written", written).
				Msg("Processed")
		}
	}

	w.logger.Info().
		Int("processed", stats.Processed).
		Int("written", stats.Written).
		Int("skipped", stats.Skipped).
		Msg("Merge complete")

	return stats, nil
}

// WriteFile appends one file with its header and footer. Missing and empty
// files are skipped and report false.
func (w *Writer) WriteFile(path string) (bool, error) {
	info, err := w.fs.Stat(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			w.logger.Debug().Str("path", path).Msg("Skipping vanished file")
			return false, nil
		}
		return false, copyError(err, "cannot stat", path)
	}
	if info.Size() == 0 {
		return false, nil
	}

	src, err := w.fs.Open(path)
	if err != nil {
		return false, copyError(err, "cannot open", path)
	}
	defer src.Close()

	if !w.firstWritten {
		if w.banner != "" {
			if err := w.writeString(w.banner + "\n\n"); err != nil {
				return false, copyError(err, "cannot write banner before", path)
			}
		}
		w.firstWritten = true
	}

	if err := w.writeString(fmt.Sprintf(headerFormat, path)); err != nil {
		return false, copyError(err, "cannot write header for", path)
	}
	if err := w.copy(src, path); err != nil {
		return false, err
	}
	if err := w.writeString(fmt.Sprintf(footerFormat, path)); err != nil {
		return false, copyError(err, "cannot write footer for", path)
	}

	return true, nil
}

func (w *Writer) copy(src io.Reader, path string) error {
	for {
		n, rerr := src.Read(w.buf)
		if n > 0 {
			if err := w.write(w.buf[:n]); err != nil {
				return copyError(err, "write error for", path)
			}
		}
		if rerr == io.EOF {
			return nil
		}
		if rerr != nil {
			return copyError(rerr, "read error for", path)
		}
	}
}

func (w *Writer) writeString(s string) error {
	return w.write([]byte(s))
}

func (w *Writer) write(p []byte) error {
	n, err := w.out.Write(p)
	if err != nil {
		return err
	}
	if n != len(p) {
		return io.ErrShortWrite
	}
	return nil
}

func copyError(err error, what, path string) error {
	return errors.Wrapf(err, errors.ErrCopy, "%s %s", what, path).WithDetail("path", path)
}
