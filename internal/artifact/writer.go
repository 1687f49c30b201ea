package artifact

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	apperrors "hftviz/internal/errors"
)

// Format is a supported artifact encoding.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// timestampLayout produces the <base>_<YYYYMMDD_HHMMSS>.<ext> file names.
const timestampLayout = "20060102_150405"

// Renderable is the figure contract the writer consumes. Both encoders
// stream into a buffer so a failed call leaves no file behind.
type Renderable interface {
	RenderPNG(w io.Writer) error
	RenderSVG(w io.Writer) error
}

// Saved describes a completed multi-format write. Every file of one Save
// call shares the same Token, so related outputs sort together.
type Saved struct {
	Token string
	Files []string
}

// Writer persists rendered figures into the managed plots directory.
type Writer struct {
	plotsDir string
	logger   *slog.Logger
	now      func() time.Time
}

// NewWriter creates a writer rooted at the managed plots directory.
func NewWriter(plotsDir string, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{
		plotsDir: plotsDir,
		logger:   logger,
		now:      time.Now,
	}
}

// Save encodes the figure in every requested format and writes the results
// as one transaction: encoding happens fully in memory first, and if any
// file write fails the files already written by this call are removed.
func (w *Writer) Save(fig Renderable, baseName string, formats []Format) (*Saved, error) {
	if len(formats) == 0 {
		return nil, apperrors.NewWriteError("no output formats requested", nil)
	}

	if err := os.MkdirAll(w.plotsDir, 0755); err != nil {
		return nil, apperrors.NewWriteError(
			fmt.Sprintf("create plots directory %s", w.plotsDir), err)
	}

	token := w.now().Format(timestampLayout)

	encoded := make([]*bytes.Buffer, len(formats))
	for i, format := range formats {
		buf := &bytes.Buffer{}
		var err error
		switch format {
		case FormatPNG:
			err = fig.RenderPNG(buf)
		case FormatSVG:
			err = fig.RenderSVG(buf)
		default:
			return nil, apperrors.NewWriteError(
				fmt.Sprintf("unsupported output format %q", format), nil)
		}
		if err != nil {
			return nil, apperrors.NewWriteError(
				fmt.Sprintf("encode %s as %s", baseName, format), err)
		}
		encoded[i] = buf
	}

	saved := &Saved{Token: fmt.Sprintf("%s_%s", baseName, token)}
	for i, format := range formats {
		path := filepath.Join(w.plotsDir, fmt.Sprintf("%s.%s", saved.Token, format))
		if err := writeExclusive(path, encoded[i].Bytes()); err != nil {
			w.removePartials(saved.Files)
			return nil, apperrors.NewWriteError(fmt.Sprintf("write %s", path), err)
		}
		saved.Files = append(saved.Files, path)
		w.logger.Info("artifact written",
			slog.String("path", path),
			slog.String("format", string(format)),
			slog.Int("bytes", encoded[i].Len()))
	}

	return saved, nil
}

// SaveBytes writes one pre-encoded artifact under the same timestamped
// naming scheme as Save. The workbook export uses this.
func (w *Writer) SaveBytes(baseName, ext string, data []byte) (*Saved, error) {
	if err := os.MkdirAll(w.plotsDir, 0755); err != nil {
		return nil, apperrors.NewWriteError(
			fmt.Sprintf("create plots directory %s", w.plotsDir), err)
	}

	token := fmt.Sprintf("%s_%s", baseName, w.now().Format(timestampLayout))
	path := filepath.Join(w.plotsDir, fmt.Sprintf("%s.%s", token, ext))
	if err := writeExclusive(path, data); err != nil {
		return nil, apperrors.NewWriteError(fmt.Sprintf("write %s", path), err)
	}

	w.logger.Info("artifact written",
		slog.String("path", path),
		slog.String("format", ext),
		slog.Int("bytes", len(data)))
	return &Saved{Token: token, Files: []string{path}}, nil
}

// PlotsDir returns the managed output directory.
func (w *Writer) PlotsDir() string {
	return w.plotsDir
}

// writeExclusive refuses to replace an existing file. Timestamped names make
// collisions rare; when two saves land in the same second the second one
// fails loudly instead of clobbering the first.
func writeExclusive(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

func (w *Writer) removePartials(paths []string) {
	for _, path := range paths {
		if err := os.Remove(path); err != nil {
			w.logger.Warn("failed to remove partial artifact",
				slog.String("path", path),
				slog.String("error", err.Error()))
		}
	}
}
