package events

import (
	"bytes"
	"context"
	"fmt"

	"github.com/markusressel/plant2go/internal/util"
)

type FileMode string

const (
	FileModeAppend    FileMode = "append"
	FileModeOverwrite FileMode = "overwrite"
)

// FileSink writes records as plain text lines, one record per line
type FileSink struct {
	Path string
	Mode FileMode
}

func NewFileSink(path string, mode FileMode) *FileSink {
	return &FileSink{
		Path: path,
		Mode: mode,
	}
}

func (s *FileSink) Name() string {
	return "file:" + s.Path
}

// Replaces reports whether every write replaces the content of the file
func (s *FileSink) Replaces() bool {
	return s.Mode != FileModeAppend
}

func (s *FileSink) Write(ctx context.Context, records []Record) error {
	var buf bytes.Buffer
	for _, record := range records {
		buf.WriteString(record.String())
		buf.WriteByte('\n')
	}

	switch s.Mode {
	case FileModeAppend:
		return util.AppendToFile(s.Path, &buf)
	case FileModeOverwrite, "":
		return util.WriteFileAtomic(s.Path, &buf)
	default:
		return fmt.Errorf("unsupported file mode: %s", s.Mode)
	}
}
