package util

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/natefinch/atomic"
)

// ExpandPath resolves a leading "~" to the home directory of the current user
func ExpandPath(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return path, err
	}
	return filepath.Clean(expanded), nil
}

func ReadFloatFromFile(path string) (value float64, err error) {
	path, err = ExpandPath(path)
	if err != nil {
		return 0, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	text := strings.TrimSpace(string(data))
	if len(text) <= 0 {
		return 0, fmt.Errorf("file is empty: %s", path)
	}
	return strconv.ParseFloat(text, 64)
}

// WriteFileAtomic replaces the content of the file at path with the content of r,
// the file is either fully written or left untouched
func WriteFileAtomic(path string, r io.Reader) error {
	path, err := ExpandPath(path)
	if err != nil {
		return err
	}
	if err = ensureParentDir(path); err != nil {
		return err
	}
	return atomic.WriteFile(path, r)
}

// AppendToFile appends the content of r to the file at path, creating it if necessary
func AppendToFile(path string, r io.Reader) error {
	path, err := ExpandPath(path)
	if err != nil {
		return err
	}
	if err = ensureParentDir(path); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	_, err = io.Copy(f, r)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return err
}

func ensureParentDir(path string) error {
	parentDir := filepath.Dir(path)
	_, err := os.Stat(parentDir)
	if os.IsNotExist(err) {
		return os.MkdirAll(parentDir, 0755)
	}
	return err
}
