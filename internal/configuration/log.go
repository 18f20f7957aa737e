package configuration

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"golang.org/x/exp/slices"
)

type LogMode string

const (
	LogModeAppend    LogMode = "append"
	LogModeOverwrite LogMode = "overwrite"
)

var supportedLogModes = []LogMode{LogModeAppend, LogModeOverwrite}

type LogConfig struct {
	// Path of the text file the event log is exported to on shutdown, empty disables the export
	Path string  `json:"path"`
	Mode LogMode `json:"mode"`
}

// logModeHookFunc normalizes log mode strings and rejects unknown modes
func logModeHookFunc() mapstructure.DecodeHookFuncType {
	logModeType := reflect.TypeOf(LogMode(""))

	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != logModeType || f.Kind() != reflect.String {
			return data, nil
		}
		mode := LogMode(strings.ToLower(strings.TrimSpace(reflect.ValueOf(data).String())))
		if len(mode) <= 0 {
			return LogModeOverwrite, nil
		}
		if !slices.Contains(supportedLogModes, mode) {
			return nil, fmt.Errorf("unsupported log mode '%s', use one of: %s | %s", mode, LogModeAppend, LogModeOverwrite)
		}
		return mode, nil
	}
}
