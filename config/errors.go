package config

import (
	"errors"
	"fmt"
)

var ErrFormat = errors.New("unsupported format")

type OptionError struct {
	Option  string
	Section string
	File    string
	Value   string
}

func (e OptionError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s: %q is not a valid value for option %s in section %s", e.file(), e.Value, e.Option, e.Section)
	}
	return fmt.Sprintf("%s: option %s not recognized in section %s", e.file(), e.Option, e.Section)
}

func (e OptionError) file() string {
	if e.File == "" {
		return "<input>"
	}
	return e.File
}

type DecodeError struct {
	Message string
	File    string
	Err     error
}

func (e DecodeError) Error() string {
	if e.File == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.File, e.Message)
}

func (e DecodeError) Unwrap() error {
	return e.Err
}
