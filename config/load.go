package config

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/midbel/axes"
)

func (c Config) serie(f File, color string) (axes.Serie, error) {
	style := f.Style.merge(c.Style)
	if style.Stroke == "" {
		style.Stroke = color
	}
	rdr, err := style.makeRenderer()
	if err != nil {
		return axes.Serie{}, err
	}
	file := f.Path
	if !filepath.IsAbs(file) && c.base != "" {
		file = filepath.Join(c.base, file)
	}
	points, err := loadPoints(file, c.Delimiter, f.X, f.Y)
	if err != nil {
		return axes.Serie{}, err
	}
	return axes.Serie{
		Title:    f.Name(),
		Color:    style.Stroke,
		Points:   points,
		Renderer: rdr,
	}, nil
}

func loadPoints(file, delim string, x, y int) ([]axes.Point, error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	points, err := readPoints(r, delim, x, y)
	if err != nil {
		return nil, withFile(err, file)
	}
	return points, nil
}

// readPoints reads the x and y columns of a CSV stream. The first row is a
// header. Empty cells and NaN give missing values.
func readPoints(r io.Reader, delim string, x, y int) ([]axes.Point, error) {
	var (
		rs   = csv.NewReader(r)
		list []axes.Point
		line = 1
	)
	if delim != "" {
		rs.Comma, _ = utf8.DecodeRuneInString(delim)
	}
	rs.ReuseRecord = true
	if _, err := rs.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, DecodeError{Message: fmt.Sprintf("line %d: %s", line, err), Err: err}
	}
	for {
		row, err := rs.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, DecodeError{Message: err.Error(), Err: err}
		}
		line++
		if x < 0 || y < 0 || x >= len(row) || y >= len(row) {
			return nil, DecodeError{
				Message: fmt.Sprintf("line %d: columns %d/%d out of range (%d columns)", line, x, y, len(row)),
			}
		}
		var pt axes.Point
		if pt.X, err = parseValue(row[x]); err != nil {
			return nil, DecodeError{Message: fmt.Sprintf("line %d: %s", line, err), Err: err}
		}
		if pt.Y, err = parseValue(row[y]); err != nil {
			return nil, DecodeError{Message: fmt.Sprintf("line %d: %s", line, err), Err: err}
		}
		list = append(list, pt)
	}
	return list, nil
}

func parseValue(str string) (float64, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(str, 64)
}
