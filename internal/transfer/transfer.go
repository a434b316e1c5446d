// Package transfer imports and exports decks as JSON or YAML files.
package transfer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-playground/validator/v10"

	"github.com/abhisek/vetcards/internal/deck"
)

// Format is a deck file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrNoMatches is returned when import patterns match no files.
var ErrNoMatches = errors.New("no deck files matched")

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown format %q (want json or yaml)", s)
	}
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%s: no file extension", path)
	}
	return ParseFormat(ext)
}

// Encode serializes d in the given format.
func Encode(d *deck.Deck, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		data, err := d.MarshalJSON()
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatYAML:
		return d.EncodeYAML()
	default:
		return nil, fmt.Errorf("unknown format %q", f)
	}
}

// Decode parses data in the given format and checks every entry.
func Decode(data []byte, f Format) (*deck.Deck, error) {
	var (
		d   *deck.Deck
		err error
	)
	switch f {
	case FormatJSON:
		d, err = deck.ParseJSON(data)
	case FormatYAML:
		d, err = deck.ParseYAML(data)
	default:
		return nil, fmt.Errorf("unknown format %q", f)
	}
	if err != nil {
		return nil, err
	}
	if err := validateDeck(d); err != nil {
		return nil, err
	}
	return d, nil
}

// Expand resolves doublestar patterns (e.g. "decks/**/*.yaml") to a sorted,
// duplicate-free file list. A pattern without glob characters is kept as is.
func Expand(patterns []string) ([]string, error) {
	var files []string
	for _, p := range patterns {
		if !doublestar.ValidatePattern(filepath.ToSlash(p)) {
			return nil, fmt.Errorf("invalid pattern %q", p)
		}
		matches, err := doublestar.FilepathGlob(p, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("expand %q: %w", p, err)
		}
		slices.Sort(matches)
		for _, m := range matches {
			if !slices.Contains(files, m) {
				files = append(files, m)
			}
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoMatches, strings.Join(patterns, ", "))
	}
	return files, nil
}

// ReadFile reads and decodes one deck file, inferring the format from its
// extension.
func ReadFile(path string) (*deck.Deck, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	d, err := Decode(data, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Merge upserts every entry of src into dst in src's order. Names and
// symptoms are trimmed the way the editor trims them; blank names and blank
// symptoms are skipped. With replace, dst is emptied first. Returns the
// number of entries written.
func Merge(dst, src *deck.Deck, replace bool) int {
	if replace {
		for _, name := range dst.Names() {
			dst.Remove(name)
		}
	}
	n := 0
	for name, symptoms := range src.All() {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		cleaned := make([]string, 0, len(symptoms))
		for _, s := range symptoms {
			if s = strings.TrimSpace(s); s != "" {
				cleaned = append(cleaned, s)
			}
		}
		dst.Set(name, cleaned)
		n++
	}
	return n
}

// WriteFile writes data to path atomically: a temp file in the same
// directory is renamed over the target.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".vetcards-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename temp file to %s: %w", path, err)
	}
	return nil
}

// entry is the validated shape of one imported disease.
type entry struct {
	Disease  string   `validate:"required"`
	Symptoms []string `validate:"min=1,dive,required"`
}

var validate = validator.New()

func validateDeck(d *deck.Deck) error {
	for name, symptoms := range d.All() {
		e := entry{Disease: strings.TrimSpace(name)}
		for _, s := range symptoms {
			e.Symptoms = append(e.Symptoms, strings.TrimSpace(s))
		}
		if err := validate.Struct(e); err != nil {
			return fmt.Errorf("disease %q: %w", name, formatValidationError(err))
		}
	}
	return nil
}

func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		switch {
		case e.StructField() == "Disease":
			msgs = append(msgs, "name is empty")
		case e.Tag() == "min":
			msgs = append(msgs, "no symptoms")
		default:
			msgs = append(msgs, "empty symptom")
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}
