package roster

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the roster document syntax.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks YAML for .yaml/.yml files and JSON otherwise.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// FormatFromContentType picks YAML for yaml media types and JSON otherwise.
func FormatFromContentType(contentType string) Format {
	if strings.Contains(strings.ToLower(contentType), "yaml") {
		return FormatYAML
	}
	return FormatJSON
}

// ErrMissingCollections is returned when a roster lacks teams or players.
var ErrMissingCollections = errors.New("roster must contain 'teams' and 'players' arrays")

// ParseError wraps a roster that could not be decoded.
type ParseError struct {
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s roster: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// AsParseError unwraps err into a *ParseError when possible.
func AsParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// Document is the decoded roster. Nil slices mean the key was absent.
type Document struct {
	Teams   []TeamEntry   `json:"teams" yaml:"teams"`
	Players []PlayerEntry `json:"players" yaml:"players"`
}

// TeamEntry is one team in a roster.
type TeamEntry struct {
	TeamID         string `json:"teamId" yaml:"teamId"`
	TeamName       string `json:"teamName" yaml:"teamName"`
	ShortCode      string `json:"shortCode" yaml:"shortCode"`
	PrimaryColor   string `json:"primaryColor,omitempty" yaml:"primaryColor,omitempty"`
	SecondaryColor string `json:"secondaryColor,omitempty" yaml:"secondaryColor,omitempty"`
	Logo           string `json:"logo,omitempty" yaml:"logo,omitempty"`
}

// PlayerEntry is one player in a roster.
type PlayerEntry struct {
	PlayerID              string  `json:"playerId" yaml:"playerId"`
	PlayerName            string  `json:"playerName" yaml:"playerName"`
	JerseyNumber          int     `json:"jerseyNumber" yaml:"jerseyNumber"`
	Role                  string  `json:"role" yaml:"role"`
	InterceptRadiusMeters float64 `json:"interceptRadiusMeters" yaml:"interceptRadiusMeters"`
	TeamID                string  `json:"teamId" yaml:"teamId"`
}

// Parse decodes data as format and checks both collections are present.
func Parse(data []byte, format Format) (Document, error) {
	var doc Document
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		format = FormatJSON
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return Document{}, &ParseError{Format: format, Err: err}
	}
	if doc.Teams == nil || doc.Players == nil {
		return Document{}, ErrMissingCollections
	}
	return doc, nil
}
