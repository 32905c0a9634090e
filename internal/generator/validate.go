package generator

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/preston-bernstein/football-asset-generator/internal/config"
	"github.com/preston-bernstein/football-asset-generator/internal/identity"
	"github.com/preston-bernstein/football-asset-generator/internal/ids"
)

// ValidationError explains why a generate request was rejected. Nothing is
// written when validation fails.
type ValidationError struct {
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	return "invalid generate request: " + e.Reason
}

func (e *ValidationError) Unwrap() error { return e.Err }

// AsValidationError unwraps err into a *ValidationError when possible.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// Validate checks folders, counts, the id source and the radius.
func Validate(folders config.FolderConfig, cfg config.GeneratorConfig) error {
	_, err := resolveIDs(folders, cfg)
	return err
}

// resolveIDs validates the request and returns the ids to assign, home pool
// first.
func resolveIDs(folders config.FolderConfig, cfg config.GeneratorConfig) ([]string, error) {
	for _, folder := range []string{folders.Teams, folders.Players, folders.Prefabs} {
		if !identity.IsAssetsPath(folder) {
			return nil, &ValidationError{Reason: fmt.Sprintf("folders must be inside Assets/, got %q", folder)}
		}
	}

	home, away := cfg.Home(), cfg.Away()
	total := max(0, home.Count) + max(0, away.Count)
	if home.Count < 0 || away.Count < 0 || total <= 0 {
		return nil, &ValidationError{Reason: "counts must be non-negative and total > 0"}
	}

	var list []string
	if cfg.AutoIDs {
		list = ids.Generate(ids.Template{
			HomePrefix: home.IDPrefix,
			AwayPrefix: away.IDPrefix,
			Start:      cfg.IDStart,
			Digits:     cfg.IDDigits,
			HomeCount:  home.Count,
			AwayCount:  away.Count,
		})
	} else {
		if strings.TrimSpace(cfg.CustomIDFile) == "" {
			return nil, &ValidationError{Reason: "a custom ID list is required when auto IDs are off"}
		}
		data, err := os.ReadFile(cfg.CustomIDFile)
		if err != nil {
			return nil, &ValidationError{Reason: "custom ID list could not be read", Err: err}
		}
		list = ids.ParseList(string(data))
		if err := ids.CheckCount(list, total); err != nil {
			return nil, &ValidationError{Reason: err.Error(), Err: err}
		}
	}

	if cfg.InterceptRadius < 0 {
		return nil, &ValidationError{Reason: "intercept radius must be >= 0"}
	}
	return list, nil
}
