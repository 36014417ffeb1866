package inspection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"

	"qkay/internal/config"
	"qkay/internal/fileutil"
	"qkay/internal/textutil"
)

// ErrUnknownFormat reports a plan path whose extension is neither JSON nor
// YAML.
var ErrUnknownFormat = errors.New("unknown plan file format")

const lockRetryDelay = 50 * time.Millisecond

// DefaultPlanPath places a plan for dataset and rater inside dir.
func DefaultPlanPath(dir, dataset, rater, format string) string {
	ext := ".json"
	if format == config.PlanFormatYAML {
		ext = ".yaml"
	}
	return filepath.Join(dir, textutil.JoinTokens(dataset, rater)+ext)
}

func formatFor(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return config.PlanFormatJSON, nil
	case ".yaml", ".yml":
		return config.PlanFormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Save writes plan to path while holding the plan's lock file.
func Save(ctx context.Context, path string, plan *Plan) error {
	return withLock(ctx, path, func() error {
		return write(path, plan)
	})
}

// Load reads a plan file and checks its lists.
func Load(path string) (*Plan, error) {
	format, err := formatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read plan: %w", err)
	}
	var plan Plan
	switch format {
	case config.PlanFormatYAML:
		err = yaml.Unmarshal(data, &plan)
	default:
		err = json.Unmarshal(data, &plan)
	}
	if err != nil {
		return nil, fmt.Errorf("decode plan %s: %w", path, err)
	}
	if err := plan.Validate(); err != nil {
		return nil, fmt.Errorf("plan %s: %w", path, err)
	}
	return &plan, nil
}

// Update loads the plan at path, applies fn and writes the result back, all
// under the plan's lock. Nothing is written when fn fails.
func Update(ctx context.Context, path string, fn func(*Plan) error) (*Plan, error) {
	var plan *Plan
	err := withLock(ctx, path, func() error {
		loaded, err := Load(path)
		if err != nil {
			return err
		}
		if err := fn(loaded); err != nil {
			return err
		}
		plan = loaded
		return write(path, loaded)
	})
	if err != nil {
		return nil, err
	}
	return plan, nil
}

func write(path string, plan *Plan) error {
	format, err := formatFor(path)
	if err != nil {
		return err
	}
	if err := plan.Validate(); err != nil {
		return err
	}
	var data []byte
	switch format {
	case config.PlanFormatYAML:
		data, err = yaml.Marshal(plan)
	default:
		data, err = json.MarshalIndent(plan, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create plan directory: %w", err)
	}
	return fileutil.WriteFileAtomic(path, data, 0o644)
}

func withLock(ctx context.Context, path string, fn func() error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create plan directory: %w", err)
	}
	lock := flock.New(path + ".lock")
	ok, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("acquire plan lock: %w", err)
	}
	if !ok {
		return fmt.Errorf("plan %s is locked by another qkay process", path)
	}
	defer func() {
		_ = lock.Unlock()
	}()
	return fn()
}
