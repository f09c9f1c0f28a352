package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return Open(cfg.BasePath())
}

// Open creates a diskv Persistence rooted at basePath. Every key is one file
// directly under basePath; writes go through a sibling temp directory and are
// renamed into place.
func Open(basePath string) (Persistence, error) {
	if strings.TrimSpace(basePath) == "" {
		return nil, errors.New("store: base path required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		TempDir:           basePath + ".tmp",
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) BasePath() string {
	return p.basePath
}

func (p *persistence) Read(key string) (string, bool, error) {
	if err := validKey(key); err != nil {
		return "", false, err
	}
	if !p.d.Has(key) {
		return "", false, nil
	}
	val, err := p.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("store: read %s: %w", key, err)
	}
	return string(val), true, nil
}

func (p *persistence) Write(key, value string) error {
	if err := validKey(key); err != nil {
		return err
	}
	if err := p.d.Write(key, []byte(value)); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (p *persistence) Erase(key string) error {
	if err := validKey(key); err != nil {
		return err
	}
	if !p.d.Has(key) {
		return nil
	}
	return p.d.Erase(key)
}

func (p *persistence) Keys(ctx context.Context) []string {
	keys := make([]string, 0)
	for key := range p.d.Keys(ctx.Done()) {
		if isHidden(key) {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func validKey(key string) error {
	if key == "" || strings.ContainsAny(key, `/\`) || isHidden(key) {
		return fmt.Errorf("store: invalid key %q", key)
	}
	return nil
}

func isHidden(key string) bool {
	return strings.HasPrefix(key, ".")
}

func keyToPathTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: key,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	nested := make([]string, 0, len(pathKey.Path))
	for _, part := range pathKey.Path {
		if part != "" && part != "." {
			nested = append(nested, part)
		}
	}
	// Keys never live in subdirectories; anything that does is not ours.
	if len(nested) > 0 {
		return "." + strings.Join(nested, "-") + "-" + pathKey.FileName
	}
	return pathKey.FileName
}
