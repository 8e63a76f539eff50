package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sandevgo/promptvault/internal/core"
	"github.com/sandevgo/promptvault/pkg/log"
)

// Export writes the whole collection wrapped in a versioned envelope.
func (s *Store) Export(ctx context.Context, path string) error {
	s.mu.RLock()
	env := core.ExportEnvelope{
		Version:    core.ExportVersion,
		ExportDate: s.now(),
		Prompts:    s.snapshot(),
	}
	s.mu.RUnlock()

	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal export: %w", core.ErrStorageIO, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("%w: write export: %w", core.ErrStorageIO, err)
	}

	log.FromCtx(ctx).Info().Str("path", path).Int("count", len(env.Prompts)).Msg("prompts exported")
	return nil
}

// Import reads an export envelope or a bare array and adds every record that
// has a title and content. Each record gets a fresh id, so importing the same
// file twice duplicates it. Returns the number of records added.
func (s *Store) Import(ctx context.Context, path string) (int, error) {
	logger := log.FromCtx(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("%w: read import: %w", core.ErrStorageIO, err)
	}

	if err := validateImportShape(data); err != nil {
		return 0, err
	}

	raw, err := splitRecords(data)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", core.ErrInvalidImport, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	imported := 0
	for i, msg := range raw {
		var rec rawRecord
		if err := json.Unmarshal(msg, &rec); err != nil {
			logger.Debug().Err(err).Int("index", i).Msg("skipping import record that is not an object")
			continue
		}
		p, ok := rec.imported(s.newID(), now)
		if !ok {
			logger.Debug().Int("index", i).Msg("skipping import record without title or content")
			continue
		}

		s.put(p)
		imported++
	}

	if imported > 0 {
		if err := s.persist(ctx); err != nil {
			return imported, err
		}
	}

	logger.Info().Str("path", path).Int("count", imported).Int("total", len(raw)).Msg("prompts imported")
	return imported, nil
}

func splitRecords(data []byte) ([]json.RawMessage, error) {
	var raw []json.RawMessage

	if trimmed := bytes.TrimLeft(data, " \t\r\n"); len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
		return raw, nil
	}

	var env struct {
		Prompts []json.RawMessage `json:"prompts"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	return env.Prompts, nil
}
