package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/cookiee01/data-engineering-learning-agent/internal/models"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.uber.org/zap"
)

// ErrMalformedStore is returned when the progress file exists but cannot be understood
var ErrMalformedStore = errors.New("progress store is malformed")

const progressSchemaURL = "schema://progress-document.json"

// progressSchema describes the progress document with the same ranges as ProgressRecord.Validate.
// Unknown fields are allowed and dropped on decode.
const progressSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"progress": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["topic", "week", "day", "completion_percentage", "time_spent_hours", "confidence_level"],
				"properties": {
					"topic": {"type": "string", "minLength": 1, "maxLength": 255},
					"week": {"type": "integer", "minimum": 1, "maximum": 6},
					"day": {"type": "integer", "minimum": 1, "maximum": 7},
					"completion_percentage": {"type": "number", "minimum": 0, "maximum": 100},
					"time_spent_hours": {"type": "number", "minimum": 0},
					"confidence_level": {"type": "integer", "minimum": 1, "maximum": 10},
					"last_updated": {"type": "string"},
					"notes": {"type": ["string", "null"]}
				}
			}
		}
	}
}`

var compiledProgressSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader([]byte(progressSchema)))
	if err != nil {
		return nil, fmt.Errorf("parse progress schema: %w", err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(progressSchemaURL, doc); err != nil {
		return nil, fmt.Errorf("add progress schema: %w", err)
	}
	return c.Compile(progressSchemaURL)
})

// progressFileRepository keeps progress records in a single JSON document on disk.
//
// Every save rewrites the whole file through a temp file and rename, so readers never see a torn file.
// The mutex serializes writers inside one process only: two processes saving at the same time
// can still lose the earlier update.
type progressFileRepository struct {
	path   string
	logger *zap.Logger
	mu     sync.Mutex
}

// NewProgressFileRepository creates a repository backed by the JSON file at path.
// The file and its directory are created on the first save.
func NewProgressFileRepository(path string, logger *zap.Logger) *progressFileRepository {
	return &progressFileRepository{
		path:   path,
		logger: logger,
	}
}

// Upsert replaces the record with the same (topic, week, day) in place or appends it
func (r *progressFileRepository) Upsert(ctx context.Context, record models.ProgressRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.read()
	if err != nil {
		r.logger.Error("failed to load progress before save", zap.String("path", r.path), zap.Error(err))
		return fmt.Errorf("failed to load progress: %w", err)
	}

	if err := r.write(upsertRecord(records, record)); err != nil {
		r.logger.Error("failed to write progress", zap.String("path", r.path), zap.Error(err))
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}

// GetAll returns every record in insertion order. A missing file yields an empty slice.
func (r *progressFileRepository) GetAll(ctx context.Context) ([]models.ProgressRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records, err := r.read()
	if err != nil {
		r.logger.Error("failed to load progress", zap.String("path", r.path), zap.Error(err))
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}
	return records, nil
}

func (r *progressFileRepository) read() ([]models.ProgressRecord, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return []models.ProgressRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", r.path, err)
	}

	return decodeProgress(data)
}

func (r *progressFileRepository) write(records []models.ProgressRecord) error {
	data, err := json.MarshalIndent(models.ProgressDocument{Progress: records}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode progress: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once renamed

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", r.path, err)
	}
	return nil
}

// decodeProgress validates raw file content against the progress schema and decodes it
func decodeProgress(data []byte) ([]models.ProgressRecord, error) {
	schema, err := compiledProgressSchema()
	if err != nil {
		return nil, err
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedStore, err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedStore, err)
	}

	var parsed models.ProgressDocument
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedStore, err)
	}
	if parsed.Progress == nil {
		parsed.Progress = []models.ProgressRecord{}
	}
	return parsed.Progress, nil
}

// upsertRecord replaces the first record with the same key in place, or appends
func upsertRecord(records []models.ProgressRecord, record models.ProgressRecord) []models.ProgressRecord {
	key := record.Key()
	for i := range records {
		if records[i].Key() == key {
			records[i] = record
			return records
		}
	}
	return append(records, record)
}
