package workspace

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/restdeck/restdeck/internal/domain"
	apperrors "github.com/restdeck/restdeck/internal/errors"
	"gopkg.in/yaml.v3"
)

// eligibleExtensions are the file extensions the workspace scan admits.
// Only .json is ever written; .yaml/.yml are read-side conveniences.
var eligibleExtensions = map[string]bool{
	".json": true,
	".yaml": true,
	".yml":  true,
}

// savedExtension is the extension written by Save.
const savedExtension = ".json"

// decodeRecordFile reads a saved request from disk, choosing the decoder
// by file extension.
func decodeRecordFile(path string) (*domain.SavedRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.FilesystemError{Op: "read", Path: path, Err: err}
	}

	var record domain.SavedRequest
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &record)
	default:
		err = json.Unmarshal(data, &record)
	}
	if err != nil {
		return nil, apperrors.ParseError{Path: path, Err: err}
	}
	return &record, nil
}

// encodeRecord serializes a record in the canonical on-disk form.
func encodeRecord(record domain.SavedRequest) ([]byte, error) {
	return json.MarshalIndent(record, "", "  ")
}

// inferMethod parses a file just far enough to hint its HTTP method for
// the index. Failure is a valid state: the entry is listed without a hint.
func inferMethod(path string) *domain.Method {
	record, err := decodeRecordFile(path)
	if err != nil {
		return nil
	}
	m, ok := domain.InferMethod(record.Method)
	if !ok {
		return nil
	}
	return &m
}
