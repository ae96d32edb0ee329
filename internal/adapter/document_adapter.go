package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	m "classmark.dev/pkg/classmark/internal/model"
)

// DocumentAdapter parses class documents so the workflow can stay ignorant
// of the on-disk encoding.
type DocumentAdapter interface {
	// Parse decodes one or more class documents from raw file contents.
	Parse(content []byte) ([]m.ClassDocument, error)
}

// YAMLDocumentAdapter decodes class documents from YAML. A single file may
// carry several documents separated by "---".
type YAMLDocumentAdapter struct{}

// NewYAMLDocumentAdapter constructs a YAMLDocumentAdapter.
func NewYAMLDocumentAdapter() *YAMLDocumentAdapter {
	return &YAMLDocumentAdapter{}
}

// Parse decodes all documents in content.
func (a *YAMLDocumentAdapter) Parse(content []byte) ([]m.ClassDocument, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(content))

	var documents []m.ClassDocument

	for {
		var document m.ClassDocument

		err := decoder.Decode(&document)
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("failed to decode class document: %w", err)
		}

		if document.Name == "" {
			return nil, fmt.Errorf("class document missing name")
		}

		documents = append(documents, document)
	}

	return documents, nil
}
