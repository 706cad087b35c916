// Package ledgerfile provides repository pattern for QIF file output.
package ledgerfile

import (
	"fmt"
	"os"

	"github.com/zimuliu/WealthSimpleCSV2QIF/pkg/pathutil"
	"github.com/zimuliu/WealthSimpleCSV2QIF/pkg/qif"
)

// Repository defines the interface for QIF file operations.
type Repository interface {
	// WriteDocument writes one rendered QIF document and returns its path
	WriteDocument(doc qif.Document) (string, error)
}

// FileSystemRepository is a file system implementation of Repository.
type FileSystemRepository struct {
	pathResolver *pathutil.PathResolver
}

// NewFileSystemRepository creates a new FileSystemRepository.
func NewFileSystemRepository(pathResolver *pathutil.PathResolver) *FileSystemRepository {
	return &FileSystemRepository{
		pathResolver: pathResolver,
	}
}

// WriteDocument writes one QIF document under the output root, creating the
// directory if needed. An existing file for the same nickname is replaced.
func (r *FileSystemRepository) WriteDocument(doc qif.Document) (string, error) {
	filePath := r.pathResolver.GetLedgerFilePath(doc.Filename)

	if err := r.pathResolver.EnsureParentDir(filePath); err != nil {
		return "", fmt.Errorf("failed to ensure output directory: %w", err)
	}

	if err := os.WriteFile(filePath, []byte(doc.Text), 0644); err != nil {
		return "", fmt.Errorf("failed to write QIF file: %w", err)
	}

	return filePath, nil
}
