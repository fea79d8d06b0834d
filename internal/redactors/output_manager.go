// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package redactors

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pii-redactor/internal/observability"
)

// redactedSuffix is appended to the base name of every output file
const redactedSuffix = "_redacted"

// OutputStructureManager places redacted documents under a base directory
// that mirrors the layout of the inputs.
type OutputStructureManager struct {
	// baseOutputDir is the base directory where redacted files will be stored
	baseOutputDir string

	// preserveAttributes copies the input's mode and timestamps to its output
	preserveAttributes bool

	// observer handles observability and metrics
	observer *observability.StandardObserver
}

// NewOutputStructureManager creates a new OutputStructureManager
func NewOutputStructureManager(baseOutputDir string, observer *observability.StandardObserver) (*OutputStructureManager, error) {
	if baseOutputDir == "" {
		return nil, fmt.Errorf("base output directory cannot be empty")
	}

	if observer == nil {
		observer = observability.NewStandardObserver(observability.ObservabilityOff, nil)
	}

	return &OutputStructureManager{
		baseOutputDir: filepath.Clean(baseOutputDir),
		observer:      observer,
	}, nil
}

// RedactedName turns "notes.txt" into "notes_redacted.txt"
func RedactedName(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + redactedSuffix + ext
}

// CreateRedactedPath returns the output path for originalPath: the mirrored
// directory under the base output directory plus the redacted file name.
func (osm *OutputStructureManager) CreateRedactedPath(originalPath string) (string, error) {
	mirrored, err := osm.CreateMirroredPath(originalPath)
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(mirrored), RedactedName(originalPath)), nil
}

// CreateMirroredPath generates the output path for a redacted file, mirroring the original structure
func (osm *OutputStructureManager) CreateMirroredPath(originalPath string) (string, error) {
	finishTiming := osm.observer.StartTiming("output_manager", "create_mirrored_path", originalPath)

	if originalPath == "" {
		finishTiming(false, nil)
		return "", fmt.Errorf("original path cannot be empty")
	}

	relativePath := osm.makeRelativePath(filepath.Clean(originalPath))
	mirroredPath := filepath.Clean(filepath.Join(osm.baseOutputDir, relativePath))

	// Ensure the path doesn't escape the base directory
	rel, err := filepath.Rel(osm.baseOutputDir, mirroredPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		finishTiming(false, map[string]interface{}{"mirrored_path": mirroredPath})
		return "", fmt.Errorf("mirrored path would escape base output directory: %s", mirroredPath)
	}

	finishTiming(true, map[string]interface{}{"base_output_dir": osm.baseOutputDir})
	return mirroredPath, nil
}

// makeRelativePath converts an absolute or relative path to a relative path suitable for mirroring
func (osm *OutputStructureManager) makeRelativePath(path string) string {
	if path == "." || path == "" {
		return "current"
	}

	path = strings.TrimPrefix(path, "./")

	// Remove volume name on Windows (e.g., "C:")
	if vol := filepath.VolumeName(path); vol != "" {
		path = path[len(vol):]
	}

	path = strings.ReplaceAll(path, "\\", "/")
	path = strings.TrimLeft(path, "/")

	if path == "" {
		return "current"
	}

	segments := strings.Split(path, "/")
	for i, s := range segments {
		if s == ".." {
			segments[i] = "parent"
		}
	}
	return filepath.Join(segments...)
}

// EnsureDirectoryExists creates the parent directory of path if it doesn't exist
func (osm *OutputStructureManager) EnsureDirectoryExists(path string) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}

	dir := filepath.Dir(path)
	if info, err := os.Stat(dir); err == nil {
		if !info.IsDir() {
			return fmt.Errorf("path exists but is not a directory: %s", dir)
		}
		return nil
	}

	// owner only
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// SetPreserveAttributes makes PreserveAttributes copy the input's
// permission bits and modification time to the output
func (osm *OutputStructureManager) SetPreserveAttributes(preserve bool) {
	osm.preserveAttributes = preserve
}

// PreserveAttributes gives outputPath the permission bits and timestamps
// of inputPath when preservation is enabled. Outputs keep their owner-only
// mode otherwise.
func (osm *OutputStructureManager) PreserveAttributes(inputPath, outputPath string) error {
	if !osm.preserveAttributes {
		return nil
	}

	info, err := os.Stat(inputPath)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", inputPath, err)
	}
	if err := os.Chmod(outputPath, info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to set mode of %s: %w", outputPath, err)
	}
	if err := os.Chtimes(outputPath, info.ModTime(), info.ModTime()); err != nil {
		return fmt.Errorf("failed to set times of %s: %w", outputPath, err)
	}
	return nil
}

// GetBaseOutputDir returns the base output directory
func (osm *OutputStructureManager) GetBaseOutputDir() string {
	return osm.baseOutputDir
}

// GetComponentName returns the component name for observability
func (osm *OutputStructureManager) GetComponentName() string {
	return "output_structure_manager"
}
