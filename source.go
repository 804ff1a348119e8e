// Copyright © 2013-2016 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package maxscene

// source.go locates scene container files on disk, the same way
// load/locator.go locates 3D assets: directly from disk for development
// builds, or from a zip file bundled alongside the binary for production
// builds.

import (
	"archive/zip"
	"io"
	"os"
	"path"
	"path/filepath"
)

// Source knows how to open a named scene container file, either straight
// off disk or out of a zip bundled with the application.
type Source interface {
	Dispose() // Release any held zip reader.

	// Open locates and opens the named container file. The caller is
	// responsible for closing the returned file.
	Open(name string) (file io.ReadCloser, err error)
}

// NewSource returns the default Source. Open looks first in an
// "assets.zip" bundled next to the running executable (production builds)
// and falls back to reading directly from disk (development builds, or a
// name the zip does not hold).
func NewSource() Source { return newSource() }

type source struct {
	reader *zip.ReadCloser
}

func newSource() *source {
	var resources *zip.ReadCloser
	programName := os.Args[0]
	assetZip := path.Join(path.Dir(programName), "assets.zip")
	if reader, err := zip.OpenReader(assetZip); err == nil {
		resources = reader
	} else if reader, err := zip.OpenReader(programName); err == nil {
		resources = reader // binary with a zip appended, e.g. a self-extracting bundle.
	} else if absDir, err0 := filepath.Abs(filepath.Dir(programName)); err0 == nil {
		if reader, err := zip.OpenReader(path.Join(absDir, "assets.zip")); err == nil {
			resources = reader
		}
	}
	// if resources is still nil this is likely a debug build; Open below
	// falls back to reading directly off disk.
	return &source{reader: resources}
}

// Open implements Source.
func (s *source) Open(name string) (io.ReadCloser, error) {
	if s.reader != nil {
		for _, resource := range s.reader.File {
			if name == resource.Name {
				return resource.Open()
			}
		}
	}
	return os.Open(name)
}

// Dispose implements Source.
func (s *source) Dispose() {
	if s.reader != nil {
		s.reader.Close()
	}
}
