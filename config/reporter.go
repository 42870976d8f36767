package config

import (
	"archive/zip"
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"pcss/misc"
)

type ReporterConfig struct {
	Destination string `yaml:"destination" validate:"required,filepath"`
}

// Prepare creates an initialized empty reporter.
func (conf *ReporterConfig) Prepare() (*Report, error) {
	r := &Report{entries: make(map[string]entry)}
	if f, err := os.Create(conf.Destination); err == nil {
		r.file = f
	} else if f, err = os.CreateTemp("", misc.GetAppName()+"-report.*.zip"); err == nil {
		r.file = f
	} else {
		return nil, fmt.Errorf("unable to create report: %w", err)
	}
	return r, nil
}

type entry struct {
	path  string
	stamp time.Time
	data  []byte
}

// Report accumulates the files and data blobs that make up a debug
// report archive. NOTE: presently not to be used concurrently!
type Report struct {
	entries map[string]entry
	file    *os.File
}

// Name returns the report archive location.
func (r *Report) Name() string {
	if r == nil || r.file == nil {
		return ""
	}
	return r.file.Name()
}

// Store records a file to be archived by path; the content is read at
// finalize time so late writers (the log) are captured whole.
func (r *Report) Store(name, path string) {
	if r == nil {
		return
	}
	r.entries[name] = entry{path: path, stamp: time.Now()}
}

// StoreData records an in-memory blob under the given archive name.
func (r *Report) StoreData(name string, data []byte) {
	if r == nil {
		return
	}
	r.entries[name] = entry{data: data, stamp: time.Now()}
}

// Close finalizes the debug report archive.
func (r *Report) Close() (retErr error) {
	if r == nil || r.file == nil {
		// No report has been requested.
		return nil
	}
	defer func() {
		retErr = errors.Join(retErr, r.file.Close())
	}()

	w := zip.NewWriter(r.file)
	defer func() {
		retErr = errors.Join(retErr, w.Close())
	}()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		e := r.entries[name]
		data := e.data
		if data == nil && len(e.path) > 0 {
			content, err := os.ReadFile(e.path)
			if err != nil {
				retErr = errors.Join(retErr, fmt.Errorf("unable to read report entry '%s': %w", name, err))
				continue
			}
			data = content
		}
		hdr := &zip.FileHeader{Name: name, Method: zip.Deflate, Modified: e.stamp}
		f, err := w.CreateHeader(hdr)
		if err != nil {
			retErr = errors.Join(retErr, err)
			continue
		}
		if _, err := f.Write(data); err != nil {
			retErr = errors.Join(retErr, err)
		}
	}
	return retErr
}
