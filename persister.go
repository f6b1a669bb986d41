package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jackc/feedsnap/data"
	log "gopkg.in/inconshreveable/log15.v2"
)

// SnapshotWriter persists entry lists as dated JSON files in one output
// directory. A snapshot is the whole run's aggregate; writing twice on the
// same date overwrites the earlier file.
type SnapshotWriter struct {
	dir    string
	logger log.Logger
	now    func() time.Time
}

func NewSnapshotWriter(dir string, logger log.Logger) *SnapshotWriter {
	return &SnapshotWriter{dir: dir, logger: logger, now: time.Now}
}

// Save writes entries to <dir>/news_<YYYYMMDD>.json and returns the path
// written. The directory is created if absent, intermediate segments
// included. Entries are written as a pretty-printed JSON array with UTF-8
// text left unescaped.
func (w *SnapshotWriter) Save(entries []data.Entry) (string, error) {
	_, statErr := os.Stat(w.dir)
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", fmt.Errorf("Unable to create directory %q: %v", w.dir, err)
	}
	if os.IsNotExist(statErr) {
		w.logger.Info("created directory", "path", w.dir)
	}

	path := filepath.Join(w.dir, w.snapshotName())

	file, err := os.Create(path)
	if err != nil {
		return "", err
	}

	encoder := json.NewEncoder(file)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "    ")

	if err := encoder.Encode(entries); err != nil {
		file.Close()
		return "", err
	}
	if err := file.Close(); err != nil {
		return "", err
	}

	w.logger.Info("saved entries", "count", len(entries), "path", path)

	return path, nil
}

func (w *SnapshotWriter) snapshotName() string {
	return fmt.Sprintf("news_%s.json", w.now().Format("20060102"))
}
