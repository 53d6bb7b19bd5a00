// Package backup keeps rotating snapshots of file-backed stores next to the
// store file. SQLite files are snapshotted with VACUUM INTO; JSON documents
// are checked for well-formedness and copied.
package backup

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/lifeos/internal/constants"
	"github.com/julianstephens/lifeos/internal/logger"
)

const stampLayout = "20060102-150405"

var ErrUnsupported = errors.New("backups are only available for sqlite and json stores")

var namePattern = regexp.MustCompile(`^` + regexp.QuoteMeta(constants.BackupFilePrefix) + `(\d{8}-\d{6})(?:-(\d+))?(\.db|\.json)$`)

type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

func (i Info) Name() string { return filepath.Base(i.Path) }

type kind int

const (
	kindSQLite kind = iota
	kindJSON
)

type Manager struct {
	source string
	dir    string
	kind   kind
	now    func() time.Time
}

// NewManager returns a manager for the store file at source. Backups live in
// a sibling "backups" directory.
func NewManager(source string) (*Manager, error) {
	if source == "" || strings.Contains(source, "://") || strings.Contains(source, "host=") || strings.HasPrefix(source, "memory:") {
		return nil, ErrUnsupported
	}
	k := kindSQLite
	if strings.EqualFold(filepath.Ext(source), ".json") {
		k = kindJSON
	}
	return &Manager{
		source: source,
		dir:    filepath.Join(filepath.Dir(source), constants.BackupDirName),
		kind:   k,
		now:    time.Now,
	}, nil
}

func (m *Manager) Dir() string { return m.dir }

func (m *Manager) suffix() string {
	if m.kind == kindJSON {
		return ".json"
	}
	return constants.BackupFileSuffix
}

// Create snapshots the store and prunes the oldest snapshots beyond
// constants.MaxBackups.
func (m *Manager) Create() (Info, error) {
	info, err := m.create()
	if err != nil {
		return Info{}, err
	}
	if err := m.rotate(); err != nil {
		logger.Warn("Failed to rotate old backups", "error", err)
	}
	return info, nil
}

func (m *Manager) create() (Info, error) {
	if _, err := os.Stat(m.source); err != nil {
		return Info{}, fmt.Errorf("store does not exist: %s", m.source)
	}
	if err := os.MkdirAll(m.dir, 0o700); err != nil {
		return Info{}, fmt.Errorf("failed to create backup directory: %w", err)
	}

	path, stamp, err := m.nextPath()
	if err != nil {
		return Info{}, err
	}

	switch m.kind {
	case kindJSON:
		if err := verifyJSON(m.source); err != nil {
			return Info{}, fmt.Errorf("store is not valid JSON: %w", err)
		}
		err = copyFile(m.source, path)
	default:
		err = vacuumInto(m.source, path)
	}
	if err != nil {
		return Info{}, fmt.Errorf("failed to back up store: %w", err)
	}

	st, err := os.Stat(path)
	if err != nil {
		return Info{}, err
	}
	logger.Info("Backup created", "path", path)
	return Info{Path: path, Timestamp: stamp, Size: st.Size()}, nil
}

func (m *Manager) nextPath() (string, time.Time, error) {
	stamp := m.now().Truncate(time.Second)
	base := constants.BackupFilePrefix + stamp.Format(stampLayout)
	path := filepath.Join(m.dir, base+m.suffix())
	for n := 1; exists(path); n++ {
		if n > 100 {
			return "", time.Time{}, errors.New("failed to generate unique backup filename")
		}
		path = filepath.Join(m.dir, fmt.Sprintf("%s-%d%s", base, n, m.suffix()))
	}
	return path, stamp, nil
}

// List returns snapshots newest first. Files that do not follow the naming
// scheme are ignored.
func (m *Manager) List() ([]Info, error) {
	entries, err := os.ReadDir(m.dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	type ranked struct {
		Info
		seq string
	}
	var found []ranked
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		match := namePattern.FindStringSubmatch(e.Name())
		if match == nil || match[3] != m.suffix() {
			continue
		}
		ts, err := time.ParseInLocation(stampLayout, match[1], time.Local)
		if err != nil {
			continue
		}
		fi, err := e.Info()
		if err != nil {
			continue
		}
		found = append(found, ranked{
			Info: Info{Path: filepath.Join(m.dir, e.Name()), Timestamp: ts, Size: fi.Size()},
			seq:  fmt.Sprintf("%06s", match[2]),
		})
	}

	sort.Slice(found, func(i, j int) bool {
		if !found[i].Timestamp.Equal(found[j].Timestamp) {
			return found[i].Timestamp.After(found[j].Timestamp)
		}
		return found[i].seq > found[j].seq
	})

	out := make([]Info, len(found))
	for i, r := range found {
		out[i] = r.Info
	}
	return out, nil
}

func (m *Manager) rotate() error {
	backups, err := m.List()
	if err != nil {
		return err
	}
	for i := constants.MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Name(), err)
		}
	}
	return nil
}

// Resolve finds a snapshot by path or by file name inside the backup dir.
func (m *Manager) Resolve(name string) (string, error) {
	if exists(name) {
		return name, nil
	}
	path := filepath.Join(m.dir, filepath.Base(name))
	if exists(path) {
		return path, nil
	}
	return "", fmt.Errorf("backup file does not exist: %s", name)
}

// Restore replaces the store file with the snapshot at path. The current
// store is snapshotted first without rotation; that snapshot is returned.
// The store must be closed by the caller.
func (m *Manager) Restore(path string) (Info, error) {
	if !exists(path) {
		return Info{}, fmt.Errorf("backup file does not exist: %s", path)
	}
	verify := verifySQLite
	if m.kind == kindJSON {
		verify = verifyJSON
	}
	if err := verify(path); err != nil {
		return Info{}, fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}

	var prior Info
	if exists(m.source) {
		var err error
		if prior, err = m.create(); err != nil {
			return Info{}, fmt.Errorf("failed to back up current store before restore: %w", err)
		}
	}

	tmp := m.source + ".restore.tmp"
	if err := copyFile(path, tmp); err != nil {
		return Info{}, fmt.Errorf("failed to copy backup file: %w", err)
	}
	if err := os.Rename(tmp, m.source); err != nil {
		if rmErr := os.Remove(tmp); rmErr != nil {
			logger.Warn("Failed to remove temporary file", "path", tmp, "error", rmErr)
		}
		return Info{}, fmt.Errorf("failed to restore store: %w", err)
	}
	// Stale WAL files would be replayed over the restored database.
	for _, ext := range []string{"-wal", "-shm"} {
		os.Remove(m.source + ext)
	}
	logger.Info("Store restored", "from", path)
	return prior, nil
}

func vacuumInto(src, dst string) error {
	db, err := sql.Open("sqlite", src+"?mode=ro")
	if err != nil {
		return err
	}
	defer db.Close()

	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&n); err != nil {
		return fmt.Errorf("source database appears to be corrupted: %w", err)
	}
	if _, err := db.Exec("VACUUM INTO ?", dst); err != nil {
		db.Close()
		return copyFile(src, dst)
	}
	return nil
}

func verifySQLite(path string) error {
	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return err
	}
	defer db.Close()
	var n int
	return db.QueryRow("SELECT COUNT(*) FROM sqlite_master").Scan(&n)
}

func verifyJSON(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if !json.Valid(data) {
		return errors.New("malformed JSON document")
	}
	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.ReadFrom(in); err != nil {
		return err
	}
	return out.Sync()
}
