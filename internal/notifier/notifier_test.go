package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	ps "github.com/mitchellh/go-ps"

	"github.com/julianstephens/lifeos/internal/constants"
)

type fakeProcess struct {
	pid int
	exe string
}

func (p fakeProcess) Pid() int           { return p.pid }
func (p fakeProcess) PPid() int          { return 0 }
func (p fakeProcess) Executable() string { return p.exe }

func testNotifier(t *testing.T, exe string) (*Notifier, string) {
	t.Helper()
	base := t.TempDir()
	n := New()
	n.userConfigDir = func() (string, error) { return base, nil }
	n.findProcess = func(pid int) (ps.Process, error) {
		if exe == "" {
			return nil, nil
		}
		return fakeProcess{pid: pid, exe: exe}, nil
	}
	dir := filepath.Join(base, constants.TrayAppIdentifier)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	return n, dir
}

func TestTrayDir(t *testing.T) {
	n, dir := testNotifier(t, "lifeos-tray")

	got, err := n.trayDir()
	if err != nil || got != dir {
		t.Fatalf("trayDir() = %q, %v; want %q", got, err, dir)
	}

	custom := t.TempDir()
	settings := `{"settings": {"lockfile_dir": "` + custom + `"}}`
	if err := os.WriteFile(filepath.Join(dir, "settings.json"), []byte(settings), 0o644); err != nil {
		t.Fatal(err)
	}
	if got, _ := n.trayDir(); got != custom {
		t.Errorf("trayDir() with override = %q, want %q", got, custom)
	}
}

func TestParseLock(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"valid", "8080|123|s3cret\n", false},
		{"two parts", "8080|123", true},
		{"garbage", "invalid", true},
		{"empty secret", "8080|123|", true},
		{"empty port", "|123|s3cret", true},
		{"port out of range", "99999|123|s3cret", true},
		{"bad pid", "8080|abc|s3cret", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lock, err := parseLock(tt.content)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseLock(%q) error = %v, wantErr %v", tt.content, err, tt.wantErr)
			}
			if !tt.wantErr && (lock.port != 8080 || lock.pid != 123 || lock.secret != "s3cret") {
				t.Errorf("parseLock() = %+v", lock)
			}
		})
	}
}

func TestReadLock_VerifiesProcess(t *testing.T) {
	n, dir := testNotifier(t, "")
	path := filepath.Join(dir, constants.NotifierLockfileName)

	if _, err := n.readLock(path); !errors.Is(err, ErrTrayNotRunning) {
		t.Errorf("missing lockfile error = %v", err)
	}

	os.WriteFile(path, []byte("8080|42|s3cret"), 0o600)
	if _, err := n.readLock(path); !errors.Is(err, ErrTrayNotRunning) {
		t.Errorf("dead process error = %v", err)
	}

	n.findProcess = func(pid int) (ps.Process, error) { return fakeProcess{pid: pid, exe: "bash"}, nil }
	if _, err := n.readLock(path); err == nil {
		t.Error("foreign executable should be rejected")
	}

	n.findProcess = func(pid int) (ps.Process, error) { return fakeProcess{pid: pid, exe: "lifeos-tray"}, nil }
	if lock, err := n.readLock(path); err != nil || lock.secret != "s3cret" {
		t.Errorf("readLock() = %+v, %v", lock, err)
	}
}

func TestNotify_EndToEnd(t *testing.T) {
	var got Payload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.Header.Get(secretHeader) != "s3cret" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Unauthorized"))
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if got.Text == "fail" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	u, _ := url.Parse(server.URL)
	port, _ := strconv.Atoi(u.Port())

	n, dir := testNotifier(t, "lifeos-tray")
	lockContent := strconv.Itoa(port) + "|42|s3cret"
	os.WriteFile(filepath.Join(dir, constants.NotifierLockfileName), []byte(lockContent), 0o600)

	if err := n.Notify(context.Background(), "hello"); err != nil {
		t.Fatalf("Notify() error = %v", err)
	}
	if got.Text != "hello" || got.DurationMs != constants.NotificationDurationMs {
		t.Errorf("payload = %+v", got)
	}
	if err := n.Notify(context.Background(), "fail"); err == nil {
		t.Error("server error should surface")
	}

	bad := lockfile{port: port, pid: 42, secret: "wrong"}
	if err := n.send(context.Background(), bad, Payload{Text: "x"}); err == nil {
		t.Error("wrong secret should be rejected")
	}

	n.FocusFinished(context.Background(), "work")
	if got.Text != "Focus session complete. Take a break." {
		t.Errorf("FocusFinished payload = %q", got.Text)
	}
}
