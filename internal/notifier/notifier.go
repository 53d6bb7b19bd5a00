// Package notifier hands desktop notifications to the companion tray app.
// The tray writes "port|pid|secret" to a lockfile; we verify the pid belongs
// to the tray executable before posting to its loopback webhook.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	ps "github.com/mitchellh/go-ps"

	"github.com/julianstephens/lifeos/internal/constants"
	"github.com/julianstephens/lifeos/internal/logger"
)

const (
	secretHeader = "X-LifeOS-Secret"
	sendTimeout  = 3 * time.Second
)

var ErrTrayNotRunning = errors.New(constants.TrayExecutablePrefix + " is not running")

// Payload is the webhook body understood by the tray.
type Payload struct {
	Text       string `json:"text"`
	DurationMs uint32 `json:"duration_ms"`
}

type Notifier struct {
	userConfigDir func() (string, error)
	findProcess   func(int) (ps.Process, error)
	client        *http.Client
}

func New() *Notifier {
	return &Notifier{
		userConfigDir: os.UserConfigDir,
		findProcess:   ps.FindProcess,
		client:        &http.Client{Timeout: sendTimeout},
	}
}

// Notify shows text through the tray.
func (n *Notifier) Notify(ctx context.Context, text string) error {
	dir, err := n.trayDir()
	if err != nil {
		return err
	}
	lock, err := n.readLock(filepath.Join(dir, constants.NotifierLockfileName))
	if err != nil {
		return err
	}
	return n.send(ctx, lock, Payload{Text: text, DurationMs: constants.NotificationDurationMs})
}

// FocusFinished announces the end of a focus session. Failures are logged
// and otherwise ignored.
func (n *Notifier) FocusFinished(ctx context.Context, mode string) {
	text := "Focus session complete. Take a break."
	if mode == "break" {
		text = "Break is over. Back to focus."
	}
	if err := n.Notify(ctx, text); err != nil {
		logger.Debug("Notification not delivered", "error", err)
	}
}

// trayDir is the tray's config directory, or the lockfile_dir override from
// its settings.json.
func (n *Notifier) trayDir() (string, error) {
	base, err := n.userConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}
	dir := filepath.Join(base, constants.TrayAppIdentifier)

	data, err := os.ReadFile(filepath.Join(dir, "settings.json"))
	if err != nil {
		return dir, nil
	}
	var doc struct {
		Settings struct {
			LockfileDir string `json:"lockfile_dir"`
		} `json:"settings"`
	}
	if err := json.Unmarshal(data, &doc); err == nil && doc.Settings.LockfileDir != "" {
		return doc.Settings.LockfileDir, nil
	}
	return dir, nil
}

type lockfile struct {
	port   int
	pid    int
	secret string
}

func parseLock(content string) (lockfile, error) {
	parts := strings.Split(strings.TrimSpace(content), "|")
	if len(parts) != 3 {
		return lockfile{}, errors.New("lockfile is malformed")
	}
	port, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return lockfile{}, errors.New("invalid port number in lockfile")
	}
	if port < 1 || port > 65535 {
		return lockfile{}, fmt.Errorf("port number %d is outside valid range (1-65535)", port)
	}
	pid, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return lockfile{}, errors.New("invalid process ID in lockfile")
	}
	secret := strings.TrimSpace(parts[2])
	if secret == "" {
		return lockfile{}, errors.New("secret in lockfile is empty")
	}
	return lockfile{port: port, pid: pid, secret: secret}, nil
}

func (n *Notifier) readLock(path string) (lockfile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return lockfile{}, ErrTrayNotRunning
	}
	lock, err := parseLock(string(content))
	if err != nil {
		return lockfile{}, err
	}

	proc, err := n.findProcess(lock.pid)
	if err != nil || proc == nil {
		return lockfile{}, ErrTrayNotRunning
	}
	if !strings.HasPrefix(proc.Executable(), constants.TrayExecutablePrefix) {
		return lockfile{}, fmt.Errorf("process with PID %d is not %s (is %s)", lock.pid, constants.TrayExecutablePrefix, proc.Executable())
	}
	return lock, nil
}

func (n *Notifier) send(ctx context.Context, lock lockfile, payload Payload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	url := fmt.Sprintf("http://127.0.0.1:%d", lock.port)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(secretHeader, lock.secret)

	res, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}
	msg, _ := io.ReadAll(io.LimitReader(res.Body, 1024))
	return fmt.Errorf("notification failed with status %d: %s", res.StatusCode, strings.TrimSpace(string(msg)))
}
