// Package runtimepath locates the per-user runtime directory that holds
// the control socket.
package runtimepath

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// SocketEnv overrides the control socket path when set
const SocketEnv = "AQUAWM_SOCKET"

const socketName = "aquawm.sock"

// Dir returns the runtime directory for the control socket, trying in
// order $XDG_RUNTIME_DIR, /run/user/<uid> and a private directory under
// the system temp dir.
func Dir() (string, error) {
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return dir, nil
	}

	uid := os.Getuid()
	runUser := filepath.Join("/run/user", strconv.Itoa(uid))
	if info, err := os.Stat(runUser); err == nil && info.IsDir() {
		return runUser, nil
	}
	return privateDir(os.TempDir(), uid)
}

// privateDir creates base/aquawm-runtime-<uid> and refuses it when other
// users can reach it.
func privateDir(base string, uid int) (string, error) {
	dir := filepath.Join(base, "aquawm-runtime-"+strconv.Itoa(uid))
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("create runtime dir: %w", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("stat runtime dir: %w", err)
	}
	if perm := info.Mode().Perm(); perm&0o077 != 0 {
		return "", fmt.Errorf("runtime dir %s has mode %o, want 0700", dir, perm)
	}
	return dir, nil
}

// SocketPath returns the control socket path
func SocketPath() (string, error) {
	if p := os.Getenv(SocketEnv); p != "" {
		return p, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, socketName), nil
}
