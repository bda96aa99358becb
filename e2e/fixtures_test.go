//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// CreateTestWorkspace creates a temporary directory the app runs in
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// WriteConfig writes a config with a short voice delay and returns its path
func (tf *TUITestFramework) WriteConfig(delayMS int, extra string) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}
	content := fmt.Sprintf(`version = 1

[voice]
delay_ms = %d
placeholder = "voice search"
timeout_ms = 2000

[picker]
width = 300
height = 400
crop = true

[ui]
title = "Google"
shortcuts = ["Search", "Translate", "Image", "Homework"]
status_timeout_ms = 3000

[log]
file = "glance.log"
%s`, delayMS, extra)

	path := filepath.Join(tf.workspace, "glance.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// WriteFeed writes a feed file into the workspace
func (tf *TUITestFramework) WriteFeed(content string) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}
	path := filepath.Join(tf.workspace, "feed.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", err
	}
	return path, nil
}
