//go:build e2e && unix

package main

import (
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func startGlance(t *testing.T, delayMS int, args ...string) *TUITestFramework {
	t.Helper()
	tf := NewTUITest(t)
	t.Cleanup(tf.Cleanup)

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	configPath, err := tf.WriteConfig(delayMS, "")
	require.NoError(t, err, "Failed to write config")

	require.NoError(t, tf.StartApp(append([]string{"-config", configPath}, args...)...), "Failed to start app")
	require.True(t, tf.Ready(), "Home screen should render")
	return tf
}

func TestHomeScreenShowsFeed(t *testing.T) {
	t.Parallel()
	tf := startGlance(t, 200)

	require.True(t, tf.SeePlain("10 of 10 results"))
	require.True(t, tf.SeePlain("Welcome to Google Clone!"))
	require.True(t, tf.SeePlain("Translate"))
}

func TestSearchFiltersFeed(t *testing.T) {
	t.Parallel()
	tf := startGlance(t, 200)

	tf.ClearOutput()
	require.NoError(t, tf.Type("lens"))
	if !tf.SeePlain("1 of 10 results") {
		tf.DumpTailOnFail(t, "search-lens", 4096)
		t.Fatal("query 'lens' should leave one card")
	}
	require.True(t, tf.SeePlain("Explore the world through"))

	// x clears the query again
	tf.ClearOutput()
	require.NoError(t, tf.SendKeys("x"))
	require.True(t, tf.SeePlain("10 of 10 results"))
}

func TestSearchSuggestsCorrection(t *testing.T) {
	t.Parallel()
	tf := startGlance(t, 200)

	require.NoError(t, tf.Type("lense"))
	require.True(t, tf.SeePlain("Did you mean: lens"))
}

func TestVoiceSearchAdoptsResult(t *testing.T) {
	t.Parallel()
	tf := startGlance(t, 200)

	tf.ClearOutput()
	require.NoError(t, tf.SendKeys(KeyMic))
	require.True(t, tf.SeePlain("Speak now"), "Voice overlay should open")

	if !tf.SeePlain("1 of 10 results") {
		tf.DumpTailOnFail(t, "voice-result", 4096)
		t.Fatal("voice result should filter the feed")
	}
	require.True(t, tf.SeePlain("AI Voice Search"))
}

func TestVoiceSearchCancel(t *testing.T) {
	t.Parallel()
	tf := startGlance(t, 1500)

	require.NoError(t, tf.SendKeys(KeyMic))
	require.True(t, tf.SeePlain("Speak now"), "Voice overlay should open")
	require.NoError(t, tf.SendEsc())

	tf.ClearOutput()
	// Past the capture delay: nothing may be adopted
	time.Sleep(2 * time.Second)
	require.NotContains(t, tf.SnapshotPlain(), "1 of 10 results")
}

func TestLensFlow(t *testing.T) {
	t.Parallel()
	tf := startGlance(t, 200)

	require.NoError(t, tf.SendKeys(KeyCamera))
	require.True(t, tf.SeePlain("Choose Image Source"))

	require.NoError(t, tf.SendKeys(KeyCamera))
	if !tf.SeePlain("Visual matches") {
		tf.DumpTailOnFail(t, "lens", 4096)
		t.Fatal("lens screen should show results")
	}
	require.True(t, tf.SeePlain("Stylish Top 1"))
	require.True(t, tf.SeePlain("Myntra"))

	tf.ClearOutput()
	require.NoError(t, tf.SendKeys(KeyBack))
	require.True(t, tf.SeePlain("10 of 10 results"), "b should return home")
}

func TestCustomFeedFile(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	t.Cleanup(tf.Cleanup)

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err)
	configPath, err := tf.WriteConfig(200, "")
	require.NoError(t, err)
	feedPath, err := tf.WriteFeed(`[[items]]
id = 1
kind = "text"
title = "Gophers"
description = "Small burrowing rodents"

[[items]]
id = 2
kind = "image"
image_url = "https://example.com/gopher.png"
caption = "A gopher in the wild"
`)
	require.NoError(t, err)

	require.NoError(t, tf.StartApp("-config", configPath, "-feed", feedPath))
	require.True(t, tf.SeePlain("2 of 2 results"))
	require.True(t, tf.SeePlain("Gophers"))
}

func TestApplicationExit(t *testing.T) {
	t.Parallel()
	tf := startGlance(t, 200)

	done := make(chan error, 1)
	go func() {
		done <- tf.cmd.Wait()
	}()

	require.NoError(t, tf.Quit())

	select {
	case exitErr := <-done:
		require.NoError(t, exitErr, "q should exit cleanly")
		tf.cmd = nil
	case <-time.After(1500 * time.Millisecond):
		tf.DumpTailOnFail(t, "exit-failure", 4096)
		tf.SendCtrlC()
		t.Fatal("Application did not exit after q")
	}
}

func TestHelpFlag(t *testing.T) {
	t.Parallel()

	if _, err := os.Stat(binPath); os.IsNotExist(err) {
		t.Skip("Test binary not found - TestMain may not have run yet")
	}

	out, err := exec.Command(binPath, "-help").CombinedOutput()
	require.NoError(t, err, "Help flag should exit cleanly")

	output := string(out)
	require.True(t, strings.Contains(output, "-config"), "Help should list -config")
	require.True(t, strings.Contains(output, "-feed"), "Help should list -feed")
}
