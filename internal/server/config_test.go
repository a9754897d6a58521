package server

import (
	"os"
	"testing"
)

// chdir switches the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("Chdir restore: %v", err)
		}
	})
}

func TestLoadConfig(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(EnvAddr, "127.0.0.1:9090")
	t.Setenv(EnvRate, "2.5")
	t.Setenv(EnvBurst, "4")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	want := Config{Addr: "127.0.0.1:9090", Rate: 2.5, Burst: 4}
	if cfg != want {
		t.Errorf("got %+v, want %+v", cfg, want)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	chdir(t, t.TempDir())

	t.Setenv(EnvRate, "fast")
	if _, err := LoadConfig(); err == nil {
		t.Error("expected error for non-numeric rate")
	}

	t.Setenv(EnvRate, "1")
	t.Setenv(EnvBurst, "0")
	if _, err := LoadConfig(); err == nil {
		t.Error("expected error for zero burst")
	}
}
