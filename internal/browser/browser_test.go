package browser

import (
	"path/filepath"
	"testing"
)

func TestCommandRejectsNonHTTP(t *testing.T) {
	tests := []string{
		"file:///etc/passwd",
		"javascript:alert(1)",
		"ftp://example.com",
	}
	for _, u := range tests {
		if _, err := command("linux", u); err == nil {
			t.Errorf("command(%q): expected error for non-http scheme", u)
		}
	}
}

func TestCommandPerPlatform(t *testing.T) {
	tests := []struct {
		goos string
		bin  string
	}{
		{"darwin", "open"},
		{"linux", "xdg-open"},
		{"freebsd", "xdg-open"},
		{"windows", "rundll32"},
	}
	for _, tt := range tests {
		cmd, err := command(tt.goos, "http://localhost:8501/")
		if err != nil {
			t.Fatalf("command(%s): %v", tt.goos, err)
		}
		if got := filepath.Base(cmd.Args[0]); got != tt.bin {
			t.Errorf("%s: expected %s, got %s", tt.goos, tt.bin, got)
		}
		if last := cmd.Args[len(cmd.Args)-1]; last != "http://localhost:8501/" {
			t.Errorf("%s: URL not passed as last argument: %v", tt.goos, cmd.Args)
		}
	}
}

func TestLocalURL(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{"127.0.0.1:8501", "http://127.0.0.1:8501/"},
		{":8501", "http://localhost:8501/"},
		{"0.0.0.0:80", "http://localhost:80/"},
		{"example.com", "http://example.com/"},
	}
	for _, tt := range tests {
		if got := LocalURL(tt.addr); got != tt.want {
			t.Errorf("LocalURL(%q) = %q, want %q", tt.addr, got, tt.want)
		}
	}
}
