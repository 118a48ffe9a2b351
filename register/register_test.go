package register

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func Test_SplitArgs_ProjectDirectory(t *testing.T) {
	directory, serveArgs := splitArgs([]string{"myproject"}, true)
	if directory != "myproject" {
		t.Errorf("expected myproject, got %q", directory)
	}
	if serveArgs != nil {
		t.Errorf("expected no serve args, got %v", serveArgs)
	}
}

func Test_SplitArgs_DefaultDirectory(t *testing.T) {
	directory, _ := splitArgs(nil, true)
	if directory != "." {
		t.Errorf("expected default directory, got %q", directory)
	}
}

func Test_SplitArgs_ForwardedFlags(t *testing.T) {
	directory, serveArgs := splitArgs([]string{".", "--", "-dir", ".docdex"}, true)
	if directory != "." {
		t.Errorf("expected ., got %q", directory)
	}
	want := []string{"-dir", ".docdex"}
	if !reflect.DeepEqual(serveArgs, want) {
		t.Errorf("expected %v, got %v", want, serveArgs)
	}
}

func Test_SplitArgs_UserScopeIgnoresDirectory(t *testing.T) {
	_, serveArgs := splitArgs([]string{"--", "-log-level", "debug"}, false)
	want := []string{"-log-level", "debug"}
	if !reflect.DeepEqual(serveArgs, want) {
		t.Errorf("expected %v, got %v", want, serveArgs)
	}
}

func Test_BuildEntry_IncludesServeSubcommand(t *testing.T) {
	entry := buildEntry("/usr/local/bin/docdex", []string{"-dir", ".docdex"})
	if entry.Args[0] != "serve" && entry.Args[2] != "serve" {
		t.Errorf("expected serve subcommand in args, got %v", entry.Args)
	}
}

func Test_Run_RejectsUnknownScope(t *testing.T) {
	if err := Run([]string{"global"}); err == nil {
		t.Error("expected error for unknown scope")
	}
	if err := Run(nil); err == nil {
		t.Error("expected error for missing scope")
	}
}

func Test_WriteConfig_PreservesOtherServers(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ".mcp.json")
	existing := `{"mcpServers":{"other":{"command":"/bin/other"}}}`
	if err := os.WriteFile(configPath, []byte(existing), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	entry := buildEntry("/usr/local/bin/docdex", nil)
	if err := writeConfig(configPath, entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var config map[string]map[string]json.RawMessage
	if err := json.Unmarshal(data, &config); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if _, ok := config["mcpServers"]["other"]; !ok {
		t.Error("existing server entry lost")
	}
	if _, ok := config["mcpServers"]["docdex"]; !ok {
		t.Error("docdex entry missing")
	}
}

func Test_WriteConfig_CreatesFreshFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), ".mcp.json")

	if err := writeConfig(configPath, buildEntry("/usr/local/bin/docdex", nil)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(configPath); err != nil {
		t.Errorf("expected config file, got %v", err)
	}
}
