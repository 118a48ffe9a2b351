// Package register wires docdex into an MCP client configuration so agents
// can reach the serve mode without manual setup.
package register

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const serverName = "docdex"

type mcpServerEntry struct {
	Command string   `json:"command"`
	Args    []string `json:"args,omitempty"`
}

// Run executes the register subcommand. args is everything after "register":
//
//	register project [directory]        → <directory>/.mcp.json (default: .)
//	register user                       → ~/.claude.json
//	register project . -- -dir .docdex  → forward flags to "docdex serve"
func Run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing scope (want \"project\" or \"user\")")
	}

	scope := args[0]
	if scope != "project" && scope != "user" {
		return fmt.Errorf("unknown scope %q (must be \"project\" or \"user\")", scope)
	}

	directory, serveArgs := splitArgs(args[1:], scope == "project")

	binaryPath, err := detectBinaryPath()
	if err != nil {
		return fmt.Errorf("detecting binary path: %w", err)
	}

	configPath, err := resolveConfigPath(scope, directory)
	if err != nil {
		return fmt.Errorf("resolving config path: %w", err)
	}

	if err := writeConfig(configPath, buildEntry(binaryPath, serveArgs)); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Printf("Registered %q in %s\n", serverName, configPath)
	return nil
}

// splitArgs separates the optional project directory from flags forwarded to
// the serve subcommand (everything after "--").
func splitArgs(args []string, wantDirectory bool) (directory string, serveArgs []string) {
	directory = "."
	for i, arg := range args {
		if arg == "--" {
			return directory, args[i+1:]
		}
		if i == 0 && wantDirectory {
			directory = arg
		}
	}
	return directory, nil
}

func detectBinaryPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("getting executable path: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("resolving symlinks for %s: %w", exe, err)
	}
	return resolved, nil
}

func resolveConfigPath(scope string, directory string) (string, error) {
	if scope == "project" {
		absDir, err := filepath.Abs(directory)
		if err != nil {
			return "", fmt.Errorf("resolving directory %s: %w", directory, err)
		}
		return filepath.Join(absDir, ".mcp.json"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(homeDir, ".claude.json"), nil
}

// buildEntry registers "docdex serve" plus any forwarded flags. Windows
// needs the cmd /C indirection for executables outside PATH.
func buildEntry(binaryPath string, serveArgs []string) mcpServerEntry {
	args := append([]string{"serve"}, serveArgs...)
	if runtime.GOOS == "windows" {
		return mcpServerEntry{
			Command: "cmd",
			Args:    append([]string{"/C", binaryPath}, args...),
		}
	}
	return mcpServerEntry{
		Command: binaryPath,
		Args:    args,
	}
}

func writeConfig(configPath string, entry mcpServerEntry) error {
	config := map[string]interface{}{
		"mcpServers": map[string]interface{}{},
	}

	if data, err := os.ReadFile(configPath); err == nil {
		if err := json.Unmarshal(data, &config); err != nil {
			return fmt.Errorf("parsing existing config %s: %w", configPath, err)
		}
	}

	servers, ok := config["mcpServers"]
	if !ok {
		servers = map[string]interface{}{}
		config["mcpServers"] = servers
	}
	serversMap, ok := servers.(map[string]interface{})
	if !ok {
		return fmt.Errorf("mcpServers in %s is not an object", configPath)
	}
	serversMap[serverName] = entry

	output, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	output = append(output, '\n')

	// Atomic write: temp file in the same directory, then rename.
	configDir := filepath.Dir(configPath)
	tmpFile, err := os.CreateTemp(configDir, ".mcp-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", configDir, err)
	}
	tmpPath := tmpFile.Name()

	if _, err := tmpFile.Write(output); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing temp file %s: %w", tmpPath, err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, configPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming %s to %s: %w", tmpPath, configPath, err)
	}
	return nil
}
