//go:build unit || integration
// +build unit integration

package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

const testAppKey = "cli-test-app-key-0123456789"

// writeTestConfig writes a config that uses a sqlite file and the local connector under t.TempDir()
func writeTestConfig(t *testing.T, admins string) string {
	t.Helper()

	dir := t.TempDir()
	content := fmt.Sprintf(`
port: "8080"
database:
  type: sqlite
  dsn: %q
blob_connector:
  cloud_provider: local
  local_root: %q
  public_base_url: http://localhost:8080/uploads
auth:
  app_key: %s
  issuer: article-service
  token_ttl: 1h
  admins: [%s]
logger:
  log_level: info
  log_type: console
`, filepath.Join(dir, "articles.db"), filepath.Join(dir, "uploads"), testAppKey, admins)

	path := filepath.Join(dir, "rest-app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// executeCommand runs the CLI with args against the given config and returns stdout
func executeCommand(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()

	rootCmd := &cobra.Command{Use: "article-service-cli", SilenceUsage: true, SilenceErrors: true}
	require.NoError(t, InitArticleCommands(rootCmd, &configPath))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}
