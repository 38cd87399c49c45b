package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_ReturnsConfigErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		body string
		want string
	}{
		{"invalid cron", `
telegram: {bot_token: t, chat_id: "1"}
market: {offline: true}
database: {sqlite_path: ` + filepath.Join(dir, "runs.db") + `}
schedule: {update_cron: "every six hours"}
`, "update_cron"},
		{"fetch count too large", `
telegram: {bot_token: t, chat_id: "1"}
market: {fetch_count: 500}
`, "fetch_count"},
		{"unparseable file", "telegram: [", "parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "_")+".yaml")
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatal(err)
			}
			t.Setenv("CONFIG_PATH", path)
			t.Setenv("CRON_UPDATE", "")

			err := run()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("run() = %v, want error containing %q", err, tt.want)
			}
		})
	}

	if _, err := os.Stat(filepath.Join(dir, "runs.db")); !os.IsNotExist(err) {
		t.Errorf("database must not be opened before the config is valid")
	}
}
