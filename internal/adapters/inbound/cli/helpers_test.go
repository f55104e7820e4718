package cli_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yvolo/yvolo/internal/adapters/inbound/cli"
)

type testEnv struct {
	appDir      string
	projectsDir string
	userDataDir string
}

// setupEnv points every yvolo location at temporary folders and makes the
// external tools unavailable.
func setupEnv(t *testing.T) testEnv {
	t.Helper()
	root := t.TempDir()
	env := testEnv{
		appDir:      filepath.Join(root, "app"),
		projectsDir: filepath.Join(root, "proyectos"),
		userDataDir: filepath.Join(root, "userdata"),
	}
	t.Setenv("YVOLO_PACKAGED", "false")
	t.Setenv("YVOLO_HOME", env.appDir)
	t.Setenv("YVOLO_PROJECTS_DIR", env.projectsDir)
	t.Setenv("YVOLO_USERDATA_DIR", env.userDataDir)
	t.Setenv("YVOLO_BACKUPS_DIR", "backups")
	t.Setenv("YVOLO_EDITOR", "yvolo-missing-editor")
	t.Setenv("YVOLO_GH", "yvolo-missing-gh")
	return env
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	if args == nil {
		args = []string{}
	}
	root := cli.NewRootCmdForTest()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(stdin))
	err := root.Execute()
	return out.String(), err
}
