package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/rfz/internal/config"
	statepkg "github.com/kk-code-lab/rfz/internal/state"
	renderui "github.com/kk-code-lab/rfz/internal/ui/render"
)

func newTestTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "Docs"), 0o755); err != nil {
		t.Fatal(err)
	}
	files := map[string]string{
		filepath.Join(root, "Docs", "guide.md"): "# guide\n",
		filepath.Join(root, "readme.txt"):       "hello\n",
		filepath.Join(root, "photo.bin"):        "\x00\x01\x02",
	}
	for path, body := range files {
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.TextPatterns = []string{"*.txt", "*.md"}
	cfg.MimeCommand = "rfz-test-no-such-command"
	cfg.Preview.SyntaxStyle = ""
	return cfg
}

// newTestApplication builds an app on a simulation screen. Run finalizes
// the screen itself, so callers that never Run get a cleanup instead.
func newTestApplication(t *testing.T, cfg *config.Config, root string, willRun bool) (*Application, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("failed to init screen: %v", err)
	}
	screen.SetSize(80, 24)
	if !willRun {
		t.Cleanup(screen.Fini)
	}

	app, err := newApplication(screen, cfg, nil, root)
	if err != nil {
		t.Fatalf("newApplication: %v", err)
	}
	return app, screen
}

func TestRunFiltersOpensAndQuits(t *testing.T) {
	root := newTestTree(t)
	app, screen := newTestApplication(t, testConfig(), root, true)

	screen.InjectKey(tcell.KeyRune, 'd', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'o', tcell.ModNone)
	screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'Q', tcell.ModNone)

	app.Run()

	if got := filepath.Base(app.CurrentPath()); got != "Docs" {
		t.Fatalf("expected to end in Docs, got %q", app.CurrentPath())
	}
}

func TestRunQuitsOnCtrlC(t *testing.T) {
	root := newTestTree(t)
	app, screen := newTestApplication(t, testConfig(), root, true)

	screen.InjectKey(tcell.KeyCtrlC, 0, tcell.ModNone)
	app.Run()

	if !app.shouldQuit {
		t.Fatalf("expected quit flag after Ctrl-C")
	}
}

func TestHandleActionRenderRelayouts(t *testing.T) {
	app, screen := newTestApplication(t, testConfig(), newTestTree(t), false)

	screen.SetSize(40, 8)
	app.handleAction(statepkg.RenderAction{})

	want := renderui.Rect{X: 20, Y: 1, Width: 20, Height: 7}
	if got := app.views.Layout().Preview; got != want {
		t.Fatalf("expected preview rect %+v, got %+v", want, got)
	}
	if app.shouldQuit {
		t.Fatalf("render must not quit")
	}
}

func TestHandleActionQuitAndNil(t *testing.T) {
	app, _ := newTestApplication(t, testConfig(), newTestTree(t), false)

	app.handleAction(nil)
	if app.shouldQuit {
		t.Fatalf("nil action must be ignored")
	}
	app.handleAction(statepkg.QuitAction{})
	if !app.shouldQuit {
		t.Fatalf("expected quit flag")
	}
}

func TestOpenTextFileRunsEditor(t *testing.T) {
	root := newTestTree(t)
	cfg := testConfig()
	cfg.Editor = "fake-editor --wait"
	app, _ := newTestApplication(t, cfg, root, false)
	stubLookPath(t, nil)

	if visible := app.controller.Visible(); len(visible) != 3 || visible[2].Name != "readme.txt" {
		t.Fatalf("expected readme.txt last, got %+v", visible)
	}

	var recorded []string
	withFakeCommandBuilder(t, 0, &recorded, func() {
		app.handleAction(statepkg.CursorDownAction{})
		app.handleAction(statepkg.CursorDownAction{})
		app.handleAction(statepkg.OpenAction{})
	})

	want := filepath.Join(app.CurrentPath(), "readme.txt")
	assertCommandRecorded(t, recorded, []string{"fake-editor", "--wait", want})
	if filepath.Base(app.CurrentPath()) != filepath.Base(root) {
		t.Fatalf("opening a file must not change directory, got %q", app.CurrentPath())
	}
}

func TestOpenOtherFileRunsOpener(t *testing.T) {
	root := newTestTree(t)
	cfg := testConfig()
	cfg.Opener = "fake-open"
	app, _ := newTestApplication(t, cfg, root, false)

	var recorded []string
	withFakeCommandBuilder(t, 0, &recorded, func() {
		app.handleAction(statepkg.CursorDownAction{})
		app.handleAction(statepkg.OpenAction{})
	})

	assertCommandRecorded(t, recorded, []string{"fake-open", filepath.Join(app.CurrentPath(), "photo.bin")})
}

func TestOpenWithoutEditorKeepsRunning(t *testing.T) {
	root := newTestTree(t)
	cfg := testConfig()
	cfg.EditorEnv = "RFZ_TEST_UNSET_EDITOR"
	t.Setenv("RFZ_TEST_UNSET_EDITOR", "")
	app, _ := newTestApplication(t, cfg, root, false)

	var recorded []string
	withFakeCommandBuilder(t, 0, &recorded, func() {
		app.handleAction(statepkg.CursorDownAction{})
		app.handleAction(statepkg.CursorDownAction{})
		app.handleAction(statepkg.OpenAction{})
	})

	if recorded != nil {
		t.Fatalf("expected no process, got %v", recorded)
	}
	if app.shouldQuit {
		t.Fatalf("a missing editor must not stop the browser")
	}
}

func TestNewApplicationRejectsBadTextPattern(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("failed to init screen: %v", err)
	}
	t.Cleanup(screen.Fini)

	cfg := testConfig()
	cfg.TextPatterns = []string{"[unclosed"}
	if _, err := newApplication(screen, cfg, nil, t.TempDir()); err == nil {
		t.Fatalf("expected invalid pattern to fail")
	}
}
