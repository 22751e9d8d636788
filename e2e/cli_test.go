package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/guessr/internal/api"
	"github.com/mcoot/guessr/internal/api/response"
	"github.com/mcoot/guessr/internal/config"
	"github.com/mcoot/guessr/internal/factory"
	"github.com/mcoot/guessr/internal/model"
	"github.com/mcoot/guessr/internal/testutil"
)

// cliRunner runs the guessr binary against one SQLite database
type cliRunner struct {
	binaryPath string
	dbPath     string
}

func newCLIRunner(t *testing.T) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(t.TempDir(), "guessr-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/guessr")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		dbPath:     filepath.Join(t.TempDir(), "guessr.db"),
	}
}

// run executes the CLI with input on stdin and returns stdout. Stderr is
// folded into the error.
func (r *cliRunner) run(input string, args ...string) (string, error) {
	fullArgs := append([]string{
		"--storage", "sqlite",
		"--sqlite-path", r.dbPath,
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	cmd.Stdin = strings.NewReader(input)
	cmd.Env = append(os.Environ(), "GUESSR_STORAGE=", "GUESSR_DICTIONARY=")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return stdout.String(), fmt.Errorf("%w: %s", err, stderr.String())
	}
	return stdout.String(), nil
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// startTestServer serves the API over the runner's database
func startTestServer(t *testing.T, dbPath string) string {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	app, err := factory.New(context.Background(), config.Config{
		Storage:    config.StorageSQLite,
		SQLitePath: dbPath,
	}, testutil.NopLogger())
	require.NoError(t, err)

	server := &http.Server{
		Addr: addr,
		Handler: api.NewRouter(api.RouterConfig{
			Logger:         testutil.NopLogger(),
			PlayerService:  app.PlayerService,
			ScoringService: app.ScoringService,
			GameController: app.GameController,
		}),
	}

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(ctx)
		_ = app.Close()
	})

	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")
	return serverURL
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

func allGuesses() string {
	var b strings.Builder
	for guess := model.MinAnswer; guess <= model.MaxAnswer; guess++ {
		fmt.Fprintf(&b, "%d\n", guess)
	}
	return b.String()
}

// Tests

func TestCLI_PlayerCommands(t *testing.T) {
	cli := newCLIRunner(t)

	output, err := cli.run("", "player", "create", "alice")
	require.NoError(t, err)
	assert.Equal(t, "Player 1: alice\n", output)

	_, err = cli.run("", "player", "create", "alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid name: name is already taken")

	_, err = cli.run("", "player", "create", "   ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name must not be empty")

	output, err = cli.run("", "--output", "json", "player", "list")
	require.NoError(t, err)
	var players []model.Player
	require.NoError(t, json.Unmarshal([]byte(output), &players))
	require.Len(t, players, 1)
	assert.Equal(t, "alice", players[0].Name)
}

func TestCLI_NumberGameAcrossRuns(t *testing.T) {
	cli := newCLIRunner(t)

	output, err := cli.run("", "number", "new", "--player", "alice")
	require.NoError(t, err)
	assert.Contains(t, output, "Game 1 saved. Resume with: guessr number resume 1")

	output, err = cli.run(allGuesses(), "number", "resume", "1")
	require.NoError(t, err)
	assert.Contains(t, output, "That is correct! You've won!")

	_, err = cli.run("", "number", "resume", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "game is already finished")
}

func TestCLI_HangmanAndScoreboard(t *testing.T) {
	cli := newCLIRunner(t)

	output, err := cli.run("x\nquit\n", "hangman", "new", "--player", "bob", "--word", "owl")
	require.NoError(t, err)
	assert.Contains(t, output, "Game 1 saved. Resume with: guessr hangman resume 1")

	output, err = cli.run("o\nw\nl\n", "hangman", "resume", "1")
	require.NoError(t, err)
	assert.Contains(t, output, "Guessed: x")
	assert.Contains(t, output, `You won! The word was "owl".`)

	_, err = cli.run("a\nb\nc\nd\ne\nf\ng\n", "hangman", "new", "--player", "carol", "--word", "xyz")
	require.NoError(t, err)

	output, err = cli.run("", "-o", "json", "scoreboard")
	require.NoError(t, err)
	var entries []model.ScoreEntry
	require.NoError(t, json.Unmarshal([]byte(output), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "bob", entries[0].Name)
	assert.Equal(t, 1, entries[0].Score)
	assert.Equal(t, "carol", entries[1].Name)
	assert.Equal(t, 0, entries[1].Score)
}

func TestCLI_RemoteAgainstServer(t *testing.T) {
	cli := newCLIRunner(t)

	// create the schema before the server opens the same file
	_, err := cli.run("", "player", "create", "alice")
	require.NoError(t, err)

	serverURL := startTestServer(t, cli.dbPath)

	_, err = cli.run("c\na\nt\n", "hangman", "new", "--player", "alice", "--word", "cat")
	require.NoError(t, err)

	output, err := cli.run("", "remote", "--server", serverURL, "health")
	require.NoError(t, err)
	assert.Equal(t, "Status: ok\n", output)

	output, err = cli.run("", "-o", "json", "remote", "--server", serverURL, "games", "1")
	require.NoError(t, err)
	var games response.PlayerGames
	require.NoError(t, json.Unmarshal([]byte(output), &games))
	require.Len(t, games.HangmanGames, 1)
	assert.True(t, games.HangmanGames[0].Won)
	assert.Equal(t, "cat", games.HangmanGames[0].Answer)

	output, err = cli.run("", "-o", "json", "remote", "--server", serverURL, "scoreboard")
	require.NoError(t, err)
	var entries []model.ScoreEntry
	require.NoError(t, json.Unmarshal([]byte(output), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].HangmanWins)

	_, err = cli.run("", "remote", "--server", serverURL, "games", "99")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PLAYER_NOT_FOUND")
}
