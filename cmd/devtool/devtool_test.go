package main

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/WheelShow_Go/internal/event"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry(&WatchCommand{}, &MigrateCommand{})
	r.Register(&HealthCheckCommand{})

	cmd, ok := r.Get("migrate")
	require.True(t, ok)
	assert.Equal(t, "migrate", cmd.Name())

	_, ok = r.Get("deploy")
	assert.False(t, ok)

	var names []string
	for _, c := range r.List() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"health-check", "migrate", "watch"}, names)
}

func TestReadEvents(t *testing.T) {
	body := strings.Join([]string{
		": connected",
		"event: round.phase",
		`data: {"phase":"SPINNING"}`,
		"",
		"event: round.flavor",
		"data: line one",
		"data: line two",
		"",
		"data: untyped",
		"",
		"event: dangling",
	}, "\n")

	type got struct{ typ, data string }
	var events []got
	err := readEvents(strings.NewReader(body), func(typ, data string) {
		events = append(events, got{typ, data})
	})
	require.NoError(t, err)

	assert.Equal(t, []got{
		{"round.phase", `{"phase":"SPINNING"}`},
		{"round.flavor", "line one\nline two"},
		{"message", "untyped"},
	}, events)
}

func TestCheckEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/readyz" {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	assert.NoError(t, checkEndpoint(srv.Client(), srv.URL+"/healthz"))
	assert.EqualError(t, checkEndpoint(srv.Client(), srv.URL+"/readyz"), "status code 503")
}

func TestMigrateCommand_RejectsUnknownSubcommand(t *testing.T) {
	err := (&MigrateCommand{}).Run([]string{"down"})
	assert.ErrorContains(t, err, "unknown subcommand")
}

type stubCommand struct {
	gotArgs []string
	err     error
}

func (s *stubCommand) Name() string        { return "stub" }
func (s *stubCommand) Description() string { return "records its args" }
func (s *stubCommand) Run(args []string) error {
	s.gotArgs = args
	return s.err
}

func TestRegistry_Dispatch(t *testing.T) {
	var help bytes.Buffer
	stub := &stubCommand{}
	r := NewRegistry(stub)
	r.out = &help

	require.NoError(t, r.Dispatch([]string{"stub", "-x", "1"}))
	assert.Equal(t, []string{"-x", "1"}, stub.gotArgs)

	err := r.Dispatch([]string{"nope"})
	assert.ErrorIs(t, err, errUnknownCommand)
	assert.Contains(t, help.String(), "records its args")

	stub.err = errors.New("kaput")
	assert.EqualError(t, r.Dispatch([]string{"stub"}), "stub: kaput")
}

func TestDeadLettersCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dl.jsonl")
	w, err := event.NewDeadLetterWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.Write(event.NewCountdownEvent("round-42", 3), 5, errors.New("sse hub gone")))
	require.NoError(t, w.Close())

	var out bytes.Buffer
	uiOut = &out
	t.Cleanup(func() { uiOut = os.Stdout })

	require.NoError(t, (&DeadLettersCommand{}).Run([]string{"-file", path}))
	assert.Contains(t, out.String(), "round-42")
	assert.Contains(t, out.String(), "sse hub gone")
	assert.Contains(t, out.String(), "1 event(s) were not delivered")
}

func TestDeadLettersCommand_MissingFile(t *testing.T) {
	var out bytes.Buffer
	uiOut = &out
	t.Cleanup(func() { uiOut = os.Stdout })

	require.NoError(t, (&DeadLettersCommand{}).Run([]string{"-file", filepath.Join(t.TempDir(), "none.jsonl")}))
	assert.Contains(t, out.String(), "No dead-lettered events")
}
