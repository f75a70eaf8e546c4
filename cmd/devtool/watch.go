package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strings"
)

type WatchCommand struct{}

func (c *WatchCommand) Name() string {
	return "watch"
}

func (c *WatchCommand) Description() string {
	return "Stream round events from a running instance (optional: comma separated types)"
}

func (c *WatchCommand) Run(args []string) error {
	query := url.Values{}
	if key := os.Getenv("API_KEY"); key != "" {
		query.Set("api_key", key)
	}
	if len(args) > 0 {
		query.Set("types", args[0])
	}
	target := apiURL() + "/api/v1/events"
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	PrintHeader("Watching round events (Ctrl+C to stop)")
	err = readEvents(resp.Body, func(eventType, data string) {
		fmt.Fprintf(uiOut, "%s%s%s %s\n", ansiBlue, eventType, ansiReset, data)
	})
	if ctx.Err() != nil {
		return nil
	}
	return err
}

// readEvents parses a text/event-stream body and calls fn once per event.
// Comment lines are skipped and multi-line data is joined with newlines.
func readEvents(r io.Reader, fn func(eventType, data string)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		eventType string
		data      []string
	)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == "":
			if len(data) > 0 {
				if eventType == "" {
					eventType = "message"
				}
				fn(eventType, strings.Join(data, "\n"))
			}
			eventType, data = "", nil
		case strings.HasPrefix(line, ":"):
		case strings.HasPrefix(line, "event:"):
			eventType = strings.TrimSpace(strings.TrimPrefix(line, "event:"))
		case strings.HasPrefix(line, "data:"):
			data = append(data, strings.TrimPrefix(strings.TrimPrefix(line, "data:"), " "))
		}
	}
	return scanner.Err()
}
