package main

import (
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/osse101/WheelShow_Go/internal/config"
	"github.com/osse101/WheelShow_Go/internal/event"
)

// DeadLettersCommand summarises round events the publisher gave up on
type DeadLettersCommand struct{}

func (c *DeadLettersCommand) Name() string {
	return "dead-letters"
}

func (c *DeadLettersCommand) Description() string {
	return "List round events that exhausted their delivery retries"
}

func (c *DeadLettersCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	path := fs.String("file", getEnv(config.EnvDeadLetterPath, config.DefaultDeadLetterPath), "dead-letter file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	entries, err := event.ReadDeadLetters(*path)
	if err != nil {
		return err
	}

	PrintHeader(fmt.Sprintf("Dead letters (%s)", *path))
	if len(entries) == 0 {
		PrintSuccess("No dead-lettered events")
		return nil
	}
	writeDeadLetterTable(uiOut, entries)
	PrintWarning("%d event(s) were not delivered", len(entries))
	return nil
}

func writeDeadLetterTable(w io.Writer, entries []event.DeadLetterEntry) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tTYPE\tROUND\tATTEMPTS\tERROR")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n",
			e.Timestamp.Format("2006-01-02 15:04:05"), e.Event.Type, e.Event.RoundID, e.Attempts, e.LastError)
	}
	_ = tw.Flush()
}
