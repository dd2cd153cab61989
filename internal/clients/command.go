package clients

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"mvdan.cc/sh/v3/shell"

	"github.com/ethanolivertroy/debcrates/internal/log"
)

// CommandSource runs an external command and returns its standard output
type CommandSource struct {
	name string
	args []string
}

// NewCommandSource parses a command line using shell quoting rules.
// Variable references such as $HOME are passed through literally.
func NewCommandSource(cmdline string) (*CommandSource, error) {
	fields, err := shell.Fields(cmdline, func(name string) string { return "$" + name })
	if err != nil {
		return nil, fmt.Errorf("invalid command %q: %w", cmdline, err)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("invalid command %q: empty", cmdline)
	}
	return &CommandSource{name: fields[0], args: fields[1:]}, nil
}

// String returns the command line
func (c *CommandSource) String() string {
	return strings.Join(append([]string{c.name}, c.args...), " ")
}

// Fetch runs the command to completion. Only a failure to start the command
// is an error; the exit status is ignored like the text it printed.
func (c *CommandSource) Fetch(ctx context.Context) (string, error) {
	log.Debugf("running %s", c)

	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, c.name, c.args...)
	cmd.Stdout = &stdout

	if err := cmd.Start(); err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrToolLaunch, c.name, err)
	}
	if err := cmd.Wait(); err != nil {
		log.Debugf("%s exited: %v", c.name, err)
	}

	return decodeLossy(stdout.Bytes()), nil
}
