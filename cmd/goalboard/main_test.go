package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func runWith(args []string, input string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(input), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunExit(t *testing.T) {
	code, stdout, _ := runWith([]string{"--clear-screen=false"}, "7\n")

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Welcome to the Goal Management System!")
	assert.Contains(t, stdout, "Exiting...")
	assert.NotContains(t, stdout, "\x1b[2J")
}

func TestRunEndOfInput(t *testing.T) {
	code, _, _ := runWith(nil, "")
	assert.Equal(t, 0, code)
}

func TestRunAuditLogRedactsEmail(t *testing.T) {
	code, stdout, stderr := runWith([]string{"--log-level=info", "--log-format=text"}, "1\n7\n")

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "Email: test_user@gmail.com", "the menu shows the full address")
	assert.Contains(t, stderr, "entity event")
	assert.Contains(t, stderr, "session ended")
	assert.NotContains(t, stderr, "test_user@gmail.com", "logs never carry the full address")
}

func TestRunLogsStayOffStdout(t *testing.T) {
	_, stdout, _ := runWith([]string{"--log-level=debug"}, "1\n6\n7\n")
	assert.NotContains(t, stdout, `"level"`)
}

func TestRunFlagErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{name: "help", args: []string{"--help"}, want: 0},
		{name: "unknown flag", args: []string{"--no-such-flag"}, want: 2},
		{name: "bad log format", args: []string{"--log-format=xml"}, want: 1},
		{name: "bad log level", args: []string{"--log-level=loud"}, want: 1},
		{name: "missing config file", args: []string{"--config=/nonexistent/goalboard.yaml"}, want: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, stdout, _ := runWith(tc.args, "7\n")
			assert.Equal(t, tc.want, code)
			if tc.want != 0 {
				assert.NotContains(t, stdout, "Welcome", "the menu does not start")
			}
		})
	}
}

func TestRunCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	code := run(ctx, nil, strings.NewReader("7\n"), &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.NotContains(t, stdout.String(), "Exiting...")
}
