package main

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	testResume  = "../../testdata/valid/resume.json"
	testMinimal = "../../testdata/valid/resume_minimal.json"
	testJob     = "../../testdata/valid/job.txt"
)

// execute runs the CLI in-process with fresh flag state and returns stdout
// and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	for _, name := range []string{"REDIS_URL", "REDIS_ADDR", "CACHE_TTL", "PORT", "LOG_LEVEL"} {
		t.Setenv(name, "")
	}

	resetFlags(rootCmd)
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

// stubClient returns a canned generator response.
type stubClient struct {
	mu       sync.Mutex
	response string
	err      error
	calls    int
}

func (c *stubClient) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	return c.GenerateJSON(ctx, prompt, tier)
}

func (c *stubClient) GenerateJSON(context.Context, string, llm.ModelTier) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	return c.response, c.err
}

func (c *stubClient) GetModel(llm.ModelTier) string { return "stub" }

func (c *stubClient) Close() error { return nil }

// useStub routes generator calls to client for the rest of the test.
func useStub(t *testing.T, client *stubClient) {
	t.Helper()
	orig := newLLMClient
	newLLMClient = func(context.Context, *llm.Config, string) (llm.Client, error) {
		return client, nil
	}
	t.Cleanup(func() { newLLMClient = orig })
}
