package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/chrissnell/sundial/internal/planner"
	"github.com/chrissnell/sundial/pkg/config"
	"github.com/chrissnell/sundial/pkg/timezone"
	"github.com/stretchr/testify/require"
)

type countingResolver struct {
	calls int
}

func (c *countingResolver) UTCOffset(_, _ float64, _ time.Time) (timezone.Offset, error) {
	c.calls++
	return timezone.Offset{Zone: "UTC", Hours: 0}, nil
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestPlannerUsesResolver(t *testing.T) {
	resolver := &countingResolver{}
	a := New(config.NewYAMLProvider(writeConfig(t, "rest:\n  port: 9090\n")), resolver, nil)

	p, err := a.Planner()
	require.NoError(t, err)

	_, err = p.Plan(planner.Request{Latitude: 10, Longitude: 10})
	require.NoError(t, err)
	require.Equal(t, 1, resolver.calls)
}

func TestPlannerFixedOffsetFromConfig(t *testing.T) {
	resolver := &countingResolver{}
	a := New(config.NewYAMLProvider(writeConfig(t, "timezone:\n  utc_offset: 3\n")), resolver, nil)

	p, err := a.Planner()
	require.NoError(t, err)

	plan, err := p.Plan(planner.Request{Latitude: 10, Longitude: 10})
	require.NoError(t, err)
	require.Zero(t, resolver.calls)
	require.Equal(t, 45.0, plan.Result.CentralMeridian)
}

func TestRunStopsOnCancel(t *testing.T) {
	t.Setenv("SUNDIAL_LISTEN_ADDR", "127.0.0.1")
	t.Setenv("SUNDIAL_HTTP_PORT", "18181")
	a := New(config.NewYAMLProvider(""), timezone.Fixed{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
