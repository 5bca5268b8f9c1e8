package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"irqshare/core"
	"irqshare/firmware"
	"irqshare/pattern/oncecell"
	"irqshare/pattern/steal"
	"irqshare/sim"
	"irqshare/sim/config"
)

func TestFormatSample(t *testing.T) {
	s := sim.Sample{Time: 0.1, Match: 1, Levels: firmware.Levels{P0: false, P6: true}}
	assert.Equal(t, "t=0.1000s match=1 P1.0=0 P1.6=1", formatSample(s))
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pattern: oncecell\nperiods: 5\n"), 0o644))

	cfg, err := loadConfig(&options{configFile: path, pattern: "steal"})
	require.NoError(t, err)
	assert.Equal(t, config.PatternSteal, cfg.Pattern)
	assert.Equal(t, 5, cfg.Periods)

	_, err = loadConfig(&options{pattern: "nope"})
	assert.Error(t, err)
}

func TestLoadConfigExplicitZeroPeriods(t *testing.T) {
	cfg, err := loadConfig(&options{periods: 0, periodsSet: true})
	require.NoError(t, err)
	assert.Zero(t, cfg.Periods)

	cfg, err = loadConfig(&options{})
	require.NoError(t, err)
	assert.Equal(t, config.Default().Periods, cfg.Periods)
}

func TestRunZeroPeriods(t *testing.T) {
	t.Cleanup(oncecell.Reset)

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"run", "--periods", "0", "--log-level", "error"})
	require.NoError(t, root.Execute())

	assert.Equal(t, "t=0.0000s match=0 P1.0=1 P1.6=0\n", out.String())
}

func TestDumpFaultLogsAtErrorLevel(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(prev)
		core.SetDebugWriter(func(string) {})
		core.ClearEventRing()
	})

	var logs bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelInfo})))

	core.ClearEventRing()
	core.RecordEvent(core.EvtTake, 0)
	core.SetDebugWriter(func(s string) { slog.Debug(s) })

	dumpFault()

	text := logs.String()
	assert.Contains(t, text, "level=ERROR")
	assert.Contains(t, text, "Event Ring Dump")
	assert.Contains(t, text, "TAKE")
}

func TestProgramFor(t *testing.T) {
	p, err := programFor("oncecell")
	require.NoError(t, err)
	assert.Equal(t, "oncecell", p.Name())

	p, err = programFor("steal")
	require.NoError(t, err)
	assert.Equal(t, "steal", p.Name())

	_, err = programFor("other")
	assert.Error(t, err)
}

func TestRunCommand(t *testing.T) {
	t.Cleanup(steal.Reset)

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"run", "--pattern", "steal", "--periods", "2", "--log-level", "error"})
	require.NoError(t, root.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "t=0.0000s match=0 P1.0=1 P1.6=0", lines[0])
	assert.Contains(t, lines[1], "match=1 P1.0=0 P1.6=1")
	assert.Contains(t, lines[2], "match=2 P1.0=1 P1.6=0")
}

func TestEventsCommand(t *testing.T) {
	t.Cleanup(oncecell.Reset)

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"events", "--periods", "1", "--log-level", "error"})
	require.NoError(t, root.Execute())

	text := out.String()
	for _, name := range []string{"TAKE", "CONFIGURE", "INSTALL", "UNMASK", "ISR_ENTER", "ISR_EXIT"} {
		assert.Contains(t, text, name)
	}
}
