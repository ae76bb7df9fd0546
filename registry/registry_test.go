package registry

import (
	"bytes"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/philipp01105/labellog/core"
)

func newTestRegistry() (*Registry, *bytes.Buffer) {
	var buf bytes.Buffer
	return New(Config{Writer: &buf}), &buf
}

func hasEscape(s string) bool {
	return strings.Contains(s, "\x1b[")
}

func TestGetLabeledInstance_SameIdentitySameLogger(t *testing.T) {
	reg, _ := newTestRegistry()

	first := reg.GetLabeledInstance("svc", "worker", nil)
	second := reg.GetLabeledInstance("svc", "worker", &Options{Colorize: Bool(false)})
	third := reg.GetLabeledInstance("svc", "worker", &Options{Environment: "prod"})

	if first != second || first != third {
		t.Fatal("Expected the same logger for the same category and callee")
	}
	if reg.Len() != 1 {
		t.Errorf("Len() = %d, want 1", reg.Len())
	}
}

func TestGetLabeledInstance_DistinctIdentities(t *testing.T) {
	reg, _ := newTestRegistry()

	a := reg.GetLabeledInstance("svc", "", nil)
	b := reg.GetLabeledInstance("svc", "worker", nil)
	c := reg.GetLabeledInstance("other", "worker", nil)

	if a == b || b == c || a == c {
		t.Fatal("Expected distinct loggers for distinct identities")
	}
	if reg.Len() != 3 {
		t.Errorf("Len() = %d, want 3", reg.Len())
	}
}

func TestGetLabeledInstance_Defaults(t *testing.T) {
	reg, buf := newTestRegistry()

	l := reg.GetLabeledInstance("", "", nil)
	if got, ok := reg.Lookup("main", ""); !ok || got != l {
		t.Fatal("Expected empty category to resolve to identity main-")
	}
	if ids := reg.Identities(); len(ids) != 1 || ids[0] != "main-" {
		t.Errorf("Identities() = %v, want [main-]", ids)
	}
	if l.Category() != "main" || l.Callee() != "" {
		t.Errorf("Unexpected label: %q %q", l.Category(), l.Callee())
	}

	l.Info("hello")
	if plain := ansi.Strip(buf.String()); !strings.Contains(plain, "[main]: hello") {
		t.Errorf("Expected [main] label, got: %q", plain)
	}
	if !hasEscape(buf.String()) {
		t.Errorf("Expected colorized output by default, got: %q", buf.String())
	}
}

func TestIdentity(t *testing.T) {
	tests := []struct {
		category, callee, want string
	}{
		{"", "", "main-"},
		{"svc", "", "svc-"},
		{"svc", "worker", "svc-worker"},
		{"", "worker", "main-worker"},
	}

	for _, tt := range tests {
		if got := Identity(tt.category, tt.callee); got != tt.want {
			t.Errorf("Identity(%q, %q) = %q, want %q", tt.category, tt.callee, got, tt.want)
		}
	}
}

func TestGetLabeledInstance_Colorize(t *testing.T) {
	tests := []struct {
		name     string
		opts     *Options
		colorize bool
	}{
		{"nil options", nil, true},
		{"empty options", &Options{}, true},
		{"prod environment", &Options{Environment: "prod"}, false},
		{"colorize false", &Options{Colorize: Bool(false)}, false},
		{"colorize true", &Options{Colorize: Bool(true)}, true},
		{"prod wins over colorize true", &Options{Colorize: Bool(true), Environment: "prod"}, false},
		{"other environment", &Options{Environment: "staging"}, true},
		{"environment is case sensitive", &Options{Environment: "PROD"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, buf := newTestRegistry()
			l := reg.GetLabeledInstance("x", "y", tt.opts)

			l.Info("colored?")
			l.Warn("colored?")
			l.Error("colored?")
			l.Debug("colored?")

			if got := hasEscape(buf.String()); got != tt.colorize {
				t.Errorf("escape codes present = %v, want %v; output: %q", got, tt.colorize, buf.String())
			}
		})
	}
}

func TestGetLabeledInstance_LevelPadding(t *testing.T) {
	reg, buf := newTestRegistry()
	l := reg.GetLabeledInstance("svc", "", &Options{Colorize: Bool(false)})

	l.Info("padded")

	line := buf.String()
	// "<date> <time> [INFO]<13 spaces> --- [svc]: padded"
	_, rest, ok := strings.Cut(line, ".")
	if !ok || len(rest) < 4 {
		t.Fatalf("Unexpected line: %q", line)
	}
	token := rest[4 : 4+19]
	if token != "[INFO]"+strings.Repeat(" ", 13) {
		t.Errorf("Level token = %q, want [INFO] padded to 19", token)
	}
	if !strings.HasSuffix(line, token+" --- [svc]: padded\n") {
		t.Errorf("Unexpected line layout: %q", line)
	}
}

func TestGetLabeledInstance_CalleeSuffix(t *testing.T) {
	reg, buf := newTestRegistry()
	off := &Options{Colorize: Bool(false)}

	reg.GetLabeledInstance("svc", "worker", off).Info("with callee")
	reg.GetLabeledInstance("svc", "", off).Info("without callee")

	out := buf.String()
	if !strings.Contains(out, " --- [svc:worker]: with callee\n") {
		t.Errorf("Expected [svc:worker] segment, got: %q", out)
	}
	if !strings.Contains(out, " --- [svc]: without callee\n") {
		t.Errorf("Expected [svc] segment without colon, got: %q", out)
	}
}

func TestGetLabeledInstance_FirstWriterWins(t *testing.T) {
	reg, buf := newTestRegistry()

	first := reg.GetLabeledInstance("a", "", &Options{Colorize: Bool(false)})
	second := reg.GetLabeledInstance("a", "", &Options{Colorize: Bool(true)})
	if first != second {
		t.Fatal("Expected cached logger on second request")
	}

	second.Info("still plain")
	second.Error("still plain")
	if hasEscape(buf.String()) {
		t.Errorf("Second request options must be ignored, got colored output: %q", buf.String())
	}
}

func TestGetLabeledInstance_TimestampLayout(t *testing.T) {
	var buf bytes.Buffer
	reg := New(Config{Writer: &buf, TimestampFormat: "TS"})

	reg.GetLabeledInstance("svc", "", &Options{Environment: "prod"}).Verbose("msg")

	want := "TS [VERBOSE]          --- [svc]: msg\n"
	if buf.String() != want {
		t.Errorf("Output = %q, want %q", buf.String(), want)
	}
}

func TestGetLabeledInstance_MinimumLevel(t *testing.T) {
	var buf bytes.Buffer
	reg := New(Config{Writer: &buf, Level: core.WarnLevel})

	l := reg.GetLabeledInstance("svc", "", nil)
	l.Info("hidden")
	l.Warn("shown")

	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("Unexpected output: %q", buf.String())
	}
}

func TestGetLabeledInstance_Concurrent(t *testing.T) {
	reg, buf := newTestRegistry()

	const workers = 16
	results := make([]any, workers)

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			l := reg.GetLabeledInstance("race", "callee", nil)
			l.Info("line")
			results[i] = l
		}(i)
	}
	close(start)
	wg.Wait()

	for i := 1; i < workers; i++ {
		if results[i] != results[0] {
			t.Fatal("Concurrent first requests produced different loggers")
		}
	}
	if reg.Len() != 1 {
		t.Errorf("Len() = %d, want 1", reg.Len())
	}
	if n := strings.Count(buf.String(), "\n"); n != workers {
		t.Errorf("Expected %d lines, got %d", workers, n)
	}
}

func TestLookup_DoesNotBuild(t *testing.T) {
	reg, _ := newTestRegistry()

	if _, ok := reg.Lookup("svc", "worker"); ok {
		t.Fatal("Lookup() found a logger in an empty registry")
	}
	if reg.Len() != 0 {
		t.Errorf("Lookup() must not insert, Len() = %d", reg.Len())
	}

	l := reg.GetLabeledInstance("svc", "worker", nil)
	if got, ok := reg.Lookup("svc", "worker"); !ok || got != l {
		t.Error("Lookup() did not return the cached logger")
	}
}

func TestIdentities(t *testing.T) {
	reg, _ := newTestRegistry()
	reg.GetLabeledInstance("b", "", nil)
	reg.GetLabeledInstance("a", "x", nil)

	ids := reg.Identities()
	sort.Strings(ids)
	if strings.Join(ids, ",") != "a-x,b-" {
		t.Errorf("Identities() = %v, want [a-x b-]", ids)
	}
}

func TestOptions_ColorizeEnabled(t *testing.T) {
	var nilOpts *Options
	if !nilOpts.ColorizeEnabled() {
		t.Error("nil options should colorize")
	}
	if (&Options{Environment: ProdEnvironment}).ColorizeEnabled() {
		t.Error("prod environment should not colorize")
	}
}

func BenchmarkGetLabeledInstance_Cached(b *testing.B) {
	reg := New(Config{})
	reg.GetLabeledInstance("svc", "worker", nil)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		reg.GetLabeledInstance("svc", "worker", nil)
	}
}
