package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// runCmd runs a subcommand and returns its exit code and output.
func runCmd(t *testing.T, command string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(command, args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

// tableRows returns the whitespace-split fields of every table line after the header.
func tableRows(out string) [][]string {
	var rows [][]string
	inTable := false
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "INDEX") {
			inTable = true
			continue
		}
		if inTable && strings.TrimSpace(line) != "" {
			rows = append(rows, strings.Fields(line))
		}
	}
	return rows
}

func TestRun_Commands(t *testing.T) {
	type tc struct {
		command  string
		args     []string
		wantCode int
		stdout   string
		stderr   string
	}

	tests := map[string]tc{
		"version": {
			command: "version",
			stdout:  "rowlayout version " + version,
		},
		"help": {
			command: "help",
			stdout:  "Commands:",
		},
		"unknown": {
			command:  "frobnicate",
			wantCode: 1,
			stderr:   "unknown command: frobnicate",
		},
		"layout without files": {
			command:  "layout",
			wantCode: 1,
			stderr:   "error: layout: no spec files given",
		},
		"bad flag": {
			command:  "layout",
			args:     []string{"-width", "wide"},
			wantCode: 1,
			stderr:   "error: layout:",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			code, stdout, stderr := runCmd(t, tt.command, tt.args...)
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d (stderr %q)", code, tt.wantCode, stderr)
			}
			if !strings.Contains(stdout, tt.stdout) {
				t.Errorf("stdout = %q, want it to contain %q", stdout, tt.stdout)
			}
			if !strings.Contains(stderr, tt.stderr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr, tt.stderr)
			}
		})
	}
}

func TestLayout_Table(t *testing.T) {
	code, stdout, stderr := runCmd(t, "layout", filepath.Join("testdata", "demo.toml"))
	if code != 0 {
		t.Fatalf("exit code = %d, stderr %q", code, stderr)
	}

	header := "testdata/demo.toml: width=300 alignment=right items=11 content=300x200"
	if !strings.Contains(stdout, filepath.FromSlash(header)) {
		t.Errorf("stdout = %q, want header %q", stdout, header)
	}

	rows := tableRows(stdout)
	if len(rows) != 11 {
		t.Fatalf("got %d table rows, want 11", len(rows))
	}
	want := map[int][]string{
		0:  {"0", "0", "0", "0", "0", "52", "30"},
		2:  {"2", "0", "2", "196", "0", "104", "30"},
		7:  {"7", "2", "0", "52", "100", "52", "30"},
		10: {"10", "3", "0", "180", "150", "120", "30"},
	}
	for i, fields := range want {
		if diff := cmp.Diff(fields, rows[i]); diff != "" {
			t.Errorf("row %d mismatch (-want +got):\n%s", i, diff)
		}
	}
}

func TestLayout_FlagsOverrideFile(t *testing.T) {
	code, stdout, stderr := runCmd(t, "layout",
		"-width", "110", "-item-spacing", "10", "-row-spacing", "0", "-item-height", "5",
		filepath.Join("testdata", "demo.toml"))
	if code != 0 {
		t.Fatalf("exit code = %d, stderr %q", code, stderr)
	}
	if !strings.Contains(stdout, "width=110") || !strings.Contains(stdout, "content=110x20") {
		t.Errorf("stdout = %q, want width=110 and content=110x20", stdout)
	}
}

func TestLayout_JSON(t *testing.T) {
	code, stdout, stderr := runCmd(t, "layout", "-json", "-width", "200",
		filepath.Join("testdata", "left.json"),
		filepath.Join("testdata", "demo.toml"))
	if code != 0 {
		t.Fatalf("exit code = %d, stderr %q", code, stderr)
	}

	var got []struct {
		Name           string     `json:"name"`
		ContainerWidth float64    `json:"container_width"`
		Config         configJSON `json:"config"`
		Rects          []rectJSON `json:"rects"`
		ContentSize    sizeJSON   `json:"content_size"`
	}
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, stdout)
	}
	if len(got) != 2 {
		t.Fatalf("got %d reports, want 2", len(got))
	}

	// Reports follow argument order regardless of which finished first.
	first := got[0]
	if first.Name != filepath.Join("testdata", "left.json") {
		t.Errorf("first report = %q, want left.json", first.Name)
	}
	if diff := cmp.Diff(configJSON{ItemSpacing: 10, RowSpacing: 0, ItemHeight: 10}, first.Config); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	wantRects := []rectJSON{
		{Index: 0, Row: 0, Column: 0, X: 0, Y: 0, Width: 38, Height: 10},
		{Index: 1, Row: 0, Column: 1, X: 48, Y: 0, Width: 38, Height: 10},
		{Index: 2, Row: 1, Column: 0, X: 0, Y: 10, Width: 200, Height: 10},
	}
	if diff := cmp.Diff(wantRects, first.Rects); diff != "" {
		t.Errorf("rects mismatch (-want +got):\n%s", diff)
	}
	if first.ContentSize != (sizeJSON{Width: 200, Height: 20}) {
		t.Errorf("content size = %+v, want 200x20", first.ContentSize)
	}
	if len(got[1].Rects) != 11 {
		t.Errorf("second report has %d rects, want 11", len(got[1].Rects))
	}
}

func TestLayout_InvalidFile(t *testing.T) {
	code, _, stderr := runCmd(t, "layout", filepath.Join("testdata", "bad.yaml"))
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr, "error:") {
		t.Errorf("stderr = %q, want an error", stderr)
	}
}

func TestCheck(t *testing.T) {
	code, stdout, stderr := runCmd(t, "check", "-v",
		filepath.Join("testdata", "demo.toml"),
		filepath.Join("testdata", "left.json"))
	if code != 0 {
		t.Fatalf("exit code = %d, stderr %q", code, stderr)
	}
	if !strings.Contains(stdout, "All 2 file(s) passed checks") {
		t.Errorf("stdout = %q", stdout)
	}

	code, _, stderr = runCmd(t, "check",
		filepath.Join("testdata", "demo.toml"),
		filepath.Join("testdata", "bad.yaml"),
		filepath.Join("testdata", "missing.toml"))
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	for _, want := range []string{
		"row 0: row must contain at least one item",
		"row 2: item fractions sum to 1.2, must not exceed 1",
		"item height must be a finite non-negative value, got -4",
		"missing.toml: reading spec file",
		"error: 2 file(s) had errors",
	} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr = %q, want it to contain %q", stderr, want)
		}
	}
}

func TestQuery(t *testing.T) {
	demo := filepath.Join("testdata", "demo.toml")

	type tc struct {
		args     []string
		wantCode int
		indexes  []string
	}

	tests := map[string]tc{
		"rect": {
			args:    []string{"-rect", "0,0,300,10", demo},
			indexes: []string{"0", "1", "2"},
		},
		"rect in gap": {
			args: []string{"-rect", "0,30,300,20", demo},
		},
		"index": {
			args:    []string{"-index", "7", demo},
			indexes: []string{"7"},
		},
		"point": {
			args:    []string{"-point", "80,10", demo},
			indexes: []string{"1"},
		},
		"point misses": {
			args: []string{"-point", "60,10", demo},
		},
		"demo rows": {
			args:    []string{"-demo", "-width", "300", "-index", "10"},
			indexes: []string{"10"},
		},
		"index out of range": {
			args:     []string{"-index", "11", demo},
			wantCode: 1,
		},
		"no mode": {
			args:     []string{demo},
			wantCode: 1,
		},
		"two modes": {
			args:     []string{"-index", "1", "-point", "1,1", demo},
			wantCode: 1,
		},
		"bad rect": {
			args:     []string{"-rect", "1,2,3", demo},
			wantCode: 1,
		},
		"no file": {
			args:     []string{"-index", "0"},
			wantCode: 1,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			code, stdout, stderr := runCmd(t, "query", tt.args...)
			if code != tt.wantCode {
				t.Fatalf("exit code = %d, want %d (stderr %q)", code, tt.wantCode, stderr)
			}
			if tt.wantCode != 0 {
				return
			}
			var got []string
			for _, row := range tableRows(stdout) {
				got = append(got, row[0])
			}
			if diff := cmp.Diff(tt.indexes, got); diff != "" {
				t.Errorf("indexes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDemo(t *testing.T) {
	code, stdout, stderr := runCmd(t, "demo", "-width", "300")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr %q", code, stderr)
	}
	if !strings.Contains(stdout, "demo: width=300 alignment=right items=11 content=300x200") {
		t.Errorf("stdout = %q", stdout)
	}
	if rows := tableRows(stdout); len(rows) != 11 {
		t.Errorf("got %d table rows, want 11", len(rows))
	}
}

func TestRound(t *testing.T) {
	type tc struct {
		in   float64
		want string
	}

	tests := map[string]tc{
		"integer":        {in: 52, want: "52"},
		"float noise":    {in: 52.00000000000001, want: "52"},
		"negative zero":  {in: -1e-14, want: "0"},
		"two decimals":   {in: 33.333333, want: "33.33"},
		"negative width": {in: -2, want: "-2"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := num(tt.in); got != tt.want {
				t.Errorf("num(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLayout_DebugLog(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "layout.log")
	code, _, stderr := runCmd(t, "layout", "-log", logPath, filepath.Join("testdata", "demo.toml"))
	if code != 0 {
		t.Fatalf("exit code = %d, stderr %q", code, stderr)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(data), "layout: width=300 rows=4 items=11 content=300x200") {
		t.Errorf("log = %q", data)
	}
}
