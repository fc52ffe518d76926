package app

import "testing"

func TestParseGitPorcelainBranchLine(t *testing.T) {
	tests := []struct {
		line       string
		wantUp     bool
		wantAhead  int
		wantBehind int
	}{
		{line: "## main", wantUp: false, wantAhead: 0, wantBehind: 0},
		{line: "## main...origin/main", wantUp: true, wantAhead: 0, wantBehind: 0},
		{line: "## main...origin/main [ahead 2]", wantUp: true, wantAhead: 2, wantBehind: 0},
		{line: "## main...origin/main [behind 3]", wantUp: true, wantAhead: 0, wantBehind: 3},
		{line: "## main...origin/main [ahead 1, behind 4]", wantUp: true, wantAhead: 1, wantBehind: 4},
	}

	for _, tc := range tests {
		gotUp, gotAhead, gotBehind := parseGitPorcelainBranchLine(tc.line)
		if gotUp != tc.wantUp || gotAhead != tc.wantAhead || gotBehind != tc.wantBehind {
			t.Fatalf("line %q: got up=%v ahead=%d behind=%d, want up=%v ahead=%d behind=%d",
				tc.line, gotUp, gotAhead, gotBehind, tc.wantUp, tc.wantAhead, tc.wantBehind)
		}
	}
}

func TestParseGitPorcelainFileLine(t *testing.T) {
	tests := []struct {
		line     string
		wantCode string
		wantPath string
		wantOK   bool
	}{
		{line: " M internal/app/model.go", wantCode: "M", wantPath: "internal/app/model.go", wantOK: true},
		{line: "?? notes.txt", wantCode: "??", wantPath: "notes.txt", wantOK: true},
		{line: "R  old.md -> new.md", wantCode: "R", wantPath: "new.md", wantOK: true},
		{line: "A  added.go", wantCode: "A", wantPath: "added.go", wantOK: true},
		{line: "", wantOK: false},
		{line: "??", wantOK: false},
	}

	for _, tc := range tests {
		got, ok := parseGitPorcelainFileLine(tc.line)
		if ok != tc.wantOK {
			t.Fatalf("line %q: ok=%v, want %v", tc.line, ok, tc.wantOK)
		}
		if !ok {
			continue
		}
		if got.code != tc.wantCode || got.path != tc.wantPath {
			t.Fatalf("line %q: got %q %q, want %q %q", tc.line, got.code, got.path, tc.wantCode, tc.wantPath)
		}
	}
}

func TestFirstLine(t *testing.T) {
	if got := firstLine("  one\ntwo\n"); got != "one" {
		t.Fatalf("firstLine = %q, want %q", got, "one")
	}
	if got := firstLine("   "); got != "" {
		t.Fatalf("firstLine of blank = %q, want empty", got)
	}
}
