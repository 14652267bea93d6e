package list

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantName string
		wantPath string
		wantErr  bool
	}{
		{
			name:     "tagged session, no space after tag",
			raw:      "[t]my-session",
			wantName: "my-session",
		},
		{
			name:     "tagged session with space",
			raw:      "[t] my-session",
			wantName: "my-session",
		},
		{
			name:     "tagged path yields empty name",
			raw:      "[z]/home/user/proj",
			wantName: "",
			wantPath: "/home/user/proj",
		},
		{
			name:     "bare name without prefix",
			raw:      "my-session",
			wantName: "my-session",
		},
		{
			name:     "multi token name",
			raw:      "my session name",
			wantName: "my session name",
		},
		{
			name:     "name followed by path",
			raw:      "[t] my session /work/x",
			wantName: "my session",
			wantPath: "/work/x",
		},
		{
			name:     "trailing tokens after path are discarded",
			raw:      "api /srv/api stray tokens",
			wantName: "api",
			wantPath: "/srv/api",
		},
		{
			name:     "bare path",
			raw:      "/a/b/c",
			wantPath: "/a/b/c",
		},
		{
			name:    "empty line",
			raw:     "",
			wantErr: true,
		},
		{
			name:    "whitespace only",
			raw:     "   ",
			wantErr: true,
		},
		{
			name:    "tag only",
			raw:     "[z]",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q): expected error", tt.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.raw, err)
			}
			if got.Name != tt.wantName {
				t.Errorf("name: got %q, want %q", got.Name, tt.wantName)
			}
			if got.Path != tt.wantPath {
				t.Errorf("path: got %q, want %q", got.Path, tt.wantPath)
			}
		})
	}
}

func TestParse_StripsIconPrefixes(t *testing.T) {
	got, err := Parse(IconTmux + "  my-session")
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "my-session" || got.Path != "" {
		t.Errorf("icon session: got %+v", got)
	}

	got, err = Parse(IconZoxide + "  /home/u/proj")
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "" || got.Path != "/home/u/proj" {
		t.Errorf("icon path: got %+v", got)
	}

	// Collapsed spacing still parses.
	got, err = Parse(IconZoxide + " /home/u/proj")
	if err != nil {
		t.Fatal(err)
	}
	if got.Path != "/home/u/proj" {
		t.Errorf("collapsed spacing: got %+v", got)
	}
}

// Formatted output must parse back to the record it was rendered from.
func TestRoundTrip(t *testing.T) {
	for _, opts := range []Options{{}, {Icons: true}} {
		lines := Format([]string{"my-session"}, []string{"/home/user/proj"}, opts)

		got, err := Parse(lines[0])
		if err != nil {
			t.Fatalf("parse session line %q: %v", lines[0], err)
		}
		if got.Name != "my-session" || got.Path != "" {
			t.Errorf("session round trip (icons=%v): got %+v", opts.Icons, got)
		}

		got, err = Parse(lines[1])
		if err != nil {
			t.Fatalf("parse dir line %q: %v", lines[1], err)
		}
		if got.Name != "" || got.Path != "/home/user/proj" {
			t.Errorf("dir round trip (icons=%v): got %+v", opts.Icons, got)
		}
	}
}
