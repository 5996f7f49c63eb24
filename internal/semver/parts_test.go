package semver

import "testing"

func TestParseParts(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Parts
	}{
		{
			name:  "plain version",
			input: "1.2.3",
			want:  Parts{Major: "1", Minor: "2", Patch: "3"},
		},
		{
			name:  "v prefix",
			input: "v1.2.3",
			want:  Parts{Major: "1", Minor: "2", Patch: "3"},
		},
		{
			name:  "two components",
			input: "1.2",
			want:  Parts{Major: "1", Minor: "2", Patch: "0"},
		},
		{
			name:  "single component",
			input: "7",
			want:  Parts{Major: "7", Minor: "0", Patch: "0"},
		},
		{
			name:  "empty string",
			input: "",
			want:  Parts{Major: "0", Minor: "0", Patch: "0"},
		},
		{
			name:  "non-dot separators",
			input: "release-10-beta-3",
			want:  Parts{Major: "10", Minor: "3", Patch: "0"},
		},
		{
			name:  "pre-release suffix",
			input: "2.0.0-rc.1",
			want:  Parts{Major: "2", Minor: "0", Patch: "0"},
		},
		{
			name:  "extra runs ignored",
			input: "1.2.3.4.5",
			want:  Parts{Major: "1", Minor: "2", Patch: "3"},
		},
		{
			name:  "multiple v prefix stripped",
			input: "vv1.2.3",
			want:  Parts{Major: "1", Minor: "2", Patch: "3"},
		},
		{
			name:  "no digits at all",
			input: "unknown",
			want:  Parts{Major: "0", Minor: "0", Patch: "0"},
		},
		{
			name:  "multi-digit components",
			input: "10.20.30",
			want:  Parts{Major: "10", Minor: "20", Patch: "30"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseParts(tt.input)
			if got != tt.want {
				t.Errorf("ParseParts(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParts_String(t *testing.T) {
	tests := []struct {
		name  string
		parts Parts
		want  string
	}{
		{"full", Parts{Major: "1", Minor: "2", Patch: "3"}, "1.2.3"},
		{"defaults", Parts{Major: "0", Minor: "0", Patch: "0"}, "0.0.0"},
		{"wide", Parts{Major: "10", Minor: "0", Patch: "42"}, "10.0.42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.parts.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
