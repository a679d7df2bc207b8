package extract

import (
	"strings"
	"testing"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		fileName string
		want     Format
	}{
		{"bom.txt", FormatText},
		{"bom.csv", FormatCSV},
		{"bom.CSV", FormatCSV},
		{"bom.xlsx", FormatSpreadsheet},
		{"bom.xls", FormatSpreadsheet},
		{"bom.pdf", FormatText},
		{"noextension", FormatText},
	}
	for _, tt := range tests {
		t.Run(tt.fileName, func(t *testing.T) {
			if got := DetectFormat(tt.fileName); got != tt.want {
				t.Errorf("DetectFormat(%q) = %q, want %q", tt.fileName, got, tt.want)
			}
		})
	}
}

func TestTextPassthrough(t *testing.T) {
	content := "Stainless steel 12.5 t\n"
	if got := Text("bom.txt", []byte(content)); got != content {
		t.Errorf("plain text not passed through: %q", got)
	}
}

func TestReconstructDelimited(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string // expected lines in order
	}{
		{
			name:    "single row with unit",
			content: "Paintings;Antifouling paint;1,2;t\n",
			want:    []string{"Paintings", "Antifouling paint 1.2 t"},
		},
		{
			name:    "default unit",
			content: "Metals;Steel plate;12.5\n",
			want:    []string{"Metals", "Steel plate 12.5 t"},
		},
		{
			name:    "header row skipped",
			content: "Category;Material;Weight;Unit\nMetals;Steel plate;12.5;t\n",
			want:    []string{"Metals", "Steel plate 12.5 t"},
		},
		{
			name: "category header emitted once per change",
			content: "Metals;Steel plate;12.5;t\n" +
				"Metals;Aluminium;3;t\n" +
				"Paintings;Primer;0,4;t\n",
			want: []string{
				"Metals", "Steel plate 12.5 t", "Aluminium 3 t",
				"Paintings", "Primer 0.4 t",
			},
		},
		{
			name:    "quoted fields stripped",
			content: `"Metals";"Steel plate";"12,5";"kg"` + "\n",
			want:    []string{"Metals", "Steel plate 12.5 kg"},
		},
		{
			name:    "short rows dropped",
			content: "just some text\nMetals;Steel plate;2;t\n",
			want:    []string{"Metals", "Steel plate 2 t"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strings.Split(strings.TrimRight(Text("bom.csv", []byte(tt.content)), "\n"), "\n")
			if len(got) != len(tt.want) {
				t.Fatalf("got %d lines %q, want %d", len(got), got, len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// binaryBlob joins tokens with null bytes and sprinkles non-printable
// noise, imitating strings embedded in a compressed container.
func binaryBlob(tokens ...string) []byte {
	var out []byte
	out = append(out, 0x03, 0x01)
	for _, tok := range tokens {
		out = append(out, []byte(tok)...)
		out = append(out, 0x00, 0x7f, 0x02)
	}
	return out
}

func TestScavengeSpreadsheet(t *testing.T) {
	blob := binaryBlob(
		"xl/workbook",   // container noise, dropped
		"HS",            // category code
		"Steel plate",   // material keyword
		"12.5",          // its weight
		"$$garbage$$",   // dropped
		"Paintings",     // full category name
		"Antifouling paint",
		"zz",  // dropped, not in any allowlist
		"1,2", // weight with comma decimal
	)

	got := strings.Split(strings.TrimRight(Text("bom.xlsx", []byte(blob)), "\n"), "\n")
	want := []string{
		"HS",
		"Steel plate 12.5 t",
		"Paintings",
		"Antifouling paint 1.2 t",
	}
	if len(got) != len(want) {
		t.Fatalf("got %d lines %q, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

// A material string with no number nearby is dropped rather than invented.
func TestScavengeLookaheadWindow(t *testing.T) {
	blob := binaryBlob("Steel plate", "HS", "Paintings", "7")
	got := Text("bom.xlsx", []byte(blob))
	if strings.Contains(got, "Steel plate") {
		t.Errorf("material beyond lookahead window should be dropped, got %q", got)
	}
}

func TestScavengeEmptyInput(t *testing.T) {
	if got := Text("bom.xlsx", nil); got != "" {
		t.Errorf("empty container produced %q", got)
	}
}
