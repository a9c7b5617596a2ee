package domain

import (
	"testing"
	"time"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    Status
		wantErr bool
	}{
		{"draft", StatusDraft, false},
		{"published", StatusPublished, false},
		{"archived", StatusArchived, false},
		{"  Published ", StatusPublished, false},
		{"live", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseStatus(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseStatus(%q) expected error", tt.input)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseStatus(%q) = %q, %v; want %q", tt.input, got, err, tt.want)
		}
	}
}

func TestParseMediaKind(t *testing.T) {
	tests := []struct {
		input   string
		want    MediaKind
		wantErr bool
	}{
		{"image", KindImage, false},
		{"img", KindImage, false},
		{"video", KindVideo, false},
		{"VID", KindVideo, false},
		{"audio", KindImage, true},
	}

	for _, tt := range tests {
		got, err := ParseMediaKind(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseMediaKind(%q) expected error", tt.input)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseMediaKind(%q) = %v, %v; want %v", tt.input, got, err, tt.want)
		}
	}
}

func TestNewProjectID(t *testing.T) {
	now := time.Unix(1735689600, 0)
	if got := NewProjectID(0, now); got != "project_1_1735689600" {
		t.Errorf("NewProjectID(0) = %q", got)
	}
	if got := NewProjectID(4, now); got != "project_5_1735689600" {
		t.Errorf("NewProjectID(4) = %q", got)
	}
}

func TestValidateTitle(t *testing.T) {
	if err := ValidateTitle("Fine Title"); err != nil {
		t.Errorf("valid title rejected: %v", err)
	}
	if err := ValidateTitle("  "); err == nil {
		t.Error("blank title accepted")
	}
	long := make([]byte, 201)
	for i := range long {
		long[i] = 'a'
	}
	if err := ValidateTitle(string(long)); err == nil {
		t.Error("over-long title accepted")
	}
}

func TestProjectCloneIndependence(t *testing.T) {
	p := Project{
		Title:  "Original",
		Tags:   []string{"a", "b"},
		Images: []MediaAsset{{Filename: "a.png"}},
	}

	c := p.Clone()
	c.Tags[0] = "mutated"
	c.Images[0].Filename = "mutated.png"

	if p.Tags[0] != "a" {
		t.Error("clone shares tag backing array")
	}
	if p.Images[0].Filename != "a.png" {
		t.Error("clone shares image backing array")
	}
}

func TestDocumentCloneIndependence(t *testing.T) {
	d := DefaultDocument()
	d.Projects = append(d.Projects, Project{Title: "P", Tags: []string{"x"}})

	c := d.Clone()
	c.Projects[0].Tags[0] = "mutated"
	c.Categories[0].Name = "mutated"
	c.Settings.AllowedImageFormats[0] = "mutated"

	if d.Projects[0].Tags[0] != "x" {
		t.Error("clone shares project tags")
	}
	if d.Categories[0].Name == "mutated" {
		t.Error("clone shares categories backing array")
	}
	if d.Settings.AllowedImageFormats[0] == "mutated" {
		t.Error("clone shares settings format lists")
	}
}

func TestDefaultDocumentSeed(t *testing.T) {
	d := DefaultDocument()

	if len(d.Categories) != 6 {
		t.Fatalf("seed categories = %d, want 6", len(d.Categories))
	}
	if d.Categories[0].ID != "web-design" || d.Categories[0].Color != "#ea532e" {
		t.Errorf("first category = %+v", d.Categories[0])
	}
	if d.Settings.MaxFileSizeMB != 50 {
		t.Errorf("seed size limit = %g", d.Settings.MaxFileSizeMB)
	}
	if len(d.Settings.AllowedImageFormats) != 5 || len(d.Settings.AllowedVideoFormats) != 4 {
		t.Errorf("seed format lists = %v / %v",
			d.Settings.AllowedImageFormats, d.Settings.AllowedVideoFormats)
	}
}
