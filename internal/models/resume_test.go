package models

import (
	"testing"

	"github.com/google/uuid"
)

func TestSetVideoLinkReplaces(t *testing.T) {
	job := uuid.New()
	r := &Resume{}

	r.SetVideoLink(job, "https://store/a.mp4")
	r.SetVideoLink(job, "https://store/b.mp4")

	if len(r.VideoLinks) != 1 {
		t.Fatalf("got %d links, want 1", len(r.VideoLinks))
	}
	if r.VideoLinkFor(job) != "https://store/b.mp4" {
		t.Fatalf("link = %q, want the replacement", r.VideoLinkFor(job))
	}
	if r.VideoLinkFor(uuid.New()) != "" {
		t.Fatal("unknown job should have no link")
	}
}

func TestSetEmotionLevelReplaces(t *testing.T) {
	job := uuid.New()
	r := &Resume{}

	r.SetEmotionLevel(job, map[string]float64{"happy": 0.2})
	r.SetEmotionLevel(job, map[string]float64{"happy": 0.9})

	if len(r.EmotionLevels) != 1 {
		t.Fatalf("got %d entries, want 1", len(r.EmotionLevels))
	}
	if r.EmotionLevelFor(job)["happy"] != 0.9 {
		t.Fatalf("levels = %v, want the replacement", r.EmotionLevelFor(job))
	}
	if r.EmotionLevelFor(uuid.New()) != nil {
		t.Fatal("unknown job should have no levels")
	}
}

func TestFlattenedText(t *testing.T) {
	r := &Resume{}
	if r.FlattenedText() != "" {
		t.Fatal("empty resume should flatten to empty text")
	}

	r.OCRContent = [][]ResumePage{{{PageNumber: 1, Content: "page one"}, {PageNumber: 2, Content: "page two"}}}
	if r.FlattenedText() != "page one" {
		t.Fatalf("FlattenedText() = %q, want first page", r.FlattenedText())
	}
}
