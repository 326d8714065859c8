package job

import (
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	before := time.Now()
	job := New(Fields{Title: "React Intern", Description: "Build UI features"})

	if job.ID == "" {
		t.Error("expected job to have an ID")
	}
	if job.PostedAt.IsZero() {
		t.Error("expected PostedAt to be set")
	}
	if job.PostedAt.Before(before.Add(-time.Second)) {
		t.Error("expected PostedAt to be the creation time")
	}
	if job.PostedAt.Location() != time.UTC {
		t.Errorf("expected PostedAt in UTC, got %s", job.PostedAt.Location())
	}
	if job.Company != "" || job.Location != "" {
		t.Errorf("expected empty optional fields, got %q / %q", job.Company, job.Location)
	}
}

func TestNew_UniqueIDs(t *testing.T) {
	a := New(Fields{Title: "a", Description: "a"})
	b := New(Fields{Title: "a", Description: "a"})
	if a.ID == b.ID {
		t.Errorf("expected distinct IDs, both were %s", a.ID)
	}
}

func TestNewWithID(t *testing.T) {
	id := "test-job-123"
	job := NewWithID(id, Fields{
		Title:       "  Backend Intern ",
		Description: "\tAPIs\n",
		Company:     " Acme ",
		Location:    " Tel Aviv",
	})

	if job.ID != id {
		t.Errorf("expected ID %s, got %s", id, job.ID)
	}
	if job.Title != "Backend Intern" {
		t.Errorf("expected trimmed title, got %q", job.Title)
	}
	if job.Description != "APIs" {
		t.Errorf("expected trimmed description, got %q", job.Description)
	}
	if job.Company != "Acme" {
		t.Errorf("expected trimmed company, got %q", job.Company)
	}
	if job.Location != "Tel Aviv" {
		t.Errorf("expected trimmed location, got %q", job.Location)
	}
}

func TestJob_Clone(t *testing.T) {
	job := New(Fields{Title: "React Dev", Description: "z", Location: "Haifa"})

	clone := job.Clone()

	if *clone != *job {
		t.Errorf("expected clone %+v to equal %+v", clone, job)
	}

	// Verify clone is independent
	clone.Title = "changed"
	if job.Title == "changed" {
		t.Error("modifying clone should not affect original")
	}
}
