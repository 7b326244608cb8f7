package storage

import "testing"

func TestObjectURL(t *testing.T) {
	s := &S3Store{bucket: "oralvis-scans", region: "us-east-1"}
	got := s.objectURL("scans/abc.jpg")
	want := "https://oralvis-scans.s3.us-east-1.amazonaws.com/scans/abc.jpg"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestObjectURLWithPublicBase(t *testing.T) {
	s := &S3Store{bucket: "oralvis-scans", region: "us-east-1", publicBaseURL: "https://cdn.oralvis.com"}
	got := s.objectURL("scans/abc.jpg")
	if got != "https://cdn.oralvis.com/scans/abc.jpg" {
		t.Fatalf("got %q", got)
	}
}
