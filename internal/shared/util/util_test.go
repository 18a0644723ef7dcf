package util

import "testing"

func TestDownloadName(t *testing.T) {
	name := func(s string) *string { return &s }
	cases := []struct {
		user *string
		kind string
		id   int64
		want string
	}{
		{name("Jane Doe"), "resume", 12, "Jane_Doe_resume_12.docx"},
		{name("  Jane \t  van Doe "), "cover_letter", 3, "Jane_van_Doe_cover_letter_3.docx"},
		{name(`a/b"c`), "resume", 1, "abc_resume_1.docx"},
		{name("   "), "resume", 5, "unknown_resume_5.docx"},
		{nil, "cover_letter", 9, "unknown_cover_letter_9.docx"},
	}
	for _, tc := range cases {
		if got := DownloadName(tc.user, tc.kind, tc.id); got != tc.want {
			t.Fatalf("DownloadName(%v) = %q, want %q", tc.user, got, tc.want)
		}
	}
}

func TestContentHashStable(t *testing.T) {
	if ContentHash([]byte("abc")) != ContentHash([]byte("abc")) {
		t.Fatalf("expected stable hash")
	}
	if len(ContentHash(nil)) != 64 {
		t.Fatalf("expected hex sha256")
	}
}
