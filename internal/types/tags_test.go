package types

import "testing"

func TestTagsRawAccess(t *testing.T) {
	var tags Tags

	tags.Set("TXXX:replaygain", "-6.2 dB")
	tags.Set("TPE1", "Artist A", "Artist B")

	if got := tags.GetFirst("TXXX:replaygain"); got != "-6.2 dB" {
		t.Errorf("GetFirst: got %q", got)
	}

	values := tags.Get("TPE1")
	if len(values) != 2 || values[0] != "Artist A" || values[1] != "Artist B" {
		t.Errorf("Get: got %v", values)
	}

	// Get returns a copy, not the backing slice.
	values[0] = "mutated"
	if got := tags.GetFirst("TPE1"); got != "Artist A" {
		t.Errorf("backing slice mutated through Get: %q", got)
	}

	if got := tags.GetFirst("TIT2"); got != "" {
		t.Errorf("missing key: got %q", got)
	}
	if got := tags.Get("TIT2"); got != nil {
		t.Errorf("missing key: got %v", got)
	}
}

func TestTagsSetEmptyRemoves(t *testing.T) {
	var tags Tags
	tags.Set("TALB", "Album")
	tags.Set("TALB")

	if got := tags.Get("TALB"); got != nil {
		t.Errorf("expected key removed, got %v", got)
	}
}

func TestTagsAll(t *testing.T) {
	var tags Tags
	tags.Set("TIT2", "Title")
	tags.Set("COMM::eng", "a comment")

	seen := map[string]int{}
	for key, values := range tags.All() {
		seen[key] = len(values)
	}

	if len(seen) != 2 || seen["TIT2"] != 1 || seen["COMM::eng"] != 1 {
		t.Errorf("unexpected iteration result: %v", seen)
	}
}

func TestWarningString(t *testing.T) {
	w := Warning{Stage: "frames", Message: "frame APIC preserved but not decoded"}
	if got := w.String(); got != "frames: frame APIC preserved but not decoded" {
		t.Errorf("got %q", got)
	}

	w.Offset = 42
	if got := w.String(); got != "frames (at offset 42): frame APIC preserved but not decoded" {
		t.Errorf("got %q", got)
	}
}
