package backup

import (
	"bytes"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{512, "512 B"},
		{2048, "2.00 KB"},
		{5 << 20, "5.00 MB"},
	}
	for _, tt := range tests {
		if got := formatSize(tt.size); got != tt.want {
			t.Errorf("formatSize(%d) = %q, want %q", tt.size, got, tt.want)
		}
	}
}

func TestRenderBackupObjectKey(t *testing.T) {
	now := time.Date(2025, 8, 5, 9, 7, 3, 0, time.UTC)

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{"default template", "", "backups/2025/08/backup-x.zip"},
		{"full placeholders", "{Y}/{m}/{d}/{H}{M}{s}/{filename}", "2025/08/05/090703/backup-x.zip"},
		{"leading slash stripped", "/a/{filename}", "a/backup-x.zip"},
		{"double slashes collapsed", "a//b/{filename}", "a/b/backup-x.zip"},
		{"backslashes normalized", "a\\b\\{filename}", "a/b/backup-x.zip"},
		{"no placeholders", "static/key.zip", "static/key.zip"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderBackupObjectKey(tt.template, "backup-x.zip", now); got != tt.want {
				t.Errorf("renderBackupObjectKey(%q) = %q, want %q", tt.template, got, tt.want)
			}
		})
	}
}

func TestEncodeDecodeBSONDocs(t *testing.T) {
	docs := make([]bson.Raw, 0, 3)
	for _, name := range []string{"a", "b", "c"} {
		raw, err := bson.Marshal(bson.M{"name": name, "n": int32(len(name))})
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		docs = append(docs, raw)
	}

	payload := encodeBSONDocs(docs)
	decoded, err := decodeBSONDocs(payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded) != len(docs) {
		t.Fatalf("decoded %d docs, want %d", len(decoded), len(docs))
	}
	for i := range docs {
		if !bytes.Equal(decoded[i], docs[i]) {
			t.Errorf("doc %d mismatch", i)
		}
	}
}

func TestDecodeBSONDocsEmpty(t *testing.T) {
	docs, err := decodeBSONDocs(nil)
	if err != nil {
		t.Fatalf("decode empty: %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("got %d docs, want 0", len(docs))
	}
}

func TestDecodeBSONDocsCorrupt(t *testing.T) {
	if _, err := decodeBSONDocs([]byte{0x01, 0x02}); err == nil {
		t.Error("expected error for truncated payload")
	}

	raw, err := bson.Marshal(bson.M{"k": "v"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	// Truncate a valid document.
	if _, err := decodeBSONDocs(raw[:len(raw)-2]); err == nil {
		t.Error("expected error for truncated document")
	}
}
