package backup

import (
	"encoding/binary"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

func formatSize(size int64) string {
	switch {
	case size >= 1<<20:
		return fmt.Sprintf("%.2f MB", float64(size)/(1<<20))
	case size >= 1<<10:
		return fmt.Sprintf("%.2f KB", float64(size)/(1<<10))
	default:
		return fmt.Sprintf("%d B", size)
	}
}

// renderBackupObjectKey expands the {Y}{m}{d}{H}{M}{s}{filename} placeholders
// of the configured S3 path template.
func renderBackupObjectKey(template, filename string, now time.Time) string {
	tpl := strings.TrimSpace(template)
	if tpl == "" {
		tpl = defaultS3PathTemplate
	}

	replacer := strings.NewReplacer(
		"{Y}", now.Format("2006"),
		"{m}", now.Format("01"),
		"{d}", now.Format("02"),
		"{H}", now.Format("15"),
		"{M}", now.Format("04"),
		"{s}", now.Format("05"),
		"{filename}", filename,
	)

	key := replacer.Replace(tpl)
	key = strings.ReplaceAll(key, "\\", "/")
	key = strings.TrimSpace(strings.TrimPrefix(key, "/"))
	for strings.Contains(key, "//") {
		key = strings.ReplaceAll(key, "//", "/")
	}
	if key == "" {
		return filename
	}
	return key
}

// encodeBSONDocs concatenates raw BSON documents, the same framing mongodump
// uses for .bson files.
func encodeBSONDocs(docs []bson.Raw) []byte {
	var out []byte
	for _, doc := range docs {
		out = append(out, doc...)
	}
	return out
}

// decodeBSONDocs splits a concatenated BSON payload back into documents.
func decodeBSONDocs(payload []byte) ([]bson.Raw, error) {
	docs := []bson.Raw{}
	cursor := 0
	for cursor < len(payload) {
		if cursor+4 > len(payload) {
			return nil, fmt.Errorf("invalid bson payload")
		}
		docLen := int(int32(binary.LittleEndian.Uint32(payload[cursor : cursor+4])))
		if docLen <= 0 || cursor+docLen > len(payload) {
			return nil, fmt.Errorf("invalid bson document length")
		}
		doc := bson.Raw(payload[cursor : cursor+docLen])
		if err := doc.Validate(); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
		cursor += docLen
	}
	return docs, nil
}
