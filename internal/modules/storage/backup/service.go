package backup

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/routein/core/internal/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Service exports and restores the MongoDB collections as mongodump-style
// BSON files inside a ZIP archive.
type Service struct {
	db  *mongo.Database
	cfg *config.AppConfig
}

func NewService(db *mongo.Database, cfg *config.AppConfig) *Service {
	return &Service{db: db, cfg: cfg}
}

func (s *Service) backupDir() string {
	if s.cfg != nil {
		return s.cfg.BackupDir()
	}
	return config.ResolveRuntimePath("", "backups")
}

type Artifact struct {
	Filename string
	Path     string
	Buffer   *bytes.Buffer
}

// CreateZip dumps every backed-up collection into an in-memory ZIP.
func (s *Service) CreateZip(ctx context.Context) (*bytes.Buffer, error) {
	buf := &bytes.Buffer{}
	w := zip.NewWriter(buf)

	exported := make([]string, 0, len(backupCollections))
	for _, name := range backupCollections {
		docs, err := s.dumpCollection(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("dump collection %s: %w", name, err)
		}

		f, err := w.Create(path.Join(backupDBDir, name+".bson"))
		if err != nil {
			return nil, err
		}
		if payload := encodeBSONDocs(docs); len(payload) > 0 {
			if _, err := f.Write(payload); err != nil {
				return nil, err
			}
		}
		exported = append(exported, name)
	}

	manifest := backupManifest{
		Format:      backupFormat,
		Version:     backupFormatVersion,
		Engine:      "mongodb",
		CreatedAt:   time.Now().UTC(),
		Collections: exported,
	}
	manifestData, err := json.Marshal(manifest)
	if err != nil {
		return nil, err
	}
	mf, err := w.Create(backupManifestFile)
	if err != nil {
		return nil, err
	}
	if _, err := mf.Write(manifestData); err != nil {
		return nil, err
	}

	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf, nil
}

func (s *Service) dumpCollection(ctx context.Context, name string) ([]bson.Raw, error) {
	cur, err := s.db.Collection(name).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	docs := []bson.Raw{}
	for cur.Next(ctx) {
		doc := make(bson.Raw, len(cur.Current))
		copy(doc, cur.Current)
		docs = append(docs, doc)
	}
	return docs, cur.Err()
}

// CreateLocalArtifact writes a fresh backup ZIP into the backup directory.
func (s *Service) CreateLocalArtifact(ctx context.Context, now time.Time) (*Artifact, error) {
	buf, err := s.CreateZip(ctx)
	if err != nil {
		return nil, err
	}

	dir := s.backupDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("backup-%s.zip", now.Format("2006-01-02T15-04-05"))
	target := filepath.Join(dir, filename)
	if err := os.WriteFile(target, buf.Bytes(), 0o644); err != nil {
		return nil, err
	}

	return &Artifact{Filename: filename, Path: target, Buffer: buf}, nil
}

// List returns the backup archives on disk.
func (s *Service) List() []backupItem {
	dir := s.backupDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return []backupItem{}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return []backupItem{}
	}

	items := []backupItem{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".zip") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		items = append(items, backupItem{
			Filename: e.Name(),
			Size:     formatSize(info.Size()),
		})
	}
	return items
}

// RestoreFromZip replaces collection contents with the archive's documents.
// Collections missing from the archive are left untouched.
func (s *Service) RestoreFromZip(ctx context.Context, zr *zip.Reader) error {
	if zr == nil {
		return fmt.Errorf("invalid restore input")
	}

	entries := map[string]*zip.File{}
	for _, file := range zr.File {
		base := strings.ToLower(path.Base(strings.ReplaceAll(file.Name, "\\", "/")))
		if !strings.HasSuffix(base, ".bson") {
			continue
		}
		name := strings.TrimSuffix(base, ".bson")
		if isBackupCollection(name) {
			entries[name] = file
		}
	}
	if len(entries) == 0 {
		return fmt.Errorf("archive contains no recognized collection dumps")
	}

	for _, name := range backupCollections {
		file, ok := entries[name]
		if !ok {
			continue
		}

		docs, err := readZipBSON(file)
		if err != nil {
			return fmt.Errorf("decode %s dump: %w", name, err)
		}

		coll := s.db.Collection(name)
		if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
			return fmt.Errorf("clear collection %s: %w", name, err)
		}
		if len(docs) == 0 {
			continue
		}

		payload := make([]interface{}, len(docs))
		for i, doc := range docs {
			payload[i] = doc
		}
		if _, err := coll.InsertMany(ctx, payload); err != nil {
			return fmt.Errorf("restore collection %s: %w", name, err)
		}
	}
	return nil
}

func isBackupCollection(name string) bool {
	for _, c := range backupCollections {
		if c == name {
			return true
		}
	}
	return false
}

func readZipBSON(file *zip.File) ([]bson.Raw, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, err
	}
	return decodeBSONDocs(data)
}

// UploadToS3 creates a fresh backup and pushes it to the configured bucket.
// Returns the object key.
func (s *Service) UploadToS3(ctx context.Context) (string, error) {
	if s.cfg == nil || !s.cfg.Backup.S3.Enable {
		return "", fmt.Errorf("s3 backup is not enabled")
	}

	uploader, err := newS3Uploader(s.cfg.Backup.S3)
	if err != nil {
		return "", err
	}

	now := time.Now()
	artifact, err := s.CreateLocalArtifact(ctx, now)
	if err != nil {
		return "", err
	}

	key := renderBackupObjectKey(s.cfg.Backup.S3.PathTemplate, artifact.Filename, now)
	if err := uploader.Upload(ctx, key, artifact.Buffer.Bytes(), "application/zip"); err != nil {
		return "", err
	}
	return key, nil
}

// Run performs one scheduled backup pass: local artifact always, S3 upload
// when configured. Used by the cron scheduler.
func (s *Service) Run(ctx context.Context) error {
	if s.cfg != nil && s.cfg.Backup.S3.Enable {
		_, err := s.UploadToS3(ctx)
		return err
	}
	_, err := s.CreateLocalArtifact(ctx, time.Now())
	return err
}
