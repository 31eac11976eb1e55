package backup

import "time"

const (
	backupRootDir         = "routein"
	backupDBDir           = backupRootDir + "/db"
	backupManifestFile    = backupRootDir + "/manifest.json"
	backupFormat          = "routein-bson"
	backupFormatVersion   = 1
	defaultS3PathTemplate = "backups/{Y}/{m}/{filename}"
)

// backupCollections lists the collections included in an export, in
// restore order: users must exist before the documents referencing them.
var backupCollections = []string{
	"users",
	"usersessions",
	"studysessions",
}

type backupManifest struct {
	Format      string    `json:"format"`
	Version     int       `json:"version"`
	Engine      string    `json:"engine"`
	CreatedAt   time.Time `json:"created_at"`
	Collections []string  `json:"collections"`
}

type backupItem struct {
	Filename string `json:"filename"`
	Size     string `json:"size"`
}
