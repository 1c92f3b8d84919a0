package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ademuri/bollywood-analytics/internal/config"
)

const testCatalog = `Name,Artists,Popularity,danceability,energy,valence,acousticness,liveness,Romantic,Sufi,Retro
Tum Hi Ho,Arijit Singh,80,0.40,0.30,0.20,0.60,0.10,1,,
Kesariya,"Arijit Singh, Pritam",90,0.60,0.50,0.40,0.30,0.20,1,,
Kun Faya Kun,"A.R. Rahman, Javed Ali",70,0.50,0.45,0.35,0.55,0.09,,1,
Badtameez Dil,Pritam,60,0.80,0.90,0.80,0.05,0.30,,,
Purana Gaana,Kishore Kumar,0,0.20,0.10,0.50,0.90,0.40,,,1
`

// testConfig writes the catalog to a temp dir and returns a config pointing at
// it, with blends saved alongside.
func testConfig(t *testing.T) config.Config {
	t.Helper()
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "songs.csv")
	if err := os.WriteFile(dataPath, []byte(testCatalog), 0644); err != nil {
		t.Fatalf("writing catalog: %v", err)
	}
	return config.Config{
		DataPath:    dataPath,
		BlendsPath:  filepath.Join(dir, "blends.json"),
		LogLevel:    "error",
		ThemeOffset: 8,
	}
}
