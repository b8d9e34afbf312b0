package utils

import (
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
)

// HomeEnv is the environment variable overriding the apitour home.
const HomeEnv = "APITOUR_HOME"

// RequiredDirs returns the required apitour home directories
func RequiredDirs(home string) []string {
	requiredDirs := []string{}
	requiredSubdirs := []string{"db", "snapshots"}
	for _, d := range requiredSubdirs {
		requiredDirs = append(requiredDirs, filepath.Join(home, d))
	}
	return requiredDirs
}

// ConfigPath returns the default config file path.
func ConfigPath(home string) string {
	return filepath.Join(home, "config.json")
}

// DBPath returns the database path for the given name
func DBPath(home string, name string) string {
	return filepath.Join(home, "db", name+".sqlite3")
}

// SnapshotDir returns the default snapshot directory.
func SnapshotDir(home string) string {
	return filepath.Join(home, "snapshots")
}

// GetHome returns the apitour home directory, honouring APITOUR_HOME.
func GetHome() (string, error) {
	if p := os.Getenv(HomeEnv); p != "" {
		return p, nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".apitour"), nil
}
