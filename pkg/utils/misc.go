package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/segmentio/ksuid"
	"github.com/spf13/afero"
)

// MakeDirIfNotExist creates dirPath on fs when missing and reports whether it already existed.
func MakeDirIfNotExist(fs afero.Fs, dirPath string) (string, bool, error) {
	exists, err := afero.DirExists(fs, dirPath)
	if err != nil {
		return dirPath, exists, err
	}

	if !exists {
		if err := fs.MkdirAll(dirPath, os.ModePerm); err != nil {
			return dirPath, exists, err
		}
	}

	return dirPath, exists, nil
}

// EnsureParentDir makes sure the directory holding filePath exists.
func EnsureParentDir(fs afero.Fs, filePath string) error {
	dir := filepath.Dir(filePath)
	if dir == "." || dir == "" {
		return nil
	}
	_, _, err := MakeDirIfNotExist(fs, dir)
	return err
}

func GetRandomSha256() string {
	randomId := ksuid.New().String()
	hash := sha256.New()
	hash.Write([]byte(randomId))
	return hex.EncodeToString(hash.Sum(nil))
}
