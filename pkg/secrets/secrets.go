package secrets

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"portfolio/pkg/constants"
	"portfolio/pkg/utils"
	"sync"

	"github.com/spf13/afero"
)

type PortfolioSecrets interface {
	// GetSessionSecret returns the stored cookie signing key, creating and saving one on first use.
	GetSessionSecret() (string, error)
	// RotateSessionSecret replaces the stored key. Every issued cookie becomes invalid.
	RotateSessionSecret() (string, error)
}

type portfolioSecretsFile struct {
	SessionSecret string `json:"sessionSecret" yaml:"SessionSecret"`
}

type portfolioSecrets struct {
	fs       afero.Fs
	filePath string
	mtx      sync.Mutex
	cached   *portfolioSecretsFile
}

// FilePathFor places the secrets file next to the database file.
func FilePathFor(dbFilePath string) string {
	return filepath.Join(filepath.Dir(dbFilePath), constants.SecretsFileName)
}

func NewPortfolioSecrets(fs afero.Fs, filePath string) PortfolioSecrets {
	return &portfolioSecrets{
		fs:       fs,
		filePath: filePath,
	}
}

func (s *portfolioSecrets) GetSessionSecret() (string, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if s.cached != nil && s.cached.SessionSecret != "" {
		return s.cached.SessionSecret, nil
	}

	data, err := afero.ReadFile(s.fs, s.filePath)
	if err != nil && !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to read %s: %w", s.filePath, err)
	}

	secrets := portfolioSecretsFile{}
	if err == nil {
		if err := json.Unmarshal(data, &secrets); err != nil {
			return "", fmt.Errorf("failed to decode %s: %w", s.filePath, err)
		}
	}

	if secrets.SessionSecret == "" {
		secrets.SessionSecret = utils.GetRandomSha256()
		if err := s.save(&secrets); err != nil {
			return "", err
		}
	}

	s.cached = &secrets
	return secrets.SessionSecret, nil
}

func (s *portfolioSecrets) RotateSessionSecret() (string, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	secrets := &portfolioSecretsFile{SessionSecret: utils.GetRandomSha256()}
	if err := s.save(secrets); err != nil {
		return "", err
	}
	s.cached = secrets
	return secrets.SessionSecret, nil
}

func (s *portfolioSecrets) save(secrets *portfolioSecretsFile) error {
	data, err := json.Marshal(secrets)
	if err != nil {
		return err
	}

	if err := utils.EnsureParentDir(s.fs, s.filePath); err != nil {
		return err
	}

	if err := afero.WriteFile(s.fs, s.filePath, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.filePath, err)
	}
	return nil
}
