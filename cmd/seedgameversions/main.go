// Command seedgameversions loads a launcher version manifest into the
// game_versions catalogue.
// Usage: go run ./cmd/seedgameversions -manifest version_manifest_v2.json
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/leocth/labrinth/internal/config"
	"github.com/leocth/labrinth/internal/domain"
	"github.com/leocth/labrinth/internal/logging"
	"github.com/leocth/labrinth/internal/repository/postgres"
)

// launcherManifest is the subset of the launcher's version manifest we read.
type launcherManifest struct {
	Versions []struct {
		ID          string    `json:"id"`
		Type        string    `json:"type"`
		ReleaseTime time.Time `json:"releaseTime"`
	} `json:"versions"`
}

var manifestTypes = map[string]domain.GameVersionType{
	"release":   domain.GameVersionRelease,
	"snapshot":  domain.GameVersionSnapshot,
	"old_beta":  domain.GameVersionBeta,
	"old_alpha": domain.GameVersionAlpha,
}

func main() {
	manifestPath := flag.String("manifest", "version_manifest_v2.json", "path to the launcher version manifest")
	flag.Parse()

	if err := run(*manifestPath); err != nil {
		log.Fatal(err)
	}
}

func run(manifestPath string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	versions, err := readManifest(logger, manifestPath)
	if err != nil {
		return err
	}

	ctx := context.Background()
	db, err := postgres.NewDB(ctx, &cfg.DB)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	n, err := postgres.NewGameVersionRepo(db).Upsert(ctx, versions)
	if err != nil {
		return fmt.Errorf("upsert game versions: %w", err)
	}

	logger.Info("game versions upserted", zap.Int("count", n))
	return nil
}

func readManifest(logger *zap.Logger, path string) ([]domain.GameVersion, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer func() { _ = f.Close() }()

	versions, err := parseManifest(logger, f)
	if err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	logger.Info("manifest loaded", zap.String("path", path), zap.Int("count", len(versions)))
	return versions, nil
}

// parseManifest converts manifest entries to catalogue records. Entries with
// an unknown type are skipped.
func parseManifest(logger *zap.Logger, r io.Reader) ([]domain.GameVersion, error) {
	var m launcherManifest
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, err
	}

	versions := make([]domain.GameVersion, 0, len(m.Versions))
	for _, v := range m.Versions {
		vt, ok := manifestTypes[v.Type]
		if !ok {
			logger.Debug("skipping manifest entry", zap.String("id", v.ID), zap.String("type", v.Type))
			continue
		}
		versions = append(versions, domain.GameVersion{
			Version:     v.ID,
			VersionType: vt,
			Created:     v.ReleaseTime.UTC(),
			Major:       isMajor(v.ID, vt),
		})
	}
	return versions, nil
}

// isMajor reports whether a release opens a new minor line, e.g. 1.19 but not 1.19.2.
func isMajor(id string, vt domain.GameVersionType) bool {
	return vt == domain.GameVersionRelease && strings.Count(id, ".") == 1
}
