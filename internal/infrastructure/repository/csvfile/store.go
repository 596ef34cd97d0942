package csvfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/riskibarqy/garuda-scout/internal/domain/player"
	"github.com/riskibarqy/garuda-scout/internal/platform/logging"
	"github.com/valyala/bytebufferpool"
)

type Config struct {
	ProcessedDir   string
	RawDir         string
	TableFileName  string
	SnapshotPrefix string
}

// Store keeps the player table as a CSV file plus one dated snapshot per
// scrape day. It implements player.Repository and player.TableWriter.
type Store struct {
	cfg    Config
	logger *logging.Logger
}

func NewStore(cfg Config, logger *logging.Logger) *Store {
	if logger == nil {
		logger = logging.Default()
	}
	if strings.TrimSpace(cfg.TableFileName) == "" {
		cfg.TableFileName = "master_player_db.csv"
	}
	if strings.TrimSpace(cfg.SnapshotPrefix) == "" {
		cfg.SnapshotPrefix = "scouted_players"
	}
	return &Store{cfg: cfg, logger: logger}
}

func (s *Store) TablePath() string {
	return filepath.Join(s.cfg.ProcessedDir, s.cfg.TableFileName)
}

func (s *Store) SnapshotPath(scrapedAt time.Time) string {
	return filepath.Join(s.cfg.RawDir, fmt.Sprintf("%s_%s.csv", s.cfg.SnapshotPrefix, scrapedAt.Format("20060102")))
}

// ReplaceAll overwrites the canonical table and writes the day's snapshot.
// Readers never observe a partially written table.
func (s *Store) ReplaceAll(ctx context.Context, records []player.Record, scrapedAt time.Time) (player.WriteResult, error) {
	if err := ctx.Err(); err != nil {
		return player.WriteResult{}, err
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if err := Encode(buf, records); err != nil {
		return player.WriteResult{}, fmt.Errorf("encode player table: %w", err)
	}

	result := player.WriteResult{
		TablePath:    s.TablePath(),
		SnapshotPath: s.SnapshotPath(scrapedAt),
		Rows:         len(records),
	}
	if err := writeFileAtomic(result.TablePath, buf.B); err != nil {
		return player.WriteResult{}, fmt.Errorf("write player table: %w", err)
	}
	if err := writeFileAtomic(result.SnapshotPath, buf.B); err != nil {
		return player.WriteResult{}, fmt.Errorf("write snapshot: %w", err)
	}

	s.logger.InfoContext(ctx, "player table written",
		"table_path", result.TablePath,
		"snapshot_path", result.SnapshotPath,
		"rows", result.Rows,
	)
	return result, nil
}

// All loads the canonical table. A missing file yields an error wrapping os.ErrNotExist.
func (s *Store) All(ctx context.Context) ([]player.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.TablePath())
	if err != nil {
		return nil, fmt.Errorf("open player table: %w", err)
	}
	defer f.Close()

	records, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.TablePath(), err)
	}
	return records, nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
