package serviceImp

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"bintrack/entities"
	"bintrack/pkg/bin/repository"
	"bintrack/pkg/bin/service"
	"bintrack/pkg/binid"
	"bintrack/pkg/metrics"
	"bintrack/pkg/report"
)

type binSvc struct {
	repo   repository.BinRepository
	season time.Duration

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New wires a BinService. seasonThreshold is the minimum age (from
// creation) a tipped bin must reach before the season summary counts
// it.
func New(repo repository.BinRepository, seasonThreshold time.Duration) service.BinService {
	return &binSvc{repo: repo, season: seasonThreshold, locks: map[string]*sync.Mutex{}}
}

// prefixLock returns the mutex guarding id allocation for one farm
// prefix, creating it on first use.
func (s *binSvc) prefixLock(prefix string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[prefix]
	if !ok {
		l = &sync.Mutex{}
		s.locks[prefix] = l
	}
	return l
}

func (s *binSvc) CreateRun(in service.RunInput) ([]entities.Bin, error) {
	farm := strings.TrimSpace(in.FarmName)
	if farm == "" {
		return nil, errors.New("farm name is required")
	}
	if in.TotalWeight <= 0 {
		return nil, errors.New("total weight must be positive")
	}
	if in.NumBins <= 0 {
		return nil, nil
	}

	// Holding the prefix lock across read-allocate-insert keeps two
	// concurrent runs for the same farm from computing overlapping
	// sequence ranges.
	prefix := binid.Prefix(farm)
	lock := s.prefixLock(prefix)
	lock.Lock()
	defer lock.Unlock()

	existing, err := s.repo.IDsByPrefix(prefix)
	if err != nil {
		return nil, fmt.Errorf("scan existing ids: %w", err)
	}
	ids := binid.Allocate(farm, in.NumBins, existing)

	created := time.Now().UTC()
	bins := make([]entities.Bin, 0, len(ids))
	for _, id := range ids {
		b := entities.Bin{
			ID:          id,
			RunNumber:   in.RunNumber,
			PUC:         in.PUC,
			FarmName:    farm,
			Commodity:   in.Commodity,
			Variety:     in.Variety,
			BinClass:    in.BinClass,
			Size:        in.Size,
			TotalWeight: in.TotalWeight,
			DateCreated: created,
		}
		if !in.Date.IsZero() {
			d := in.Date
			b.Date = &d
		}
		bins = append(bins, b)
	}
	if err := s.repo.CreateAll(bins); err != nil {
		return nil, fmt.Errorf("insert bin run: %w", err)
	}

	metrics.BinsCreatedTotal.Add(float64(len(bins)))
	log.Info().
		Str("farm", farm).
		Str("prefix", prefix).
		Int("bins", len(bins)).
		Str("first_id", bins[0].ID).
		Str("last_id", bins[len(bins)-1].ID).
		Msg("bin run created")
	return bins, nil
}

func (s *binSvc) GetBin(id string) (*entities.Bin, error) {
	return s.repo.FindByID(strings.TrimSpace(id))
}

func (s *binSvc) ListBins() ([]entities.Bin, error) { return s.repo.All() }

func (s *binSvc) ListBinsNewestFirst() ([]entities.Bin, error) {
	return s.repo.AllNewestFirst()
}

func (s *binSvc) MarkTipped(id string) (bool, error) {
	tipped, err := s.repo.MarkTipped(strings.TrimSpace(id))
	if err != nil {
		return false, fmt.Errorf("mark tipped %s: %w", id, err)
	}
	if tipped {
		metrics.BinsTippedTotal.Inc()
		log.Info().Str("bin", id).Msg("bin tipped")
	}
	return tipped, nil
}

func (s *binSvc) EditBin(id string, in service.EditInput) error {
	id = strings.TrimSpace(id)
	if _, err := s.repo.FindByID(id); err != nil {
		return err
	}
	fields := map[string]any{
		"run_number":   in.RunNumber,
		"puc":          in.PUC,
		"farm_name":    in.FarmName,
		"commodity":    in.Commodity,
		"variety":      in.Variety,
		"bin_class":    in.BinClass,
		"size":         in.Size,
		"total_weight": in.TotalWeight,
	}
	if in.Date.IsZero() {
		fields["date"] = nil
	} else {
		fields["date"] = in.Date
	}
	if err := s.repo.Update(id, fields); err != nil {
		return fmt.Errorf("edit bin %s: %w", id, err)
	}
	log.Info().Str("bin", id).Msg("bin edited")
	return nil
}

func (s *binSvc) DeleteBin(id string) error {
	id = strings.TrimSpace(id)
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("delete bin %s: %w", id, err)
	}
	metrics.BinsDeletedTotal.Inc()
	log.Info().Str("bin", id).Msg("bin deleted")
	return nil
}

func (s *binSvc) StockSummary(now time.Time) ([]report.StockRow, error) {
	bins, err := s.repo.Untipped()
	if err != nil {
		return nil, err
	}
	metrics.BinsOnStock.Set(float64(len(bins)))
	return report.StockRows(report.GroupBins(bins, report.OnStock), now), nil
}

func (s *binSvc) SeasonSummary(now time.Time) ([]report.SeasonRow, error) {
	bins, err := s.repo.Tipped()
	if err != nil {
		return nil, err
	}
	cutoff := now.Add(-s.season)
	return report.SeasonRows(report.GroupBins(bins, report.TippedBefore(cutoff))), nil
}

func (s *binSvc) ExportBins(scope service.ExportScope, now time.Time) ([]entities.Bin, error) {
	switch scope {
	case service.ExportAll:
		return s.repo.All()
	case service.ExportOnStock:
		return s.repo.Untipped()
	case service.ExportTipped:
		return s.repo.Tipped()
	case service.ExportSeason:
		bins, err := s.repo.Tipped()
		if err != nil {
			return nil, err
		}
		return report.Filter(bins, report.TippedBefore(now.Add(-s.season))), nil
	default:
		return nil, fmt.Errorf("unknown export scope %q", scope)
	}
}
