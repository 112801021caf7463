// file: internals/features/program/occurrences/service/generate_occurrences.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"playgroupku_backend/internals/configs"
	blockModel "playgroupku_backend/internals/features/program/blocks/model"
	exModel "playgroupku_backend/internals/features/program/exclusion_dates/model"
	occModel "playgroupku_backend/internals/features/program/occurrences/model"
	sessModel "playgroupku_backend/internals/features/program/sessions/model"
)

/* =========================================================
 * Occurrence Generator
 * Idempoten: tanggal yang sudah punya occurrence dilewati,
 * duplikat di-race ditelan oleh ON CONFLICT DO NOTHING.
 * ========================================================= */

// Guard: satu block tidak boleh lebih panjang dari ±2 tahun
const maxScheduleDays = 730

var (
	ErrSessionNotFound  = errors.New("session tidak ditemukan")
	ErrSessionArchived  = errors.New("session sudah diarsip")
	ErrSessionNoWeekday = errors.New("session tanpa weekday — pakai jalur one-off")
)

type GenerateResult struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

type GeneratorService struct {
	DB *gorm.DB
}

func NewGenerator(db *gorm.DB) *GeneratorService {
	return &GeneratorService{DB: db}
}

// GenerateForSession menghasilkan occurrence untuk semua tanggal kandidat
// session (weekday × block, minus libur). Aman dipanggil berulang.
func (s *GeneratorService) GenerateForSession(ctx context.Context, sessionID uuid.UUID) (GenerateResult, error) {
	var res GenerateResult

	// 1) Session
	var sess sessModel.SessionModel
	if err := s.DB.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Take(&sess).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res, ErrSessionNotFound
		}
		return res, err
	}
	if sess.SessionIsArchived {
		return res, ErrSessionArchived
	}
	if sess.SessionDayOfWeek == nil {
		return res, ErrSessionNoWeekday
	}

	// 2) Block terkait
	var blockIDs []uuid.UUID
	if err := s.DB.WithContext(ctx).
		Model(&sessModel.SessionBlockModel{}).
		Where("session_block_session_id = ?", sessionID).
		Pluck("session_block_block_id", &blockIDs).Error; err != nil {
		return res, err
	}
	if len(blockIDs) == 0 {
		return res, nil // bukan error — tidak ada rentang berarti tidak ada tanggal
	}

	var blocks []blockModel.BlockModel
	if err := s.DB.WithContext(ctx).
		Where("block_id IN ?", blockIDs).
		Find(&blocks).Error; err != nil {
		return res, err
	}

	wins, years, err := buildWindows(blocks)
	if err != nil {
		return res, err
	}

	// 3) Libur global per tahun yang tersentuh
	excluded, err := s.loadExclusions(ctx, years)
	if err != nil {
		return res, err
	}

	// 4) Resolve kandidat
	candidates := ResolveSessionDates(time.Weekday(*sess.SessionDayOfWeek), wins, excluded)
	if len(candidates) == 0 {
		return res, nil
	}

	// 5) Tanggal yang sudah ada
	existing, err := s.loadExistingDates(ctx, sessionID)
	if err != nil {
		return res, err
	}

	missing := missingDates(candidates, existing)
	res.Skipped = len(candidates) - len(missing)
	if len(missing) == 0 {
		return res, nil
	}

	// 6) Bangun baris + insert idempoten
	rows, err := s.buildOccurrenceRows(sess, missing, wins)
	if err != nil {
		return res, err
	}

	tx := s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "occurrence_session_id"}, {Name: "occurrence_date"}},
			DoNothing: true,
		}).
		CreateInBatches(&rows, 100)
	if tx.Error != nil {
		log.Printf("[Generator] insert occurrences gagal: %v", tx.Error)
		return res, tx.Error
	}

	res.Created = int(tx.RowsAffected)
	// Duplikat hasil race masuk hitungan skip, bukan error
	res.Skipped += len(missing) - res.Created
	return res, nil
}

// buildWindows memetakan block ke BlockWindow plus daftar tahun tersentuh
func buildWindows(blocks []blockModel.BlockModel) ([]BlockWindow, []int, error) {
	wins := make([]BlockWindow, 0, len(blocks))
	yearSet := make(map[int]struct{})

	for _, b := range blocks {
		tz := b.BlockTimezone
		if tz == "" {
			tz = configs.DefaultTimezone
		}
		if tz == "" {
			tz = "Asia/Jakarta"
		}
		loc, err := time.LoadLocation(tz)
		if err != nil {
			return nil, nil, fmt.Errorf("timezone block %s invalid: %w", b.BlockID, err)
		}

		start := startOfDayInLoc(b.BlockStartDate, loc)
		end := startOfDayInLoc(b.BlockEndDate, loc)
		if end.Before(start) {
			continue // block terbalik = kosong, bukan error
		}
		if int(end.Sub(start).Hours()/24) > maxScheduleDays {
			return nil, nil, fmt.Errorf("rentang block %s melebihi %d hari", b.BlockID, maxScheduleDays)
		}

		wins = append(wins, BlockWindow{Start: start, End: end, Loc: loc})
		for y := start.Year(); y <= end.Year(); y++ {
			yearSet[y] = struct{}{}
		}
	}

	years := make([]int, 0, len(yearSet))
	for y := range yearSet {
		years = append(years, y)
	}
	return wins, years, nil
}

func (s *GeneratorService) loadExclusions(ctx context.Context, years []int) (map[string]struct{}, error) {
	out := make(map[string]struct{})
	if len(years) == 0 {
		return out, nil
	}
	var rows []exModel.ExclusionDateModel
	if err := s.DB.WithContext(ctx).
		Where("exclusion_date_year IN ?", years).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[DateKey(r.ExclusionDateDate)] = struct{}{}
	}
	return out, nil
}

func (s *GeneratorService) loadExistingDates(ctx context.Context, sessionID uuid.UUID) (map[string]struct{}, error) {
	var dates []time.Time
	if err := s.DB.WithContext(ctx).
		Model(&occModel.OccurrenceModel{}).
		Where("occurrence_session_id = ?", sessionID).
		Pluck("occurrence_date", &dates).Error; err != nil {
		return nil, err
	}
	out := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		out[DateKey(d)] = struct{}{}
	}
	return out, nil
}

// missingDates memilih kandidat yang belum punya occurrence (set-difference per tanggal)
func missingDates(candidates []time.Time, existing map[string]struct{}) []time.Time {
	out := make([]time.Time, 0, len(candidates))
	for _, d := range candidates {
		if _, ok := existing[DateKey(d)]; !ok {
			out = append(out, d)
		}
	}
	return out
}

// windowFor mencari window yang memuat tanggal ini (untuk timezone timestamp)
func windowFor(date time.Time, wins []BlockWindow) *BlockWindow {
	key := DateKey(date)
	for i := range wins {
		if DateKey(wins[i].Start) <= key && key <= DateKey(wins[i].End) {
			return &wins[i]
		}
	}
	return nil
}

func (s *GeneratorService) buildOccurrenceRows(sess sessModel.SessionModel, dates []time.Time, wins []BlockWindow) ([]occModel.OccurrenceModel, error) {
	rows := make([]occModel.OccurrenceModel, 0, len(dates))
	for _, d := range dates {
		loc := time.UTC
		if w := windowFor(d, wins); w != nil && w.Loc != nil {
			loc = w.Loc
		}

		startAt, err := combineLocalDateAndTOD(d, sess.SessionStartTime, loc)
		if err != nil {
			return nil, err
		}
		endAt, err := combineLocalDateAndTOD(d, sess.SessionEndTime, loc)
		if err != nil {
			return nil, err
		}

		rows = append(rows, occModel.OccurrenceModel{
			OccurrenceSessionID: sess.SessionID,
			OccurrenceDate:      d,
			OccurrenceStartAt:   startAt.UTC(),
			OccurrenceEndAt:     endAt.UTC(),
			OccurrenceSourceSnapshot: datatypes.JSONMap{
				"session_name":       sess.SessionName,
				"session_start_time": sess.SessionStartTime,
				"session_end_time":   sess.SessionEndTime,
				"timezone":           loc.String(),
			},
		})
	}
	return rows, nil
}
