// file: internals/features/program/occurrences/service/one_off.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"playgroupku_backend/internals/configs"
	occModel "playgroupku_backend/internals/features/program/occurrences/model"
	sessModel "playgroupku_backend/internals/features/program/sessions/model"
)

var ErrOccurrenceExists = errors.New("occurrence untuk tanggal ini sudah ada")

// CreateOneOff membuat satu occurrence untuk tanggal tertentu, di luar pola
// mingguan. Jalur utama untuk session "special" (tanpa weekday), tapi boleh
// juga dipakai session biasa untuk tanggal tambahan.
func (s *GeneratorService) CreateOneOff(ctx context.Context, sessionID uuid.UUID, date time.Time) (occModel.OccurrenceModel, error) {
	var out occModel.OccurrenceModel

	var sess sessModel.SessionModel
	if err := s.DB.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Take(&sess).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return out, ErrSessionNotFound
		}
		return out, err
	}
	if sess.SessionIsArchived {
		return out, ErrSessionArchived
	}

	tz := configs.DefaultTimezone
	if tz == "" {
		tz = "Asia/Jakarta"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.UTC
	}

	day := startOfDayInLoc(date, loc)
	startAt, err := combineLocalDateAndTOD(day, sess.SessionStartTime, loc)
	if err != nil {
		return out, err
	}
	endAt, err := combineLocalDateAndTOD(day, sess.SessionEndTime, loc)
	if err != nil {
		return out, err
	}

	out = occModel.OccurrenceModel{
		OccurrenceSessionID: sess.SessionID,
		OccurrenceDate:      day,
		OccurrenceStartAt:   startAt.UTC(),
		OccurrenceEndAt:     endAt.UTC(),
		OccurrenceSourceSnapshot: datatypes.JSONMap{
			"session_name":       sess.SessionName,
			"session_start_time": sess.SessionStartTime,
			"session_end_time":   sess.SessionEndTime,
			"timezone":           loc.String(),
			"one_off":            true,
		},
	}

	tx := s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "occurrence_session_id"}, {Name: "occurrence_date"}},
			DoNothing: true,
		}).
		Create(&out)
	if tx.Error != nil {
		return out, tx.Error
	}
	if tx.RowsAffected == 0 {
		return out, ErrOccurrenceExists
	}
	return out, nil
}
