// file: internals/features/enrollment/attendance/service/roll_builder.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	d "playgroupku_backend/internals/features/enrollment/attendance/dto"
	attModel "playgroupku_backend/internals/features/enrollment/attendance/model"
	signupModel "playgroupku_backend/internals/features/enrollment/signups/model"
	occModel "playgroupku_backend/internals/features/program/occurrences/model"
)

/* =========================================================
 * Attendance Roll Builder
 * Roster = signup session × left-join attendance occurrence.
 * Mark = upsert last-write-wins per (signup, occurrence).
 * ========================================================= */

var (
	ErrOccurrenceNotFound = errors.New("occurrence tidak ditemukan")
	ErrSignupNotFound     = errors.New("signup tidak ditemukan")
	ErrSignupWrongSession = errors.New("signup bukan milik session occurrence ini")
	ErrOccurrenceCanceled = errors.New("occurrence sudah dibatalkan")
)

type RollBuilderService struct {
	DB *gorm.DB
}

func NewRollBuilder(db *gorm.DB) *RollBuilderService {
	return &RollBuilderService{DB: db}
}

// BuildRoster menyusun roster satu occurrence. Default hanya signup confirmed;
// statusFilter "all" menyertakan semua status. Occurrence batal tetap dibaca.
func (s *RollBuilderService) BuildRoster(ctx context.Context, occurrenceID uuid.UUID, statusFilter string) (d.RosterResponse, error) {
	var resp d.RosterResponse

	var occ occModel.OccurrenceModel
	if err := s.DB.WithContext(ctx).
		Where("occurrence_id = ?", occurrenceID).
		Take(&occ).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return resp, ErrOccurrenceNotFound
		}
		return resp, err
	}

	q := s.DB.WithContext(ctx).
		Where("signup_session_id = ?", occ.OccurrenceSessionID)
	if statusFilter != "all" {
		q = q.Where("signup_status = ?", signupModel.SignupStatusConfirmed)
	}

	var signups []signupModel.SignupModel
	if err := q.Order("signup_child_name ASC").Find(&signups).Error; err != nil {
		return resp, err
	}

	var marks []attModel.AttendanceRecordModel
	if err := s.DB.WithContext(ctx).
		Where("attendance_occurrence_id = ?", occ.OccurrenceID).
		Find(&marks).Error; err != nil {
		return resp, err
	}

	markBySignup := make(map[uuid.UUID]attModel.AttendanceRecordModel, len(marks))
	for _, mk := range marks {
		markBySignup[mk.AttendanceSignupID] = mk
	}

	resp = d.RosterResponse{
		OccurrenceID:         occ.OccurrenceID,
		OccurrenceSessionID:  occ.OccurrenceSessionID,
		OccurrenceDate:       occ.OccurrenceDate.Format("2006-01-02"),
		OccurrenceIsCanceled: occ.OccurrenceIsCanceled,
		Rows:                 assembleRoster(signups, markBySignup),
	}
	return resp, nil
}

// assembleRoster: satu baris per signup; mark opsional (nil = belum pernah ditandai)
func assembleRoster(signups []signupModel.SignupModel, marks map[uuid.UUID]attModel.AttendanceRecordModel) []d.RosterRow {
	rows := make([]d.RosterRow, 0, len(signups))
	for _, su := range signups {
		row := d.RosterRow{
			SignupID:      su.SignupID,
			ChildID:       su.SignupChildID,
			ChildName:     su.SignupChildName,
			GuardianName:  su.SignupGuardianName,
			GuardianEmail: su.SignupGuardianEmail,
			GuardianPhone: su.SignupGuardianPhone,
			SignupStatus:  string(su.SignupStatus),
		}
		if mk, ok := marks[su.SignupID]; ok {
			st := mk.AttendanceStatus
			at := mk.AttendanceMarkedAt
			row.AttendanceStatus = &st
			row.AttendanceMarkedAt = &at
		}
		rows = append(rows, row)
	}
	return rows
}

// rejectCanceledMark — kebijakan caller: occurrence batal menolak mark baru,
// kecuali caller memaksa (koreksi retroaktif pada occurrence yang dibatalkan
// belakangan). Mark lama tetap terbaca apa pun keputusannya.
func rejectCanceledMark(isCanceled, allowCanceled bool) bool {
	return isCanceled && !allowCanceled
}

// markUpsertClause: konflik pada pasangan (signup, occurrence) di-merge jadi
// overwrite — status & marked_at ikut mark terakhir, baris tetap satu.
func markUpsertClause() clause.OnConflict {
	return clause.OnConflict{
		Columns:   []clause.Column{{Name: "attendance_signup_id"}, {Name: "attendance_occurrence_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"attendance_status", "attendance_marked_at", "attendance_updated_at"}),
	}
}

// Mark meng-upsert status kehadiran (occurrence, signup). Pasangan yang sudah
// ada ditimpa, marked_at di-refresh. allowCanceled diteruskan dari caller
// (mark baru pada occurrence batal hanya lewat paksaan eksplisit).
func (s *RollBuilderService) Mark(ctx context.Context, occurrenceID, signupID uuid.UUID, status attModel.AttendanceStatus, allowCanceled bool) (attModel.AttendanceRecordModel, error) {
	var rec attModel.AttendanceRecordModel

	var occ occModel.OccurrenceModel
	if err := s.DB.WithContext(ctx).
		Where("occurrence_id = ?", occurrenceID).
		Take(&occ).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return rec, ErrOccurrenceNotFound
		}
		return rec, err
	}
	if rejectCanceledMark(occ.OccurrenceIsCanceled, allowCanceled) {
		return rec, ErrOccurrenceCanceled
	}

	var su signupModel.SignupModel
	if err := s.DB.WithContext(ctx).
		Where("signup_id = ?", signupID).
		Take(&su).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return rec, ErrSignupNotFound
		}
		return rec, err
	}
	if su.SignupSessionID != occ.OccurrenceSessionID {
		return rec, ErrSignupWrongSession
	}

	rec = attModel.AttendanceRecordModel{
		AttendanceSignupID:     signupID,
		AttendanceOccurrenceID: occurrenceID,
		AttendanceStatus:       status,
		AttendanceMarkedAt:     time.Now().UTC(),
	}
	if err := s.DB.WithContext(ctx).
		Clauses(markUpsertClause()).
		Create(&rec).Error; err != nil {
		return rec, err
	}

	// Create dengan DO UPDATE tidak mengembalikan baris lama; baca ulang biar
	// id & timestamp yang dikirim ke klien konsisten dengan yang tersimpan.
	if err := s.DB.WithContext(ctx).
		Where("attendance_signup_id = ? AND attendance_occurrence_id = ?", signupID, occurrenceID).
		Take(&rec).Error; err != nil {
		return rec, err
	}
	return rec, nil
}
