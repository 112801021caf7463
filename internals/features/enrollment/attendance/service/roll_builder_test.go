package service

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	attModel "playgroupku_backend/internals/features/enrollment/attendance/model"
	signupModel "playgroupku_backend/internals/features/enrollment/signups/model"
)

func TestMarkUpsertClause_TargetsPairAndOverwritesLatest(t *testing.T) {
	oc := markUpsertClause()

	// Arbiter konflik = unique pair (signup, occurrence): mark kedua untuk
	// pasangan yang sama jatuh ke DO UPDATE, bukan baris baru.
	if len(oc.Columns) != 2 ||
		oc.Columns[0].Name != "attendance_signup_id" ||
		oc.Columns[1].Name != "attendance_occurrence_id" {
		t.Fatalf("conflict columns = %+v, want (attendance_signup_id, attendance_occurrence_id)", oc.Columns)
	}
	if oc.DoNothing {
		t.Fatal("upsert must overwrite, not skip")
	}

	// Yang ditimpa: status + marked_at (+ updated_at) — mark terakhir menang,
	// identitas pasangan dan created_at tidak disentuh.
	want := map[string]bool{
		"attendance_status":     true,
		"attendance_marked_at":  true,
		"attendance_updated_at": true,
	}
	if len(oc.DoUpdates) != len(want) {
		t.Fatalf("DoUpdates = %+v, want %d assignments", oc.DoUpdates, len(want))
	}
	for _, a := range oc.DoUpdates {
		if !want[a.Column.Name] {
			t.Fatalf("unexpected overwrite column %q", a.Column.Name)
		}
	}
}

func TestAttendancePairUniqueIndex(t *testing.T) {
	// Jaminan "maksimal satu record per (signup, occurrence)" hidup di schema;
	// kedua kolom harus berbagi unique index yang sama dengan arbiter upsert.
	tags := collectGormTags(t)
	const idx = "uq_attendance_signup_occurrence"
	for _, field := range []string{"AttendanceSignupID", "AttendanceOccurrenceID"} {
		if !strings.Contains(tags[field], "uniqueIndex:"+idx) {
			t.Fatalf("%s missing uniqueIndex %s (tag: %q)", field, idx, tags[field])
		}
	}
}

func collectGormTags(t *testing.T) map[string]string {
	t.Helper()
	out := map[string]string{}
	rt := reflect.TypeOf(attModel.AttendanceRecordModel{})
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		out[f.Name] = f.Tag.Get("gorm")
	}
	return out
}

func TestRejectCanceledMark(t *testing.T) {
	cases := []struct {
		name          string
		isCanceled    bool
		allowCanceled bool
		want          bool
	}{
		{"occurrence aktif", false, false, false},
		{"occurrence aktif + force", false, true, false},
		{"occurrence batal", true, false, true},
		{"occurrence batal + force (koreksi retroaktif)", true, true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := rejectCanceledMark(tc.isCanceled, tc.allowCanceled); got != tc.want {
				t.Fatalf("rejectCanceledMark(%v, %v) = %v, want %v", tc.isCanceled, tc.allowCanceled, got, tc.want)
			}
		})
	}
}

func TestAssembleRoster_CompletenessAndMarks(t *testing.T) {
	// N=3 signup confirmed, M=2 sudah ditandai
	signups := []signupModel.SignupModel{
		{SignupID: uuid.New(), SignupChildName: "Andi", SignupStatus: signupModel.SignupStatusConfirmed},
		{SignupID: uuid.New(), SignupChildName: "Budi", SignupStatus: signupModel.SignupStatusConfirmed},
		{SignupID: uuid.New(), SignupChildName: "Citra", SignupStatus: signupModel.SignupStatusConfirmed},
	}
	now := time.Now().UTC()
	marks := map[uuid.UUID]attModel.AttendanceRecordModel{
		signups[0].SignupID: {
			AttendanceSignupID: signups[0].SignupID,
			AttendanceStatus:   attModel.AttendanceStatusPresent,
			AttendanceMarkedAt: now,
		},
		signups[2].SignupID: {
			AttendanceSignupID: signups[2].SignupID,
			AttendanceStatus:   attModel.AttendanceStatusExcused,
			AttendanceMarkedAt: now,
		},
	}

	rows := assembleRoster(signups, marks)
	if len(rows) != 3 {
		t.Fatalf("roster = %d rows, want 3", len(rows))
	}

	marked := 0
	for _, r := range rows {
		if r.AttendanceStatus != nil {
			marked++
			if r.AttendanceMarkedAt == nil {
				t.Fatalf("row %s has status but no marked_at", r.ChildName)
			}
		}
	}
	if marked != 2 {
		t.Fatalf("marked rows = %d, want 2", marked)
	}

	if rows[1].ChildName != "Budi" || rows[1].AttendanceStatus != nil {
		t.Fatalf("unmarked row should have nil status, got %+v", rows[1])
	}
	if *rows[2].AttendanceStatus != attModel.AttendanceStatusExcused {
		t.Fatalf("rows[2] status = %s, want excused", *rows[2].AttendanceStatus)
	}
}

func TestAssembleRoster_Empty(t *testing.T) {
	rows := assembleRoster(nil, nil)
	if len(rows) != 0 {
		t.Fatalf("expected empty roster, got %d rows", len(rows))
	}
}
