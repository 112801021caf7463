// file: internals/features/enrollment/signups/service/placement.go
package service

import (
	m "playgroupku_backend/internals/features/enrollment/signups/model"
)

/* =========================================================
 * Placement — status awal signup vs kapasitas session
 *
 * Hanya dipakai saat signup DIBUAT. Perubahan status manual
 * oleh admin tidak divalidasi ulang (kapasitas bersifat
 * advisory, lihat ChangeStatus).
 * ========================================================= */

// DecideInitialStatus:
//   - kapasitas NULL (tanpa batas) → confirmed
//   - masih ada slot (confirmed < capacity) → confirmed
//   - penuh + waitlist aktif → waitlisted
//   - penuh tanpa waitlist → pending (menunggu keputusan admin)
func DecideInitialStatus(capacity *int, waitlistEnabled bool, confirmedCount int64) m.SignupStatus {
	if capacity == nil || confirmedCount < int64(*capacity) {
		return m.SignupStatusConfirmed
	}
	if waitlistEnabled {
		return m.SignupStatusWaitlisted
	}
	return m.SignupStatusPending
}

// PartitionByStatus mengelompokkan signup per status, urutan dalam grup
// mengikuti urutan input (dipanggil dengan rows terurut created_at).
func PartitionByStatus(rows []m.SignupModel) map[m.SignupStatus][]m.SignupModel {
	out := map[m.SignupStatus][]m.SignupModel{
		m.SignupStatusPending:    {},
		m.SignupStatusConfirmed:  {},
		m.SignupStatusWaitlisted: {},
		m.SignupStatusWithdrawn:  {},
	}
	for _, r := range rows {
		out[r.SignupStatus] = append(out[r.SignupStatus], r)
	}
	return out
}
