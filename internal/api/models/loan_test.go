package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeriveStatus(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		loan Loan
		want LoanStatus
	}{
		{
			name: "unreturned before due date is active",
			loan: Loan{Returned: false, ReturnDate: now.Add(48 * time.Hour)},
			want: LoanStatusActive,
		},
		{
			name: "unreturned past due date is overdue",
			loan: Loan{Returned: false, ReturnDate: now.Add(-time.Minute)},
			want: LoanStatusOverdue,
		},
		{
			name: "returned wins even when past due date",
			loan: Loan{Returned: true, ReturnDate: now.Add(-72 * time.Hour)},
			want: LoanStatusReturned,
		},
		{
			name: "returned before due date",
			loan: Loan{Returned: true, ReturnDate: now.Add(48 * time.Hour)},
			want: LoanStatusReturned,
		},
		{
			name: "due date exactly now is still active",
			loan: Loan{Returned: false, ReturnDate: now},
			want: LoanStatusActive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStatus(now, &tt.loan))
		})
	}
}

func TestIsOverdue(t *testing.T) {
	now := time.Now()

	overdue := Loan{Returned: false, ReturnDate: now.Add(-time.Hour)}
	assert.True(t, overdue.IsOverdue(now))

	returned := Loan{Returned: true, ReturnDate: now.Add(-time.Hour)}
	assert.False(t, returned.IsOverdue(now))

	active := Loan{Returned: false, ReturnDate: now.Add(time.Hour)}
	assert.False(t, active.IsOverdue(now))
}
