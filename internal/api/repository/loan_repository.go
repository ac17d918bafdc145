package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"librehub/internal/api/models"
)

// ErrDuplicateActiveLoan is returned by Create when the partial unique index
// on (user_id, book_id) WHERE NOT returned rejects a second active loan for
// the same pair.
var ErrDuplicateActiveLoan = errors.New("duplicate active loan")

// LoanFilter narrows listing queries. Status is matched against the derived
// lifecycle state, so it translates to returned/return_date predicates rather
// than the stored status column (which is only refreshed on writes).
type LoanFilter struct {
	Status models.LoanStatus
	UserID string
}

type LoanRepository interface {
	GetByID(ctx context.Context, id string) (*models.Loan, error)
	List(ctx context.Context, filter LoanFilter, now time.Time) ([]models.Loan, error)
	ListByUser(ctx context.Context, userID string) ([]models.Loan, error)
	FindActive(ctx context.Context, userID, bookID string) (*models.Loan, error)
	FindOverdue(ctx context.Context, now time.Time) ([]models.Loan, error)
	Create(ctx context.Context, loan *models.Loan) error
	Update(ctx context.Context, loan *models.Loan) error
	Delete(ctx context.Context, id string) error
}

type loanRepository struct {
	db *gorm.DB
}

func NewLoanRepository(db *gorm.DB) LoanRepository {
	return &loanRepository{db: db}
}

func (r *loanRepository) GetByID(ctx context.Context, id string) (*models.Loan, error) {
	var loan models.Loan
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Book").
		First(&loan, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &loan, nil
}

func (r *loanRepository) List(ctx context.Context, filter LoanFilter, now time.Time) ([]models.Loan, error) {
	var loans []models.Loan

	q := r.db.WithContext(ctx).
		Preload("User").
		Preload("Book")

	// Status is derived from returned + return_date, never trusted from the
	// stored column.
	switch filter.Status {
	case models.LoanStatusReturned:
		q = q.Where("returned = ?", true)
	case models.LoanStatusActive:
		q = q.Where("returned = ? AND return_date >= ?", false, now)
	case models.LoanStatusOverdue:
		q = q.Where("returned = ? AND return_date < ?", false, now)
	}

	if filter.UserID != "" {
		q = q.Where("user_id = ?", filter.UserID)
	}

	if err := q.Order("created_at DESC").Find(&loans).Error; err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}
	return loans, nil
}

func (r *loanRepository) ListByUser(ctx context.Context, userID string) ([]models.Loan, error) {
	var loans []models.Loan
	if err := r.db.WithContext(ctx).
		Preload("Book").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&loans).Error; err != nil {
		return nil, fmt.Errorf("list loans by user: %w", err)
	}
	return loans, nil
}

// FindActive returns the unreturned loan for a (user, book) pair, or
// gorm.ErrRecordNotFound. There is at most one, enforced by the partial
// unique index idx_loans_active_pair.
func (r *loanRepository) FindActive(ctx context.Context, userID, bookID string) (*models.Loan, error) {
	var loan models.Loan
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND book_id = ? AND returned = ?", userID, bookID, false).
		First(&loan).Error; err != nil {
		return nil, err
	}
	return &loan, nil
}

func (r *loanRepository) FindOverdue(ctx context.Context, now time.Time) ([]models.Loan, error) {
	var loans []models.Loan
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Book").
		Where("returned = ? AND return_date < ?", false, now).
		Order("return_date ASC").
		Find(&loans).Error; err != nil {
		return nil, fmt.Errorf("find overdue loans: %w", err)
	}
	return loans, nil
}

func (r *loanRepository) Create(ctx context.Context, loan *models.Loan) error {
	if err := r.db.WithContext(ctx).Create(loan).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateActiveLoan
		}
		return fmt.Errorf("create loan: %w", err)
	}
	return nil
}

func (r *loanRepository) Update(ctx context.Context, loan *models.Loan) error {
	if err := r.db.WithContext(ctx).Save(loan).Error; err != nil {
		return fmt.Errorf("update loan: %w", err)
	}
	return nil
}

func (r *loanRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Loan{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete loan: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
