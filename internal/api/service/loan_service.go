package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"librehub/internal/api/apperr"
	"librehub/internal/api/models"
	"librehub/internal/api/repository"
)

// LoanService is the only mutator of loan records and the only trigger of the
// stock adjustments tied to lending. Every unit lent corresponds to exactly
// one active loan; create/return/delete keep that pairing intact.
type LoanService interface {
	Create(ctx context.Context, userID, bookID string, returnDate time.Time) (*models.Loan, error)
	Update(ctx context.Context, loanID string, newReturnDate *time.Time) (*models.Loan, error)
	Return(ctx context.Context, loanID string) (*models.Loan, error)
	Delete(ctx context.Context, loanID string) error
	GetByID(ctx context.Context, loanID string) (*models.Loan, error)
	GetAll(ctx context.Context, filter repository.LoanFilter) ([]models.Loan, error)
	GetByUser(ctx context.Context, userID string) ([]models.Loan, error)
	GetOverdue(ctx context.Context) ([]models.Loan, error)
}

type loanService struct {
	loanRepo repository.LoanRepository
	bookRepo repository.BookRepository
	now      func() time.Time
}

func NewLoanService(loanRepo repository.LoanRepository, bookRepo repository.BookRepository) LoanService {
	return &loanService{
		loanRepo: loanRepo,
		bookRepo: bookRepo,
		now:      time.Now,
	}
}

// Create checks preconditions in order (first failure wins): book exists,
// stock available, no duplicate active loan for the (user, book) pair, return
// date in the future. The stock reservation itself is a conditional decrement
// in the book repository, so two concurrent creates racing for the last copy
// cannot both succeed; the loser's loan record is deleted as compensation.
// The duplicate check is likewise backed by a partial unique index, so two
// creates for the same pair racing past FindActive leave only one row.
func (s *loanService) Create(ctx context.Context, userID, bookID string, returnDate time.Time) (*models.Loan, error) {
	book, err := s.bookRepo.GetByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("book not found")
		}
		return nil, err
	}

	if book.Stock < 1 {
		return nil, apperr.InvalidOperation("no stock available")
	}

	if _, err := s.loanRepo.FindActive(ctx, userID, bookID); err == nil {
		return nil, apperr.InvalidOperation("active loan already exists for this book")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	now := s.now()
	if !returnDate.After(now) {
		return nil, apperr.InvalidOperation("return date must be in the future")
	}

	loan := &models.Loan{
		UserID:     userID,
		BookID:     bookID,
		LoanDate:   now,
		ReturnDate: returnDate,
		Returned:   false,
	}
	loan.Status = models.DeriveStatus(now, loan)

	if err := s.loanRepo.Create(ctx, loan); err != nil {
		if errors.Is(err, repository.ErrDuplicateActiveLoan) {
			return nil, apperr.InvalidOperation("active loan already exists for this book")
		}
		return nil, err
	}

	if err := s.bookRepo.DecrementStock(ctx, bookID, 1); err != nil {
		// The copy was taken between the stock check and the reservation.
		// Undo the loan record rather than leave it without a matching
		// stock decrement.
		_ = s.loanRepo.Delete(ctx, loan.ID)
		if errors.Is(err, repository.ErrInsufficientStock) {
			return nil, apperr.InvalidOperation("no stock available")
		}
		return nil, err
	}

	return s.loanRepo.GetByID(ctx, loan.ID)
}

// Update changes the due date of a loan that has not been returned yet.
func (s *loanService) Update(ctx context.Context, loanID string, newReturnDate *time.Time) (*models.Loan, error) {
	loan, err := s.loanRepo.GetByID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("loan not found")
		}
		return nil, err
	}

	if loan.Returned {
		return nil, apperr.InvalidOperation("cannot update a returned loan")
	}

	now := s.now()
	if newReturnDate != nil {
		if !newReturnDate.After(now) {
			return nil, apperr.InvalidOperation("return date must be in the future")
		}
		loan.ReturnDate = *newReturnDate
	}

	loan.Status = models.DeriveStatus(now, loan)

	if err := s.loanRepo.Update(ctx, loan); err != nil {
		return nil, err
	}
	return s.loanRepo.GetByID(ctx, loanID)
}

// Return marks a loan returned and gives the copy back to the catalog.
// Returning is always legal while the loan is unreturned, overdue included.
func (s *loanService) Return(ctx context.Context, loanID string) (*models.Loan, error) {
	loan, err := s.loanRepo.GetByID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("loan not found")
		}
		return nil, err
	}

	if loan.Returned {
		return nil, apperr.InvalidOperation("loan has already been returned")
	}

	loan.Returned = true
	loan.Status = models.LoanStatusReturned

	if err := s.loanRepo.Update(ctx, loan); err != nil {
		return nil, err
	}

	if err := s.bookRepo.IncrementStock(ctx, loan.BookID, 1); err != nil {
		// Roll the loan back to unreturned so the record and the stock
		// count stay paired.
		loan.Returned = false
		loan.Status = models.DeriveStatus(s.now(), loan)
		_ = s.loanRepo.Update(ctx, loan)
		return nil, err
	}

	return s.loanRepo.GetByID(ctx, loanID)
}

// Delete removes a loan record. Deleting an active loan restores the held
// copy first, mirroring an implicit return; deleting a returned loan leaves
// stock untouched.
func (s *loanService) Delete(ctx context.Context, loanID string) error {
	loan, err := s.loanRepo.GetByID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("loan not found")
		}
		return err
	}

	if !loan.Returned {
		if err := s.bookRepo.IncrementStock(ctx, loan.BookID, 1); err != nil {
			return err
		}
	}

	if err := s.loanRepo.Delete(ctx, loanID); err != nil {
		if !loan.Returned {
			// Take the restored copy back out so the failed delete has
			// no net effect on stock.
			_ = s.bookRepo.DecrementStock(ctx, loan.BookID, 1)
		}
		return err
	}
	return nil
}

func (s *loanService) GetByID(ctx context.Context, loanID string) (*models.Loan, error) {
	loan, err := s.loanRepo.GetByID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("loan not found")
		}
		return nil, err
	}
	loan.Status = models.DeriveStatus(s.now(), loan)
	return loan, nil
}

func (s *loanService) GetAll(ctx context.Context, filter repository.LoanFilter) ([]models.Loan, error) {
	loans, err := s.loanRepo.List(ctx, filter, s.now())
	if err != nil {
		return nil, err
	}
	s.refreshStatuses(loans)
	return loans, nil
}

func (s *loanService) GetByUser(ctx context.Context, userID string) ([]models.Loan, error) {
	loans, err := s.loanRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.refreshStatuses(loans)
	return loans, nil
}

// GetOverdue scans for unreturned loans past their due date. Read-only: the
// recomputed status goes into the response, never back into storage.
func (s *loanService) GetOverdue(ctx context.Context) ([]models.Loan, error) {
	loans, err := s.loanRepo.FindOverdue(ctx, s.now())
	if err != nil {
		return nil, err
	}
	s.refreshStatuses(loans)
	return loans, nil
}

// refreshStatuses recomputes the derived status on loans read from storage,
// since a stored "active" may have gone overdue since the last write.
func (s *loanService) refreshStatuses(loans []models.Loan) {
	now := s.now()
	for i := range loans {
		loans[i].Status = models.DeriveStatus(now, &loans[i])
	}
}
