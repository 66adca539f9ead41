package repositories

import (
	"context"
	"testing"
	"time"

	"finance-visualizer/internal/database"
	"finance-visualizer/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo TransactionRepositoryInterface
	ctx  context.Context
}

func (s *TransactionRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)
	s.ctx = context.Background()
}

func (s *TransactionRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestTransactionRepositorySuite(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func (s *TransactionRepositorySuite) newTransaction(txType, category, amount string, on time.Time) *models.Transaction {
	return &models.Transaction{
		Type:        txType,
		Amount:      decimal.RequireFromString(amount),
		Date:        on,
		Description: "  " + category + " purchase  ",
		Category:    category,
	}
}

func (s *TransactionRepositorySuite) TestCreate() {
	tx := s.newTransaction(models.TransactionTypeExpense, "Groceries", "42.50", date(2024, time.March, 5))

	err := s.repo.Create(s.ctx, tx)
	s.NoError(err)
	s.NotEqual(uuid.Nil, tx.ID)
	s.Equal(models.TransactionStatusSuccess, tx.Status)
	s.Equal("Groceries purchase", tx.Description)
	s.NotZero(tx.CreatedAt)

	found, err := s.repo.GetByID(s.ctx, tx.ID)
	s.Require().NoError(err)
	s.True(decimal.RequireFromString("42.50").Equal(found.Amount))
	s.Equal("2024-03-05", found.Date.Format(models.DateLayout))
}

func (s *TransactionRepositorySuite) TestCreate_RejectsInvalidRecord() {
	tx := s.newTransaction("transfer", "Groceries", "10.00", date(2024, time.March, 5))

	err := s.repo.Create(s.ctx, tx)
	s.ErrorIs(err, models.ErrInvalidTransactionType)

	count, err := s.repo.Count(s.ctx)
	s.NoError(err)
	s.Zero(count)
}

func (s *TransactionRepositorySuite) TestList_OrderedByDateThenInsertion() {
	older := s.newTransaction(models.TransactionTypeExpense, "Rent", "1200.00", date(2024, time.January, 1))
	first := s.newTransaction(models.TransactionTypeExpense, "Coffee", "4.00", date(2024, time.February, 10))
	second := s.newTransaction(models.TransactionTypeIncome, "Income", "3000.00", date(2024, time.February, 10))
	second.CreatedAt = time.Now().Add(time.Minute)

	s.Require().NoError(s.repo.Create(s.ctx, older))
	s.Require().NoError(s.repo.Create(s.ctx, first))
	s.Require().NoError(s.repo.Create(s.ctx, second))

	list, err := s.repo.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 3)
	s.Equal(second.ID, list[0].ID)
	s.Equal(first.ID, list[1].ID)
	s.Equal(older.ID, list[2].ID)
}

func (s *TransactionRepositorySuite) TestList_Empty() {
	list, err := s.repo.List(s.ctx)
	s.NoError(err)
	s.Empty(list)
}

func (s *TransactionRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(s.ctx, uuid.New())
	s.ErrorIs(err, ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestCreateBatch() {
	batch := make([]models.Transaction, 0, 150)
	for i := 0; i < 150; i++ {
		batch = append(batch, *s.newTransaction(models.TransactionTypeExpense, "Shopping", "1.00", date(2024, time.April, 1+i%28)))
	}

	err := s.repo.CreateBatch(s.ctx, batch)
	s.Require().NoError(err)

	count, err := s.repo.Count(s.ctx)
	s.NoError(err)
	s.Equal(int64(150), count)
}

func (s *TransactionRepositorySuite) TestCreateBatch_Empty() {
	s.NoError(s.repo.CreateBatch(s.ctx, nil))
}

func (s *TransactionRepositorySuite) TestUpdate() {
	tx := s.newTransaction(models.TransactionTypeExpense, "Groceries", "42.50", date(2024, time.March, 5))
	s.Require().NoError(s.repo.Create(s.ctx, tx))

	tx.Amount = decimal.RequireFromString("50.00")
	tx.Category = "Food & Dining"
	tx.Status = models.TransactionStatusPending

	s.Require().NoError(s.repo.Update(s.ctx, tx))

	found, err := s.repo.GetByID(s.ctx, tx.ID)
	s.Require().NoError(err)
	s.True(decimal.RequireFromString("50.00").Equal(found.Amount))
	s.Equal("Food & Dining", found.Category)
	s.Equal(models.TransactionStatusPending, found.Status)
}

func (s *TransactionRepositorySuite) TestUpdate_NotFound() {
	tx := s.newTransaction(models.TransactionTypeExpense, "Groceries", "42.50", date(2024, time.March, 5))
	tx.ID = uuid.New()

	err := s.repo.Update(s.ctx, tx)
	s.ErrorIs(err, ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestDelete() {
	tx := s.newTransaction(models.TransactionTypeExpense, "Groceries", "42.50", date(2024, time.March, 5))
	s.Require().NoError(s.repo.Create(s.ctx, tx))

	s.NoError(s.repo.Delete(s.ctx, tx.ID))

	_, err := s.repo.GetByID(s.ctx, tx.ID)
	s.ErrorIs(err, ErrTransactionNotFound)
}

func (s *TransactionRepositorySuite) TestDelete_NotFound() {
	err := s.repo.Delete(s.ctx, uuid.New())
	s.ErrorIs(err, ErrTransactionNotFound)
}
