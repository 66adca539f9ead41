package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"finance-visualizer/internal/models"
	"finance-visualizer/internal/repositories"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

const (
	demoMonths         = 6
	minDailyPurchases  = 10
	maxDailyPurchases  = 18
	pendingProbability = 0.08
	salaryDay          = 1

	salaryAccount   = "SBI 1234"
	spendingAccount = "HDFC 7834"
)

// merchant is a payee used to generate demo expenses
type merchant struct {
	Name      string
	Category  string
	MinAmount float64
	MaxAmount float64
}

type demoSeeder struct {
	transactionRepo repositories.TransactionRepositoryInterface
	budgetRepo      repositories.BudgetRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	metrics         MetricsRecorderInterface
	faker           *gofakeit.Faker
	merchantPool    []merchant
	now             func() time.Time
}

// NewDemoSeeder creates a seeder that writes the default categories, sample budgets
// and six months of generated transactions into an empty store
func NewDemoSeeder(
	transactionRepo repositories.TransactionRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	metrics MetricsRecorderInterface,
	faker *gofakeit.Faker,
) DemoSeederInterface {
	return &demoSeeder{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		categoryRepo:    categoryRepo,
		metrics:         metrics,
		faker:           faker,
		merchantPool:    initializeMerchantPool(),
		now:             time.Now,
	}
}

func initializeMerchantPool() []merchant {
	return []merchant{
		// Food & Dining
		{"Swiggy Food Order", "Food & Dining", 180, 900},
		{"Zomato", "Food & Dining", 150, 850},
		{"Starbucks", "Food & Dining", 250, 600},
		{"Domino's Pizza", "Food & Dining", 300, 1100},

		// Groceries
		{"Big Bazaar Groceries", "Groceries", 600, 3500},
		{"DMart", "Groceries", 500, 3000},
		{"BigBasket", "Groceries", 400, 2500},

		// Transport
		{"Uber Ride", "Transportation", 120, 650},
		{"Ola Cabs", "Transportation", 100, 550},
		{"Metro Card Recharge", "Transportation", 200, 500},
		{"Petrol Pump", "Fuel & Transport", 800, 3000},

		// Shopping
		{"Amazon Shopping", "Shopping", 400, 6000},
		{"Flipkart", "Shopping", 300, 5000},
		{"Myntra", "Shopping", 700, 4000},

		// Entertainment
		{"Movie Tickets", "Entertainment", 300, 1200},
		{"BookMyShow", "Entertainment", 250, 1000},
		{"Spotify Premium", "Entertainment", 119, 119},

		// Healthcare
		{"Apollo Pharmacy", "Healthcare", 150, 1800},
		{"City Clinic", "Healthcare", 500, 2500},
	}
}

// DemoBudgets returns the sample monthly budgets
func DemoBudgets() []models.Budget {
	return []models.Budget{
		{Category: "Food & Dining", Amount: decimal.NewFromInt(8000), Period: "Monthly"},
		{Category: "Transportation", Amount: decimal.NewFromInt(5000), Period: "Monthly"},
		{Category: "Entertainment", Amount: decimal.NewFromInt(3000), Period: "Monthly"},
		{Category: "Utilities", Amount: decimal.NewFromInt(4000), Period: "Monthly"},
	}
}

func (s *demoSeeder) SeedIfEmpty(ctx context.Context) (bool, error) {
	empty, err := s.storeIsEmpty(ctx)
	if err != nil {
		return false, err
	}
	if !empty {
		slog.InfoContext(ctx, "store already has data, skipping demo seed")
		return false, nil
	}

	categories := models.DefaultCategories()
	for i := range categories {
		if err := s.categoryRepo.Create(ctx, &categories[i]); err != nil {
			return false, fmt.Errorf("failed to seed category %q: %w", categories[i].Name, err)
		}
	}

	budgets := DemoBudgets()
	for i := range budgets {
		if err := s.budgetRepo.Create(ctx, &budgets[i]); err != nil {
			return false, fmt.Errorf("failed to seed budget %q: %w", budgets[i].Category, err)
		}
	}

	end := s.now()
	start := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(demoMonths - 1), 0)
	transactions := s.GenerateTransactions(start, end)
	if err := s.transactionRepo.CreateBatch(ctx, transactions); err != nil {
		return false, fmt.Errorf("failed to seed transactions: %w", err)
	}

	s.metrics.RecordGauge(MetricDemoSeeded, float64(len(categories)), map[string]string{"entity": "category"})
	s.metrics.RecordGauge(MetricDemoSeeded, float64(len(budgets)), map[string]string{"entity": "budget"})
	s.metrics.RecordGauge(MetricDemoSeeded, float64(len(transactions)), map[string]string{"entity": "transaction"})

	slog.InfoContext(ctx, "seeded demo data",
		"categories", len(categories),
		"budgets", len(budgets),
		"transactions", len(transactions),
	)
	return true, nil
}

func (s *demoSeeder) storeIsEmpty(ctx context.Context) (bool, error) {
	counters := []struct {
		entity string
		count  func(context.Context) (int64, error)
	}{
		{"transactions", s.transactionRepo.Count},
		{"budgets", s.budgetRepo.Count},
		{"categories", s.categoryRepo.Count},
	}

	for _, counter := range counters {
		n, err := counter.count(ctx)
		if err != nil {
			return false, fmt.Errorf("failed to count %s: %w", counter.entity, err)
		}
		if n > 0 {
			return false, nil
		}
	}
	return true, nil
}

// GenerateTransactions produces income, bills and purchases for every month
// from start's month through end. Nothing is dated after end.
func (s *demoSeeder) GenerateTransactions(start, end time.Time) []models.Transaction {
	transactions := make([]models.Transaction, 0)

	for month := firstOfMonthUTC(start); !month.After(end); month = month.AddDate(0, 1, 0) {
		monthEnd := month.AddDate(0, 1, -1)
		if monthEnd.After(end) {
			monthEnd = models.CalendarDate(end)
		}

		transactions = append(transactions, s.incomeFor(month, monthEnd)...)
		transactions = append(transactions, s.billsFor(month, monthEnd)...)
		transactions = append(transactions, s.purchasesFor(month, monthEnd)...)
	}

	return transactions
}

func (s *demoSeeder) incomeFor(month, monthEnd time.Time) []models.Transaction {
	income := []models.Transaction{
		s.newTransaction(models.TransactionTypeIncome, "Salary Credit", "Monthly salary", "Income",
			decimal.NewFromInt(45000), month.AddDate(0, 0, salaryDay-1), salaryAccount),
	}

	if s.faker.Bool() {
		date := s.faker.DateRange(month, monthEnd)
		income = append(income, s.newTransaction(models.TransactionTypeIncome, "Freelance Payment",
			fmt.Sprintf("Invoice for %s", s.faker.Company()), "Freelance",
			s.amountBetween(5000, 20000).Round(0), date, salaryAccount))
	}

	return income
}

func (s *demoSeeder) billsFor(month, monthEnd time.Time) []models.Transaction {
	bills := make([]models.Transaction, 0, 2)

	billDay := month.AddDate(0, 0, s.faker.IntRange(4, 9))
	if !billDay.After(monthEnd) {
		bills = append(bills, s.newTransaction(models.TransactionTypeExpense, "Electricity Bill", "Monthly electricity bill",
			"Utilities", s.amountBetween(1200, 2400), billDay, salaryAccount))
	}

	streamingDay := month.AddDate(0, 0, 14)
	if !streamingDay.After(monthEnd) {
		bills = append(bills, s.newTransaction(models.TransactionTypeExpense, "Netflix Subscription", "Netflix monthly plan",
			"Entertainment", decimal.NewFromInt(199), streamingDay, spendingAccount))
	}

	return bills
}

func (s *demoSeeder) purchasesFor(month, monthEnd time.Time) []models.Transaction {
	count := s.faker.IntRange(minDailyPurchases, maxDailyPurchases)
	purchases := make([]models.Transaction, 0, count)

	for i := 0; i < count; i++ {
		m := s.merchantPool[s.faker.IntRange(0, len(s.merchantPool)-1)]
		date := s.faker.DateRange(month, monthEnd)
		purchases = append(purchases, s.newTransaction(models.TransactionTypeExpense, m.Name, s.faker.Sentence(4),
			m.Category, s.amountBetween(m.MinAmount, m.MaxAmount), date, spendingAccount))
	}

	return purchases
}

func (s *demoSeeder) newTransaction(txType, name, description, category string, amount decimal.Decimal, date time.Time, account string) models.Transaction {
	status := models.TransactionStatusSuccess
	if s.faker.Float64Range(0, 1) < pendingProbability {
		status = models.TransactionStatusPending
	}

	return models.Transaction{
		Type:        txType,
		Amount:      amount,
		Date:        models.CalendarDate(date),
		Name:        name,
		Description: description,
		Category:    category,
		Status:      status,
		Account:     account,
	}
}

func (s *demoSeeder) amountBetween(minAmount, maxAmount float64) decimal.Decimal {
	if minAmount >= maxAmount {
		return decimal.NewFromFloat(minAmount).Round(2)
	}
	return decimal.NewFromFloat(s.faker.Price(minAmount, maxAmount)).Round(2)
}

func firstOfMonthUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
