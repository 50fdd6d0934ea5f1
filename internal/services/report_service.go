package services

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "farmledger/internal/errors"
	"farmledger/internal/models"
)

// reportService builds read-only reports over the ledger.
type reportService struct {
	db         *gorm.DB
	feedStocks FeedStockServicer
}

// NewReportService creates a new ReportServicer.
func NewReportService(db *gorm.DB, feedStocks FeedStockServicer) ReportServicer {
	return &reportService{db: db, feedStocks: feedStocks}
}

// GetDashboard returns herd counts, low feed and month-to-date money.
func (s *reportService) GetDashboard(now time.Time) (*DashboardSummary, error) {
	summary := &DashboardSummary{}

	counts := []struct {
		model interface{}
		where string
		args  []interface{}
		dest  *int64
	}{
		{&models.Room{}, "", nil, &summary.Rooms},
		{&models.BreedingStock{}, "status = ?", []interface{}{models.AnimalStatusActive}, &summary.ActiveBreedingStock},
		{&models.Offspring{}, "status = ?", []interface{}{models.AnimalStatusActive}, &summary.ActiveOffspring},
		{&models.VaccinationRecord{}, "status = ?", []interface{}{models.VaccinationStatusOverdue}, &summary.OverdueVaccinations},
	}
	for _, c := range counts {
		query := s.db.Model(c.model)
		if c.where != "" {
			query = query.Where(c.where, c.args...)
		}
		if err := query.Count(c.dest).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	low, err := s.feedStocks.GetLowStock()
	if err != nil {
		return nil, err
	}
	summary.LowStockFeeds = low

	y, m, _ := now.Date()
	from := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	dates := DateRange{From: &from, To: &now}

	incomes, err := s.incomeLines(dates)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseLines(dates)
	if err != nil {
		return nil, err
	}
	summary.MonthToDateIncome = totalOf(incomes)
	summary.MonthToDateExpenses = totalOf(expenses)
	summary.MonthToDateNet = summary.MonthToDateIncome.Sub(summary.MonthToDateExpenses)

	return summary, nil
}

// GetFinanceReport lists incomes, sales included, and expenses for a period.
// week covers the last seven days, month the current month to date, custom
// the given dates and all has no bounds.
func (s *reportService) GetFinanceReport(period ReportPeriod, dates DateRange, now time.Time) (*FinanceReport, error) {
	dates, err := resolvePeriod(period, dates, now)
	if err != nil {
		return nil, err
	}

	report := &FinanceReport{Period: period}
	if dates.From != nil {
		from := models.DateKey(models.DateOf(*dates.From))
		report.From = &from
	}
	if dates.To != nil {
		to := models.DateKey(models.DateOf(*dates.To))
		report.To = &to
	}

	if report.Incomes, err = s.incomeLines(dates); err != nil {
		return nil, err
	}
	if report.Expenses, err = s.expenseLines(dates); err != nil {
		return nil, err
	}
	report.TotalIncome = totalOf(report.Incomes)
	report.TotalExpenses = totalOf(report.Expenses)
	report.NetBalance = report.TotalIncome.Sub(report.TotalExpenses)

	return report, nil
}

// GetFeedingCostReport sums feed quantity and cost per animal, most
// expensive first.
func (s *reportService) GetFeedingCostReport(dates DateRange) ([]FeedingCostLine, error) {
	var records []models.FeedingRecord
	query := applyDateRange(s.db.Model(&models.FeedingRecord{}), "recorded_at", dates.From, dates.To)
	if err := query.Select("target_kind", "breeding_stock_id", "offspring_id", "quantity_used", "total_cost").
		Find(&records).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	lines := make(map[string]*FeedingCostLine)
	var order []string
	for _, r := range records {
		id := r.TargetID()
		line, ok := lines[id]
		if !ok {
			line = &FeedingCostLine{Kind: r.TargetKind, AnimalID: id, Quantity: decimal.Zero, Cost: decimal.Zero}
			lines[id] = line
			order = append(order, id)
		}
		line.Quantity = line.Quantity.Add(r.QuantityUsed)
		line.Cost = line.Cost.Add(r.TotalCost)
	}

	names, err := s.animalNames(lines)
	if err != nil {
		return nil, err
	}

	result := make([]FeedingCostLine, 0, len(order))
	for _, id := range order {
		line := lines[id]
		line.Name = names[id]
		result = append(result, *line)
	}
	sort.SliceStable(result, func(i, j int) bool {
		if c := result[i].Cost.Cmp(result[j].Cost); c != 0 {
			return c > 0
		}
		return result[i].Name < result[j].Name
	})
	return result, nil
}

// GetBirthsReport counts offspring and distinct birth dates per breeding
// animal for offspring born in the range.
func (s *reportService) GetBirthsReport(dates DateRange) ([]BirthsLine, error) {
	var offspring []models.Offspring
	query := applyDateRange(s.db.Model(&models.Offspring{}), "birth_date", dates.From, dates.To)
	if err := query.Select("breeding_stock_id", "birth_date").Find(&offspring).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	lines := make(map[string]*BirthsLine)
	events := make(map[string]map[string]struct{})
	ids := make([]string, 0)
	for _, o := range offspring {
		line, ok := lines[o.BreedingStockID]
		if !ok {
			line = &BirthsLine{BreedingStockID: o.BreedingStockID}
			lines[o.BreedingStockID] = line
			events[o.BreedingStockID] = make(map[string]struct{})
			ids = append(ids, o.BreedingStockID)
		}
		line.Offspring++
		events[o.BreedingStockID][models.DateKey(o.BirthDate)] = struct{}{}
	}

	var stock []models.BreedingStock
	if len(ids) > 0 {
		if err := s.db.Select("id", "name").Where("id IN ?", ids).Find(&stock).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	for _, st := range stock {
		lines[st.ID].Name = st.Name
	}

	result := make([]BirthsLine, 0, len(ids))
	for _, id := range ids {
		line := lines[id]
		line.BirthEvents = len(events[id])
		result = append(result, *line)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Offspring != result[j].Offspring {
			return result[i].Offspring > result[j].Offspring
		}
		return result[i].Name < result[j].Name
	})
	return result, nil
}

// resolvePeriod turns a named period into concrete bounds.
func resolvePeriod(period ReportPeriod, dates DateRange, now time.Time) (DateRange, error) {
	today := time.Time(models.DateOf(now))
	switch period {
	case ReportPeriodWeek, "":
		from := today.AddDate(0, 0, -7)
		return DateRange{From: &from, To: &today}, nil
	case ReportPeriodMonth:
		from := today.AddDate(0, 0, 1-today.Day())
		return DateRange{From: &from, To: &today}, nil
	case ReportPeriodCustom:
		if dates.From == nil || dates.To == nil {
			return DateRange{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "custom period needs both from and to dates")
		}
		if dates.To.Before(*dates.From) {
			return DateRange{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "to date cannot be before from date")
		}
		return dates, nil
	case ReportPeriodAll:
		return DateRange{}, nil
	}
	return DateRange{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown report period "+string(period))
}

// incomeLines merges manual income entries with animal sales.
func (s *reportService) incomeLines(dates DateRange) ([]FinanceLine, error) {
	var incomes []models.IncomeRecord
	if err := applyDateRange(s.db.Model(&models.IncomeRecord{}), "date", dates.From, dates.To).
		Order("date ASC, created_at ASC").Find(&incomes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var sales []models.SoldAnimal
	if err := applyDateRange(s.db.Model(&models.SoldAnimal{}), "date_sold", dates.From, dates.To).
		Order("date_sold ASC, created_at ASC").Find(&sales).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	lines := make([]FinanceLine, 0, len(incomes)+len(sales))
	for _, i := range incomes {
		lines = append(lines, FinanceLine{Date: models.DateKey(i.Date), Kind: string(i.Source), Description: i.Description, Amount: i.Amount})
	}
	for _, sale := range sales {
		lines = append(lines, FinanceLine{Date: models.DateKey(sale.DateSold), Kind: "sold_" + string(sale.AnimalKind), Description: sale.AnimalName, Amount: sale.SoldPrice})
	}
	sort.SliceStable(lines, func(i, j int) bool { return lines[i].Date < lines[j].Date })
	return lines, nil
}

func (s *reportService) expenseLines(dates DateRange) ([]FinanceLine, error) {
	var expenses []models.ExpenseRecord
	if err := applyDateRange(s.db.Model(&models.ExpenseRecord{}), "date", dates.From, dates.To).
		Order("date ASC, created_at ASC").Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	lines := make([]FinanceLine, 0, len(expenses))
	for _, e := range expenses {
		lines = append(lines, FinanceLine{Date: models.DateKey(e.Date), Kind: string(e.Category), Description: e.Description, Amount: e.Amount})
	}
	return lines, nil
}

// animalNames resolves the names of the animals in a feeding cost report.
func (s *reportService) animalNames(lines map[string]*FeedingCostLine) (map[string]string, error) {
	var stockIDs, offspringIDs []string
	for id, line := range lines {
		if line.Kind == models.AnimalKindBreedingStock {
			stockIDs = append(stockIDs, id)
		} else {
			offspringIDs = append(offspringIDs, id)
		}
	}

	names := make(map[string]string, len(lines))
	if len(stockIDs) > 0 {
		var stock []models.BreedingStock
		if err := s.db.Select("id", "name").Where("id IN ?", stockIDs).Find(&stock).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		for _, st := range stock {
			names[st.ID] = st.Name
		}
	}
	if len(offspringIDs) > 0 {
		var offspring []models.Offspring
		if err := s.db.Select("id", "name").Where("id IN ?", offspringIDs).Find(&offspring).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		for _, o := range offspring {
			names[o.ID] = o.Name
		}
	}
	return names, nil
}

func totalOf(lines []FinanceLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Amount)
	}
	return total
}
