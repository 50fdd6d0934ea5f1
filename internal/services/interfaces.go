package services

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"farmledger/internal/models"
	"farmledger/internal/pagination"
)

// CostBreakdown is the lifetime cost of one animal split by source.
// Purchase and Breeding only apply to breeding stock.
type CostBreakdown struct {
	Purchase    decimal.Decimal `json:"purchase"`
	Feeding     decimal.Decimal `json:"feeding"`
	Health      decimal.Decimal `json:"health"`
	Vaccination decimal.Decimal `json:"vaccination"`
	Breeding    decimal.Decimal `json:"breeding"`
	Total       decimal.Decimal `json:"total"`
}

// AggregateRecalculator recomputes parent aggregates from their children.
// Both methods take the caller's transaction and recount from scratch, so
// running them twice yields the same result.
type AggregateRecalculator interface {
	RecountRoomOccupancy(tx *gorm.DB, roomID string) (*models.Room, error)
	RecountOffspring(tx *gorm.DB, breedingStockID string) (*models.BreedingStock, error)
}

// CostCalculator sums the lifetime cost of an animal from its records.
type CostCalculator interface {
	BreedingStockCost(db *gorm.DB, breedingStockID string) (*CostBreakdown, error)
	OffspringCost(db *gorm.DB, offspringID string) (*CostBreakdown, error)
	AnimalCost(db *gorm.DB, kind models.AnimalKind, id string) (*CostBreakdown, error)
}

// RoomServicer defines the contract for room-related business logic.
type RoomServicer interface {
	CreateRoom(name string, capacity int, status models.RoomStatus, note string) (*models.Room, error)
	GetRooms(page pagination.PageRequest) (*pagination.PageResponse[models.Room], error)
	GetRoomByID(roomID string) (*models.Room, error)
	UpdateRoom(roomID string, name string, capacity *int, status *models.RoomStatus, note *string) (*models.Room, error)
	DeleteRoom(roomID string) error
}

// BreedingMethodServicer defines the contract for the insemination method catalog.
type BreedingMethodServicer interface {
	CreateBreedingMethod(name, description string) (*models.BreedingMethod, error)
	GetBreedingMethods(page pagination.PageRequest) (*pagination.PageResponse[models.BreedingMethod], error)
	GetBreedingMethodByID(methodID string) (*models.BreedingMethod, error)
	UpdateBreedingMethod(methodID string, name string, description *string) (*models.BreedingMethod, error)
	DeleteBreedingMethod(methodID string) error
}

// AnimalFilter holds optional filter parameters for listing animals.
type AnimalFilter struct {
	Status          *models.AnimalStatus
	RoomID          *string
	BreedingStockID *string
}

// BreedingStockDetail is a breeding animal with its cost rollup and latest weighing.
type BreedingStockDetail struct {
	models.BreedingStock
	Cost         *CostBreakdown       `json:"cost"`
	LatestWeight *models.WeightRecord `json:"latest_weight,omitempty"`
}

// BreedingStockServicer defines the contract for breeding stock business logic.
type BreedingStockServicer interface {
	CreateBreedingStock(roomID string, category models.StockCategory, origin models.StockOrigin, purchaseCost decimal.Decimal, registeredDate time.Time, breedingMethodID *string) (*models.BreedingStock, error)
	GetBreedingStock(page pagination.PageRequest, filter AnimalFilter) (*pagination.PageResponse[models.BreedingStock], error)
	GetBreedingStockByID(stockID string) (*BreedingStockDetail, error)
	UpdateBreedingStock(stockID string, roomID *string, category *models.StockCategory, origin *models.StockOrigin, purchaseCost *decimal.Decimal, breedingMethodID *string) (*models.BreedingStock, error)
	DeleteBreedingStock(stockID string) error
	PromoteOffspring(offspringID, roomID string, registeredDate time.Time) (*models.BreedingStock, error)
}

// OffspringDetail is an offspring with its cost rollup.
type OffspringDetail struct {
	models.Offspring
	Cost *CostBreakdown `json:"cost"`
}

// OffspringServicer defines the contract for offspring business logic.
type OffspringServicer interface {
	CreateOffspring(breedingStockID string, birthDate time.Time, initialWeight decimal.Decimal, breedingMethodID *string) (*models.Offspring, error)
	GetOffspring(page pagination.PageRequest, filter AnimalFilter) (*pagination.PageResponse[models.Offspring], error)
	GetOffspringByID(offspringID string) (*OffspringDetail, error)
	UpdateOffspring(offspringID string, birthDate *time.Time, initialWeight *decimal.Decimal, breedingMethodID *string) (*models.Offspring, error)
	DeleteOffspring(offspringID string) error
}

// AnimalStatusServicer defines the contract for taking animals in and out of the active herd.
type AnimalStatusServicer interface {
	MarkInactive(kind models.AnimalKind, animalID, reason string, date time.Time) (*models.InactiveAnimal, error)
	Reactivate(kind models.AnimalKind, animalID string) error
	GetInactiveAnimals(page pagination.PageRequest, kind *models.AnimalKind) (*pagination.PageResponse[models.InactiveAnimal], error)
}

// SaleFilter holds optional filter parameters for listing sales.
type SaleFilter struct {
	Kind     *models.AnimalKind
	FromDate *time.Time
	ToDate   *time.Time
}

// SaleServicer defines the contract for selling animals.
type SaleServicer interface {
	SellAnimal(kind models.AnimalKind, animalID string, soldPrice decimal.Decimal, dateSold time.Time) (*models.SoldAnimal, error)
	GetSales(page pagination.PageRequest, filter SaleFilter) (*pagination.PageResponse[models.SoldAnimal], error)
	GetSaleByID(saleID string) (*models.SoldAnimal, error)
}

// FeedStockServicer defines the contract for the feed inventory ledger.
// Consume and Release run inside the caller's transaction.
type FeedStockServicer interface {
	CreateFeedStock(name string, feedType models.FeedType, unit models.FeedUnit, quantity, unitCost decimal.Decimal) (*models.FeedStock, error)
	GetFeedStocks(page pagination.PageRequest) (*pagination.PageResponse[models.FeedStock], error)
	GetFeedStockByID(feedStockID string) (*models.FeedStock, error)
	UpdateFeedStock(feedStockID string, name string, feedType *models.FeedType, unit *models.FeedUnit, unitCost *decimal.Decimal) (*models.FeedStock, error)
	Restock(feedStockID string, quantity decimal.Decimal, unitCost *decimal.Decimal) (*models.FeedStock, error)
	DeleteFeedStock(feedStockID string) error
	GetLowStock() ([]models.FeedStock, error)
	Consume(tx *gorm.DB, feedStockID string, quantity decimal.Decimal) (*models.FeedStock, error)
	Release(tx *gorm.DB, feedStockID string, quantity decimal.Decimal) (*models.FeedStock, error)
}

// RecordFilter holds optional filter parameters for per-animal record lists.
type RecordFilter struct {
	Kind     *models.AnimalKind
	AnimalID *string
	FromDate *time.Time
	ToDate   *time.Time
}

// FeedingServicer defines the contract for feeding records.
type FeedingServicer interface {
	CreateFeedingRecord(target models.AnimalRef, feedStockID string, quantity decimal.Decimal, recordedAt time.Time) (*models.FeedingRecord, error)
	GetFeedingRecords(page pagination.PageRequest, filter RecordFilter, feedStockID *string) (*pagination.PageResponse[models.FeedingRecord], error)
	GetFeedingRecordByID(recordID string) (*models.FeedingRecord, error)
	DeleteFeedingRecord(recordID string) error
}

// HealthRecordInput carries the editable fields of a health record.
type HealthRecordInput struct {
	Target            models.AnimalRef
	HealthIssue       string
	TreatmentGiven    string
	Dosage            string
	TreatmentDate     time.Time
	NextTreatmentDate *time.Time
	Status            models.HealthStatus
	Cost              decimal.Decimal
	Note              string
}

// HealthServicer defines the contract for health records.
type HealthServicer interface {
	CreateHealthRecord(input HealthRecordInput) (*models.HealthRecord, error)
	GetHealthRecords(page pagination.PageRequest, filter RecordFilter) (*pagination.PageResponse[models.HealthRecord], error)
	GetHealthRecordByID(recordID string) (*models.HealthRecord, error)
	UpdateHealthRecord(recordID string, input HealthRecordInput) (*models.HealthRecord, error)
	DeleteHealthRecord(recordID string) error
}

// VaccineServicer defines the contract for the vaccine catalog.
type VaccineServicer interface {
	CreateVaccine(name, description string, durationDays int) (*models.Vaccine, error)
	GetVaccines(page pagination.PageRequest) (*pagination.PageResponse[models.Vaccine], error)
	GetVaccineByID(vaccineID string) (*models.Vaccine, error)
	UpdateVaccine(vaccineID string, name string, description *string, durationDays *int) (*models.Vaccine, error)
	DeleteVaccine(vaccineID string) error
}

// VaccinationServicer defines the contract for vaccination records.
type VaccinationServicer interface {
	AssignVaccination(target models.AnimalRef, vaccineID string, vaccinationDate time.Time, cost decimal.Decimal) (*models.VaccinationRecord, error)
	GetVaccinations(page pagination.PageRequest, filter RecordFilter, status *models.VaccinationStatus) (*pagination.PageResponse[models.VaccinationRecord], error)
	GetVaccinationByID(recordID string) (*models.VaccinationRecord, error)
	UpdateVaccination(recordID string, vaccinationDate *time.Time, cost *decimal.Decimal) (*models.VaccinationRecord, error)
	DeleteVaccination(recordID string) error
	MarkOverdue(now time.Time) (int64, error)
}

// WeightServicer defines the contract for weight records.
type WeightServicer interface {
	CreateWeightRecord(target models.AnimalRef, recordedDate time.Time, weight decimal.Decimal) (*models.WeightRecord, error)
	GetWeightRecords(page pagination.PageRequest, filter RecordFilter) (*pagination.PageResponse[models.WeightRecord], error)
	GetWeightRecordByID(recordID string) (*models.WeightRecord, error)
	UpdateWeightRecord(recordID string, recordedDate *time.Time, weight *decimal.Decimal) (*models.WeightRecord, error)
	DeleteWeightRecord(recordID string) error
}

// BreedingRecordInput carries the editable fields of a breeding record.
type BreedingRecordInput struct {
	BreedingStockID    string
	HeatDetectionDate  *time.Time
	Insemination1Date  *time.Time
	Insemination2Date  *time.Time
	Insemination3Date  *time.Time
	BreedingMethodID   *string
	Cost               decimal.Decimal
	ExpectedFarrowDate *time.Time
	ActualFarrowDate   *time.Time
	Status             models.BreedingStatus
	Note               string
}

// BreedingRecordServicer defines the contract for breeding records.
type BreedingRecordServicer interface {
	CreateBreedingRecord(input BreedingRecordInput) (*models.BreedingRecord, error)
	GetBreedingRecords(page pagination.PageRequest, breedingStockID *string, status *models.BreedingStatus) (*pagination.PageResponse[models.BreedingRecord], error)
	GetBreedingRecordByID(recordID string) (*models.BreedingRecord, error)
	UpdateBreedingRecord(recordID string, input BreedingRecordInput) (*models.BreedingRecord, error)
	DeleteBreedingRecord(recordID string) error
}

// DateRange bounds a listing or report by date, both ends inclusive.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// LedgerServicer defines the contract for manual income and expense entries.
type LedgerServicer interface {
	CreateIncome(date time.Time, source models.IncomeSource, description string, amount decimal.Decimal) (*models.IncomeRecord, error)
	GetIncomes(page pagination.PageRequest, dates DateRange) (*pagination.PageResponse[models.IncomeRecord], error)
	GetIncomeByID(recordID string) (*models.IncomeRecord, error)
	UpdateIncome(recordID string, date *time.Time, source *models.IncomeSource, description *string, amount *decimal.Decimal) (*models.IncomeRecord, error)
	DeleteIncome(recordID string) error
	CreateExpense(date time.Time, category models.ExpenseCategory, description string, amount decimal.Decimal) (*models.ExpenseRecord, error)
	GetExpenses(page pagination.PageRequest, dates DateRange) (*pagination.PageResponse[models.ExpenseRecord], error)
	GetExpenseByID(recordID string) (*models.ExpenseRecord, error)
	UpdateExpense(recordID string, date *time.Time, category *models.ExpenseCategory, description *string, amount *decimal.Decimal) (*models.ExpenseRecord, error)
	DeleteExpense(recordID string) error
}

// ReportPeriod selects the date range of a finance report.
type ReportPeriod string

const (
	ReportPeriodWeek   ReportPeriod = "week"
	ReportPeriodMonth  ReportPeriod = "month"
	ReportPeriodCustom ReportPeriod = "custom"
	ReportPeriodAll    ReportPeriod = "all"
)

// DashboardSummary is the landing page overview.
type DashboardSummary struct {
	Rooms               int64              `json:"rooms"`
	ActiveBreedingStock int64              `json:"active_breeding_stock"`
	ActiveOffspring     int64              `json:"active_offspring"`
	LowStockFeeds       []models.FeedStock `json:"low_stock_feeds"`
	OverdueVaccinations int64              `json:"overdue_vaccinations"`
	MonthToDateIncome   decimal.Decimal    `json:"month_to_date_income"`
	MonthToDateExpenses decimal.Decimal    `json:"month_to_date_expenses"`
	MonthToDateNet      decimal.Decimal    `json:"month_to_date_net"`
}

// FinanceLine is one income or expense entry in a finance report.
type FinanceLine struct {
	Date        string          `json:"date"`
	Kind        string          `json:"kind"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// FinanceReport lists incomes and expenses for a date range.
type FinanceReport struct {
	Period        ReportPeriod    `json:"period"`
	From          *string         `json:"from,omitempty"`
	To            *string         `json:"to,omitempty"`
	Incomes       []FinanceLine   `json:"incomes"`
	Expenses      []FinanceLine   `json:"expenses"`
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetBalance    decimal.Decimal `json:"net_balance"`
}

// FeedingCostLine is the feed consumed by one animal in a date range.
type FeedingCostLine struct {
	Kind     models.AnimalKind `json:"kind"`
	AnimalID string            `json:"animal_id"`
	Name     string            `json:"name"`
	Quantity decimal.Decimal   `json:"quantity"`
	Cost     decimal.Decimal   `json:"cost"`
}

// BirthsLine counts the offspring one breeding animal had in a date range.
type BirthsLine struct {
	BreedingStockID string `json:"breeding_stock_id"`
	Name            string `json:"name"`
	Offspring       int    `json:"offspring"`
	BirthEvents     int    `json:"birth_events"`
}

// ReportServicer defines the contract for read-only reports.
type ReportServicer interface {
	GetDashboard(now time.Time) (*DashboardSummary, error)
	GetFinanceReport(period ReportPeriod, dates DateRange, now time.Time) (*FinanceReport, error)
	GetFeedingCostReport(dates DateRange) ([]FeedingCostLine, error)
	GetBirthsReport(dates DateRange) ([]BirthsLine, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
