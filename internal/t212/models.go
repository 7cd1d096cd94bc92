package t212

import "time"

// Enumerations the client needs to reason about. Other enumerated API fields
// are carried as plain strings and passed through untouched.

// OrderType identifies how an order executes.
type OrderType string

const (
	OrderTypeMarket    OrderType = "MARKET"
	OrderTypeLimit     OrderType = "LIMIT"
	OrderTypeStop      OrderType = "STOP"
	OrderTypeStopLimit OrderType = "STOP_LIMIT"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "NEW"
	OrderStatusFilled    OrderStatus = "FILLED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
	OrderStatusRejected  OrderStatus = "REJECTED"
)

// TimeValidity controls how long a pending order stays active.
type TimeValidity string

const (
	ValidityDay            TimeValidity = "DAY"
	ValidityGoodTillCancel TimeValidity = "GOOD_TILL_CANCEL"
)

// TransactionType classifies an account cash movement.
type TransactionType string

const (
	TransactionDeposit  TransactionType = "DEPOSIT"
	TransactionWithdraw TransactionType = "WITHDRAW"
	TransactionTransfer TransactionType = "TRANSFER"
	TransactionFee      TransactionType = "FEE"
)

// DividendCashAction selects what a pie does with received dividends.
type DividendCashAction string

const (
	DividendReinvest      DividendCashAction = "REINVEST"
	DividendToAccountCash DividendCashAction = "TO_ACCOUNT_CASH"
)

// Account is the account metadata record.
type Account struct {
	ID           int64  `json:"id"`
	CurrencyCode string `json:"currencyCode"`
}

// Cash is the account balance breakdown. The API may omit any field.
type Cash struct {
	Free     *float64 `json:"free"`
	Invested *float64 `json:"invested"`
	Total    *float64 `json:"total"`
	PPL      *float64 `json:"ppl"`
	Result   *float64 `json:"result"`
	Blocked  *float64 `json:"blocked"`
	PieCash  *float64 `json:"pieCash"`
}

// Position is an open holding snapshot.
type Position struct {
	Ticker          string     `json:"ticker"`
	Quantity        float64    `json:"quantity"`
	AveragePrice    float64    `json:"averagePrice"`
	CurrentPrice    float64    `json:"currentPrice"`
	PPL             *float64   `json:"ppl"`
	FxPPL           *float64   `json:"fxPpl"`
	InitialFillDate *time.Time `json:"initialFillDate"`
	PieQuantity     *float64   `json:"pieQuantity"`
	MaxBuy          *float64   `json:"maxBuy"`
	MaxSell         *float64   `json:"maxSell"`
	Frontend        string     `json:"frontend,omitempty"`
}

// Order is a pending equity order.
type Order struct {
	ID             int64       `json:"id"`
	Ticker         string      `json:"ticker"`
	Type           OrderType   `json:"type,omitempty"`
	Status         OrderStatus `json:"status,omitempty"`
	Quantity       *float64    `json:"quantity"`
	FilledQuantity *float64    `json:"filledQuantity"`
	FilledValue    *float64    `json:"filledValue"`
	LimitPrice     *float64    `json:"limitPrice"`
	StopPrice      *float64    `json:"stopPrice"`
	Strategy       string      `json:"strategy,omitempty"`
	Value          *float64    `json:"value"`
	CreationTime   *time.Time  `json:"creationTime"`
}

// Tax is a single tax line charged against a fill.
type Tax struct {
	Name        string     `json:"name,omitempty"`
	Quantity    *float64   `json:"quantity"`
	FillID      string     `json:"fillId,omitempty"`
	TimeCharged *time.Time `json:"timeCharged"`
}

// HistoricalOrder is the denormalized record of a past order and its fill.
type HistoricalOrder struct {
	ID              int64       `json:"id"`
	Ticker          string      `json:"ticker"`
	Type            OrderType   `json:"type,omitempty"`
	Status          OrderStatus `json:"status,omitempty"`
	Executor        string      `json:"executor,omitempty"`
	FilledQuantity  *float64    `json:"filledQuantity"`
	FilledValue     *float64    `json:"filledValue"`
	FillPrice       *float64    `json:"fillPrice"`
	FillType        string      `json:"fillType,omitempty"`
	FillID          *int64      `json:"fillId"`
	LimitPrice      *float64    `json:"limitPrice"`
	StopPrice       *float64    `json:"stopPrice"`
	OrderedQuantity *float64    `json:"orderedQuantity"`
	OrderedValue    *float64    `json:"orderedValue"`
	ParentOrder     *int64      `json:"parentOrder"`
	TimeValidity    TimeValidity `json:"timeValidity,omitempty"`
	Taxes           []Tax       `json:"taxes,omitempty"`
	DateCreated     *time.Time  `json:"dateCreated"`
	DateExecuted    *time.Time  `json:"dateExecuted"`
}

// Dividend is a single dividend payout.
type Dividend struct {
	Ticker              string     `json:"ticker"`
	Amount              float64    `json:"amount"`
	PaidOn              *time.Time `json:"paidOn"`
	Quantity            *float64   `json:"quantity"`
	GrossAmountPerShare *float64   `json:"grossAmountPerShare"`
	AmountInEuro        *float64   `json:"amountInEuro"`
	Reference           string     `json:"reference,omitempty"`
	Type                string     `json:"type,omitempty"`
}

// Transaction is a cash movement (deposit, withdrawal, fee, transfer).
type Transaction struct {
	Amount    float64         `json:"amount"`
	Type      TransactionType `json:"type"`
	DateTime  *time.Time      `json:"dateTime"`
	Reference string          `json:"reference,omitempty"`
}

// PaginatedDividends is one page of dividend history.
type PaginatedDividends struct {
	Items        []Dividend `json:"items"`
	NextPagePath string     `json:"nextPagePath,omitempty"`
}

// PaginatedTransactions is one page of transaction history.
type PaginatedTransactions struct {
	Items        []Transaction `json:"items"`
	NextPagePath string        `json:"nextPagePath,omitempty"`
}

// InvestmentResult summarises the performance of a pie or pie slice.
type InvestmentResult struct {
	PriceAvgValue         *float64 `json:"priceAvgValue"`
	PriceAvgInvestedValue *float64 `json:"priceAvgInvestedValue"`
	PriceAvgResult        *float64 `json:"priceAvgResult"`
	PriceAvgResultCoef    *float64 `json:"priceAvgResultCoef"`
}

// InstrumentIssue flags a problem with an instrument inside a pie.
type InstrumentIssue struct {
	Name     string `json:"name"`
	Severity string `json:"severity"`
}

// PieInstrument is one slice of a pie.
type PieInstrument struct {
	Ticker        string            `json:"ticker"`
	ExpectedShare *float64          `json:"expectedShare"`
	CurrentShare  *float64          `json:"currentShare"`
	OwnedQuantity *float64          `json:"ownedQuantity"`
	Result        *InvestmentResult `json:"result"`
	Issues        []InstrumentIssue `json:"issues,omitempty"`
}

// DividendDetails breaks down dividends received by a pie.
type DividendDetails struct {
	Gained     *float64 `json:"gained"`
	Reinvested *float64 `json:"reinvested"`
	InCash     *float64 `json:"inCash"`
}

// PieSettings holds the configuration of a pie.
type PieSettings struct {
	ID                 int64              `json:"id"`
	Name               string             `json:"name,omitempty"`
	Icon               string             `json:"icon,omitempty"`
	Goal               *float64           `json:"goal"`
	DividendCashAction DividendCashAction `json:"dividendCashAction,omitempty"`
	InstrumentShares   map[string]float64 `json:"instrumentShares,omitempty"`
	CreationDate       *time.Time         `json:"creationDate"`
	EndDate            *time.Time         `json:"endDate"`
	InitialInvestment  *float64           `json:"initialInvestment"`
	PublicURL          string             `json:"publicUrl,omitempty"`
}

// PieDetails is the full view of one pie.
type PieDetails struct {
	Settings    *PieSettings    `json:"settings"`
	Instruments []PieInstrument `json:"instruments,omitempty"`
}

// PieSummary is the list view of a pie.
type PieSummary struct {
	ID              int64             `json:"id"`
	Status          string            `json:"status,omitempty"`
	Cash            *float64          `json:"cash"`
	Progress        *float64          `json:"progress"`
	Result          *InvestmentResult `json:"result"`
	DividendDetails *DividendDetails  `json:"dividendDetails"`
}

// ScheduleEvent is one open/close event in an exchange schedule.
type ScheduleEvent struct {
	Date time.Time `json:"date"`
	Type string    `json:"type"`
}

// WorkingSchedule is a named sequence of schedule events.
type WorkingSchedule struct {
	ID         int64           `json:"id"`
	TimeEvents []ScheduleEvent `json:"timeEvents"`
}

// Exchange is a trading venue with its working schedules.
type Exchange struct {
	ID               int64             `json:"id"`
	Name             string            `json:"name"`
	WorkingSchedules []WorkingSchedule `json:"workingSchedules"`
}

// Instrument is a tradeable instrument from the metadata catalogue.
type Instrument struct {
	Ticker            string     `json:"ticker"`
	Name              string     `json:"name"`
	Type              string     `json:"type,omitempty"`
	CurrencyCode      string     `json:"currencyCode,omitempty"`
	ISIN              string     `json:"isin,omitempty"`
	ShortName         string     `json:"shortName,omitempty"`
	MinTradeQuantity  *float64   `json:"minTradeQuantity"`
	MaxOpenQuantity   *float64   `json:"maxOpenQuantity"`
	AddedOn           *time.Time `json:"addedOn"`
	WorkingScheduleID *int64     `json:"workingScheduleId"`
}

// MarketOrderRequest places an order at the current price.
type MarketOrderRequest struct {
	Ticker   string  `json:"ticker"`
	Quantity float64 `json:"quantity"`
}

// LimitOrderRequest places an order at a target price.
type LimitOrderRequest struct {
	Ticker       string       `json:"ticker"`
	Quantity     float64      `json:"quantity"`
	LimitPrice   float64      `json:"limitPrice"`
	TimeValidity TimeValidity `json:"timeValidity"`
}

// StopOrderRequest places an order triggered at a stop price.
type StopOrderRequest struct {
	Ticker       string       `json:"ticker"`
	Quantity     float64      `json:"quantity"`
	StopPrice    float64      `json:"stopPrice"`
	TimeValidity TimeValidity `json:"timeValidity"`
}

// StopLimitOrderRequest places a limit order triggered at a stop price.
type StopLimitOrderRequest struct {
	Ticker       string       `json:"ticker"`
	Quantity     float64      `json:"quantity"`
	LimitPrice   float64      `json:"limitPrice"`
	StopPrice    float64      `json:"stopPrice"`
	TimeValidity TimeValidity `json:"timeValidity"`
}

// PieRequest configures a pie on create or update. Fields are pointers
// without omitempty: create sends the full object including explicit nulls,
// update drops nulls for a partial payload (see UpdatePie).
type PieRequest struct {
	Name               *string             `json:"name"`
	InstrumentShares   map[string]float64  `json:"instrumentShares"`
	DividendCashAction *DividendCashAction `json:"dividendCashAction"`
	Goal               *float64            `json:"goal"`
	Icon               *string             `json:"icon"`
	EndDate            *time.Time          `json:"endDate"`
}

// DuplicatePieRequest names a pie clone.
type DuplicatePieRequest struct {
	Name *string `json:"name"`
	Icon *string `json:"icon"`
}

// ReportDataIncluded selects record types for a CSV export.
type ReportDataIncluded struct {
	IncludeOrders       bool `json:"includeOrders"`
	IncludeDividends    bool `json:"includeDividends"`
	IncludeTransactions bool `json:"includeTransactions"`
	IncludeInterest     bool `json:"includeInterest"`
}

// AllReportData includes every record type in an export.
func AllReportData() ReportDataIncluded {
	return ReportDataIncluded{
		IncludeOrders:       true,
		IncludeDividends:    true,
		IncludeTransactions: true,
		IncludeInterest:     true,
	}
}

// EnqueuedReport acknowledges an export request.
type EnqueuedReport struct {
	ReportID int64 `json:"reportId"`
}

// Report is a generated CSV export with its status and download link.
type Report struct {
	ReportID     *int64              `json:"reportId"`
	Status       string              `json:"status,omitempty"`
	DownloadLink string              `json:"downloadLink,omitempty"`
	DataIncluded *ReportDataIncluded `json:"dataIncluded"`
	TimeFrom     *time.Time          `json:"timeFrom"`
	TimeTo       *time.Time          `json:"timeTo"`
}
