package models

// DashboardStats backs the admin main-dashboard cards.
type DashboardStats struct {
	TotalMembers    int     `json:"total_members"`
	ActiveMembers   int     `json:"active_members"`
	TotalReceipts   float64 `json:"total_receipts"`
	MonthlyReceipts float64 `json:"monthly_receipts"`
	TotalPayments   float64 `json:"total_payments"`
	MonthlyPayments float64 `json:"monthly_payments"`
	TotalEvents     int     `json:"total_events"`
	UpcomingEvents  int     `json:"upcoming_events"`
	Balance         float64 `json:"balance"`
}

// Activity is one line of the recent-activity feed.
type Activity struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Time        string `json:"time"`
}

// MemberDuesReport summarises a member's dues position. The backend emits
// camelCase keys on this endpoint, unlike the snake_case used elsewhere.
type MemberDuesReport struct {
	TotalDuesExpected   float64       `json:"totalDuesExpected"`
	TotalPaid           float64       `json:"totalPaid"`
	CurrentYearExpected float64       `json:"currentYearExpected"`
	CurrentYearPaid     float64       `json:"currentYearPaid"`
	PaymentHistory      []DuesPayment `json:"paymentHistory,omitempty"`
}

// DuesPayment is one settled dues instalment in a member's history.
type DuesPayment struct {
	Year   int     `json:"year"`
	Month  string  `json:"month,omitempty"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date,omitempty"`
}

// TransportLevy is one row of the member transport-levies report.
type TransportLevy struct {
	Event      string  `json:"event,omitempty"`
	EventType  string  `json:"event_type,omitempty"`
	EventDate  string  `json:"event_date,omitempty"`
	LevyAmount float64 `json:"levy_amount"`
	IsLevyPaid bool    `json:"is_levy_paid"`
}

// OutstandingAmount is one row of the outstanding-amounts report.
type OutstandingAmount struct {
	Category string  `json:"category,omitempty"`
	Year     int     `json:"year,omitempty"`
	Amount   float64 `json:"amount"`
}

// Insights carries the aggregated analytics the dashboards render. The
// backend shape is loose; only the fields the app consumes are modeled.
type Insights struct {
	Total       float64            `json:"total"`
	MonthlyData []MonthlyDataPoint `json:"monthly_data,omitempty"`
	ByCategory  map[string]float64 `json:"by_category,omitempty"`
}

// MonthlyDataPoint is one month of an insights series.
type MonthlyDataPoint struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
	Count  int     `json:"count,omitempty"`
}
