package dto

// AdminDashboard aggregates the KPIs shown on the admin landing page
type AdminDashboard struct {
	TotalTickets     int        `json:"total_tickets"`
	OpenTickets      int        `json:"open_tickets"`
	CriticalTickets  int        `json:"critical_tickets"` // critical priority, not yet closed
	AssetCount       int        `json:"asset_count"`
	RecentTickets    []*Ticket  `json:"recent_tickets"`
	ExpiringLicenses []*License `json:"expiring_licenses"` // renewal due within the alert window
}

// UserDashboard aggregates the signed-in user's own assets and tickets
type UserDashboard struct {
	Assets  []*Asset  `json:"assets"`
	Tickets []*Ticket `json:"tickets"`
}
