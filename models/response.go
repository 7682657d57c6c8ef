package models

// Collections the reports read from
const (
	SalesCollection            = "sales"
	AgentPerformanceCollection = "agentPerformance"
	AgentsCollection           = "agents"
	CustomerFeedbackCollection = "customerFeedback"
)

// Response model
type Response struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// MonthNames maps a 1-based month number to its English name; index 0 is empty
var MonthNames = [13]string{
	"", "January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthName returns the full month name, or "" when m is outside 1..12
func MonthName(m int) string {
	if m < 1 || m > 12 {
		return ""
	}
	return MonthNames[m]
}
