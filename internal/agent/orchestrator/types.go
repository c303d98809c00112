package orchestrator

// Result is the outcome of one chat turn. BookingMade and BookingDetails
// come from the last executed operation, and when that operation created an
// event its confirmation message replaces the model's final text.
type Result struct {
	Reply          string
	BookingMade    bool
	BookingDetails map[string]interface{}
}
