package models

// Snapshot is the client-side view of every eagerly loaded collection.
type Snapshot struct {
	Profile      *UserRecord   `json:"profile,omitempty"`
	Reports      []Report      `json:"reports"`
	Doctors      []Doctor      `json:"doctors"`
	Appointments []Appointment `json:"appointments"`
}
