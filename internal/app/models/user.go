package models

type UserRecord struct {
	UserID  string      `json:"user_id"`
	Email   string      `json:"email"`
	Name    string      `json:"name"`
	Picture *string     `json:"picture,omitempty"`
	Profile UserProfile `json:"profile"`
}

type UserProfile struct {
	Age               *int               `json:"age,omitempty"`
	Gender            *string            `json:"gender,omitempty"`
	BloodGroup        *string            `json:"blood_group,omitempty"`
	Phone             *string            `json:"phone,omitempty"`
	MedicalHistory    []string           `json:"medical_history"`
	Allergies         []string           `json:"allergies"`
	EmergencyContacts []EmergencyContact `json:"emergency_contacts"`
}

type EmergencyContact struct {
	Name         string `json:"name" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	Relationship string `json:"relationship,omitempty"`
}

// Clone returns a deep copy so callers can edit without touching the
// authoritative record.
func (u UserRecord) Clone() UserRecord {
	clone := u
	if u.Picture != nil {
		picture := *u.Picture
		clone.Picture = &picture
	}
	clone.Profile = u.Profile.Clone()
	return clone
}

func (p UserProfile) Clone() UserProfile {
	clone := p
	if p.Age != nil {
		age := *p.Age
		clone.Age = &age
	}
	if p.Gender != nil {
		gender := *p.Gender
		clone.Gender = &gender
	}
	if p.BloodGroup != nil {
		bloodGroup := *p.BloodGroup
		clone.BloodGroup = &bloodGroup
	}
	if p.Phone != nil {
		phone := *p.Phone
		clone.Phone = &phone
	}
	clone.MedicalHistory = append([]string(nil), p.MedicalHistory...)
	clone.Allergies = append([]string(nil), p.Allergies...)
	clone.EmergencyContacts = append([]EmergencyContact(nil), p.EmergencyContacts...)
	return clone
}
