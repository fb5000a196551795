package models

// ViewState names the panel the rendering layer shows. Exactly one is active.
type ViewState string

const (
	ViewHome         ViewState = "home"
	ViewDashboard    ViewState = "dashboard"
	ViewReports      ViewState = "reports"
	ViewAppointments ViewState = "appointments"
	ViewMap          ViewState = "map"
	ViewProfile      ViewState = "profile"
)

var AllViews = []ViewState{
	ViewHome,
	ViewDashboard,
	ViewReports,
	ViewAppointments,
	ViewMap,
	ViewProfile,
}

func ParseViewState(value string) (ViewState, bool) {
	for _, view := range AllViews {
		if string(view) == value {
			return view, true
		}
	}
	return "", false
}

// RequiresAuthentication reports whether the view is gated behind a session.
func (v ViewState) RequiresAuthentication() bool {
	return v != ViewHome
}
