package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	GetStateSuccessMessage          = "get state successfully"
	NavigateSuccessMessage          = "navigated successfully"
	LogoutSuccessMessage            = "successfully logout"
	GetProfileSuccessMessage        = "get profile successfully"
	ProfileDraftSuccessMessage      = "profile draft updated successfully"
	ProfileSavedSuccessMessage      = "profile updated successfully"
	ProfileDraftCanceledMessage     = "profile changes discarded"
	GetReportsSuccessMessage        = "get reports successfully"
	GetReportSuccessMessage         = "get report successfully"
	UploadReportsSuccessMessage     = "reports uploaded successfully"
	GetUploadProgressMessage        = "get upload progress successfully"
	GetDoctorsSuccessMessage        = "get doctors successfully"
	GetAppointmentsSuccessMessage   = "get appointments successfully"
	BookAppointmentSuccessMessage   = "appointment booked successfully"
	GetFacilitiesSuccessMessage     = "get nearby facilities successfully"
	FacilityFilterSuccessMessage    = "facility filter applied successfully"
	TriggerSOSSuccessMessage        = "emergency alert triggered successfully"
	SearchMedicinesSuccessMessage   = "search medicines successfully"
	GetCollectionsSuccessMessage    = "get collections successfully"
	RefreshCollectionSuccessMessage = "collection refreshed successfully"
	RenderMapSuccessMessage         = "map rendered successfully"
)
