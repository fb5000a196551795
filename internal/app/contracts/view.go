package contracts

import "healthease-client/internal/app/models"

type ViewObserver func(from, to models.ViewState)

type ViewController interface {
	Current() models.ViewState
	IsAuthenticated() bool
	Navigate(to models.ViewState) error
	Authenticate()
	Logout()
	Subscribe(observer ViewObserver)
}
