package routes

import (
	"github.com/voltcart/addressd/internal/handler/api"
)

// APIDeps contains dependencies for the JSON API routes.
type APIDeps struct {
	AddressHandler *api.AddressHandler
}
