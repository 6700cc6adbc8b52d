package contracts

import "github.com/julienschmidt/httprouter"

// Handler is implemented by every HTTP handler group mounted on the router.
type Handler interface {
	RegisterRoutes(*httprouter.Router)
}

// Unlimited is implemented by handlers whose paths bypass rate limiting.
type Unlimited interface {
	UnlimitedPaths() []string
}
