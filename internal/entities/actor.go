package entities

import "fmt"

type ActorRole string

const (
	ActorSystem     ActorRole = "system"
	ActorRestaurant ActorRole = "restaurant"
	ActorRider      ActorRole = "rider"
	ActorCustomer   ActorRole = "customer"
)

func (r ActorRole) String() string {
	return string(r)
}

// Actor участник, запрашивающий переход. ID для ActorSystem не используется.
type Actor struct {
	Role ActorRole
	ID   int64
}

func (a Actor) String() string {
	if a.Role == ActorSystem {
		return string(a.Role)
	}
	return fmt.Sprintf("%s:%d", a.Role, a.ID)
}
