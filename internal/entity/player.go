package entity

// Player is one of the two humans at the terminal. It never changes after startup.
type Player struct {
	Name string `json:"name"`
	Mark Mark   `json:"mark"`
}
