package model

// Collection names. These name both the Mongo collections and the offline
// cache regions, so they must stay in sync with the web client's schema.
const (
	CollectionTodos    = "todos"
	CollectionEvents   = "events"
	CollectionNotes    = "notes"
	CollectionHabits   = "habits"
	CollectionGoals    = "goals"
	CollectionRoutines = "routines"
	CollectionProfile  = "profile"
)

// EntityCollections lists the record collections that carry a live
// subscription, in dashboard display order.
var EntityCollections = []string{
	CollectionTodos,
	CollectionEvents,
	CollectionNotes,
	CollectionHabits,
	CollectionGoals,
	CollectionRoutines,
}
