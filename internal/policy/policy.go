// Package policy decides whether an actor may perform an action on a target.
// Decisions are pure: nothing here touches storage.
package policy

import "github.com/yukikurage/task-manager/internal/models"

// Actor is the identity behind a request. The zero value is anonymous.
type Actor struct {
	ID uint64
}

// Anonymous is the actor of a request without a session.
var Anonymous = Actor{}

func NewActor(id uint64, ok bool) Actor {
	if !ok {
		return Anonymous
	}
	return Actor{ID: id}
}

func (a Actor) Authenticated() bool {
	return a.ID != 0
}

type Action string

const (
	View   Action = "view"
	Create Action = "create"
	Update Action = "update"
	Delete Action = "delete"
)

// Collection targets address a whole entity kind rather than one record.
type Collection string

const (
	Users    Collection = "users"
	Tasks    Collection = "tasks"
	Statuses Collection = "statuses"
	Labels   Collection = "labels"
)

// Can reports whether actor may perform action on target.
func Can(actor Actor, action Action, target any) bool {
	switch t := target.(type) {
	case Collection:
		if t == Users && (action == View || action == Create) {
			return true
		}
		return actor.Authenticated()
	case *models.User:
		switch action {
		case View, Create:
			return true
		case Update, Delete:
			return actor.Authenticated() && t != nil && actor.ID == t.ID
		}
	case *models.Task:
		if !actor.Authenticated() || t == nil {
			return false
		}
		if action == Delete {
			return actor.ID == t.CreatorID
		}
		return true
	case *models.TaskStatus, *models.Label:
		return actor.Authenticated()
	}
	return false
}
