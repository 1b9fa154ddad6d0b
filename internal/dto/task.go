package dto

import (
	"time"

	"github.com/yukikurage/task-manager/internal/models"
)

// UserView represents a user on pages and in JSON responses
type UserView struct {
	ID        uint64    `json:"id"`
	FullName  string    `json:"fullName"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// LabelView represents a label attached to a task
type LabelView struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// TaskView is a task with its references resolved to display strings.
// Executor is empty when nobody executes the task.
type TaskView struct {
	ID          uint64      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	StatusID    uint64      `json:"statusId"`
	Status      string      `json:"status"`
	CreatorID   uint64      `json:"creatorId"`
	Creator     string      `json:"creator"`
	ExecutorID  *uint64     `json:"executorId"`
	Executor    string      `json:"executor"`
	Labels      []LabelView `json:"labels,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// TaskDraft is a suggested task that has not been saved
type TaskDraft struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Conversion functions

// ToUserView converts a User model to UserView
func ToUserView(user models.User) UserView {
	return UserView{
		ID:        user.ID,
		FullName:  user.FullName(),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// ToUserViews converts a slice of users
func ToUserViews(users []models.User) []UserView {
	views := make([]UserView, len(users))
	for i, user := range users {
		views[i] = ToUserView(user)
	}
	return views
}

// ToLabelViews converts a slice of labels
func ToLabelViews(labels []models.Label) []LabelView {
	views := make([]LabelView, len(labels))
	for i, label := range labels {
		views[i] = LabelView{ID: label.ID, Name: label.Name}
	}
	return views
}

// ToTaskView converts a Task model with Status, Creator and Executor preloaded
func ToTaskView(task models.Task) TaskView {
	view := TaskView{
		ID:          task.ID,
		Name:        task.Name,
		Description: task.Description,
		StatusID:    task.StatusID,
		Status:      task.Status.Name,
		CreatorID:   task.CreatorID,
		ExecutorID:  task.ExecutorID,
		CreatedAt:   task.CreatedAt,
	}

	// Include creator if preloaded
	if task.Creator.ID != 0 {
		view.Creator = task.Creator.FullName()
	}

	view.Executor = task.Executor.FullName()

	return view
}

// ToTaskViews converts a slice of tasks
func ToTaskViews(tasks []models.Task) []TaskView {
	views := make([]TaskView, len(tasks))
	for i, task := range tasks {
		views[i] = ToTaskView(task)
	}
	return views
}
