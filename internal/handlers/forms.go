package handlers

import (
	"strconv"

	"github.com/yukikurage/task-manager/internal/models"
	"github.com/yukikurage/task-manager/internal/services"
)

// HTML forms post their fields as data[name].

type userForm struct {
	FirstName string `form:"data[firstName]"`
	LastName  string `form:"data[lastName]"`
	Email     string `form:"data[email]"`
	Password  string `form:"data[password]"`
}

func (f userForm) input() services.UserInput {
	return services.UserInput{
		FirstName: f.FirstName,
		LastName:  f.LastName,
		Email:     f.Email,
		Password:  f.Password,
	}
}

// redisplay drops the password so it is never echoed back.
func (f userForm) redisplay() userForm {
	f.Password = ""
	return f
}

func userFormFrom(user *models.User) userForm {
	return userForm{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}
}

type sessionForm struct {
	Email    string `form:"data[email]"`
	Password string `form:"data[password]"`
}

type nameForm struct {
	Name string `form:"data[name]"`
}

func (f nameForm) input() services.NameInput {
	return services.NameInput{Name: f.Name}
}

type taskForm struct {
	Name        string   `form:"data[name]"`
	Description string   `form:"data[description]"`
	StatusID    string   `form:"data[statusId]"`
	ExecutorID  string   `form:"data[executorId]"`
	LabelIDs    []string `form:"data[labels]"`
}

func (f taskForm) input() services.TaskInput {
	return services.TaskInput{
		Name:        f.Name,
		Description: f.Description,
		StatusID:    f.StatusID,
		ExecutorID:  f.ExecutorID,
		LabelIDs:    f.LabelIDs,
	}
}

func taskFormFrom(task *models.Task, labelIDs []uint64) taskForm {
	form := taskForm{
		Name:        task.Name,
		Description: task.Description,
		StatusID:    strconv.FormatUint(task.StatusID, 10),
		LabelIDs:    make([]string, len(labelIDs)),
	}
	if task.ExecutorID != nil {
		form.ExecutorID = strconv.FormatUint(*task.ExecutorID, 10)
	}
	for i, id := range labelIDs {
		form.LabelIDs[i] = strconv.FormatUint(id, 10)
	}
	return form
}

// taskFilter echoes the list filter back into its form.
type taskFilter struct {
	Status        string
	Executor      string
	Label         string
	IsCreatorUser bool
}
