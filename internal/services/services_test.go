package services

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/suite"
	apperrors "github.com/yukikurage/task-manager/internal/errors"
	"github.com/yukikurage/task-manager/internal/models"
	"github.com/yukikurage/task-manager/internal/policy"
	"github.com/yukikurage/task-manager/internal/repository"
	"github.com/yukikurage/task-manager/internal/secure"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ServicesTestSuite runs the services against an in-memory database
type ServicesTestSuite struct {
	suite.Suite
	db  *gorm.DB
	ctx context.Context

	users    *UserService
	auth     *AuthService
	statuses *StatusService
	labels   *LabelService
	tasks    *TaskService
}

func (suite *ServicesTestSuite) SetupTest() {
	var err error
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Discard,
		TranslateError: true,
	})
	suite.Require().NoError(err)
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)

	suite.Require().NoError(suite.db.AutoMigrate(
		&models.User{},
		&models.TaskStatus{},
		&models.Label{},
		&models.Task{},
		&models.TaskLabel{},
	))

	userRepo := repository.NewUserRepository(suite.db)
	statusRepo := repository.NewStatusRepository(suite.db)
	labelRepo := repository.NewLabelRepository(suite.db)
	taskRepo := repository.NewTaskRepository(suite.db)
	integrity := NewIntegrityGuard(taskRepo)
	hasher := secure.SHA256Hasher{}

	suite.ctx = context.Background()
	suite.users = NewUserService(userRepo, hasher, integrity)
	suite.auth = NewAuthService(userRepo, hasher)
	suite.statuses = NewStatusService(statusRepo, integrity)
	suite.labels = NewLabelService(labelRepo)
	suite.tasks = NewTaskService(taskRepo, statusRepo, labelRepo, userRepo)
}

func (suite *ServicesTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *ServicesTestSuite) register(first, last, email string) policy.Actor {
	user, err := suite.users.CreateUser(suite.ctx, policy.Anonymous, UserInput{
		FirstName: first,
		LastName:  last,
		Email:     email,
		Password:  "secret1",
	})
	suite.Require().NoError(err)
	return policy.Actor{ID: user.ID}
}

func (suite *ServicesTestSuite) status(actor policy.Actor, name string) *models.TaskStatus {
	status, err := suite.statuses.CreateStatus(suite.ctx, actor, NameInput{Name: name})
	suite.Require().NoError(err)
	return status
}

func (suite *ServicesTestSuite) label(actor policy.Actor, name string) *models.Label {
	label, err := suite.labels.CreateLabel(suite.ctx, actor, NameInput{Name: name})
	suite.Require().NoError(err)
	return label
}

func (suite *ServicesTestSuite) task(actor policy.Actor, input TaskInput) *models.Task {
	task, err := suite.tasks.CreateTask(suite.ctx, actor, input)
	suite.Require().NoError(err)
	return task
}

func (suite *ServicesTestSuite) count(model any, query string, args ...any) int64 {
	var n int64
	suite.Require().NoError(suite.db.Model(model).Where(query, args...).Count(&n).Error)
	return n
}

func (suite *ServicesTestSuite) requireFieldError(err error, field, code string) {
	suite.Require().Equal(apperrors.KindValidation, apperrors.KindOf(err), "err: %v", err)
	var verr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &verr)
	for _, f := range verr.Fields {
		if f.Field == field && f.Code == code {
			return
		}
	}
	suite.Failf("missing field error", "want %s/%s in %v", field, code, verr.Fields)
}

func id(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func (suite *ServicesTestSuite) TestCreateUser_DigestsPassword() {
	actor := suite.register("Ann", "Lee", "Ann@Example.com")

	user, err := suite.users.GetUser(suite.ctx, actor.ID)
	suite.Require().NoError(err)
	suite.Equal("ann@example.com", user.Email)
	suite.NotEqual("secret1", user.PasswordDigest)
	suite.True(secure.SHA256Hasher{}.Verify("secret1", user.PasswordDigest))
}

func (suite *ServicesTestSuite) TestCreateUser_CollectsAllViolations() {
	_, err := suite.users.CreateUser(suite.ctx, policy.Anonymous, UserInput{
		FirstName: "",
		LastName:  "Lee",
		Email:     "bad",
		Password:  "ab",
	})

	suite.requireFieldError(err, "firstName", apperrors.CodeRequired)
	suite.requireFieldError(err, "email", apperrors.CodeTooShort)
	suite.requireFieldError(err, "password", apperrors.CodeTooShort)
	suite.Zero(suite.count(&models.User{}, "1 = 1"))
}

func (suite *ServicesTestSuite) TestUniqueness_SecondCreateFails() {
	actor := suite.register("Ann", "Lee", "ann@example.com")

	_, err := suite.users.CreateUser(suite.ctx, policy.Anonymous, UserInput{
		FirstName: "Other", LastName: "Ann", Email: "ann@example.com", Password: "secret1",
	})
	suite.requireFieldError(err, "email", apperrors.CodeTaken)
	suite.Equal(int64(1), suite.count(&models.User{}, "email = ?", "ann@example.com"))

	suite.status(actor, "new")
	_, err = suite.statuses.CreateStatus(suite.ctx, actor, NameInput{Name: "new"})
	suite.requireFieldError(err, "name", apperrors.CodeTaken)
	suite.Equal(int64(1), suite.count(&models.TaskStatus{}, "name = ?", "new"))

	suite.label(actor, "bug")
	_, err = suite.labels.CreateLabel(suite.ctx, actor, NameInput{Name: " bug "})
	suite.requireFieldError(err, "name", apperrors.CodeTaken)
	suite.Equal(int64(1), suite.count(&models.Label{}, "name = ?", "bug"))

	status := suite.status(actor, "open")
	suite.task(actor, TaskInput{Name: "Fix bug", StatusID: id(status.ID)})
	_, err = suite.tasks.CreateTask(suite.ctx, actor, TaskInput{Name: "Fix bug", StatusID: id(status.ID)})
	suite.requireFieldError(err, "name", apperrors.CodeTaken)
	suite.Equal(int64(1), suite.count(&models.Task{}, "name = ?", "Fix bug"))
}

func (suite *ServicesTestSuite) TestUpdate_KeepsOwnUniqueValue() {
	actor := suite.register("Ann", "Lee", "ann@example.com")
	status := suite.status(actor, "new")

	updated, err := suite.statuses.UpdateStatus(suite.ctx, actor, status.ID, NameInput{Name: "new"})
	suite.Require().NoError(err)
	suite.Equal("new", updated.Name)

	user, err := suite.users.UpdateUser(suite.ctx, actor, actor.ID, UserInput{
		FirstName: "Anna", LastName: "Lee", Email: "ann@example.com",
	})
	suite.Require().NoError(err)
	suite.Equal("Anna", user.FirstName)
}

func (suite *ServicesTestSuite) TestUpdateUser_EmptyPasswordKeepsDigest() {
	actor := suite.register("Ann", "Lee", "ann@example.com")
	before, err := suite.users.GetUser(suite.ctx, actor.ID)
	suite.Require().NoError(err)

	_, err = suite.users.UpdateUser(suite.ctx, actor, actor.ID, UserInput{
		FirstName: "Ann", LastName: "Lee", Email: "ann@example.com",
	})
	suite.Require().NoError(err)
	after, err := suite.users.GetUser(suite.ctx, actor.ID)
	suite.Require().NoError(err)
	suite.Equal(before.PasswordDigest, after.PasswordDigest)

	_, err = suite.users.UpdateUser(suite.ctx, actor, actor.ID, UserInput{
		FirstName: "Ann", LastName: "Lee", Email: "ann@example.com", Password: "newpass",
	})
	suite.Require().NoError(err)
	_, err = suite.auth.Login(suite.ctx, LoginInput{Email: "ann@example.com", Password: "newpass"})
	suite.NoError(err)
}

func (suite *ServicesTestSuite) TestUser_OnlySelfMayEditOrDelete() {
	ann := suite.register("Ann", "Lee", "ann@example.com")
	bob := suite.register("Bob", "Ray", "bob@example.com")

	_, err := suite.users.UpdateUser(suite.ctx, bob, ann.ID, UserInput{
		FirstName: "X", LastName: "Y", Email: "x@example.com",
	})
	suite.ErrorIs(err, apperrors.ErrForbidden)

	err = suite.users.DeleteUser(suite.ctx, bob, ann.ID)
	suite.ErrorIs(err, apperrors.ErrForbidden)

	err = suite.users.DeleteUser(suite.ctx, policy.Anonymous, ann.ID)
	suite.ErrorIs(err, apperrors.ErrForbidden)

	suite.Require().NoError(suite.users.DeleteUser(suite.ctx, bob, bob.ID))
	_, err = suite.users.GetUser(suite.ctx, bob.ID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ServicesTestSuite) TestLogin() {
	suite.register("Ann", "Lee", "ann@example.com")

	user, err := suite.auth.Login(suite.ctx, LoginInput{Email: " ANN@example.com", Password: "secret1"})
	suite.Require().NoError(err)
	suite.Equal("Ann Lee", user.FullName())

	_, err = suite.auth.Login(suite.ctx, LoginInput{Email: "ann@example.com", Password: "wrong"})
	suite.ErrorIs(err, ErrInvalidCredentials)

	_, err = suite.auth.Login(suite.ctx, LoginInput{Email: "nobody@example.com", Password: "secret1"})
	suite.ErrorIs(err, ErrInvalidCredentials)
}

func (suite *ServicesTestSuite) TestCreateTask_CreatorIsActor() {
	ann := suite.register("Ann", "Lee", "ann@example.com")
	bob := suite.register("Bob", "Ray", "bob@example.com")
	status := suite.status(ann, "new")

	task := suite.task(ann, TaskInput{Name: "Fix bug", StatusID: id(status.ID), ExecutorID: id(bob.ID)})
	suite.Equal(ann.ID, task.CreatorID)

	view, err := suite.tasks.GetTask(suite.ctx, bob, task.ID)
	suite.Require().NoError(err)
	suite.Equal("new", view.Status)
	suite.Equal("Ann Lee", view.Creator)
	suite.Equal("Bob Ray", view.Executor)

	_, err = suite.tasks.UpdateTask(suite.ctx, bob, task.ID, TaskInput{Name: "Fix bug", StatusID: id(status.ID)})
	suite.Require().NoError(err)
	view, err = suite.tasks.GetTask(suite.ctx, bob, task.ID)
	suite.Require().NoError(err)
	suite.Equal("Ann Lee", view.Creator)
	suite.Empty(view.Executor)
}

func (suite *ServicesTestSuite) TestCreateTask_ReferenceValidation() {
	ann := suite.register("Ann", "Lee", "ann@example.com")

	_, err := suite.tasks.CreateTask(suite.ctx, ann, TaskInput{Name: "A", StatusID: ""})
	suite.requireFieldError(err, "statusId", apperrors.CodeRequired)

	_, err = suite.tasks.CreateTask(suite.ctx, ann, TaskInput{Name: "A", StatusID: "abc"})
	suite.requireFieldError(err, "statusId", apperrors.CodeNumeric)

	_, err = suite.tasks.CreateTask(suite.ctx, ann, TaskInput{Name: "A", StatusID: "99"})
	suite.requireFieldError(err, "statusId", apperrors.CodeMissing)

	status := suite.status(ann, "new")
	_, err = suite.tasks.CreateTask(suite.ctx, ann, TaskInput{Name: "A", StatusID: id(status.ID), ExecutorID: "99"})
	suite.requireFieldError(err, "executorId", apperrors.CodeMissing)

	_, err = suite.tasks.CreateTask(suite.ctx, ann, TaskInput{Name: "A", StatusID: id(status.ID), LabelIDs: []string{"99"}})
	suite.requireFieldError(err, "labels", apperrors.CodeMissing)

	_, err = suite.tasks.CreateTask(suite.ctx, ann, TaskInput{Name: "", StatusID: "x", ExecutorID: "y"})
	suite.requireFieldError(err, "name", apperrors.CodeRequired)
	suite.requireFieldError(err, "statusId", apperrors.CodeNumeric)
	suite.requireFieldError(err, "executorId", apperrors.CodeNumeric)

	task := suite.task(ann, TaskInput{Name: "A", StatusID: id(status.ID), ExecutorID: "0"})
	suite.Nil(task.ExecutorID)
	suite.Zero(suite.count(&models.Task{}, "executor_id IS NOT NULL"))
}

func (suite *ServicesTestSuite) TestCreateTask_RequiresAuthentication() {
	_, err := suite.tasks.CreateTask(suite.ctx, policy.Anonymous, TaskInput{Name: "A", StatusID: "1"})
	suite.ErrorIs(err, apperrors.ErrForbidden)

	_, err = suite.tasks.ListTasks(suite.ctx, policy.Anonymous, ListTasksInput{})
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ServicesTestSuite) TestDeleteStatus_InUseConflicts() {
	ann := suite.register("Ann", "Lee", "ann@example.com")
	status := suite.status(ann, "new")
	suite.task(ann, TaskInput{Name: "Fix bug", StatusID: id(status.ID)})

	err := suite.statuses.DeleteStatus(suite.ctx, ann, status.ID)
	suite.Equal(apperrors.KindConflict, apperrors.KindOf(err))
	var conflict *apperrors.ConflictError
	suite.Require().ErrorAs(err, &conflict)
	suite.Equal(ReasonStatusInUse, conflict.Reason)

	_, err = suite.statuses.GetStatus(suite.ctx, ann, status.ID)
	suite.NoError(err)

	unused := suite.status(ann, "unused")
	suite.NoError(suite.statuses.DeleteStatus(suite.ctx, ann, unused.ID))
}

func (suite *ServicesTestSuite) TestDeleteUser_InUseConflicts() {
	ann := suite.register("Ann", "Lee", "ann@example.com")
	bob := suite.register("Bob", "Ray", "bob@example.com")
	status := suite.status(ann, "new")
	suite.task(ann, TaskInput{Name: "Fix bug", StatusID: id(status.ID), ExecutorID: id(bob.ID)})

	err := suite.users.DeleteUser(suite.ctx, ann, ann.ID)
	suite.Equal(apperrors.KindConflict, apperrors.KindOf(err))

	err = suite.users.DeleteUser(suite.ctx, bob, bob.ID)
	suite.Equal(apperrors.KindConflict, apperrors.KindOf(err))

	_, err = suite.users.GetUser(suite.ctx, bob.ID)
	suite.NoError(err)
}

func (suite *ServicesTestSuite) TestDeleteLabel_RemovesAssociations() {
	ann := suite.register("Ann", "Lee", "ann@example.com")
	status := suite.status(ann, "new")
	bug := suite.label(ann, "bug")
	task := suite.task(ann, TaskInput{Name: "Fix bug", StatusID: id(status.ID), LabelIDs: []string{id(bug.ID)}})

	suite.Require().NoError(suite.labels.DeleteLabel(suite.ctx, ann, bug.ID))

	suite.Zero(suite.count(&models.TaskLabel{}, "label_id = ?", bug.ID))
	view, err := suite.tasks.GetTask(suite.ctx, ann, task.ID)
	suite.Require().NoError(err)
	suite.Empty(view.Labels)
}

func (suite *ServicesTestSuite) TestUpdateTask_ReplacesLabels() {
	ann := suite.register("Ann", "Lee", "ann@example.com")
	status := suite.status(ann, "new")
	a := suite.label(ann, "A")
	b := suite.label(ann, "B")
	c := suite.label(ann, "C")
	task := suite.task(ann, TaskInput{
		Name:     "Fix bug",
		StatusID: id(status.ID),
		LabelIDs: []string{id(a.ID), id(b.ID), id(a.ID)},
	})
	suite.Equal(int64(2), suite.count(&models.TaskLabel{}, "task_id = ?", task.ID))

	_, err := suite.tasks.UpdateTask(suite.ctx, ann, task.ID, TaskInput{
		Name:     "Fix bug",
		StatusID: id(status.ID),
		LabelIDs: []string{id(b.ID), id(c.ID)},
	})
	suite.Require().NoError(err)

	_, labelIDs, err := suite.tasks.GetTaskForEdit(suite.ctx, ann, task.ID)
	suite.Require().NoError(err)
	suite.Equal([]uint64{b.ID, c.ID}, labelIDs)

	_, err = suite.tasks.UpdateTask(suite.ctx, ann, task.ID, TaskInput{
		Name:     "Fix bug",
		StatusID: id(status.ID),
		LabelIDs: []string{},
	})
	suite.Require().NoError(err)
	suite.Zero(suite.count(&models.TaskLabel{}, "task_id = ?", task.ID))
}

func (suite *ServicesTestSuite) TestUpdateTask_InvalidLeavesLabelsUntouched() {
	ann := suite.register("Ann", "Lee", "ann@example.com")
	status := suite.status(ann, "new")
	a := suite.label(ann, "A")
	task := suite.task(ann, TaskInput{Name: "Fix bug", StatusID: id(status.ID), LabelIDs: []string{id(a.ID)}})

	_, err := suite.tasks.UpdateTask(suite.ctx, ann, task.ID, TaskInput{Name: "", StatusID: id(status.ID)})
	suite.requireFieldError(err, "name", apperrors.CodeRequired)
	suite.Equal(int64(1), suite.count(&models.TaskLabel{}, "task_id = ?", task.ID))
}

func (suite *ServicesTestSuite) TestDeleteTask_OnlyCreator() {
	ann := suite.register("Ann", "Lee", "ann@example.com")
	bob := suite.register("Bob", "Ray", "bob@example.com")
	status := suite.status(ann, "new")
	bug := suite.label(ann, "bug")
	task := suite.task(ann, TaskInput{Name: "Fix bug", StatusID: id(status.ID), LabelIDs: []string{id(bug.ID)}})

	err := suite.tasks.DeleteTask(suite.ctx, bob, task.ID)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Equal(int64(1), suite.count(&models.Task{}, "id = ?", task.ID))

	suite.Require().NoError(suite.tasks.DeleteTask(suite.ctx, ann, task.ID))
	suite.Zero(suite.count(&models.Task{}, "id = ?", task.ID))
	suite.Zero(suite.count(&models.TaskLabel{}, "task_id = ?", task.ID))

	err = suite.tasks.DeleteTask(suite.ctx, ann, task.ID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ServicesTestSuite) TestListTasks_Filters() {
	ann := suite.register("Ann", "Lee", "ann@example.com")
	bob := suite.register("Bob", "Ray", "bob@example.com")
	todo := suite.status(ann, "todo")
	done := suite.status(ann, "done")
	bug := suite.label(ann, "bug")

	suite.task(ann, TaskInput{Name: "one", StatusID: id(todo.ID), LabelIDs: []string{id(bug.ID)}})
	suite.task(ann, TaskInput{Name: "two", StatusID: id(done.ID), LabelIDs: []string{id(bug.ID)}})
	suite.task(bob, TaskInput{Name: "three", StatusID: id(todo.ID), ExecutorID: id(ann.ID)})

	names := func(input ListTasksInput, actor policy.Actor) []string {
		views, err := suite.tasks.ListTasks(suite.ctx, actor, input)
		suite.Require().NoError(err)
		out := make([]string, len(views))
		for i, v := range views {
			out[i] = v.Name
		}
		return out
	}
	todoID, bugID, annID := todo.ID, bug.ID, ann.ID

	suite.Equal([]string{"one", "two", "three"}, names(ListTasksInput{}, ann))
	suite.Equal([]string{"one", "three"}, names(ListTasksInput{StatusID: &todoID}, ann))
	suite.Equal([]string{"one"}, names(ListTasksInput{StatusID: &todoID, LabelID: &bugID}, ann))
	suite.Equal([]string{"three"}, names(ListTasksInput{ExecutorID: &annID}, ann))
	suite.Equal([]string{"one", "two"}, names(ListTasksInput{OnlyMine: true}, ann))
	suite.Equal([]string{"three"}, names(ListTasksInput{OnlyMine: true}, bob))
}

func TestServicesTestSuite(t *testing.T) {
	suite.Run(t, new(ServicesTestSuite))
}
