package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/task-manager/internal/models"
	"github.com/yukikurage/task-manager/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type TaskFilterTestSuite struct {
	suite.Suite
	db   *gorm.DB
	repo repository.TaskRepository
	ctx  context.Context

	ann, bob       *models.User
	todo, done     *models.TaskStatus
	bug, feature   *models.Label
	t1, t2, t3, t4 *models.Task
}

func (suite *TaskFilterTestSuite) SetupTest() {
	var err error
	suite.db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
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

	suite.repo = repository.NewTaskRepository(suite.db)
	suite.ctx = context.Background()

	suite.ann = suite.createUser("Ann", "Lee", "ann@example.com")
	suite.bob = suite.createUser("Bob", "Ray", "bob@example.com")
	suite.todo = suite.createStatus("todo")
	suite.done = suite.createStatus("done")
	suite.bug = suite.createLabel("bug")
	suite.feature = suite.createLabel("feature")

	// t1: todo, ann->bob, {bug}
	// t2: done, ann->none, {bug, feature}
	// t3: todo, bob->ann, {feature}
	// t4: done, bob->bob, {}
	suite.t1 = suite.createTask("t1", suite.todo.ID, suite.ann.ID, &suite.bob.ID, suite.bug.ID)
	suite.t2 = suite.createTask("t2", suite.done.ID, suite.ann.ID, nil, suite.bug.ID, suite.feature.ID)
	suite.t3 = suite.createTask("t3", suite.todo.ID, suite.bob.ID, &suite.ann.ID, suite.feature.ID)
	suite.t4 = suite.createTask("t4", suite.done.ID, suite.bob.ID, &suite.bob.ID)
}

func (suite *TaskFilterTestSuite) TearDownTest() {
	sqlDB, err := suite.db.DB()
	suite.Require().NoError(err)
	sqlDB.Close()
}

func (suite *TaskFilterTestSuite) createUser(first, last, email string) *models.User {
	u := &models.User{FirstName: first, LastName: last, Email: email, PasswordDigest: "digest"}
	suite.Require().NoError(suite.db.Create(u).Error)
	return u
}

func (suite *TaskFilterTestSuite) createStatus(name string) *models.TaskStatus {
	s := &models.TaskStatus{Name: name}
	suite.Require().NoError(suite.db.Create(s).Error)
	return s
}

func (suite *TaskFilterTestSuite) createLabel(name string) *models.Label {
	l := &models.Label{Name: name}
	suite.Require().NoError(suite.db.Create(l).Error)
	return l
}

func (suite *TaskFilterTestSuite) createTask(name string, statusID, creatorID uint64, executorID *uint64, labelIDs ...uint64) *models.Task {
	task := &models.Task{Name: name, StatusID: statusID, CreatorID: creatorID, ExecutorID: executorID}
	suite.Require().NoError(suite.repo.Create(suite.ctx, task, labelIDs))
	return task
}

func (suite *TaskFilterTestSuite) names(filter repository.TaskFilter) []string {
	tasks, err := suite.repo.List(suite.ctx, filter)
	suite.Require().NoError(err)
	names := make([]string, 0, len(tasks))
	for _, task := range tasks {
		names = append(names, task.Name)
	}
	return names
}

func ptr(v uint64) *uint64 { return &v }

func (suite *TaskFilterTestSuite) TestList_NoPredicates() {
	suite.Equal([]string{"t1", "t2", "t3", "t4"}, suite.names(repository.TaskFilter{}))
}

func (suite *TaskFilterTestSuite) TestList_SinglePredicates() {
	suite.Equal([]string{"t1", "t3"}, suite.names(repository.TaskFilter{StatusID: ptr(suite.todo.ID)}))
	suite.Equal([]string{"t1", "t4"}, suite.names(repository.TaskFilter{ExecutorID: ptr(suite.bob.ID)}))
	suite.Equal([]string{"t2", "t3"}, suite.names(repository.TaskFilter{LabelID: ptr(suite.feature.ID)}))
	suite.Equal([]string{"t1", "t2"}, suite.names(repository.TaskFilter{CreatorID: ptr(suite.ann.ID)}))
}

func (suite *TaskFilterTestSuite) TestList_Intersections() {
	suite.Equal([]string{"t1"}, suite.names(repository.TaskFilter{
		StatusID: ptr(suite.todo.ID),
		LabelID:  ptr(suite.bug.ID),
	}))
	suite.Equal([]string{"t3"}, suite.names(repository.TaskFilter{
		LabelID:    ptr(suite.feature.ID),
		ExecutorID: ptr(suite.ann.ID),
		CreatorID:  ptr(suite.bob.ID),
	}))
	suite.Empty(suite.names(repository.TaskFilter{
		StatusID:  ptr(suite.done.ID),
		LabelID:   ptr(suite.bug.ID),
		CreatorID: ptr(suite.bob.ID),
	}))
}

func (suite *TaskFilterTestSuite) TestList_UnknownIDsMatchNothing() {
	suite.Empty(suite.names(repository.TaskFilter{LabelID: ptr(999)}))
	suite.Empty(suite.names(repository.TaskFilter{StatusID: ptr(999)}))
}

func (suite *TaskFilterTestSuite) TestList_PreloadsDisplayRelations() {
	tasks, err := suite.repo.List(suite.ctx, repository.TaskFilter{})
	suite.Require().NoError(err)
	suite.Require().Len(tasks, 4)

	suite.Equal("todo", tasks[0].Status.Name)
	suite.Equal("Ann Lee", tasks[0].Creator.FullName())
	suite.Equal("Bob Ray", tasks[0].Executor.FullName())
	suite.Nil(tasks[1].Executor)
}

func (suite *TaskFilterTestSuite) TestUpdate_ReplacesLabelSet() {
	task := suite.t4
	task.Name = "t4 renamed"

	suite.Require().NoError(suite.repo.Update(suite.ctx, task, []uint64{suite.bug.ID, suite.feature.ID}))
	labels, err := suite.repo.LabelsFor(suite.ctx, task.ID)
	suite.Require().NoError(err)
	suite.Len(labels, 2)

	suite.Require().NoError(suite.repo.Update(suite.ctx, task, []uint64{suite.feature.ID}))
	labels, err = suite.repo.LabelsFor(suite.ctx, task.ID)
	suite.Require().NoError(err)
	suite.Require().Len(labels, 1)
	suite.Equal("feature", labels[0].Name)

	suite.Require().NoError(suite.repo.Update(suite.ctx, task, nil))
	labels, err = suite.repo.LabelsFor(suite.ctx, task.ID)
	suite.Require().NoError(err)
	suite.Empty(labels)

	reloaded, err := suite.repo.FindByID(suite.ctx, task.ID)
	suite.Require().NoError(err)
	suite.Equal("t4 renamed", reloaded.Name)
}

func (suite *TaskFilterTestSuite) TestDelete_LeavesNoAssociationRows() {
	suite.Require().NoError(suite.repo.Delete(suite.ctx, suite.t2.ID))

	var count int64
	suite.Require().NoError(suite.db.Model(&models.TaskLabel{}).Where("task_id = ?", suite.t2.ID).Count(&count).Error)
	suite.Zero(count)

	_, err := suite.repo.FindByID(suite.ctx, suite.t2.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestTaskFilterTestSuite(t *testing.T) {
	suite.Run(t, new(TaskFilterTestSuite))
}
