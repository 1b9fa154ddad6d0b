package models

import "time"

type Label struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Name      string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TaskLabel is one row of the task/label many-to-many relation.
// It has no identity of its own and is only written through task mutations.
type TaskLabel struct {
	TaskID    uint64    `gorm:"primaryKey;autoIncrement:false" json:"taskId"`
	LabelID   uint64    `gorm:"primaryKey;autoIncrement:false" json:"labelId"`
	CreatedAt time.Time `json:"createdAt"`

	Task  Task  `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"-"`
	Label Label `gorm:"foreignKey:LabelID;constraint:OnDelete:CASCADE" json:"-"`
}

func (TaskLabel) TableName() string {
	return "tasks_labels"
}
