package models

import "time"

type Task struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Name        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	StatusID    uint64    `gorm:"not null;index" json:"statusId"`
	CreatorID   uint64    `gorm:"not null;index" json:"creatorId"`
	ExecutorID  *uint64   `gorm:"index" json:"executorId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Relations
	Status   TaskStatus `gorm:"foreignKey:StatusID" json:"status,omitempty"`
	Creator  User       `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
	Executor *User      `gorm:"foreignKey:ExecutorID" json:"executor,omitempty"`
}
