// SPDX-License-Identifier: LGPL-3.0-or-later

package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

// Task statuses reported by the service
const (
	TaskStatusEnqueued   = "enqueued"
	TaskStatusProcessing = "processing"
	TaskStatusSucceeded  = "succeeded"
	TaskStatusFailed     = "failed"
	TaskStatusCanceled   = "canceled"
)

const defaultPollInterval = 50 * time.Millisecond

// TaskInfo is the handle returned by every write. It only proves the
// change was accepted; application happens asynchronously.
type TaskInfo struct {
	TaskUID    int64     `json:"taskUid"`
	IndexUID   string    `json:"indexUid"`
	Status     string    `json:"status"`
	Type       string    `json:"type"`
	EnqueuedAt time.Time `json:"enqueuedAt"`
}

// TaskError describes why a task failed. Cross-field validation rules
// the service enforces (for example oneTypo <= twoTypos) surface here,
// never at build or dispatch time.
type TaskError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Type    string `json:"type"`
	Link    string `json:"link"`
}

func (e *TaskError) Error() string {
	return fmt.Sprintf("task failed: %s (code %s)", e.Message, e.Code)
}

// Task is the full task record as reported by the task endpoint.
type Task struct {
	UID        int64      `json:"uid"`
	IndexUID   string     `json:"indexUid"`
	Status     string     `json:"status"`
	Type       string     `json:"type"`
	Error      *TaskError `json:"error,omitempty"`
	EnqueuedAt time.Time  `json:"enqueuedAt"`
	StartedAt  *time.Time `json:"startedAt,omitempty"`
	FinishedAt *time.Time `json:"finishedAt,omitempty"`
}

// Done reports whether the task reached a terminal status
func (t *Task) Done() bool {
	switch t.Status {
	case TaskStatusSucceeded, TaskStatusFailed, TaskStatusCanceled:
		return true
	}
	return false
}

// GetTask fetches one task by uid
func (c *Client) GetTask(ctx context.Context, uid int64) (*Task, error) {
	var t Task
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tasks/%d", uid), nil, &t, http.StatusOK); err != nil {
		return nil, err
	}
	return &t, nil
}

// WaitForTask polls the task until it reaches a terminal status or ctx
// is done. A failed task is returned without error; callers inspect
// Task.Error for the service's verdict.
func (c *Client) WaitForTask(ctx context.Context, info *TaskInfo, interval time.Duration) (*Task, error) {
	if interval <= 0 {
		interval = defaultPollInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		t, err := c.GetTask(ctx, info.TaskUID)
		if err != nil {
			return nil, err
		}

		if t.Done() {
			log.Debugf("task %d finished with status %s", t.UID, t.Status)
			return t, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}
