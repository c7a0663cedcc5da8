package memory

import (
	"context"
	"sort"

	"chat-task-manager/internal/model"
	repo "chat-task-manager/internal/task/repository"
)

// ListTasks walks the tasks newest insert first, then stable-sorts by created_at.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []model.Task{}
	for i := len(r.tasks) - 1; i >= 0; i-- {
		t := r.tasks[i]
		if t.UserID != opt.UserID {
			continue
		}
		if opt.Status != "" && t.Status != opt.Status {
			continue
		}
		if opt.Priority != "" && t.Priority != opt.Priority {
			continue
		}
		out = append(out, t)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if opt.Limit > 0 && len(out) > opt.Limit {
		out = out[:opt.Limit]
	}
	return out, nil
}

func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	opt, err := opt.Normalize(r.now())
	if err != nil {
		return model.Task{}, err
	}

	t := model.Task{
		ID:          r.newID(),
		UserID:      opt.UserID,
		Title:       opt.Title,
		Description: opt.Description,
		Status:      opt.Status,
		Priority:    opt.Priority,
		DueDate:     opt.DueDate,
		CreatedAt:   opt.CreatedAt,
	}
	if t.Status == model.TaskStatusDone {
		completed := t.CreatedAt
		t.CompletedAt = &completed
	}

	r.mu.Lock()
	r.tasks = append(r.tasks, t)
	r.mu.Unlock()

	r.l.Debugf(ctx, "%s: created %s for %s", r.dsn("CreateTask"), t.ID, t.UserID)
	return t, nil
}

func (r *implRepository) CompleteTask(ctx context.Context, userID, id string) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(userID, id)
	if i < 0 {
		return model.Task{}, nil
	}

	completed := r.now().UTC()
	r.tasks[i].Status = model.TaskStatusDone
	r.tasks[i].CompletedAt = &completed
	return r.tasks[i], nil
}

func (r *implRepository) DeleteTask(ctx context.Context, userID, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(userID, id)
	if i < 0 {
		return false, nil
	}
	r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
	return true, nil
}

// indexOf must be called with mu held.
func (r *implRepository) indexOf(userID, id string) int {
	for i, t := range r.tasks {
		if t.ID == id && t.UserID == userID {
			return i
		}
	}
	return -1
}
