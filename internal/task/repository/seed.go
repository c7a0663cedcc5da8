package repository

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"chat-task-manager/internal/model"
	"chat-task-manager/pkg/datemath"
)

// Seed is a YAML task fixture:
//
//	user_id: demo
//	tasks:
//	  - title: Pay rent
//	    priority: high
//	    due_date: 2026-02-06
//	    created_at: 2026-02-01T09:00:00Z
type Seed struct {
	UserID string     `yaml:"user_id"`
	Tasks  []SeedTask `yaml:"tasks"`
}

// SeedTask is one fixture task. UserID overrides the file-level user.
type SeedTask struct {
	UserID      string `yaml:"user_id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Status      string `yaml:"status"`
	Priority    string `yaml:"priority"`
	DueDate     string `yaml:"due_date"`
	CreatedAt   string `yaml:"created_at"`
}

// DecodeSeed reads a fixture.
func DecodeSeed(r io.Reader) (Seed, error) {
	var s Seed
	if err := yaml.NewDecoder(r).Decode(&s); err != nil && err != io.EOF {
		return Seed{}, fmt.Errorf("decode seed: %w", err)
	}
	return s, nil
}

// Options converts the fixture into create options, in file order.
// fallbackUser is used when neither the task nor the file names a user.
func (s Seed) Options(fallbackUser string) ([]CreateTaskOptions, error) {
	opts := make([]CreateTaskOptions, 0, len(s.Tasks))
	for i, t := range s.Tasks {
		opt := CreateTaskOptions{
			UserID:      firstNonEmpty(t.UserID, s.UserID, fallbackUser),
			Title:       t.Title,
			Description: t.Description,
			Status:      model.TaskStatus(strings.ToLower(t.Status)),
			Priority:    model.TaskPriority(strings.ToLower(t.Priority)),
		}
		if t.DueDate != "" {
			d, err := datemath.ParseDate(t.DueDate)
			if err != nil {
				return nil, fmt.Errorf("seed task %d: due_date: %w", i+1, err)
			}
			opt.DueDate = &d
		}
		if t.CreatedAt != "" {
			c, err := time.Parse(time.RFC3339, t.CreatedAt)
			if err != nil {
				return nil, fmt.Errorf("seed task %d: created_at: %w", i+1, err)
			}
			opt.CreatedAt = c
		}
		opts = append(opts, opt)
	}
	return opts, nil
}

// LoadSeedFile creates every task of the fixture at path in r and returns how many were stored.
func LoadSeedFile(ctx context.Context, r Repository, path, fallbackUser string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open seed: %w", err)
	}
	defer f.Close()

	seed, err := DecodeSeed(f)
	if err != nil {
		return 0, err
	}
	opts, err := seed.Options(fallbackUser)
	if err != nil {
		return 0, err
	}

	for i, opt := range opts {
		if _, err := r.CreateTask(ctx, opt); err != nil {
			return i, fmt.Errorf("seed task %d: %w", i+1, err)
		}
	}
	return len(opts), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
