package storage

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeadFields carries the caller-supplied lead attributes
type LeadFields struct {
	Name  string
	Phone string
	Notes string
}

// CreateLead creates a lead, optionally linked to its source thread.
// If no name is given the thread's sender_id is used, and an extracted phone
// number is recorded as the first note. Insert and note commit together.
func CreateLead(fields LeadFields, sourceThreadID string) (string, error) {
	name := fields.Name
	if sourceThreadID != "" && name == "" {
		var thread Thread
		err := DB.First(&thread, "id = ?", sourceThreadID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("thread %s: %w", sourceThreadID, ErrNotFound)
		}
		if err != nil {
			return "", err
		}
		name = thread.SenderID
	}

	now := time.Now()
	lead := Lead{
		ID:        uuid.New().String(),
		ThreadID:  sourceThreadID,
		Name:      name,
		Phone:     fields.Phone,
		Status:    LeadNew,
		Notes:     fields.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if fields.Phone != "" {
		lead.Notes = appendNote(lead.Notes, "Phone captured: "+fields.Phone, now)
	}

	if err := DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&lead).Error
	}); err != nil {
		return "", err
	}

	log.Printf("[CRM] Created lead %s (thread=%q)", lead.ID, sourceThreadID)
	return lead.ID, nil
}

// GetLead retrieves a lead by ID
func GetLead(leadID string) (*Lead, error) {
	var lead Lead
	err := DB.First(&lead, "id = ?", leadID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lead %s: %w", leadID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// GetLeadByThread returns the lead linked to a thread, or ErrNotFound
func GetLeadByThread(threadID string) (*Lead, error) {
	var lead Lead
	err := DB.First(&lead, "thread_id = ?", threadID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lead for thread %s: %w", threadID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// UpdateLeadStatus sets a lead's pipeline status. Transitions are advisory:
// any status value is accepted, ordering is not enforced at this layer.
func UpdateLeadStatus(leadID, status string) error {
	res := DB.Model(&Lead{}).Where("id = ?", leadID).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("lead %s: %w", leadID, ErrNotFound)
	}
	return nil
}

// AddLeadNote appends a timestamped note to a lead
func AddLeadNote(leadID, note string) error {
	return DB.Transaction(func(tx *gorm.DB) error {
		var lead Lead
		err := tx.First(&lead, "id = ?", leadID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("lead %s: %w", leadID, ErrNotFound)
		}
		if err != nil {
			return err
		}

		now := time.Now()
		return tx.Model(&lead).Updates(map[string]interface{}{
			"notes":      appendNote(lead.Notes, note, now),
			"updated_at": now,
		}).Error
	})
}

func appendNote(existing, note string, at time.Time) string {
	stamped := fmt.Sprintf("[%s] %s", at.UTC().Format("2006-01-02 15:04"), note)
	if existing == "" {
		return stamped
	}
	return strings.TrimSpace(existing + "\n" + stamped)
}

// ListLeads lists leads ordered by updated_at descending, optionally filtered by status
func ListLeads(status string) ([]Lead, error) {
	query := DB.Order("updated_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var leads []Lead
	err := query.Find(&leads).Error
	return leads, err
}

// Pipeline groups leads into the five pipeline buckets. Every bucket is
// present in the result even when empty.
func Pipeline() (map[string][]Lead, error) {
	leads, err := ListLeads("")
	if err != nil {
		return nil, err
	}

	buckets := make(map[string][]Lead, len(LeadStatuses))
	for _, status := range LeadStatuses {
		buckets[status] = []Lead{}
	}
	for _, lead := range leads {
		if _, ok := buckets[lead.Status]; ok {
			buckets[lead.Status] = append(buckets[lead.Status], lead)
		}
	}
	return buckets, nil
}

// CreateTask creates a follow-up task, optionally linked to a lead
func CreateTask(leadID, description string, dueAt time.Time, priority string) (string, error) {
	if priority == "" {
		priority = PriorityMedium
	}
	task := Task{
		ID:          uuid.New().String(),
		LeadID:      leadID,
		DueAt:       dueAt,
		Description: description,
		Priority:    priority,
		CreatedAt:   time.Now(),
	}
	if err := DB.Create(&task).Error; err != nil {
		return "", err
	}
	log.Printf("[CRM] Created task %s due %s", task.ID, dueAt.Format(time.RFC3339))
	return task.ID, nil
}

// ListTasks lists tasks ordered by due_at ascending
func ListTasks(includeDone bool) ([]Task, error) {
	query := DB.Order("due_at ASC")
	if !includeDone {
		query = query.Where("done = ?", false)
	}
	var tasks []Task
	err := query.Find(&tasks).Error
	return tasks, err
}

// CompleteTask marks a task as done
func CompleteTask(taskID string) error {
	res := DB.Model(&Task{}).Where("id = ?", taskID).Update("done", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("task %s: %w", taskID, ErrNotFound)
	}
	return nil
}
