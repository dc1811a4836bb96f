package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InboundRecord is a single message record supplied by an ingestion surface
type InboundRecord struct {
	SenderID   string    `json:"sender_id"`
	SenderName string    `json:"sender_name,omitempty"`
	Platform   string    `json:"platform"`
	Direction  string    `json:"direction,omitempty"` // defaults to "in"
	Body       string    `json:"body"`
	Language   string    `json:"language,omitempty"`
	ReceivedAt time.Time `json:"received_at,omitempty"`
	Raw        string    `json:"raw,omitempty"`
}

// ImportResult reports the outcome of an import batch
type ImportResult struct {
	Inserted        int           `json:"inserted"`
	ThreadsAffected int           `json:"threads_affected"`
	Errors          []RecordError `json:"errors,omitempty"`
	Messages        []Message     `json:"-"`
	CreatedThreads  []string      `json:"-"`
}

// fingerprint identifies a message by (platform, sender, timestamp, body)
// so re-importing an identical batch inserts nothing new.
func fingerprint(platform, senderID string, receivedAt time.Time, body string) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%s|%s|%s", platform, senderID, receivedAt.UTC().Format(time.RFC3339Nano), body)
	return hex.EncodeToString(h.Sum(nil))
}

func validateRecord(rec *InboundRecord) error {
	if strings.TrimSpace(rec.Platform) == "" {
		return errors.New("missing platform")
	}
	if strings.TrimSpace(rec.SenderID) == "" {
		return errors.New("missing sender_id")
	}
	if strings.TrimSpace(rec.Body) == "" {
		return errors.New("missing body")
	}
	switch rec.Direction {
	case "":
		rec.Direction = DirectionIn
	case DirectionIn, DirectionOut:
	default:
		return fmt.Errorf("invalid direction %q", rec.Direction)
	}
	if rec.ReceivedAt.IsZero() {
		rec.ReceivedAt = time.Now()
	}
	return nil
}

// ImportMessages inserts a batch of records, grouping them into threads by
// (platform, sender_id). Malformed records are reported per-record while the
// remainder of the batch still commits. Each accepted record commits in one
// transaction with its thread timestamp update, so no reader observes a
// message whose thread still carries a stale last_message_at. Duplicates are
// detected by the fingerprint unique index inside that transaction, so a
// concurrent import of the same record is a silent skip, never an error.
func ImportMessages(records []InboundRecord) (*ImportResult, error) {
	result := &ImportResult{}
	affected := make(map[string]bool)

	for i := range records {
		rec := records[i]
		if err := validateRecord(&rec); err != nil {
			result.Errors = append(result.Errors, RecordError{Index: i, Reason: err.Error()})
			continue
		}

		platform := strings.ToLower(rec.Platform)
		fp := fingerprint(platform, rec.SenderID, rec.ReceivedAt, rec.Body)

		var inserted Message
		var createdThread string
		err := DB.Transaction(func(tx *gorm.DB) error {
			thread, created, err := resolveThread(tx, platform, rec.SenderID, rec.SenderName, rec.ReceivedAt)
			if err != nil {
				return err
			}
			if created {
				createdThread = thread.ID
			}

			msg := Message{
				ID:          uuid.New().String(),
				ThreadID:    thread.ID,
				SenderID:    rec.SenderID,
				SenderName:  rec.SenderName,
				Platform:    platform,
				Direction:   rec.Direction,
				Body:        rec.Body,
				Language:    rec.Language,
				ReceivedAt:  rec.ReceivedAt,
				Raw:         rec.Raw,
				Fingerprint: fp,
			}
			if err := tx.Create(&msg).Error; err != nil {
				return err
			}

			if rec.ReceivedAt.After(thread.LastMessageAt) {
				if err := tx.Model(&Thread{}).Where("id = ?", thread.ID).
					Update("last_message_at", rec.ReceivedAt).Error; err != nil {
					return err
				}
			}

			inserted = msg
			return nil
		})
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			continue // already imported, idempotent skip
		}
		if err != nil {
			result.Errors = append(result.Errors, RecordError{Index: i, Reason: err.Error()})
			continue
		}

		result.Inserted++
		result.Messages = append(result.Messages, inserted)
		affected[inserted.ThreadID] = true
		if createdThread != "" {
			result.CreatedThreads = append(result.CreatedThreads, createdThread)
		}
	}

	result.ThreadsAffected = len(affected)
	log.Printf("[Inbox] Imported %d messages into %d threads (%d rejected)",
		result.Inserted, result.ThreadsAffected, len(result.Errors))
	return result, nil
}

// resolveThread finds or creates the thread for a (platform, sender) pair.
// A concurrent first-message for the same pair loses the unique-index race
// and falls back to the lookup, so two threads can never exist for one pair.
func resolveThread(tx *gorm.DB, platform, senderID, senderName string, receivedAt time.Time) (*Thread, bool, error) {
	var thread Thread
	err := tx.Where("platform = ? AND sender_id = ?", platform, senderID).First(&thread).Error
	if err == nil {
		return &thread, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	title := senderName
	if title == "" {
		title = senderID
	}
	thread = Thread{
		ID:            uuid.New().String(),
		Platform:      platform,
		SenderID:      senderID,
		Title:         title,
		Status:        ThreadOpen,
		LastMessageAt: receivedAt,
	}
	if err := tx.Create(&thread).Error; err != nil {
		// Unique index on (platform, sender_id): lost the race, use the winner
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var existing Thread
			if lookupErr := tx.Where("platform = ? AND sender_id = ?", platform, senderID).First(&existing).Error; lookupErr == nil {
				return &existing, false, nil
			}
		}
		return nil, false, err
	}
	return &thread, true, nil
}

// GetThread retrieves a thread by ID with messages ordered by received_at
func GetThread(threadID string) (*Thread, error) {
	var thread Thread
	err := DB.Preload("Messages", func(db *gorm.DB) *gorm.DB {
		return db.Order("received_at ASC")
	}).First(&thread, "id = ?", threadID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("thread %s: %w", threadID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &thread, nil
}

// ListThreads lists threads ordered by last_message_at descending.
// Empty platform/status filters mean "all".
func ListThreads(platform, status string) ([]Thread, error) {
	query := DB.Order("last_message_at DESC")
	if platform != "" {
		query = query.Where("platform = ?", strings.ToLower(platform))
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var threads []Thread
	err := query.Find(&threads).Error
	return threads, err
}

// SetThreadStatus opens or closes a thread
func SetThreadStatus(threadID, status string) error {
	if status != ThreadOpen && status != ThreadClosed {
		return fmt.Errorf("invalid thread status %q", status)
	}
	res := DB.Model(&Thread{}).Where("id = ?", threadID).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("thread %s: %w", threadID, ErrNotFound)
	}
	return nil
}
