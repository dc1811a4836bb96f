package storage

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CreateSavedReply stores a reusable reply template
func CreateSavedReply(reply *SavedReply) error {
	if reply.Title == "" || reply.Body == "" {
		return fmt.Errorf("saved reply requires title and body")
	}
	if reply.Language == "" {
		reply.Language = "en"
	}
	if reply.Scope == "" {
		reply.Scope = ScopeGlobal
	}
	reply.ID = uuid.New().String()
	reply.CreatedAt = time.Now()
	return DB.Create(reply).Error
}

// ListSavedReplies lists templates filtered by scope, plugin and language.
// Empty filters mean "all".
func ListSavedReplies(scope, pluginName, language string) ([]SavedReply, error) {
	query := DB.Order("created_at DESC")
	if scope != "" {
		query = query.Where("scope = ?", scope)
	}
	if pluginName != "" {
		query = query.Where("plugin_name = ?", pluginName)
	}
	if language != "" {
		query = query.Where("language = ?", language)
	}
	var replies []SavedReply
	err := query.Find(&replies).Error
	return replies, err
}

// DeleteSavedReply removes a template
func DeleteSavedReply(replyID string) error {
	res := DB.Delete(&SavedReply{}, "id = ?", replyID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("saved reply %s: %w", replyID, ErrNotFound)
	}
	return nil
}
