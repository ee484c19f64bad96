package db_models

import (
	"encoding/json"
	"strings"
)

// Workspace owns one schedule. MemberUserIDs holds the additional member ids
// (the owner is implicitly a member) as a JSON array string; older rows may
// contain a plain comma-separated list, so decoding falls back to that.
type Workspace struct {
	BaseModel
	Name          string `gorm:"size:100"`
	OwnerID       string `gorm:"size:255;index"`
	MemberUserIDs string `gorm:"type:text"`
}

func (w *Workspace) MemberIDs() []string {
	raw := strings.TrimSpace(w.MemberUserIDs)
	if raw == "" {
		return nil
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err == nil {
		return ids
	}

	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

func (w *Workspace) HasMember(userID string) bool {
	for _, id := range w.MemberIDs() {
		if id == userID {
			return true
		}
	}
	return false
}

func (w *Workspace) AddMemberID(userID string) error {
	ids := w.MemberIDs()
	for _, id := range ids {
		if id == userID {
			return nil
		}
	}
	ids = append(ids, userID)

	encoded, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	w.MemberUserIDs = string(encoded)
	return nil
}
